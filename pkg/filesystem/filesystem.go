package filesystem

import (
	"io/fs"
	"time"
)

// FS is the filesystem capability the store operates against. It covers
// exactly the calls the store makes: file read/write/delete, directory
// creation and listing, and the permission/mtime updates performed while
// claiming a directory. Implementations are expected to follow os package
// semantics, in particular returning fs.ErrNotExist-compatible errors for
// missing files.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Remove(name string) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Ownership operations
	Chmod(name string, mode fs.FileMode) error
	Chtimes(name string, atime, mtime time.Time) error
}
