// Package filesystem provides filesystem implementations for cubby.
//
// This package contains implementations of the FS interface, including
// the standard OS filesystem and an afero adapter used to back stores
// with in-memory filesystems in tests.
package filesystem
