package testutil

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cubby/pkg/filesystem"
	"github.com/arthur-debert/cubby/pkg/store"
)

// MemFS returns an in-memory filesystem suitable for store.WithFS.
func MemFS() filesystem.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// NewFileStore creates a file store rooted in a fresh temp directory.
func NewFileStore(t *testing.T, opts ...store.Option) *store.FileStore {
	t.Helper()

	s, err := store.New(t.TempDir(), opts...)
	require.NoError(t, err)
	return s
}
