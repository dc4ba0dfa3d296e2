package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cubby/pkg/config"
	"github.com/arthur-debert/cubby/pkg/errors"
	"github.com/arthur-debert/cubby/pkg/store"
)

func TestFromConfig(t *testing.T) {
	t.Run("file backend", func(t *testing.T) {
		s, err := store.FromConfig(&config.Config{Backend: config.BackendFile, Dir: t.TempDir()})
		require.NoError(t, err)
		assert.IsType(t, (*store.FileStore)(nil), s)
	})

	t.Run("memory backend", func(t *testing.T) {
		s, err := store.FromConfig(&config.Config{Backend: config.BackendMemory})
		require.NoError(t, err)
		assert.IsType(t, (*store.MemoryStore)(nil), s)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := store.FromConfig(&config.Config{Backend: "redis"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrBackendUnknown))
	})
}

func TestFromConfig_BackendsShareContract(t *testing.T) {
	backends := map[string]*config.Config{
		"file":   {Backend: config.BackendFile, Dir: t.TempDir()},
		"memory": {Backend: config.BackendMemory},
	}

	for name, cfg := range backends {
		t.Run(name, func(t *testing.T) {
			s, err := store.FromConfig(cfg)
			require.NoError(t, err)

			require.NoError(t, s.Save("key", []byte("value")))
			got, ok, err := s.Load("key")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, []byte("value"), got)

			require.NoError(t, s.Clear("key"))
			_, ok, err = s.Load("key")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}
