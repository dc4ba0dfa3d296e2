// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Temp directories for config files
// PURPOSE: Test configuration loading precedence and validation

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cubby/pkg/config"
	"github.com/arthur-debert/cubby/pkg/errors"
)

// isolate points the XDG config home at an empty temp directory so the
// developer's real config file cannot leak into tests.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cubby.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.BackendFile, cfg.Backend)
	assert.Empty(t, cfg.Dir)
}

func TestLoad_FromFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "backend = \"memory\"\ndir = \"/tmp/cubby-test\"\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.BackendMemory, cfg.Backend)
	assert.Equal(t, "/tmp/cubby-test", cfg.Dir)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "dir = \"/tmp/cubby-test\"\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.BackendFile, cfg.Backend)
	assert.Equal(t, "/tmp/cubby-test", cfg.Dir)
}

func TestLoad_DefaultConfigPath(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "cubby")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cubby.toml"), []byte("backend = \"memory\"\n"), 0644))

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.BackendMemory, cfg.Backend)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	isolate(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "no-such.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_MalformedFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "backend = [not toml")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "backend = \"file\"\n")
	t.Setenv("CUBBY_BACKEND", "memory")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.BackendMemory, cfg.Backend)
}

func TestLoad_EnvDir(t *testing.T) {
	isolate(t)
	t.Setenv("CUBBY_DIR", "/tmp/from-env")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env", cfg.Dir)
}

func TestLoad_InvalidBackend(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "backend = \"redis\"\n")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		wantErr bool
	}{
		{"file backend", config.BackendFile, false},
		{"memory backend", config.BackendMemory, false},
		{"empty backend", "", true},
		{"unknown backend", "sqlite", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Backend: tt.backend}
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultTOML(t *testing.T) {
	sample, err := config.DefaultTOML()
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, gotoml.Unmarshal([]byte(sample), &cfg))
	assert.Equal(t, *config.Default(), cfg)
	assert.Contains(t, sample, "backend")
}
