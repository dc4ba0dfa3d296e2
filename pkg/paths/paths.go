// Package paths provides centralized path handling for cubby.
// It resolves user-supplied store locations (~ expansion, relative paths)
// and provides XDG-compliant defaults for the store, configuration and
// log locations.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/cubby/pkg/errors"
)

// Environment variable names
const (
	// EnvStoreDir overrides the default settings directory
	EnvStoreDir = "CUBBY_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for cubby-specific files
	AppDirName = "cubby"

	// SettingsDirName is the subdirectory holding the setting files
	SettingsDirName = "settings"

	// ConfigFileName is the name of the configuration file
	ConfigFileName = "cubby.toml"
)

// ExpandHome expands ~ to the home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// Normalize normalizes a path by expanding home, making it absolute,
// and cleaning it
func Normalize(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	expanded := ExpandHome(path)

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path")
	}

	return filepath.Clean(abs), nil
}

// DefaultStoreDir returns the directory used for setting files when the
// caller does not name one. CUBBY_DIR takes precedence; otherwise the
// XDG data directory is used (~/.local/share/cubby/settings).
func DefaultStoreDir() string {
	if dir := os.Getenv(EnvStoreDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.DataHome, AppDirName, SettingsDirName)
}

// DefaultConfigPath returns the location of the configuration file
// (~/.config/cubby/cubby.toml unless XDG_CONFIG_HOME points elsewhere).
func DefaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppDirName, ConfigFileName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}
