package store

import (
	"github.com/arthur-debert/cubby/pkg/config"
	"github.com/arthur-debert/cubby/pkg/errors"
)

// FromConfig constructs the backend named by the configuration. The file
// backend claims cfg.Dir (or the default settings directory when unset);
// the memory backend ignores cfg.Dir.
func FromConfig(cfg *config.Config, opts ...Option) (Store, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return New(cfg.Dir, opts...)
	case config.BackendMemory:
		return NewMemory(opts...), nil
	default:
		return nil, errors.Newf(errors.ErrBackendUnknown, "unknown storage backend %q", cfg.Backend)
	}
}
