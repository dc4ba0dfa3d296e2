package config

import (
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/cubby/pkg/errors"
)

const sampleHeader = `# cubby configuration
# Place this file at ~/.config/cubby/cubby.toml or pass its path to
# config.Load. Every value can also be set through CUBBY_* environment
# variables, which take precedence over this file.

`

// DefaultTOML renders a commented sample configuration file populated
// with the built-in defaults.
func DefaultTOML() (string, error) {
	body, err := gotoml.Marshal(Default())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render sample configuration")
	}
	return sampleHeader + string(body), nil
}
