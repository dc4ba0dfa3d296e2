// Package config loads cubby's configuration. Values are merged in
// precedence order: built-in defaults, then an optional TOML file, then
// CUBBY_-prefixed environment variables.
package config
