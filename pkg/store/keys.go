package store

import (
	"strings"

	"github.com/arthur-debert/cubby/pkg/errors"
)

// maxKeyLen keeps the expiry file name (".<key>.expires") within the
// usual 255-byte filename limit.
const maxKeyLen = 255 - len(expiryPrefix) - len(expirySuffix)

// validateKey rejects keys that cannot be used as a file name inside the
// store directory. Keys are validated before any path is built, so a bad
// key can never resolve outside the directory.
func validateKey(key string) error {
	switch {
	case key == "":
		return errors.New(errors.ErrInvalidKey, "key is empty")
	case key == "." || key == "..":
		return errors.Newf(errors.ErrInvalidKey, "key %q is a reserved name", key)
	case strings.HasPrefix(key, "."):
		return errors.Newf(errors.ErrInvalidKey, "key %q starts with a dot, which is reserved for store metadata", key)
	case strings.ContainsAny(key, "/\\"):
		return errors.Newf(errors.ErrInvalidKey, "key %q contains a path separator", key)
	case strings.ContainsRune(key, 0):
		return errors.Newf(errors.ErrInvalidKey, "key %q contains a NUL byte", key)
	case len(key) > maxKeyLen:
		return errors.Newf(errors.ErrInvalidKey, "key is too long (%d bytes, max %d)", len(key), maxKeyLen)
	}
	return nil
}
