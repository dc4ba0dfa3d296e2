package store

import (
	"time"

	"github.com/arthur-debert/cubby/pkg/filesystem"
)

// Store is the key-value contract shared by all backends. Absence of a key
// is reported through Load's boolean, never as an error.
type Store interface {
	// Save writes value under key, fully replacing any prior content.
	// Saving without an expiry option clears a previously set expiration.
	Save(key string, value []byte, opts ...SaveOption) error

	// Load returns the value stored under key. The boolean reports whether
	// the key is present. Loading an expired key removes it and reports
	// absence.
	Load(key string) ([]byte, bool, error)

	// Clear removes the key. Clearing an absent key is a no-op.
	Clear(key string) error

	// ClearAll removes every entry in the store.
	ClearAll() error

	// Size returns a human-readable figure for the store's current usage.
	Size() (string, error)
}

// SaveOption configures a single Save call.
type SaveOption func(*saveOptions)

type saveOptions struct {
	expireAt time.Time
	ttl      time.Duration
	hasTTL   bool
}

// WithExpiry sets an absolute expiration for the entry. The timestamp is
// truncated to whole seconds on disk.
func WithExpiry(t time.Time) SaveOption {
	return func(o *saveOptions) {
		o.expireAt = t
	}
}

// WithTTL sets a relative expiration, resolved against the store's clock
// at save time.
func WithTTL(d time.Duration) SaveOption {
	return func(o *saveOptions) {
		o.ttl = d
		o.hasTTL = true
	}
}

// expiry resolves the configured expiration to epoch seconds. The second
// return value reports whether an expiration was requested at all.
func (o *saveOptions) expiry(now func() time.Time) (int64, bool) {
	if o.hasTTL {
		return now().Add(o.ttl).Unix(), true
	}
	if !o.expireAt.IsZero() {
		return o.expireAt.Unix(), true
	}
	return 0, false
}

// Option configures a store at construction time.
type Option func(*options)

type options struct {
	fs  filesystem.FS
	now func() time.Time
}

// WithFS injects the filesystem the store operates against. Defaults to
// the OS filesystem. The memory backend ignores it.
func WithFS(fs filesystem.FS) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithNow injects the clock used for expiration checks. Defaults to
// time.Now.
func WithNow(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{
		fs:  filesystem.NewOS(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
