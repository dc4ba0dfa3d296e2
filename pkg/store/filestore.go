package store

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/cubby/pkg/errors"
	"github.com/arthur-debert/cubby/pkg/filesystem"
	"github.com/arthur-debert/cubby/pkg/logging"
	"github.com/arthur-debert/cubby/pkg/paths"
)

// MarkerFileName is the ownership marker created inside a claimed
// directory. Its presence is what lets a store re-open a directory it
// claimed in an earlier run.
const MarkerFileName = ".cubby"

// Expiry files are named ".<key>.expires" and hold the expiration as
// decimal epoch seconds.
const (
	expiryPrefix = "."
	expirySuffix = ".expires"
)

// FileStore keeps one file per key inside a directory it has claimed.
// All operations are serialized behind a mutex, so a single handle is
// safe for concurrent use within a process. Nothing coordinates separate
// processes pointed at the same directory.
type FileStore struct {
	mu     sync.Mutex
	fs     filesystem.FS
	now    func() time.Time
	dir    string
	marker string
	logger zerolog.Logger
}

var _ Store = (*FileStore)(nil)

// New claims dir as storage territory and returns a ready store. The path
// may use ~ shorthand and may be relative; an empty path falls back to
// the default settings directory. A directory that already contains
// foreign files and no ownership marker is rejected with ErrStorageInit,
// and nothing in it is touched.
func New(dir string, opts ...Option) (*FileStore, error) {
	o := buildOptions(opts)

	if dir == "" {
		dir = paths.DefaultStoreDir()
	}
	dir, err := paths.Normalize(dir)
	if err != nil {
		return nil, err
	}

	s := &FileStore{
		fs:     o.fs,
		now:    o.now,
		dir:    dir,
		marker: filepath.Join(dir, MarkerFileName),
		logger: logging.GetLogger("store"),
	}
	if err := s.claim(); err != nil {
		return nil, err
	}

	s.logger.Debug().Str("dir", dir).Msg("Using directory for local setting storage")
	return s, nil
}

// Dir returns the absolute directory the store operates in.
func (s *FileStore) Dir() string {
	return s.dir
}

// claim creates or validates the store directory and (re)creates the
// ownership marker.
func (s *FileStore) claim() error {
	if _, err := s.fs.Stat(s.dir); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrStorageInit, "cannot stat %s", s.dir)
		}
		if err := s.fs.MkdirAll(s.dir, 0700); err != nil {
			return errors.Wrapf(err, errors.ErrStorageInit, "cannot create %s", s.dir)
		}
	} else if _, err := s.fs.Stat(s.marker); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrStorageInit, "cannot stat marker in %s", s.dir)
		}
		files, err := s.listFiles()
		if err != nil {
			return errors.Wrapf(err, errors.ErrStorageInit, "cannot list %s", s.dir)
		}
		if len(files) > 0 {
			return errors.Newf(errors.ErrStorageInit,
				"directory %s contains %d foreign file(s) and no %s marker; refusing to claim it",
				s.dir, len(files), MarkerFileName).
				WithDetail("dir", s.dir)
		}
	}

	if err := s.fs.Chmod(s.dir, 0700); err != nil {
		return errors.Wrapf(err, errors.ErrStorageInit, "cannot restrict permissions on %s", s.dir)
	}

	// Touch the marker, creating it on first claim.
	if _, err := s.fs.Stat(s.marker); err == nil {
		now := s.now()
		if err := s.fs.Chtimes(s.marker, now, now); err != nil {
			return errors.Wrapf(err, errors.ErrStorageInit, "cannot touch marker in %s", s.dir)
		}
		return nil
	}
	if err := s.fs.WriteFile(s.marker, nil, 0600); err != nil {
		return errors.Wrapf(err, errors.ErrStorageInit, "cannot create marker in %s", s.dir)
	}
	return nil
}

func (s *FileStore) valuePath(key string) string {
	return filepath.Join(s.dir, key)
}

func (s *FileStore) expiryPath(key string) string {
	return filepath.Join(s.dir, expiryPrefix+key+expirySuffix)
}

// listFiles returns the info of every regular (non-directory) entry
// directly inside the store directory, marker included.
func (s *FileStore) listFiles() ([]os.FileInfo, error) {
	entries, err := s.fs.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var infos []os.FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Save writes value to the key's file, replacing any prior content. With
// an expiry option, the expiration is written alongside it; without one,
// any previously set expiration is cleared.
func (s *FileStore) Save(key string, value []byte, opts ...SaveOption) error {
	if err := validateKey(key); err != nil {
		return err
	}
	var so saveOptions
	for _, opt := range opts {
		opt(&so)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.WriteFile(s.valuePath(key), value, 0600); err != nil {
		return errors.Wrapf(err, errors.ErrStorageIO, "cannot write value for key %q", key)
	}

	if expireAt, ok := so.expiry(s.now); ok {
		stamp := strconv.FormatInt(expireAt, 10)
		if err := s.fs.WriteFile(s.expiryPath(key), []byte(stamp), 0600); err != nil {
			return errors.Wrapf(err, errors.ErrStorageIO, "cannot write expiry for key %q", key)
		}
		return nil
	}

	if err := s.fs.Remove(s.expiryPath(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrStorageIO, "cannot clear expiry for key %q", key)
	}
	return nil
}

// Load returns the value stored under key. An entry whose expiration lies
// strictly in the past is removed here, value and expiry file both, and
// reported as absent. A timestamp equal to the current second is not yet
// expired.
func (s *FileStore) Load(key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.fs.ReadFile(s.expiryPath(key))
	switch {
	case err == nil:
		expireAt, parseErr := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
		if parseErr != nil {
			return nil, false, errors.Wrapf(parseErr, errors.ErrCorruptEntry,
				"expiry file for key %q holds %q, not an integer timestamp", key, strings.TrimSpace(string(raw)))
		}
		if s.now().Unix() > expireAt {
			if err := s.removeEntry(key); err != nil {
				return nil, false, err
			}
			s.logger.Trace().Str("key", key).Int64("expiredAt", expireAt).Msg("Removed expired entry on load")
			return nil, false, nil
		}
	case os.IsNotExist(err):
		// No expiry file means the entry never expires.
	default:
		return nil, false, errors.Wrapf(err, errors.ErrStorageIO, "cannot read expiry for key %q", key)
	}

	value, err := s.fs.ReadFile(s.valuePath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, errors.ErrStorageIO, "cannot read value for key %q", key)
	}
	return value, true, nil
}

// Clear removes the key's value and expiry files. Clearing an absent key
// is a no-op.
func (s *FileStore) Clear(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeEntry(key)
}

func (s *FileStore) removeEntry(key string) error {
	if err := s.fs.Remove(s.valuePath(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrStorageIO, "cannot remove value for key %q", key)
	}
	if err := s.fs.Remove(s.expiryPath(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrStorageIO, "cannot remove expiry for key %q", key)
	}
	return nil
}

// ClearAll removes every file directly inside the store directory, the
// ownership marker included. The directory itself is left in place.
func (s *FileStore) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	files, err := s.listFiles()
	if err != nil {
		return errors.Wrapf(err, errors.ErrStorageIO, "cannot list %s", s.dir)
	}
	for _, info := range files {
		path := filepath.Join(s.dir, info.Name())
		if err := s.fs.Remove(path); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrStorageIO, "cannot remove %s", path)
		}
	}
	return nil
}

// Size reports the summed byte size of every file directly inside the
// store directory, marker and expiry files included. This is raw
// directory usage, not logical payload size.
func (s *FileStore) Size() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	files, err := s.listFiles()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrStorageIO, "cannot list %s", s.dir)
	}
	var total int64
	for _, info := range files {
		total += info.Size()
	}
	return humanSize(total), nil
}
