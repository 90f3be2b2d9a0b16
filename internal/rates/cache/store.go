package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/quickconvert/quickconvert/internal/convert"
)

const cacheFileExtension = ".json"

// Cache errors.
var (
	ErrCacheNotFound   = errors.New("cache entry not found")
	ErrCacheExpired    = errors.New("cache entry expired")
	ErrInvalidCacheKey = errors.New("cache key cannot be empty")
)

// FileStore keeps one JSON file per key in a directory. Safe for concurrent use.
type FileStore struct {
	directory  string
	ttlSeconds int
	now        func() time.Time

	mu sync.RWMutex
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithClock sets the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *FileStore) { s.now = now }
}

// NewFileStore creates directory if needed and returns a store using ttlSeconds.
func NewFileStore(directory string, ttlSeconds int, opts ...Option) (*FileStore, error) {
	if directory == "" {
		return nil, errors.New("cache directory cannot be empty")
	}
	if _, err := NewTTLConfig(ttlSeconds); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(directory, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	s := &FileStore{directory: directory, ttlSeconds: ttlSeconds, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Directory returns the cache directory.
func (s *FileStore) Directory() string {
	return s.directory
}

// TTL returns the entry TTL in seconds.
func (s *FileStore) TTL() int {
	return s.ttlSeconds
}

// Get returns the entry for key. Expired entries are removed and reported as
// ErrCacheExpired.
func (s *FileStore) Get(key string) (*CacheEntry, error) {
	if key == "" {
		return nil, ErrInvalidCacheKey
	}

	path := s.path(key)

	s.mu.RLock()
	data, err := os.ReadFile(path)
	s.mu.RUnlock()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCacheNotFound
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	var entry CacheEntry
	if err = json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache entry: %w", err)
	}

	if entry.IsExpired(s.now()) {
		s.mu.Lock()
		_ = os.Remove(path)
		s.mu.Unlock()
		return nil, ErrCacheExpired
	}
	return &entry, nil
}

// Set stores table under key, replacing any existing entry.
func (s *FileStore) Set(key string, table convert.RateTable) error {
	if key == "" {
		return ErrInvalidCacheKey
	}

	entry := NewCacheEntry(key, table, s.ttlSeconds, s.now())
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(key)
	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to rename cache file: %w", err)
	}
	return nil
}

// Delete removes key. Missing entries are not an error.
func (s *FileStore) Delete(key string) error {
	if key == "" {
		return ErrInvalidCacheKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete cache file: %w", err)
	}
	return nil
}

// Clear removes every cache file in the directory.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.directory)
	if err != nil {
		return fmt.Errorf("failed to read cache directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != cacheFileExtension {
			continue
		}
		if err = os.Remove(filepath.Join(s.directory, e.Name())); err != nil {
			return fmt.Errorf("failed to remove cache file %s: %w", e.Name(), err)
		}
	}
	return nil
}

func (s *FileStore) path(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", ":", "_").Replace(key)
	return filepath.Join(s.directory, safe+cacheFileExtension)
}
