package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mmcdole/freshbites/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// DefaultQuotaBytes matches the per-origin budget browsers give localStorage.
const DefaultQuotaBytes = 5 * 1024 * 1024

var bucketLocal = []byte("local")

var (
	// ErrQuotaExceeded is returned by SetItem when the stored values would exceed the quota
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrClosed is returned after Close
	ErrClosed = errors.New("storage is closed")
)

// Options tunes a Local store
type Options struct {
	// QuotaBytes caps the summed size of all keys and values. Zero means DefaultQuotaBytes,
	// negative disables the check.
	QuotaBytes int
}

// Local implements domain.LocalStorage using BoltDB.
type Local struct {
	db     *bolt.DB
	mu     sync.RWMutex // Protects memory cache
	quota  int
	closed bool

	// In-memory copy of every item; reads never touch disk after Open
	cache map[string]string
}

var _ domain.LocalStorage = (*Local)(nil)

// Open opens (or creates) the store at dir/freshbites.db.
// An empty dir gives a memory-only store with the same semantics and no persistence.
func Open(dir string, opts Options) (*Local, error) {
	quota := opts.QuotaBytes
	if quota == 0 {
		quota = DefaultQuotaBytes
	}

	s := &Local{quota: quota, cache: make(map[string]string)}
	if dir == "" {
		return s, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	dbPath := filepath.Join(dir, "freshbites.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketLocal)
		if err != nil {
			return err
		}
		return b.ForEach(func(k, v []byte) error {
			s.cache[string(k)] = string(v)
			return nil
		})
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s.db = db
	return s, nil
}

// Path returns the database file, or "" for a memory-only store
func (s *Local) Path() string {
	if s.db == nil {
		return ""
	}
	return s.db.Path()
}

func (s *Local) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Local) GetItem(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", false, ErrClosed
	}
	v, ok := s.cache[key]
	return v, ok, nil
}

func (s *Local) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	if s.quota > 0 {
		used := s.usageLocked() - s.sizeLocked(key) + len(key) + len(value)
		if used > s.quota {
			return fmt.Errorf("set %q (%d bytes): %w", key, len(value), ErrQuotaExceeded)
		}
	}

	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket(bucketLocal).Put([]byte(key), []byte(value))
		})
		if err != nil {
			return fmt.Errorf("set %q: %w", key, err)
		}
	}

	s.cache[key] = value
	return nil
}

func (s *Local) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket(bucketLocal).Delete([]byte(key))
		})
		if err != nil {
			return fmt.Errorf("remove %q: %w", key, err)
		}
	}

	delete(s.cache, key)
	return nil
}

// Usage returns the bytes currently counted against the quota
func (s *Local) Usage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usageLocked()
}

func (s *Local) usageLocked() int {
	total := 0
	for k, v := range s.cache {
		total += len(k) + len(v)
	}
	return total
}

func (s *Local) sizeLocked(key string) int {
	v, ok := s.cache[key]
	if !ok {
		return 0
	}
	return len(key) + len(v)
}
