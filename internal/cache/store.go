// Package cache holds the client's view of remote entities. Each view is a
// snapshot produced by a loader and replaced wholesale on every successful
// reload; snapshots are never patched in place.
package cache

import (
	"context"
	"sync"
	"time"
)

// Loader fetches a complete snapshot
type Loader[T any] func(ctx context.Context) (T, error)

// Store holds the latest snapshot of one view
type Store[T any] struct {
	load Loader[T]

	mu       sync.RWMutex
	snapshot T
	loaded   bool
	loadedAt time.Time
}

// NewStore creates an empty store backed by load
func NewStore[T any](load Loader[T]) *Store[T] {
	return &Store[T]{load: load}
}

// Reload runs the loader. Only a successful load replaces the snapshot;
// on failure the previous snapshot is kept and the error returned.
func (s *Store[T]) Reload(ctx context.Context) error {
	snapshot, err := s.load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot
	s.loaded = true
	s.loadedAt = time.Now()
	return nil
}

// Get returns the current snapshot and whether one has been loaded
func (s *Store[T]) Get() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.loaded
}

// LoadedAt returns when the snapshot was last replaced
func (s *Store[T]) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
