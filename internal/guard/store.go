package guard

import (
	"context"
	"sync"
	"time"
)

// AttemptStore records one submission attempt for a key and reports how many
// attempts that key has made inside the trailing window, including this one.
// Implementations prune attempts older than the window.
type AttemptStore interface {
	RecordAndCount(ctx context.Context, key string, at time.Time, window time.Duration) (int, error)
}

type attemptWindow struct {
	timestamps []time.Time
}

// MemoryStore is the in-process AttemptStore. Counting is exact within one
// process; it provides no coordination across instances.
type MemoryStore struct {
	mu       sync.Mutex
	attempts map[string]*attemptWindow
}

// NewMemoryStore creates a MemoryStore and starts a background sweep that
// drops keys with no attempts left in the last window.
func NewMemoryStore(window time.Duration) *MemoryStore {
	s := &MemoryStore{attempts: make(map[string]*attemptWindow)}
	go s.cleanupLoop(window)
	return s
}

// cleanupLoop periodically removes stale entries so the map does not grow
// with every client address seen over the process lifetime.
func (s *MemoryStore) cleanupLoop(window time.Duration) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		threshold := time.Now().Add(-window)
		s.mu.Lock()
		for key, aw := range s.attempts {
			aw.timestamps = pruneBefore(aw.timestamps, threshold)
			if len(aw.timestamps) == 0 {
				delete(s.attempts, key)
			}
		}
		s.mu.Unlock()
	}
}

func (s *MemoryStore) RecordAndCount(_ context.Context, key string, at time.Time, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	aw, ok := s.attempts[key]
	if !ok {
		aw = &attemptWindow{}
		s.attempts[key] = aw
	}

	aw.timestamps = pruneBefore(aw.timestamps, at.Add(-window))
	aw.timestamps = append(aw.timestamps, at)
	return len(aw.timestamps), nil
}

// pruneBefore filters in place on the shared backing array.
func pruneBefore(timestamps []time.Time, threshold time.Time) []time.Time {
	valid := timestamps[:0]
	for _, ts := range timestamps {
		if !ts.Before(threshold) {
			valid = append(valid, ts)
		}
	}
	return valid
}
