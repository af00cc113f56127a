package state

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/bayaz-archive/bayaz/internal/remote"
)

// Snapshot represents the latest trending data available to the UI.
type Snapshot struct {
	Trending            remote.Trending
	HasTrending         bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the service has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored trending data. When err is non-nil the previous
// data is kept but the error is recorded for visibility.
func (s *Store) Update(trending *remote.Trending, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	if trending != nil {
		s.snapshot.Trending = cloneTrending(*trending)
		s.snapshot.HasTrending = true
	} else {
		s.snapshot.Trending = remote.Trending{}
		s.snapshot.HasTrending = false
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Trending = cloneTrending(s.snapshot.Trending)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneTrending(t remote.Trending) remote.Trending {
	return remote.Trending{
		Songs:   slices.Clone(t.Songs),
		Writers: slices.Clone(t.Writers),
	}
}
