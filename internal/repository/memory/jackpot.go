// Package memory provides in-process repository implementations for
// development and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"
)

// JackpotStore keeps jackpot claims in maps. Claims are lost on restart.
type JackpotStore struct {
	mu      sync.RWMutex
	claims  map[string]time.Time
	history map[string][]time.Time
}

// NewJackpotStore creates an empty store
func NewJackpotStore() *JackpotStore {
	return &JackpotStore{
		claims:  make(map[string]time.Time),
		history: make(map[string][]time.Time),
	}
}

// LastJackpotWin returns the stored claim for a player
func (s *JackpotStore) LastJackpotWin(_ context.Context, playerID string) (*time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	at, ok := s.claims[playerID]
	if !ok {
		return nil, nil
	}
	return &at, nil
}

// RecordJackpotWin stores a claim, keeping the latest time per player
func (s *JackpotStore) RecordJackpotWin(_ context.Context, playerID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	at = at.UTC()
	s.history[playerID] = append(s.history[playerID], at)
	if existing, ok := s.claims[playerID]; ok && existing.After(at) {
		return nil
	}
	s.claims[playerID] = at
	return nil
}

// ClaimHistory returns up to limit claims for a player, newest first
func (s *JackpotStore) ClaimHistory(_ context.Context, playerID string, limit int) ([]time.Time, error) {
	s.mu.RLock()
	out := make([]time.Time, len(s.history[playerID]))
	copy(out, s.history[playerID])
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].After(out[j]) })
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Ping always succeeds
func (s *JackpotStore) Ping(context.Context) error {
	return nil
}
