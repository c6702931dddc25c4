package slots

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockClaimRecorder is a mock implementation of ClaimRecorder
type MockClaimRecorder struct {
	mock.Mock
}

func (m *MockClaimRecorder) RecordJackpotWin(ctx context.Context, playerID string, at time.Time) error {
	args := m.Called(ctx, playerID, at)
	return args.Error(0)
}

// testClock is a settable clock
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(now time.Time) *testClock {
	return &testClock{now: now}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// seedSequence returns the given seeds in order, then numbered filler seeds
func seedSequence(seeds ...string) SeedSource {
	var mu sync.Mutex
	i := 0
	return func() (string, error) {
		mu.Lock()
		defer mu.Unlock()
		defer func() { i++ }()
		if i < len(seeds) {
			return seeds[i], nil
		}
		return fmt.Sprintf("filler-%d", i), nil
	}
}

// countingSeeds returns seed-0, seed-1, ...
func countingSeeds() SeedSource {
	var mu sync.Mutex
	i := 0
	return func() (string, error) {
		mu.Lock()
		defer mu.Unlock()
		s := fmt.Sprintf("seed-%d", i)
		i++
		return s, nil
	}
}
