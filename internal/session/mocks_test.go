package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/FairSlots_Go/internal/event"
	"github.com/osse101/FairSlots_Go/internal/slots"
)

// MockPublisher records published events
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	m.Called(ctx, evt)
}

// MockJackpotStore is a mock implementation of repository.JackpotStore
type MockJackpotStore struct {
	mock.Mock
}

func (m *MockJackpotStore) LastJackpotWin(ctx context.Context, playerID string) (*time.Time, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockJackpotStore) RecordJackpotWin(ctx context.Context, playerID string, at time.Time) error {
	args := m.Called(ctx, playerID, at)
	return args.Error(0)
}

func (m *MockJackpotStore) ClaimHistory(ctx context.Context, playerID string, limit int) ([]time.Time, error) {
	args := m.Called(ctx, playerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockJackpotStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// seedSequence returns the given seeds in order, then numbered filler seeds
func seedSequence(seeds ...string) slots.SeedSource {
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

// testClock is a settable clock
type testClock struct {
	mu  sync.Mutex
	now time.Time
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
