package worker

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/FairSlots_Go/internal/event"
)

// MockRearmer for testing
type MockRearmer struct {
	mock.Mock
}

func (m *MockRearmer) RearmJackpots(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

// MockPublisher for testing
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	m.Called(ctx, evt)
}

// MockBroadcaster for testing
type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) Broadcast(eventType, playerID string, payload interface{}) {
	m.Called(eventType, playerID, payload)
}
