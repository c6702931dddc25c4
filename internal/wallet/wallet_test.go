package wallet

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FairSlots_Go/internal/domain"
	"github.com/osse101/FairSlots_Go/internal/event"
	"github.com/osse101/FairSlots_Go/internal/worker"
)

func committedSpin() domain.SpinResult {
	return domain.SpinResult{
		SpinID:      uuid.New(),
		PlayerID:    "alice",
		Bet:         decimal.RequireFromString("0.5"),
		Payout:      decimal.RequireFromString("50.025"),
		CreditAfter: decimal.RequireFromString("149.525"),
		ResolvedAt:  time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestSettlementFromResult(t *testing.T) {
	result := committedSpin()

	s := SettlementFromResult(result)

	assert.Equal(t, result.SpinID, s.SpinID)
	assert.Equal(t, "alice", s.PlayerID)
	assert.Equal(t, "49.525", s.Net.String())
	assert.Equal(t, "149.525", s.CreditAfter.String())
}

func TestSettlementFromResult_Loss(t *testing.T) {
	result := committedSpin()
	result.Payout = decimal.Zero

	assert.Equal(t, "-0.5", SettlementFromResult(result).Net.String())
}

func TestLogSettler_NeverFails(t *testing.T) {
	assert.NoError(t, NewLogSettler().Settle(context.Background(), SettlementFromResult(committedSpin())))
}

func TestSubscriber_SettlesCompletedSpins(t *testing.T) {
	result := committedSpin()

	settler := new(MockSettler)
	settler.On("Settle", mock.Anything, SettlementFromResult(result)).Return(nil)

	queue := new(MockQueue)
	queue.On("Enqueue", mock.Anything).Return(nil)

	bus := event.NewMemoryBus()
	NewSubscriber(settler, queue).Register(bus)

	require.NoError(t, bus.Publish(context.Background(), event.NewSpinCompletedEvent(result, "")))

	settler.AssertExpectations(t)
	queue.AssertExpectations(t)
}

func TestSubscriber_QueueFullDropsSettlement(t *testing.T) {
	settler := new(MockSettler)
	queue := new(MockQueue)
	queue.On("Enqueue", mock.Anything).Return(worker.ErrQueueFull)

	bus := event.NewMemoryBus()
	NewSubscriber(settler, queue).Register(bus)

	err := bus.Publish(context.Background(), event.NewSpinCompletedEvent(committedSpin(), ""))

	assert.NoError(t, err)
	queue.AssertNumberOfCalls(t, "Enqueue", 1)
	settler.AssertNotCalled(t, "Settle", mock.Anything, mock.Anything)
}

// A full settlement queue must not cause spin.completed to be redelivered to
// other subscribers such as the metrics collector.
func TestSubscriber_QueueFullDoesNotRedeliverToSiblings(t *testing.T) {
	settler := new(MockSettler)
	queue := new(MockQueue)
	queue.On("Enqueue", mock.Anything).Return(worker.ErrQueueFull).Once()
	queue.On("Enqueue", mock.Anything).Return(nil)
	settler.On("Settle", mock.Anything, mock.Anything).Return(nil)

	bus := event.NewMemoryBus()
	publisher, err := event.NewResilientPublisher(bus, 3, 10*time.Millisecond, "")
	require.NoError(t, err)

	var mu sync.Mutex
	seen := 0
	bus.Subscribe(event.SpinCompleted, func(context.Context, event.Event) error {
		mu.Lock()
		defer mu.Unlock()
		seen++
		return nil
	})
	NewSubscriber(settler, queue).Register(bus)

	publisher.PublishWithRetry(context.Background(), event.NewSpinCompletedEvent(committedSpin(), ""))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, publisher.Shutdown(ctx))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, seen)
	queue.AssertNumberOfCalls(t, "Enqueue", 1)
	settler.AssertNotCalled(t, "Settle", mock.Anything, mock.Anything)
}

func TestSubscriber_InvalidPayloadIgnored(t *testing.T) {
	settler := new(MockSettler)
	queue := new(MockQueue)

	bus := event.NewMemoryBus()
	NewSubscriber(settler, queue).Register(bus)

	err := bus.Publish(context.Background(), event.Event{Type: event.SpinCompleted, Payload: make(chan int)})

	assert.NoError(t, err)
	queue.AssertNotCalled(t, "Enqueue", mock.Anything)
}

func TestSettleJob_WrapsSettlerError(t *testing.T) {
	settler := new(MockSettler)
	settler.On("Settle", mock.Anything, mock.Anything).Return(errors.New("wallet down"))

	job := &settleJob{settler: settler, settlement: SettlementFromResult(committedSpin())}
	err := job.Process(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgSettle)
}

func TestSubscriber_WithWorkerPool(t *testing.T) {
	done := make(chan struct{})
	settler := new(MockSettler)
	settler.On("Settle", mock.Anything, mock.Anything).Run(func(mock.Arguments) { close(done) }).Return(nil)

	pool := worker.NewPool(1, 4)
	pool.Start()
	defer pool.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(settler, pool).Register(bus)

	require.NoError(t, bus.Publish(context.Background(), event.NewSpinCompletedEvent(committedSpin(), "")))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("settlement was not processed")
	}
}
