package wallet

import (
	"context"
	"fmt"

	"github.com/osse101/FairSlots_Go/internal/domain"
	"github.com/osse101/FairSlots_Go/internal/event"
	"github.com/osse101/FairSlots_Go/internal/logger"
	"github.com/osse101/FairSlots_Go/internal/worker"
)

// JobQueue accepts settlement jobs for background processing
type JobQueue interface {
	Enqueue(job worker.Job) error
}

// Subscriber settles every completed spin through a worker queue
type Subscriber struct {
	settler Settler
	queue   JobQueue
}

// NewSubscriber creates a new wallet subscriber
func NewSubscriber(settler Settler, queue JobQueue) *Subscriber {
	return &Subscriber{
		settler: settler,
		queue:   queue,
	}
}

// Register subscribes the settlement handler to the bus
func (s *Subscriber) Register(bus event.Bus) {
	bus.Subscribe(event.SpinCompleted, s.handleSpinCompleted)
	logger.FromContext(context.Background()).Info(LogMsgSubscriberRegistered)
}

func (s *Subscriber) handleSpinCompleted(ctx context.Context, evt event.Event) error {
	result, err := event.DecodePayload[domain.SpinResult](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidSpinPayload, "error", err)
		return nil
	}

	job := &settleJob{settler: s.settler, settlement: SettlementFromResult(result)}
	// A rejected settlement is dropped here. Returning the error would make the
	// publisher redeliver spin.completed to every other subscriber.
	if err := s.queue.Enqueue(job); err != nil {
		logger.FromContext(ctx).Error(LogMsgSettlementDropped,
			"spin_id", result.SpinID,
			"player_id", result.PlayerID,
			"error", err)
	}
	return nil
}

type settleJob struct {
	settler    Settler
	settlement Settlement
}

func (j *settleJob) Process(ctx context.Context) error {
	if err := j.settler.Settle(ctx, j.settlement); err != nil {
		logger.FromContext(ctx).Error(LogMsgSettlementFailed, "spin_id", j.settlement.SpinID, "error", err)
		return fmt.Errorf("%s: %w", ErrMsgSettle, err)
	}
	return nil
}
