package worker

import (
	"context"
	"time"

	"github.com/osse101/FairSlots_Go/internal/domain"
	"github.com/osse101/FairSlots_Go/internal/event"
	"github.com/osse101/FairSlots_Go/internal/logger"
	"github.com/osse101/FairSlots_Go/internal/sse"
)

// Broadcaster pushes an event to connected clients
type Broadcaster interface {
	Broadcast(eventType, playerID string, payload interface{})
}

// RevealWorker broadcasts spin results once the presentation delay has elapsed.
// The ledger is already settled when a spin.completed event arrives; only the
// reveal to clients is delayed.
type RevealWorker struct {
	BaseWorker
	broadcaster Broadcaster
	delay       time.Duration
}

// NewRevealWorker creates a new RevealWorker
func NewRevealWorker(broadcaster Broadcaster, delay time.Duration) *RevealWorker {
	w := &RevealWorker{
		broadcaster: broadcaster,
		delay:       delay,
	}
	w.init()
	return w
}

// Subscribe subscribes the worker to completed spins
func (w *RevealWorker) Subscribe(bus event.Bus) {
	bus.Subscribe(event.SpinCompleted, w.handleSpinCompleted)
}

func (w *RevealWorker) handleSpinCompleted(ctx context.Context, e event.Event) error {
	result, err := event.DecodePayload[domain.SpinResult](e.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidSpinPayload, "error", err)
		return nil
	}
	w.ScheduleReveal(result)
	return nil
}

// ScheduleReveal broadcasts the result after the reveal delay
func (w *RevealWorker) ScheduleReveal(result domain.SpinResult) {
	if w.shuttingDown() {
		logger.FromContext(context.Background()).Debug(LogMsgRevealSkippedClosed, "spin_id", result.SpinID)
		return
	}

	logger.FromContext(context.Background()).Debug(LogMsgSchedulingReveal,
		"spin_id", result.SpinID,
		"player_id", result.PlayerID,
		"delay", w.delay)

	w.schedule(result.SpinID, w.delay, func() { w.reveal(result) })
}

func (w *RevealWorker) reveal(result domain.SpinResult) {
	logger.FromContext(context.Background()).Debug(LogMsgRevealingSpin, "spin_id", result.SpinID)

	w.broadcaster.Broadcast(sse.EventTypeSpinRevealed, result.PlayerID, result)

	if result.Outcome.Kind == domain.OutcomeJackpotWin {
		w.broadcaster.Broadcast(sse.EventTypeJackpotClaimed, result.PlayerID, domain.JackpotClaimedPayload{
			PlayerID:  result.PlayerID,
			SpinID:    result.SpinID,
			Amount:    result.Payout,
			ClaimedAt: result.ResolvedAt,
		})
	}
}

// Pending returns the number of spins waiting to be revealed
func (w *RevealWorker) Pending() int {
	return w.pending()
}

// Shutdown cancels pending reveals and waits for in-flight broadcasts
func (w *RevealWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, LogMsgRevealWorkerName)
}
