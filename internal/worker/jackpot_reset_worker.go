package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/FairSlots_Go/internal/event"
	"github.com/osse101/FairSlots_Go/internal/logger"
)

// JackpotRearmer re-arms every live session whose jackpot was claimed before now's UTC date
type JackpotRearmer interface {
	RearmJackpots(ctx context.Context, now time.Time) (int, error)
}

// EventPublisher publishes an event, retrying in the background on failure
type EventPublisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

// JackpotResetWorker re-arms claimed jackpots of live sessions at 00:00 UTC.
// Spins re-arm on their own when they start on a new day; the worker keeps
// snapshots of idle sessions fresh.
type JackpotResetWorker struct {
	rearmer   JackpotRearmer
	publisher EventPublisher
	now       func() time.Time
	timer     *time.Timer
	shutdown  chan struct{}
	wg        sync.WaitGroup
	mu        sync.Mutex
}

// NewJackpotResetWorker creates a new JackpotResetWorker. publisher may be nil.
func NewJackpotResetWorker(rearmer JackpotRearmer, publisher EventPublisher) *JackpotResetWorker {
	return &JackpotResetWorker{
		rearmer:   rearmer,
		publisher: publisher,
		now:       time.Now,
		shutdown:  make(chan struct{}),
	}
}

// Start schedules the first reset
func (w *JackpotResetWorker) Start() {
	w.scheduleNext()
}

func (w *JackpotResetWorker) scheduleNext() {
	duration := timeUntilNextReset(w.now())
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.shutdown:
		return
	default:
	}

	if w.timer != nil {
		w.timer.Stop()
	}

	// Two-stage scheduling keeps an early long-range trigger from firing the reset
	if duration > ResetStandbyThreshold {
		waitDuration := duration - ResetStandbyLead
		w.timer = time.AfterFunc(waitDuration, w.scheduleNext)
		log.Info(LogMsgJackpotResetStandby, "next_check_at", w.now().UTC().Add(waitDuration))
		return
	}

	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// Early trigger: wait out the remainder. More than ResetLateWindow left means midnight just passed.
		rem := timeUntilNextReset(w.now())
		if rem > ResetEarlyTolerance && rem < ResetLateWindow {
			w.scheduleNext()
			return
		}

		w.executeReset()
		w.scheduleNext()
	})
	log.Info(LogMsgJackpotResetApproach, "next_reset_at", w.now().UTC().Add(duration))
}

// TriggerReset runs the re-arm sweep immediately and waits for it
func (w *JackpotResetWorker) TriggerReset(ctx context.Context) (int, error) {
	logger.FromContext(ctx).Info(LogMsgJackpotResetManualTrigger)
	return w.reset(ctx)
}

// executeReset starts a background sweep unless Shutdown has begun. wg.Add
// happens under mu so it cannot race with Shutdown's Wait.
func (w *JackpotResetWorker) executeReset() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.shutdown:
		return false
	default:
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		_, _ = w.reset(context.Background())
	}()
	return true
}

func (w *JackpotResetWorker) reset(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)
	resetTime := w.now().UTC()
	log.Info(LogMsgJackpotResetStarting, "reset_time", resetTime)

	rearmed, err := w.rearmer.RearmJackpots(ctx, resetTime)
	if err != nil {
		log.Error(LogMsgJackpotResetFailed, "error", err)
		return rearmed, err
	}

	log.Info(LogMsgJackpotResetCompleted, "sessions_rearmed", rearmed)

	if w.publisher != nil {
		w.publisher.PublishWithRetry(ctx, event.NewJackpotResetCompleteEvent(resetTime, rearmed))
	}
	return rearmed, nil
}

// Shutdown cancels the pending timer and waits for any in-flight reset
func (w *JackpotResetWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down " + LogMsgJackpotResetWorkerName)

	w.mu.Lock()
	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgJackpotResetWorkerName + " shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgJackpotResetWorkerName + " shutdown timeout")
		return ctx.Err()
	}
}

// timeUntilNextReset returns the duration from now until the next 00:00 UTC
func timeUntilNextReset(now time.Time) time.Duration {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return next.Sub(now)
}
