package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/FairSlots_Go/internal/logger"
)

// BaseWorker provides common functionality for background workers that manage timers
type BaseWorker struct {
	mu           sync.Mutex
	timers       map[uuid.UUID]*time.Timer
	shutdown     chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

func (w *BaseWorker) init() {
	if w.timers == nil {
		w.timers = make(map[uuid.UUID]*time.Timer)
	}
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

func (w *BaseWorker) shuttingDown() bool {
	select {
	case <-w.shutdown:
		return true
	default:
		return false
	}
}

// schedule runs fn after d in a tracked goroutine, replacing any timer already registered for id
func (w *BaseWorker) schedule(id uuid.UUID, d time.Duration, fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.shuttingDown() {
		return
	}
	if existing, ok := w.timers[id]; ok && existing.Stop() {
		w.wg.Done()
	}

	// wg is incremented now so Shutdown waits for timers that already fired
	w.wg.Add(1)
	timer := time.AfterFunc(d, func() {
		defer w.wg.Done()
		if !w.removeTimer(id) {
			return
		}
		fn()
	})
	w.timers[id] = timer
}

// removeTimer reports whether the timer was still registered
func (w *BaseWorker) removeTimer(id uuid.UUID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.timers[id]; !ok {
		return false
	}
	delete(w.timers, id)
	return true
}

func (w *BaseWorker) pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down " + workerName)

	w.shutdownOnce.Do(func() { close(w.shutdown) })

	// Stopped timers never run their callback, so release their wg slot here
	w.mu.Lock()
	for id, timer := range w.timers {
		if timer.Stop() {
			w.wg.Done()
		}
		log.Debug("Cancelled pending "+workerName+" execution", "id", id)
	}
	w.timers = make(map[uuid.UUID]*time.Timer)
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(workerName + " shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn(workerName + " shutdown timeout")
		return ctx.Err()
	}
}
