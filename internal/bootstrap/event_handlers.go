package bootstrap

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/FairSlots_Go/internal/event"
	"github.com/osse101/FairSlots_Go/internal/metrics"
	"github.com/osse101/FairSlots_Go/internal/sse"
	"github.com/osse101/FairSlots_Go/internal/wallet"
	"github.com/osse101/FairSlots_Go/internal/worker"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus    event.Bus
	Hub         *sse.Hub
	Settler     wallet.Settler
	RevealDelay time.Duration
}

// EventHandlers holds the subscribers that own goroutines and must be shut down
type EventHandlers struct {
	RevealWorker   *worker.RevealWorker
	SettlementPool *worker.Pool
}

// RegisterEventHandlers sets up all event handlers and subscribers:
// the delayed reveal broadcaster, the SSE re-arm forwarder, wallet settlement
// and the metrics collector.
func RegisterEventHandlers(deps EventHandlerDependencies) (*EventHandlers, error) {
	revealWorker := worker.NewRevealWorker(deps.Hub, deps.RevealDelay)
	revealWorker.Subscribe(deps.EventBus)
	slog.Info(LogMsgRevealWorkerRegistered, "delay", deps.RevealDelay)

	sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
	slog.Info(LogMsgSSESubscriberRegistered)

	settler := deps.Settler
	if settler == nil {
		settler = wallet.NewLogSettler()
	}
	pool := worker.NewPool(SettlementWorkers, SettlementQueueSize)
	pool.Start()
	wallet.NewSubscriber(settler, pool).Register(deps.EventBus)

	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		pool.Stop()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	return &EventHandlers{
		RevealWorker:   revealWorker,
		SettlementPool: pool,
	}, nil
}
