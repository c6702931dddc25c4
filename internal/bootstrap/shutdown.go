package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/FairSlots_Go/internal/event"
	"github.com/osse101/FairSlots_Go/internal/server"
	"github.com/osse101/FairSlots_Go/internal/sse"
	"github.com/osse101/FairSlots_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	JackpotResetWorker *worker.JackpotResetWorker
	Handlers           *EventHandlers
	ResilientPublisher *event.ResilientPublisher
	Hub                *sse.Hub
	Repositories       *Repositories
}

// GracefulShutdown stops components in dependency order:
//  1. HTTP server (stop accepting new requests)
//  2. Workers (cancel pending timers)
//  3. Event publisher (flush pending events)
//  4. Settlement pool, SSE hub and database
//
// Errors are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.JackpotResetWorker != nil {
		shutdownWorker(ctx, worker.LogMsgJackpotResetWorkerName, components.JackpotResetWorker)
	}
	if components.Handlers != nil && components.Handlers.RevealWorker != nil {
		shutdownWorker(ctx, worker.LogMsgRevealWorkerName, components.Handlers.RevealWorker)
	}

	// Flush events before stopping their consumers
	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.Handlers != nil && components.Handlers.SettlementPool != nil {
		components.Handlers.SettlementPool.Stop()
	}
	if components.Hub != nil {
		components.Hub.Stop()
	}
	if components.Repositories != nil {
		components.Repositories.Close()
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownable interface {
	Shutdown(context.Context) error
}

func shutdownWorker(ctx context.Context, name string, w shutdownable) {
	if err := w.Shutdown(ctx); err != nil {
		slog.Error(LogMsgWorkerShutdownFailed, "worker", name, "error", err)
	}
}
