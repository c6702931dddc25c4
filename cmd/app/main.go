package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/FairSlots_Go/internal/bootstrap"
	"github.com/osse101/FairSlots_Go/internal/config"
	"github.com/osse101/FairSlots_Go/internal/server"
	"github.com/osse101/FairSlots_Go/internal/session"
	"github.com/osse101/FairSlots_Go/internal/sse"
	"github.com/osse101/FairSlots_Go/internal/worker"
)

// shutdownTimeout bounds the graceful shutdown sequence
const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Warn("Environment check failed", "error", err)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		return err
	}

	table, err := bootstrap.LoadPaytable(cfg)
	if err != nil {
		repos.Close()
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		repos.Close()
		return err
	}

	hub := sse.NewHub()
	hub.Start()

	handlers, err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:    bus,
		Hub:         hub,
		RevealDelay: cfg.RevealDelay,
	})
	if err != nil {
		hub.Stop()
		repos.Close()
		return err
	}

	sessions := session.NewService(session.Config{
		Table:     table,
		Settings:  cfg.GameSettings(),
		Store:     repos.Jackpots,
		Publisher: publisher,
		CacheSize: cfg.SessionCacheSize,
		TTL:       cfg.SessionTTL,
		Locale:    cfg.Locale,
	})

	resetWorker := worker.NewJackpotResetWorker(sessions, publisher)
	resetWorker.Start()

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}, server.Dependencies{
		Sessions: sessions,
		Paytable: table,
		Store:    repos.Jackpots,
		Resetter: resetWorker,
		Hub:      hub,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		JackpotResetWorker: resetWorker,
		Handlers:           handlers,
		ResilientPublisher: publisher,
		Hub:                hub,
		Repositories:       repos,
	})

	return err
}
