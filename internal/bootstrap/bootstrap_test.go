package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FairSlots_Go/internal/config"
	"github.com/osse101/FairSlots_Go/internal/domain"
	"github.com/osse101/FairSlots_Go/internal/repository/memory"
	"github.com/osse101/FairSlots_Go/internal/session"
	"github.com/osse101/FairSlots_Go/internal/slots"
	"github.com/osse101/FairSlots_Go/internal/sse"
	"github.com/osse101/FairSlots_Go/internal/wallet"
)

type captureSettler struct {
	settled chan wallet.Settlement
}

func (c *captureSettler) Settle(_ context.Context, s wallet.Settlement) error {
	c.settled <- s
	return nil
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-03-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, LogFilePermission))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), nil, LogFilePermission))

	cleanupLogs(dir, 9)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	assert.Len(t, names, 10)
	assert.Contains(t, names, "keep.txt")
	assert.NotContains(t, names, "session_2026-03-03_00-00-00.log")
	assert.Contains(t, names, "session_2026-03-04_00-00-00.log")
}

func TestInitializeRepositories(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		repos, err := InitializeRepositories(context.Background(), &config.Config{Storage: config.StorageMemory})
		require.NoError(t, err)
		defer repos.Close()

		assert.IsType(t, &memory.JackpotStore{}, repos.Jackpots)
		assert.Nil(t, repos.Pool)
		assert.NoError(t, repos.Jackpots.Ping(context.Background()))
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := InitializeRepositories(context.Background(), &config.Config{Storage: "redis"})
		assert.Error(t, err)
	})
}

func TestLoadPaytable(t *testing.T) {
	table, err := LoadPaytable(&config.Config{})
	require.NoError(t, err)
	assert.Equal(t, 9, table.Len())

	_, err = LoadPaytable(&config.Config{PaytablePath: filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)
}

// TestEventFlow drives a spin through the real bus and checks that the reveal
// reaches an SSE client and the settlement reaches the wallet.
func TestEventFlow(t *testing.T) {
	deadLetter := filepath.Join(t.TempDir(), "events", "deadletter.jsonl")
	bus, publisher, err := InitializeEventSystem(&config.Config{
		EventMaxRetries:     1,
		EventRetryDelay:     10 * time.Millisecond,
		EventDeadLetterPath: deadLetter,
	})
	require.NoError(t, err)

	hub := sse.NewHub()
	hub.Start()

	settler := &captureSettler{settled: make(chan wallet.Settlement, 1)}
	handlers, err := RegisterEventHandlers(EventHandlerDependencies{
		EventBus:    bus,
		Hub:         hub,
		Settler:     settler,
		RevealDelay: 0,
	})
	require.NoError(t, err)

	repos, err := InitializeRepositories(context.Background(), &config.Config{Storage: config.StorageMemory})
	require.NoError(t, err)
	table, err := LoadPaytable(&config.Config{})
	require.NoError(t, err)

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc := session.NewService(session.Config{
		Table:     table,
		Settings:  slots.DefaultSettings(),
		Store:     repos.Jackpots,
		Publisher: publisher,
		Clock:     func() time.Time { return now },
		NewSeed:   func() (string, error) { return "seed-1110", nil },
	})

	client := hub.Register([]string{sse.EventTypeSpinRevealed}, "alice")
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	ctx := context.Background()
	_, err = svc.Open(ctx, "alice")
	require.NoError(t, err)
	result, err := svc.Spin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSymbolWin, result.Outcome.Kind)

	select {
	case evt := <-client.EventChannel:
		assert.Equal(t, sse.EventTypeSpinRevealed, evt.Type)
		assert.Equal(t, "alice", evt.PlayerID)
	case <-time.After(2 * time.Second):
		t.Fatal("spin was not revealed")
	}

	select {
	case s := <-settler.settled:
		assert.Equal(t, result.SpinID, s.SpinID)
		assert.Equal(t, "104", s.CreditAfter.String())
	case <-time.After(2 * time.Second):
		t.Fatal("spin was not settled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	GracefulShutdown(shutdownCtx, ShutdownComponents{
		Handlers:           handlers,
		ResilientPublisher: publisher,
		Hub:                hub,
		Repositories:       repos,
	})

	_, err = os.Stat(filepath.Dir(deadLetter))
	assert.NoError(t, err, "dead-letter directory is created up front")
}
