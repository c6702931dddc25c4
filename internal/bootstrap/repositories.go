package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FairSlots_Go/internal/config"
	"github.com/osse101/FairSlots_Go/internal/database"
	"github.com/osse101/FairSlots_Go/internal/database/postgres"
	"github.com/osse101/FairSlots_Go/internal/paytable"
	"github.com/osse101/FairSlots_Go/internal/repository"
	"github.com/osse101/FairSlots_Go/internal/repository/memory"
)

// Repositories holds the persistence layer used by the application
type Repositories struct {
	Jackpots repository.JackpotStore
	// Pool is nil for the memory backend
	Pool *pgxpool.Pool
}

// Close releases the database pool, if any
func (r *Repositories) Close() {
	if r.Pool != nil {
		r.Pool.Close()
	}
}

// InitializeRepositories opens the configured jackpot store. The postgres
// backend connects, runs the embedded migrations and then serves claims.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		slog.Warn(LogMsgUsingMemoryStore)
		return &Repositories{Jackpots: memory.NewJackpotStore()}, nil

	case config.StoragePostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgUsingPostgresStore, "host", cfg.DBHost, "db", cfg.DBName)
		return &Repositories{Jackpots: postgres.NewJackpotRepository(pool), Pool: pool}, nil
	}

	return nil, fmt.Errorf(ErrMsgUnknownStorage, cfg.Storage)
}

// LoadPaytable reads the configured payout table, or the default one
func LoadPaytable(cfg *config.Config) (*paytable.Table, error) {
	table, err := paytable.Load(cfg.PaytablePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadPaytable, err)
	}
	return table, nil
}
