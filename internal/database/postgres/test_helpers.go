package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/FairSlots_Go/internal/database"
)

var (
	testPool      *pgxpool.Pool
	testPoolOnce  sync.Once
	testPoolError error
	terminateFunc func()
)

// setupTestPool starts one postgres container per package run and applies the
// migrations. The test is skipped in short mode or when Docker is unavailable.
func setupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testPoolOnce.Do(func() {
		testPool, terminateFunc, testPoolError = startContainer(context.Background())
	})
	if testPoolError != nil {
		t.Skipf("Skipping integration test: database not available: %v", testPoolError)
	}
	return testPool
}

func startContainer(ctx context.Context) (pool *pgxpool.Pool, terminate func(), err error) {
	// testcontainers panics when Docker is missing
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("testcontainers panic: %v", r)
		}
	}()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, err
	}

	pool, err = database.NewPool(ctx, connStr, 5, time.Minute, 5*time.Minute)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, err
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		_ = container.Terminate(ctx)
		return nil, nil, err
	}

	return pool, func() {
		pool.Close()
		_ = container.Terminate(ctx)
	}, nil
}
