// Package postgres implements the repositories on PostgreSQL via pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FairSlots_Go/internal/domain"
	"github.com/osse101/FairSlots_Go/internal/repository"
)

// JackpotRepository implements repository.JackpotClaims for PostgreSQL
type JackpotRepository struct {
	db *pgxpool.Pool
}

// NewJackpotRepository creates a new JackpotRepository
func NewJackpotRepository(db *pgxpool.Pool) *JackpotRepository {
	return &JackpotRepository{db: db}
}

// LastJackpotWin returns the stored claim time for a player
func (r *JackpotRepository) LastJackpotWin(ctx context.Context, playerID string) (*time.Time, error) {
	var at time.Time
	err := r.db.QueryRow(ctx, queryLastJackpotWin, playerID).Scan(&at)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDatabaseError, ErrMsgGetJackpotClaim, err)
	}
	at = at.UTC()
	return &at, nil
}

// RecordJackpotWin upserts the latest claim and appends it to the claim history
func (r *JackpotRepository) RecordJackpotWin(ctx context.Context, playerID string, at time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrDatabaseError, ErrMsgBeginTransaction, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, queryUpsertJackpotClaim, playerID, at.UTC()); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrDatabaseError, ErrMsgRecordJackpotClaim, err)
	}
	if _, err := tx.Exec(ctx, queryInsertClaimHistory, playerID, at.UTC()); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrDatabaseError, ErrMsgRecordClaimHistory, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrDatabaseError, ErrMsgCommitTransaction, err)
	}
	return nil
}

// ClaimHistory returns up to limit claim times for a player, newest first
func (r *JackpotRepository) ClaimHistory(ctx context.Context, playerID string, limit int) ([]time.Time, error) {
	rows, err := r.db.Query(ctx, queryClaimHistory, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDatabaseError, ErrMsgGetJackpotClaim, err)
	}

	history, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (time.Time, error) {
		var at time.Time
		err := row.Scan(&at)
		return at.UTC(), err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDatabaseError, ErrMsgGetJackpotClaim, err)
	}
	return history, nil
}

// Ping checks the database connection
func (r *JackpotRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
