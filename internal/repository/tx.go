package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/FairSlots_Go/internal/logger"
)

// Tx is the part of a database transaction the repositories rely on
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// SafeRollback is deferred after Begin. A rollback after a successful commit
// returns pgx.ErrTxClosed and is not logged.
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	if err == nil || errors.Is(err, pgx.ErrTxClosed) {
		return
	}
	logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
}
