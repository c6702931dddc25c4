// Package repository declares the persistence contracts of the service.
package repository

import (
	"context"
	"time"
)

// JackpotClaims persists the last jackpot claim per player. It is the only
// state that survives a restart; credit and bet are session scoped.
type JackpotClaims interface {
	// LastJackpotWin returns the most recent claim time, or nil if the player never won
	LastJackpotWin(ctx context.Context, playerID string) (*time.Time, error)
	// RecordJackpotWin stores a claim. A time earlier than the stored one is ignored.
	RecordJackpotWin(ctx context.Context, playerID string, at time.Time) error
}

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// JackpotHistory lists past jackpot claims
type JackpotHistory interface {
	// ClaimHistory returns up to limit claim times, newest first
	ClaimHistory(ctx context.Context, playerID string, limit int) ([]time.Time, error)
}

// JackpotStore is a claim store that also keeps history and can be health checked
type JackpotStore interface {
	JackpotClaims
	JackpotHistory
	Pinger
}
