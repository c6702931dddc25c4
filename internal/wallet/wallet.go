// Package wallet hands resolved spins to the external wallet. Settlement always
// happens after the ledger committed the spin, never before.
package wallet

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/osse101/FairSlots_Go/internal/domain"
	"github.com/osse101/FairSlots_Go/internal/logger"
)

// Settlement is the balance change of one resolved spin
type Settlement struct {
	SpinID      uuid.UUID       `json:"spin_id"`
	PlayerID    string          `json:"player_id"`
	Bet         decimal.Decimal `json:"bet"`
	Payout      decimal.Decimal `json:"payout"`
	Net         decimal.Decimal `json:"net"`
	CreditAfter decimal.Decimal `json:"credit_after"`
	ResolvedAt  time.Time       `json:"resolved_at"`
}

// SettlementFromResult builds the settlement for a committed spin
func SettlementFromResult(result domain.SpinResult) Settlement {
	return Settlement{
		SpinID:      result.SpinID,
		PlayerID:    result.PlayerID,
		Bet:         result.Bet,
		Payout:      result.Payout,
		Net:         result.Payout.Sub(result.Bet),
		CreditAfter: result.CreditAfter,
		ResolvedAt:  result.ResolvedAt,
	}
}

// Settler forwards a settlement to the wallet backend
type Settler interface {
	Settle(ctx context.Context, s Settlement) error
}

// LogSettler records settlements in the structured log only
type LogSettler struct{}

// NewLogSettler creates a LogSettler
func NewLogSettler() *LogSettler {
	return &LogSettler{}
}

// Settle logs the settlement
func (LogSettler) Settle(ctx context.Context, s Settlement) error {
	logger.FromContext(ctx).Info(LogMsgSettled,
		"spin_id", s.SpinID,
		"player_id", s.PlayerID,
		"bet", s.Bet.String(),
		"payout", s.Payout.String(),
		"net", s.Net.String(),
		"credit_after", s.CreditAfter.String())
	return nil
}
