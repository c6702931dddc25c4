package slots

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/FairSlots_Go/internal/domain"
)

// Transaction is the full set of balance changes for one spin, computed before
// anything is applied
type Transaction struct {
	Outcome       domain.WinOutcome
	Bet           decimal.Decimal
	Contribution  decimal.Decimal
	Payout        decimal.Decimal
	CreditBefore  decimal.Decimal
	CreditAfter   decimal.Decimal
	JackpotBefore decimal.Decimal
	JackpotAfter  decimal.Decimal
	// ClaimedAt is set when this spin claims the jackpot
	ClaimedAt *time.Time
	// Rearmed is set when the spin starts on a new day after a claim
	Rearmed bool
}

// ClaimsJackpot reports whether committing the transaction claims the daily jackpot
func (tx Transaction) ClaimsJackpot() bool {
	return tx.ClaimedAt != nil
}

// Ledger owns the credit balance, the bet, the jackpot pool and the daily jackpot lock.
// It is not safe for concurrent use; Engine serializes access.
type Ledger struct {
	settings Settings
	credit   decimal.Decimal
	bet      decimal.Decimal
	jackpot  decimal.Decimal
	// claimedAt is the active daily lock; cleared on re-arm
	claimedAt *time.Time
	// lastJackpotWin is kept after re-arm for display
	lastJackpotWin *time.Time
}

// NewLedger creates a ledger at the start of a session. lastJackpotWin is the
// persisted claim time, or nil if the player never won.
func NewLedger(settings Settings, lastJackpotWin *time.Time, now time.Time) *Ledger {
	l := &Ledger{
		settings: settings,
		credit:   settings.InitialCredit,
		bet:      settings.MinBet,
		jackpot:  settings.InitialJackpot,
	}
	if lastJackpotWin != nil {
		at := lastJackpotWin.UTC()
		l.claimedAt = &at
		l.lastJackpotWin = &at
	}
	l.RefreshJackpot(now)
	return l
}

// Credit returns the current balance
func (l *Ledger) Credit() decimal.Decimal { return l.credit }

// Bet returns the staged bet
func (l *Ledger) Bet() decimal.Decimal { return l.bet }

// LastJackpotWin returns the time of the most recent claim, if any
func (l *Ledger) LastJackpotWin() *time.Time {
	if l.lastJackpotWin == nil {
		return nil
	}
	at := *l.lastJackpotWin
	return &at
}

// JackpotAmount returns the pool as it stands at now, including a pending re-arm
func (l *Ledger) JackpotAmount(now time.Time) decimal.Decimal {
	if l.rearmPending(now) {
		return l.settings.InitialJackpot
	}
	return l.jackpot
}

// JackpotState returns Claimed while a claim exists for the UTC date of now
func (l *Ledger) JackpotState(now time.Time) domain.JackpotState {
	if l.claimedAt != nil && SameUTCDay(*l.claimedAt, now) {
		return domain.JackpotClaimed
	}
	return domain.JackpotArmed
}

// RefreshJackpot applies the Claimed to Armed transition when the UTC date has
// changed since the last claim. The pool is restored to its initial amount.
func (l *Ledger) RefreshJackpot(now time.Time) bool {
	if !l.rearmPending(now) {
		return false
	}
	l.claimedAt = nil
	l.jackpot = l.settings.InitialJackpot
	return true
}

func (l *Ledger) rearmPending(now time.Time) bool {
	return l.claimedAt != nil && !SameUTCDay(*l.claimedAt, now)
}

// CanAfford reports whether the credit covers the staged bet
func (l *Ledger) CanAfford() bool {
	return l.credit.GreaterThanOrEqual(l.bet)
}

// Plan computes the transaction for a spin with the given outcome without
// mutating the ledger
func (l *Ledger) Plan(outcome domain.WinOutcome, now time.Time) (Transaction, error) {
	if !l.CanAfford() {
		return Transaction{}, fmt.Errorf("%w: "+ErrMsgCreditBelowBet, domain.ErrInsufficientFunds, l.credit, l.bet)
	}

	tx := Transaction{
		Outcome:       outcome,
		Bet:           l.bet,
		Payout:        decimal.Zero,
		CreditBefore:  l.credit,
		JackpotBefore: l.JackpotAmount(now),
		Rearmed:       l.rearmPending(now),
	}

	tx.Contribution = l.bet.Mul(l.settings.JackpotContributionRate)
	credit := l.credit.Sub(l.bet)
	jackpot := tx.JackpotBefore.Add(tx.Contribution)

	switch outcome.Kind {
	case domain.OutcomeSymbolWin:
		tx.Payout = l.bet.Mul(l.settings.EffectiveBetRate).Mul(outcome.Multiplier)
	case domain.OutcomeJackpotWin:
		if l.JackpotState(now) == domain.JackpotClaimed {
			tx.Outcome = domain.JackpotUnavailable(outcome.SymbolID)
			break
		}
		tx.Payout = jackpot
		jackpot = l.settings.InitialJackpot
		claimedAt := now.UTC()
		tx.ClaimedAt = &claimedAt
	}

	tx.CreditAfter = credit.Add(tx.Payout)
	tx.JackpotAfter = jackpot
	return tx, nil
}

// Commit applies a planned transaction in one step. It fails with
// ErrStaleTransaction if the ledger changed since Plan.
func (l *Ledger) Commit(tx Transaction) error {
	if !tx.CreditBefore.Equal(l.credit) || !tx.Bet.Equal(l.bet) {
		return domain.ErrStaleTransaction
	}

	if tx.Rearmed {
		l.claimedAt = nil
	}
	l.credit = tx.CreditAfter
	l.jackpot = tx.JackpotAfter
	if tx.ClaimedAt != nil {
		at := *tx.ClaimedAt
		l.claimedAt = &at
		l.lastJackpotWin = &at
	}
	return nil
}

// AdjustBet moves the bet by delta, clamped to the configured range
func (l *Ledger) AdjustBet(delta decimal.Decimal) decimal.Decimal {
	l.bet = l.settings.ClampBet(l.bet.Add(delta))
	return l.bet
}

// SetMinBet sets the bet to the configured minimum
func (l *Ledger) SetMinBet() decimal.Decimal {
	l.bet = l.settings.MinBet
	return l.bet
}

// SetMaxBet sets the bet to the configured maximum
func (l *Ledger) SetMaxBet() decimal.Decimal {
	l.bet = l.settings.MaxBet
	return l.bet
}

// SameUTCDay reports whether a and b fall on the same UTC calendar date
func SameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
