// Package slots implements the spin engine: win evaluation, the credit and
// jackpot ledger, and the orchestrator that sequences a spin.
package slots

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/osse101/FairSlots_Go/internal/domain"
	"github.com/osse101/FairSlots_Go/internal/fairness"
	"github.com/osse101/FairSlots_Go/internal/logger"
)

// ClaimRecorder durably records a jackpot claim for a player
type ClaimRecorder interface {
	RecordJackpotWin(ctx context.Context, playerID string, at time.Time) error
}

// Clock returns the current time
type Clock func() time.Time

// SeedSource produces a fresh spin seed
type SeedSource func() (string, error)

// EngineConfig holds the dependencies of an Engine
type EngineConfig struct {
	PlayerID string
	Table    SymbolTable
	Settings Settings
	// Claims may be nil, in which case jackpot claims only live in memory
	Claims         ClaimRecorder
	Clock          Clock
	NewSeed        SeedSource
	Locale         string
	LastJackpotWin *time.Time
}

// Engine resolves spins for a single player. Spins are serialized: a second
// Spin while one is in flight fails with ErrSpinInProgress.
type Engine struct {
	playerID string
	table    SymbolTable
	settings Settings
	claims   ClaimRecorder
	now      Clock
	newSeed  SeedSource
	messages *MessageFormatter

	spinning atomic.Bool

	mu          sync.RWMutex
	ledger      *Ledger
	seed        string
	lastMessage string
}

// NewEngine validates the configuration and creates an engine with a fresh seed
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if cfg.PlayerID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyPlayerID)
	}
	if cfg.Table == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidPaytable, ErrMsgNilPaytable)
	}
	if cfg.Table.Len() < 1 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidPaytable, fairness.ErrMsgSymbolCountZero)
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.NewSeed == nil {
		cfg.NewSeed = fairness.NewSeed
	}
	if cfg.Locale == "" {
		cfg.Locale = "en"
	}

	seed, err := cfg.NewSeed()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGenerateSeed, err)
	}

	e := &Engine{
		playerID:    cfg.PlayerID,
		table:       cfg.Table,
		settings:    cfg.Settings,
		claims:      cfg.Claims,
		now:         cfg.Clock,
		newSeed:     cfg.NewSeed,
		messages:    NewMessageFormatter(cfg.Locale, cfg.Settings.CurrencyLabel),
		ledger:      NewLedger(cfg.Settings, cfg.LastJackpotWin, cfg.Clock()),
		seed:        seed,
		lastMessage: MsgNoWin,
	}
	logger.Debug(LogMsgEngineCreated, "player_id", cfg.PlayerID, "locale", cfg.Locale)
	return e, nil
}

// PlayerID returns the id of the player this engine belongs to
func (e *Engine) PlayerID() string {
	return e.playerID
}

// Spin derives the grid from the current seed, evaluates the line, applies the
// ledger transaction and rotates the seed
func (e *Engine) Spin(ctx context.Context) (*domain.SpinResult, error) {
	if !e.spinning.CompareAndSwap(false, true) {
		return nil, domain.ErrSpinInProgress
	}
	defer e.spinning.Store(false)

	log := logger.FromContext(ctx).With("player_id", e.playerID)
	now := e.now().UTC()

	e.mu.Lock()
	if e.ledger.RefreshJackpot(now) {
		log.Info(LogMsgJackpotRearmed)
	}
	seed := e.seed
	nonce := now.UnixMilli()
	grid, err := fairness.DeriveGrid(seed, nonce, e.table.Len())
	if err != nil {
		e.mu.Unlock()
		return nil, fmt.Errorf("%s: %w", ErrMsgDeriveGrid, err)
	}
	outcome := Evaluate(grid, e.table)
	tx, err := e.ledger.Plan(outcome, now)
	e.mu.Unlock()
	if err != nil {
		log.Debug(LogMsgSpinRejected, "error", err)
		return nil, err
	}

	nextSeed, err := e.newSeed()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGenerateSeed, err)
	}

	msg := e.messages.Format(tx)

	// The claim must be durable before the payout becomes visible, and is the
	// last step that can fail before Commit
	if tx.ClaimsJackpot() && e.claims != nil {
		if err := e.claims.RecordJackpotWin(ctx, e.playerID, *tx.ClaimedAt); err != nil {
			log.Error(ErrMsgPersistJackpotClaim, "error", err)
			return nil, fmt.Errorf("%s: %w", ErrMsgPersistJackpotClaim, err)
		}
	}

	e.mu.Lock()
	if err := e.ledger.Commit(tx); err != nil {
		e.mu.Unlock()
		return nil, err
	}
	e.seed = nextSeed
	e.lastMessage = msg
	e.mu.Unlock()

	result := &domain.SpinResult{
		SpinID:              uuid.New(),
		PlayerID:            e.playerID,
		Seed:                seed,
		Nonce:               nonce,
		Commitment:          fairness.Commitment(seed, nonce),
		Hash:                fairness.Hash(seed, nonce),
		NextSeedHash:        fairness.HashSeed(nextSeed),
		Grid:                grid,
		EvaluationLine:      grid.Line(),
		Outcome:             tx.Outcome,
		Bet:                 tx.Bet,
		Payout:              tx.Payout,
		JackpotContribution: tx.Contribution,
		CreditAfter:         tx.CreditAfter,
		JackpotAfter:        tx.JackpotAfter,
		Message:             msg,
		ResolvedAt:          now,
	}

	switch tx.Outcome.Kind {
	case domain.OutcomeJackpotWin:
		log.Info(LogMsgJackpotClaimed, "amount", tx.Payout.String(), "spin_id", result.SpinID)
	case domain.OutcomeJackpotUnavailable:
		log.Info(LogMsgJackpotUnavailable, "spin_id", result.SpinID)
	}
	log.Debug(LogMsgSpinResolved,
		"spin_id", result.SpinID,
		"seed", seed,
		"nonce", nonce,
		"hash", result.Hash,
		"outcome", tx.Outcome.Kind,
		"credit_after", tx.CreditAfter.String())

	return result, nil
}

// AdjustBet moves the bet by delta within the configured range
func (e *Engine) AdjustBet(ctx context.Context, delta decimal.Decimal) (decimal.Decimal, error) {
	return e.changeBet(ctx, func(l *Ledger) decimal.Decimal { return l.AdjustBet(delta) })
}

// SetMinBet sets the bet to the configured minimum
func (e *Engine) SetMinBet(ctx context.Context) (decimal.Decimal, error) {
	return e.changeBet(ctx, (*Ledger).SetMinBet)
}

// SetMaxBet sets the bet to the configured maximum
func (e *Engine) SetMaxBet(ctx context.Context) (decimal.Decimal, error) {
	return e.changeBet(ctx, (*Ledger).SetMaxBet)
}

func (e *Engine) changeBet(ctx context.Context, apply func(*Ledger) decimal.Decimal) (decimal.Decimal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.spinning.Load() {
		return e.ledger.Bet(), domain.ErrSpinInProgress
	}
	bet := apply(e.ledger)
	logger.FromContext(ctx).Debug(LogMsgBetAdjusted, "player_id", e.playerID, "bet", bet.String())
	return bet, nil
}

// RearmJackpot applies a pending daily re-arm. It reports false when nothing
// changed or a spin is in flight; the next spin re-arms in that case.
func (e *Engine) RearmJackpot(now time.Time) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.spinning.Load() {
		return false
	}
	return e.ledger.RefreshJackpot(now)
}

// Snapshot returns the observable state of the engine
func (e *Engine) Snapshot() domain.Snapshot {
	now := e.now().UTC()

	e.mu.RLock()
	defer e.mu.RUnlock()

	return domain.Snapshot{
		PlayerID:       e.playerID,
		Credit:         e.ledger.Credit(),
		Bet:            e.ledger.Bet(),
		JackpotAmount:  e.ledger.JackpotAmount(now),
		IsSpinning:     e.spinning.Load(),
		LastMessage:    e.lastMessage,
		JackpotState:   e.ledger.JackpotState(now),
		LastJackpotWin: e.ledger.LastJackpotWin(),
		SeedHash:       fairness.HashSeed(e.seed),
	}
}
