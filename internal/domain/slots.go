package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Grid dimensions
const (
	ReelCount        = 3
	PositionsPerReel = 3
	// EvaluationRow is the position index read from every reel to form the payline
	EvaluationRow = 1
)

// NoSymbol marks an outcome that does not reference a symbol
const NoSymbol = -1

// Symbol is one entry of the payout table
type Symbol struct {
	ID         int             `json:"id" validate:"min=0"`
	Name       string          `json:"name" validate:"required,max=32"`
	IsJackpot  bool            `json:"is_jackpot"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

// SpinGrid holds symbol indices as grid[reel][position]
type SpinGrid [ReelCount][PositionsPerReel]int

// Line returns the evaluation line, the middle position of each reel
func (g SpinGrid) Line() [ReelCount]int {
	var line [ReelCount]int
	for r := 0; r < ReelCount; r++ {
		line[r] = g[r][EvaluationRow]
	}
	return line
}

// OutcomeKind classifies a resolved spin
type OutcomeKind string

const (
	OutcomeNoWin              OutcomeKind = "no_win"
	OutcomeSymbolWin          OutcomeKind = "symbol_win"
	OutcomeJackpotWin         OutcomeKind = "jackpot_win"
	OutcomeJackpotUnavailable OutcomeKind = "jackpot_unavailable"
)

// WinOutcome is the result of evaluating the payline
type WinOutcome struct {
	Kind       OutcomeKind     `json:"kind"`
	SymbolID   int             `json:"symbol_id"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

// NoWin returns a losing outcome
func NoWin() WinOutcome {
	return WinOutcome{Kind: OutcomeNoWin, SymbolID: NoSymbol, Multiplier: decimal.Zero}
}

// SymbolWin returns a regular three-of-a-kind outcome
func SymbolWin(symbolID int, multiplier decimal.Decimal) WinOutcome {
	return WinOutcome{Kind: OutcomeSymbolWin, SymbolID: symbolID, Multiplier: multiplier}
}

// JackpotWin returns a jackpot outcome
func JackpotWin(symbolID int) WinOutcome {
	return WinOutcome{Kind: OutcomeJackpotWin, SymbolID: symbolID, Multiplier: decimal.Zero}
}

// JackpotUnavailable returns the outcome for a jackpot line hit while the pool is claimed
func JackpotUnavailable(symbolID int) WinOutcome {
	return WinOutcome{Kind: OutcomeJackpotUnavailable, SymbolID: symbolID, Multiplier: decimal.Zero}
}

// IsWin reports whether the outcome paid anything
func (o WinOutcome) IsWin() bool {
	return o.Kind == OutcomeSymbolWin || o.Kind == OutcomeJackpotWin
}

// JackpotState is the daily jackpot lifecycle state
type JackpotState string

const (
	JackpotArmed   JackpotState = "armed"
	JackpotClaimed JackpotState = "claimed"
)

// SpinResult is the record of a resolved spin returned to the caller
type SpinResult struct {
	SpinID              uuid.UUID       `json:"spin_id"`
	PlayerID            string          `json:"player_id"`
	Seed                string          `json:"seed"`
	Nonce               int64           `json:"nonce"`
	Commitment          string          `json:"commitment"`
	Hash                string          `json:"hash"`
	NextSeedHash        string          `json:"next_seed_hash"`
	Grid                SpinGrid        `json:"grid"`
	EvaluationLine      [ReelCount]int  `json:"evaluation_line"`
	Outcome             WinOutcome      `json:"outcome"`
	Bet                 decimal.Decimal `json:"bet"`
	Payout              decimal.Decimal `json:"payout"`
	JackpotContribution decimal.Decimal `json:"jackpot_contribution"`
	CreditAfter         decimal.Decimal `json:"credit_after"`
	JackpotAfter        decimal.Decimal `json:"jackpot_after"`
	Message             string          `json:"message"`
	ResolvedAt          time.Time       `json:"resolved_at"`
}

// Snapshot is the observable state of one player's engine
type Snapshot struct {
	PlayerID       string          `json:"player_id"`
	Credit         decimal.Decimal `json:"credit"`
	Bet            decimal.Decimal `json:"bet"`
	JackpotAmount  decimal.Decimal `json:"jackpot_amount"`
	IsSpinning     bool            `json:"is_spinning"`
	LastMessage    string          `json:"last_message"`
	JackpotState   JackpotState    `json:"jackpot_state"`
	LastJackpotWin *time.Time      `json:"last_jackpot_win,omitempty"`
	SeedHash       string          `json:"seed_hash"`
}
