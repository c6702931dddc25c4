package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JackpotClaimedPayload is the event payload for jackpot.claimed events
type JackpotClaimedPayload struct {
	PlayerID  string          `json:"player_id"`
	SpinID    uuid.UUID       `json:"spin_id"`
	Amount    decimal.Decimal `json:"amount"`
	ClaimedAt time.Time       `json:"claimed_at"`
}

// JackpotRearmedPayload is the event payload for jackpot.rearmed events
type JackpotRearmedPayload struct {
	PlayerID      string          `json:"player_id"`
	JackpotAmount decimal.Decimal `json:"jackpot_amount"`
	RearmedAt     time.Time       `json:"rearmed_at"`
}

// JackpotResetCompletePayload is the event payload for jackpot.reset_complete events
type JackpotResetCompletePayload struct {
	ResetTime       time.Time `json:"reset_time"`
	SessionsRearmed int       `json:"sessions_rearmed"`
}
