package sse

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConnectedPayload is the payload of the first event on a stream
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters,omitempty"`
	PlayerID string   `json:"player_id,omitempty"`
}

// JackpotRearmedPayload represents the SSE payload for a re-armed jackpot
type JackpotRearmedPayload struct {
	JackpotAmount decimal.Decimal `json:"jackpot_amount"`
	RearmedAt     time.Time       `json:"rearmed_at"`
}
