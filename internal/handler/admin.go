package handler

import (
	"context"
	"net/http"
)

// JackpotResetter runs the daily jackpot re-arm on demand
type JackpotResetter interface {
	TriggerReset(ctx context.Context) (int, error)
}

// RearmResponse reports how many live sessions were re-armed
type RearmResponse struct {
	SessionsRearmed int `json:"sessions_rearmed"`
}

// HandleTriggerRearm re-arms every live session whose claim is from an earlier UTC day
func HandleTriggerRearm(resetter JackpotResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := resetter.TriggerReset(r.Context())
		if err != nil {
			respondServiceError(w, r, "Rearm jackpots", err)
			return
		}
		respondJSON(w, http.StatusOK, RearmResponse{SessionsRearmed: count})
	}
}
