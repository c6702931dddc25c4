package handler

import (
	"net/http"

	"github.com/osse101/FairSlots_Go/internal/domain"
	"github.com/osse101/FairSlots_Go/internal/fairness"
	"github.com/osse101/FairSlots_Go/internal/slots"
)

// VerifyHandler lets players recompute a past spin from its revealed seed and nonce
type VerifyHandler struct {
	table slots.SymbolTable
}

// NewVerifyHandler creates a new verify handler
func NewVerifyHandler(table slots.SymbolTable) *VerifyHandler {
	return &VerifyHandler{table: table}
}

// VerifyRequest is the body of POST /verify. Grid is the grid the player was shown, if any.
type VerifyRequest struct {
	Seed  string           `json:"seed" validate:"required,max=256"`
	Nonce int64            `json:"nonce" validate:"gt=0"`
	Grid  *domain.SpinGrid `json:"grid,omitempty"`
}

// VerifyResponse carries the recomputed spin
type VerifyResponse struct {
	// Valid is only set when a grid was supplied
	Valid          *bool                 `json:"valid,omitempty"`
	Commitment     string                `json:"commitment"`
	Hash           string                `json:"hash"`
	Grid           domain.SpinGrid       `json:"grid"`
	EvaluationLine [domain.ReelCount]int `json:"evaluation_line"`
	Outcome        domain.WinOutcome     `json:"outcome"`
}

// HandleVerify recomputes the grid and outcome of a seed and nonce
func (h *VerifyHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Verify spin"); err != nil {
		return
	}

	grid, err := fairness.DeriveGrid(req.Seed, req.Nonce, h.table.Len())
	if err != nil {
		respondServiceError(w, r, "Verify spin", err)
		return
	}

	resp := VerifyResponse{
		Commitment:     fairness.Commitment(req.Seed, req.Nonce),
		Hash:           fairness.Hash(req.Seed, req.Nonce),
		Grid:           grid,
		EvaluationLine: grid.Line(),
		Outcome:        slots.Evaluate(grid, h.table),
	}
	if req.Grid != nil {
		valid := *req.Grid == grid
		resp.Valid = &valid
	}

	respondJSON(w, http.StatusOK, resp)
}
