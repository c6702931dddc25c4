package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/FairSlots_Go/internal/session"
)

// SessionHandler handles player session requests
type SessionHandler struct {
	service session.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service session.Service) *SessionHandler {
	return &SessionHandler{service: service}
}

// OpenSessionRequest is the body of POST /sessions
type OpenSessionRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=128,player_id"`
}

// AdjustBetRequest is the body of POST /sessions/{playerID}/bet
type AdjustBetRequest struct {
	Delta string `json:"delta" validate:"required,numeric"`
}

// JackpotHistoryResponse lists a player's jackpot claims, newest first
type JackpotHistoryResponse struct {
	PlayerID string      `json:"player_id"`
	Claims   []time.Time `json:"claims"`
}

// HandleOpen opens or resumes a session and returns its snapshot
func (h *SessionHandler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	var req OpenSessionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Open session"); err != nil {
		return
	}

	snapshot, err := h.service.Open(r.Context(), req.PlayerID)
	if err != nil {
		respondServiceError(w, r, "Open session", err)
		return
	}

	respondJSON(w, http.StatusCreated, snapshot)
}

// HandleGet returns the snapshot of an open session
func (h *SessionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPathParam(r, w, PathParamPlayerID)
	if !ok {
		return
	}

	snapshot, err := h.service.Snapshot(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Get session", err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

// HandleSpin resolves one spin for the session
func (h *SessionHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPathParam(r, w, PathParamPlayerID)
	if !ok {
		return
	}

	result, err := h.service.Spin(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Spin", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleAdjustBet moves the bet by the requested delta
func (h *SessionHandler) HandleAdjustBet(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPathParam(r, w, PathParamPlayerID)
	if !ok {
		return
	}

	var req AdjustBetRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Adjust bet"); err != nil {
		return
	}
	delta, err := decimal.NewFromString(req.Delta)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidDelta)
		return
	}

	snapshot, err := h.service.AdjustBet(r.Context(), playerID, delta)
	if err != nil {
		respondServiceError(w, r, "Adjust bet", err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

// HandleSetMinBet sets the bet to the minimum
func (h *SessionHandler) HandleSetMinBet(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPathParam(r, w, PathParamPlayerID)
	if !ok {
		return
	}

	snapshot, err := h.service.SetMinBet(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Set min bet", err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

// HandleSetMaxBet sets the bet to the maximum
func (h *SessionHandler) HandleSetMaxBet(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPathParam(r, w, PathParamPlayerID)
	if !ok {
		return
	}

	snapshot, err := h.service.SetMaxBet(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Set max bet", err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

// HandleJackpotHistory lists the player's past jackpot claims. Works without an open session.
func (h *SessionHandler) HandleJackpotHistory(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPathParam(r, w, PathParamPlayerID)
	if !ok {
		return
	}

	limit, err := GetOptionalIntQueryParam(r, QueryParamLimit, session.DefaultHistoryLimit)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return
	}

	claims, err := h.service.JackpotHistory(r.Context(), playerID, limit)
	if err != nil {
		respondServiceError(w, r, "Jackpot history", err)
		return
	}
	if claims == nil {
		claims = []time.Time{}
	}

	respondJSON(w, http.StatusOK, JackpotHistoryResponse{PlayerID: playerID, Claims: claims})
}
