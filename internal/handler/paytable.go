package handler

import (
	"net/http"

	"github.com/osse101/FairSlots_Go/internal/domain"
)

// SymbolLister returns the symbols of the payout table
type SymbolLister interface {
	Symbols() []domain.Symbol
}

// PaytableResponse lists the payout table in index order
type PaytableResponse struct {
	Symbols []domain.Symbol `json:"symbols"`
}

// HandleGetPaytable returns the payout table
func HandleGetPaytable(table SymbolLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, PaytableResponse{Symbols: table.Symbols()})
	}
}
