package paytable

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/FairSlots_Go/internal/domain"
	"github.com/osse101/FairSlots_Go/internal/validation"
)

// File is the on-disk JSON layout of a payout table
type File struct {
	Version string          `json:"version"`
	Symbols []domain.Symbol `json:"symbols"`
}

// Load reads a payout table from a JSON file and checks it against the
// embedded schema. An empty path returns the default table.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToReadFile, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidPaytable, ErrMsgFailedToParseFile, err)
	}
	if err := validation.Default().ValidateBytes(data, validation.PaytableSchema); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPaytable, err)
	}

	table, err := New(f.Symbols)
	if err != nil {
		return nil, err
	}

	slog.Info(LogMsgPaytableLoaded, "path", path, "version", f.Version, "symbols", table.Len())
	return table, nil
}
