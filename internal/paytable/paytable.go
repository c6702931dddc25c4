// Package paytable holds the ordered, immutable symbol table that grid cells index into.
package paytable

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/osse101/FairSlots_Go/internal/domain"
)

var validate = validator.New()

// Table is an ordered list of symbols. Grid values are positions in this list.
type Table struct {
	symbols []domain.Symbol
}

// New validates and copies the given symbols into a Table
func New(symbols []domain.Symbol) (*Table, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidPaytable, ErrMsgEmptyTable)
	}

	seen := make(map[int]struct{}, len(symbols))
	for i, s := range symbols {
		if err := validate.Struct(s); err != nil {
			return nil, fmt.Errorf("%w: "+ErrMsgInvalidSymbol+": %v", domain.ErrInvalidPaytable, i, err)
		}
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("%w: "+ErrMsgDuplicateSymbolID, domain.ErrInvalidPaytable, s.ID)
		}
		if s.Multiplier.IsNegative() {
			return nil, fmt.Errorf("%w: "+ErrMsgNegativeMultiplier, domain.ErrInvalidPaytable, s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	copied := make([]domain.Symbol, len(symbols))
	copy(copied, symbols)
	return &Table{symbols: copied}, nil
}

// Default returns the stock nine-symbol table
func Default() *Table {
	t, err := New(DefaultSymbols())
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultSymbols returns the stock symbol list
func DefaultSymbols() []domain.Symbol {
	return []domain.Symbol{
		{ID: 0, Name: SymbolRGCV, IsJackpot: false, Multiplier: decimal.NewFromInt(5)},
		{ID: 1, Name: SymbolPi, IsJackpot: true, Multiplier: decimal.NewFromInt(2)},
		{ID: 2, Name: SymbolPiValue, IsJackpot: false, Multiplier: decimal.NewFromInt(2)},
		{ID: 3, Name: SymbolGCV, IsJackpot: false, Multiplier: decimal.NewFromInt(10)},
		{ID: 4, Name: SymbolJackpot, IsJackpot: true, Multiplier: decimal.Zero},
		{ID: 5, Name: SymbolPiValue, IsJackpot: false, Multiplier: decimal.NewFromInt(2)},
		{ID: 6, Name: SymbolPi, IsJackpot: true, Multiplier: decimal.NewFromInt(2)},
		{ID: 7, Name: SymbolPiWord, IsJackpot: false, Multiplier: decimal.NewFromInt(3)},
		{ID: 8, Name: SymbolPi, IsJackpot: true, Multiplier: decimal.NewFromInt(2)},
	}
}

// Len returns N, the modulus used by the outcome deriver
func (t *Table) Len() int {
	return len(t.symbols)
}

// At resolves a grid value to its symbol
func (t *Table) At(index int) (domain.Symbol, bool) {
	if index < 0 || index >= len(t.symbols) {
		return domain.Symbol{ID: domain.NoSymbol, Name: FallbackSymbolName, Multiplier: decimal.Zero}, false
	}
	return t.symbols[index], true
}

// Symbols returns a copy of the table entries
func (t *Table) Symbols() []domain.Symbol {
	out := make([]domain.Symbol, len(t.symbols))
	copy(out, t.symbols)
	return out
}
