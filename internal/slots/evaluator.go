package slots

import (
	"github.com/osse101/FairSlots_Go/internal/domain"
)

// SymbolTable resolves grid values to symbols
type SymbolTable interface {
	Len() int
	At(index int) (domain.Symbol, bool)
}

// Evaluate classifies the evaluation line of a grid. Only a full match on every
// reel pays; a matching symbol with a zero multiplier is a loss.
func Evaluate(grid domain.SpinGrid, table SymbolTable) domain.WinOutcome {
	line := grid.Line()
	for r := 1; r < len(line); r++ {
		if line[r] != line[0] {
			return domain.NoWin()
		}
	}

	symbol, ok := table.At(line[0])
	if !ok {
		return domain.NoWin()
	}

	switch {
	case symbol.IsJackpot:
		return domain.JackpotWin(symbol.ID)
	case symbol.Multiplier.IsPositive():
		return domain.SymbolWin(symbol.ID, symbol.Multiplier)
	default:
		return domain.NoWin()
	}
}
