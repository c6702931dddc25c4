package slots

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/FairSlots_Go/internal/domain"
)

// MessageFormatter renders the player-facing line for a resolved spin
type MessageFormatter struct {
	printer  *message.Printer
	currency string
}

// NewMessageFormatter creates a formatter for the given locale tag. Unknown tags fall back to English.
func NewMessageFormatter(locale, currency string) *MessageFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &MessageFormatter{
		printer:  message.NewPrinter(tag),
		currency: currency,
	}
}

// Format returns the message for a transaction outcome
func (f *MessageFormatter) Format(tx Transaction) string {
	switch tx.Outcome.Kind {
	case domain.OutcomeSymbolWin:
		return f.printer.Sprintf(MsgSymbolWin, displayAmount(tx.Payout), f.currency)
	case domain.OutcomeJackpotWin:
		return f.printer.Sprintf(MsgJackpotWin, displayAmount(tx.Payout), f.currency)
	case domain.OutcomeJackpotUnavailable:
		return MsgJackpotUnavailable
	default:
		return MsgNoWin
	}
}

func displayAmount(d decimal.Decimal) float64 {
	return d.Round(MoneyDisplayPlaces).InexactFloat64()
}
