package paytable

// Default symbol names
const (
	SymbolRGCV    = "RGCV"
	SymbolPi      = "π"
	SymbolPiValue = "3.14"
	SymbolGCV     = "GCV"
	SymbolJackpot = "Jackpot"
	SymbolPiWord  = "Pi"
)

// FallbackSymbolName is displayed for a cell that does not resolve to a table entry
const FallbackSymbolName = "?"

// Error messages
const (
	ErrMsgEmptyTable         = "payout table must contain at least one symbol"
	ErrMsgDuplicateSymbolID  = "duplicate symbol id %d"
	ErrMsgNegativeMultiplier = "symbol %d has a negative multiplier"
	ErrMsgInvalidSymbol      = "symbol at position %d failed validation"
	ErrMsgFailedToReadFile   = "failed to read paytable file"
	ErrMsgFailedToParseFile  = "failed to parse paytable file"
)

// Log messages
const (
	LogMsgPaytableLoaded = "Paytable loaded"
)
