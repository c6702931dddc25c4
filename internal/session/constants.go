package session

import "time"

// Defaults
const (
	DefaultCacheSize    = 1024
	DefaultTTL          = 24 * time.Hour
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100
)

// Error messages
const (
	ErrMsgEmptyPlayerID      = "player id is required"
	ErrMsgLoadJackpotClaim   = "failed to load jackpot claim"
	ErrMsgCreateEngine       = "failed to create engine"
	ErrMsgHistoryLimitRange  = "history limit must be between 1 and %d"
	ErrMsgLoadJackpotHistory = "failed to load jackpot history"
)

// Log messages
const (
	LogMsgSessionOpened   = "Session opened"
	LogMsgSessionResumed  = "Session resumed"
	LogMsgSessionEvicted  = "Session evicted"
	LogMsgJackpotsRearmed = "Jackpots re-armed"
	LogMsgSpinFailed      = "Spin failed"
)
