package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Ledger errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgSpinInProgress    = "spin in progress"
	ErrMsgStaleTransaction  = "ledger changed since transaction was planned"

	// Configuration errors
	ErrMsgInvalidPaytable = "invalid paytable"
	ErrMsgInvalidSettings = "invalid game settings"

	// Session errors
	ErrMsgSessionNotFound = "session not found"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrSpinInProgress    = errors.New(ErrMsgSpinInProgress)
	ErrStaleTransaction  = errors.New(ErrMsgStaleTransaction)

	ErrInvalidPaytable = errors.New(ErrMsgInvalidPaytable)
	ErrInvalidSettings = errors.New(ErrMsgInvalidSettings)

	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
