package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgMissingPathParam = "Missing %s path parameter"
	ErrMsgInvalidLimit     = "Invalid limit parameter"
	ErrMsgInvalidDelta     = "Invalid bet delta"

	// Health messages
	ErrMsgStoreUnavailable = "jackpot store unavailable"
)

// Route parameter and query names
const (
	PathParamPlayerID = "playerID"
	QueryParamLimit   = "limit"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgServiceError      = "Service call failed"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteBufferFailed = "Failed to write response buffer"
)
