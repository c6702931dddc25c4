package wallet

// Log messages
const (
	LogMsgSettled              = "Spin settled"
	LogMsgSettlementFailed     = "Spin settlement failed"
	LogMsgSettlementDropped    = "Settlement queue rejected spin, settlement dropped"
	LogMsgInvalidSpinPayload   = "Invalid spin completed payload"
	LogMsgSubscriberRegistered = "Wallet settlement subscriber registered"
)

// Error messages
const (
	ErrMsgSettle = "failed to settle spin"
)
