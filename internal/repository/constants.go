package repository

// Log messages
const (
	LogMsgRollbackFailed = "Failed to rollback transaction"
)
