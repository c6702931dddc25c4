package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ErrMsgQueueFull is the message of ErrQueueFull
const ErrMsgQueueFull = "worker queue is full"

// ============================================================================
// Log Messages - Reveal Worker
// ============================================================================

// Log messages for reveal worker operations
const (
	LogMsgSchedulingReveal    = "Scheduling spin reveal"
	LogMsgRevealingSpin       = "Revealing spin"
	LogMsgInvalidSpinPayload  = "Invalid spin completed payload"
	LogMsgRevealWorkerName    = "reveal worker"
	LogMsgRevealSkippedClosed = "Reveal skipped, worker shutting down"
)

// ============================================================================
// Log Messages - Jackpot Reset Worker
// ============================================================================

// Log messages for jackpot reset worker operations
const (
	LogMsgJackpotResetStarting      = "Jackpot reset starting"
	LogMsgJackpotResetCompleted     = "Jackpot reset completed"
	LogMsgJackpotResetFailed        = "Jackpot reset failed"
	LogMsgJackpotResetStandby       = "Jackpot reset standby scheduled"
	LogMsgJackpotResetApproach      = "Jackpot reset scheduled"
	LogMsgJackpotResetManualTrigger = "Jackpot reset manually triggered"
	LogMsgJackpotResetWorkerName    = "jackpot reset worker"
)

// Jackpot reset scheduling
const (
	// ResetStandbyThreshold is the remaining time above which the worker sleeps in standby
	ResetStandbyThreshold = time.Hour

	// ResetStandbyLead is how long before midnight the standby timer wakes up
	ResetStandbyLead = 45 * time.Minute

	// ResetEarlyTolerance is how early a reset timer may fire before it is rescheduled
	ResetEarlyTolerance = 10 * time.Second

	// ResetLateWindow bounds the remaining time that still counts as an on-time trigger
	ResetLateWindow = 23 * time.Hour
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
