package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "spin.completed")
const (
	// EventTypeSpinCompleted is published once a spin has been committed to the ledger
	EventTypeSpinCompleted = "spin.completed"

	// EventTypeJackpotClaimed is published when a player takes the jackpot pool
	EventTypeJackpotClaimed = "jackpot.claimed"

	// EventTypeJackpotRearmed is published when a claimed jackpot becomes available again
	EventTypeJackpotRearmed = "jackpot.rearmed"

	// EventTypeJackpotResetComplete is published when the midnight re-arm sweep finishes
	EventTypeJackpotResetComplete = "jackpot.reset_complete"
)
