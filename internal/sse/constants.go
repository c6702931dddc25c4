package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE
const (
	// EventTypeSpinRevealed is sent once the reveal delay of a spin has elapsed
	EventTypeSpinRevealed = "spin.revealed"

	// EventTypeJackpotClaimed is sent together with the reveal of a jackpot-winning spin
	EventTypeJackpotClaimed = "jackpot.claimed"

	// EventTypeJackpotRearmed is sent when a player's jackpot becomes available again
	EventTypeJackpotRearmed = "jackpot.rearmed"

	// EventTypeConnected is the first event sent on every stream
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Query parameters
const (
	QueryParamTypes  = "types"
	QueryParamPlayer = "player_id"
)

// Log messages
const (
	LogMsgClientConnected      = "SSE client connected"
	LogMsgClientDisconnected   = "SSE client disconnected"
	LogMsgEventBroadcast       = "Broadcasting SSE event"
	LogMsgBroadcastDropped     = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError           = "Failed to write SSE event"
	LogMsgInvalidPayload       = "Invalid event payload for SSE"
	LogMsgSubscriberRegistered = "SSE subscriber registered for event types"
)

// ErrMsgStreamingUnsupported is returned when the response writer cannot flush
const ErrMsgStreamingUnsupported = "SSE not supported"
