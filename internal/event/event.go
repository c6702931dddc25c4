package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/FairSlots_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Event types
const (
	SpinCompleted        Type = domain.EventTypeSpinCompleted
	JackpotClaimed       Type = domain.EventTypeJackpotClaimed
	JackpotRearmed       Type = domain.EventTypeJackpotRearmed
	JackpotResetComplete Type = domain.EventTypeJackpotResetComplete
)

// Metadata keys
const (
	MetadataKeyRequestID = "request_id"
	MetadataKeyPlayerID  = "player_id"
)

// NewSpinCompletedEvent creates the event published after a spin is committed.
// The payload is the full spin result.
func NewSpinCompletedEvent(result domain.SpinResult, requestID string) Event {
	md := Metadata{MetadataKeyPlayerID: result.PlayerID}
	if requestID != "" {
		md[MetadataKeyRequestID] = requestID
	}
	return Event{
		Version:  EventSchemaVersion,
		Type:     SpinCompleted,
		Payload:  result,
		Metadata: md,
	}
}

// NewJackpotClaimedEvent creates a jackpot claimed event from a winning spin
func NewJackpotClaimedEvent(result domain.SpinResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    JackpotClaimed,
		Payload: domain.JackpotClaimedPayload{
			PlayerID:  result.PlayerID,
			SpinID:    result.SpinID,
			Amount:    result.Payout,
			ClaimedAt: result.ResolvedAt,
		},
		Metadata: Metadata{MetadataKeyPlayerID: result.PlayerID},
	}
}

// NewJackpotRearmedEvent creates an event for a session whose jackpot became available again
func NewJackpotRearmedEvent(playerID string, amount decimal.Decimal, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    JackpotRearmed,
		Payload: domain.JackpotRearmedPayload{
			PlayerID:      playerID,
			JackpotAmount: amount,
			RearmedAt:     at,
		},
		Metadata: Metadata{MetadataKeyPlayerID: playerID},
	}
}

// NewJackpotResetCompleteEvent creates the event published after the midnight sweep
func NewJackpotResetCompleteEvent(resetTime time.Time, sessionsRearmed int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    JackpotResetComplete,
		Payload: domain.JackpotResetCompletePayload{
			ResetTime:       resetTime,
			SessionsRearmed: sessionsRearmed,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every handler subscribed to the event type, in subscription order
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
