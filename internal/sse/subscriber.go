package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/FairSlots_Go/internal/domain"
	"github.com/osse101/FairSlots_Go/internal/event"
)

// Subscriber bridges jackpot lifecycle events on the bus to the SSE hub.
// Spin reveals are driven by worker.RevealWorker so they honor the reveal delay.
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all relevant event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.JackpotRearmed, s.handleJackpotRearmed)

	slog.Info(LogMsgSubscriberRegistered, "types", []string{string(event.JackpotRearmed)})
}

func (s *Subscriber) handleJackpotRearmed(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.JackpotRearmedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeJackpotRearmed, payload.PlayerID, JackpotRearmedPayload{
		JackpotAmount: payload.JackpotAmount,
		RearmedAt:     payload.RearmedAt,
	})

	slog.Debug(LogMsgEventBroadcast,
		"event_type", EventTypeJackpotRearmed,
		"player_id", payload.PlayerID)

	return nil
}
