package metrics

import (
	"context"

	"github.com/osse101/FairSlots_Go/internal/domain"
	"github.com/osse101/FairSlots_Go/internal/event"
	"github.com/osse101/FairSlots_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.SpinCompleted,
		event.JackpotClaimed,
		event.JackpotRearmed,
		event.JackpotResetComplete,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.SpinCompleted:
		result, err := event.DecodePayload[domain.SpinResult](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		RecordSpin(result)

	case event.JackpotClaimed:
		JackpotClaims.Inc()

	case event.JackpotRearmed:
		JackpotRearms.Inc()

	case event.JackpotResetComplete:
		JackpotResetSweeps.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// RecordSpin updates the spin counters for a resolved spin
func RecordSpin(result domain.SpinResult) {
	outcome := string(result.Outcome.Kind)

	SpinsTotal.WithLabelValues(outcome).Inc()
	AmountWagered.Add(result.Bet.InexactFloat64())
	JackpotContributions.Add(result.JackpotContribution.InexactFloat64())
	if result.Payout.IsPositive() {
		AmountPaid.WithLabelValues(outcome).Add(result.Payout.InexactFloat64())
	}
}
