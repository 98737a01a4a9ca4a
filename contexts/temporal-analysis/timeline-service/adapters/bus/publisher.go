package bus

import (
	"context"

	"senkron/contexts/temporal-analysis/timeline-service/ports"
	"senkron/internal/platform/messaging"
	"senkron/internal/shared/events"
)

// Publisher bridges the module's envelope shape onto the platform bus.
type Publisher struct {
	Bus           *messaging.Bus
	SourceService string
}

func (p Publisher) Publish(ctx context.Context, topic string, event ports.EventEnvelope) error {
	return p.Bus.Publish(ctx, topic, events.Envelope{
		EventID:        event.EventID,
		EventType:      event.EventType,
		SourceService:  p.SourceService,
		OccurredAtUTC:  event.OccurredAtUTC,
		EntityType:     event.EntityType,
		EntityID:       event.EntityID,
		PayloadVersion: 1,
		Payload:        event.Payload,
	})
}
