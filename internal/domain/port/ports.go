package port

import (
	"context"

	"github.com/bibbank/screening-service/pkg/events"
)

// EventPublisher defines the port for publishing domain events.
type EventPublisher interface {
	// Publish sends one or more domain events to the messaging infrastructure.
	Publish(ctx context.Context, evts ...events.DomainEvent) error
}

// Recorder receives operational measurements from the use cases.
type Recorder interface {
	RiskAssessed(ctx context.Context, level string)
	DuplicateChecked(ctx context.Context, duplicate bool)
	QueryClassified(ctx context.Context, intent string)
	EventPublishFailed(ctx context.Context, eventType string)
}
