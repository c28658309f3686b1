package usecase

import (
	"context"
	"log/slog"

	"github.com/bibbank/screening-service/internal/domain/port"
	"github.com/bibbank/screening-service/pkg/events"
)

// dispatcher publishes domain events without failing the calling use case.
// A publish error is logged and counted; the screening result still stands.
type dispatcher struct {
	publisher port.EventPublisher
	recorder  port.Recorder
	logger    *slog.Logger
}

func (d dispatcher) dispatch(ctx context.Context, evts ...events.DomainEvent) {
	if len(evts) == 0 {
		return
	}
	if err := d.publisher.Publish(ctx, evts...); err != nil {
		for _, e := range evts {
			d.recorder.EventPublishFailed(ctx, e.EventType())
		}
		d.logger.ErrorContext(ctx, "failed to publish events",
			"count", len(evts),
			"aggregate_id", evts[0].AggregateID().String(),
			"error", err,
		)
	}
}
