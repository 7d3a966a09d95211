package messaging

import (
	"context"
	"log/slog"

	"github.com/NuriAnaliserDev/myCyberapp/pkg/events"
)

// LogPublisher implements port.EventPublisher by logging events. It is used
// when no Kafka brokers are configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a LogPublisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs each event at info level with its payload.
func (p *LogPublisher) Publish(ctx context.Context, domainEvents ...events.DomainEvent) error {
	for _, evt := range domainEvents {
		p.logger.InfoContext(ctx, "event",
			slog.String("event_type", evt.EventType()),
			slog.String("event_id", evt.EventID().String()),
			slog.String("aggregate_id", evt.AggregateID().String()),
			slog.String("payload", string(evt.Payload())),
		)
	}
	return nil
}
