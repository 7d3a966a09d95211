package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NuriAnaliserDev/myCyberapp/pkg/events"
	pkgkafka "github.com/NuriAnaliserDev/myCyberapp/pkg/kafka"
)

// MessageProducer is the subset of pkg/kafka.Producer the publisher needs.
type MessageProducer interface {
	Publish(ctx context.Context, topic string, messages ...pkgkafka.Message) error
}

// Publisher implements port.EventPublisher using Kafka. Events are keyed by
// aggregate ID so all events for one check land on the same partition.
type Publisher struct {
	producer MessageProducer
	logger   *slog.Logger
	topic    string
}

// NewPublisher creates a new Kafka event publisher.
func NewPublisher(producer MessageProducer, topic string, logger *slog.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// Publish sends domain events to Kafka.
func (p *Publisher) Publish(ctx context.Context, domainEvents ...events.DomainEvent) error {
	if len(domainEvents) == 0 {
		return nil
	}

	messages := make([]pkgkafka.Message, 0, len(domainEvents))
	for _, evt := range domainEvents {
		p.logger.DebugContext(ctx, "publishing event",
			slog.String("event_type", evt.EventType()),
			slog.String("topic", p.topic),
			slog.Int("payload_size", len(evt.Payload())),
		)

		messages = append(messages, pkgkafka.Message{
			Key:     []byte(evt.AggregateID().String()),
			Value:   evt.Payload(),
			Headers: events.Headers(evt),
		})
	}

	if err := p.producer.Publish(ctx, p.topic, messages...); err != nil {
		return fmt.Errorf("failed to publish events to topic %s: %w", p.topic, err)
	}
	return nil
}
