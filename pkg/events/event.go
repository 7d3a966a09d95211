package events

import (
	"time"

	"github.com/google/uuid"
)

// Header keys attached to every published event.
const (
	HeaderEventID       = "event_id"
	HeaderEventType     = "event_type"
	HeaderAggregateType = "aggregate_type"
	HeaderOccurredAt    = "occurred_at"
)

// DomainEvent is the interface all domain events must implement.
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	AggregateID() uuid.UUID
	AggregateType() string
	OccurredAt() time.Time
	Payload() []byte
}

// BaseEvent provides a default implementation of DomainEvent.
type BaseEvent struct {
	occurredAt    time.Time
	eventType     string
	aggregateType string
	payload       []byte
	id            uuid.UUID
	aggregateID   uuid.UUID
}

// NewBaseEvent creates a BaseEvent with a fresh id, stamped with the current UTC time.
func NewBaseEvent(eventType string, aggregateID uuid.UUID, aggregateType string, payload []byte) BaseEvent {
	return BaseEvent{
		id:            uuid.New(),
		eventType:     eventType,
		aggregateID:   aggregateID,
		aggregateType: aggregateType,
		occurredAt:    time.Now().UTC(),
		payload:       payload,
	}
}

func (e BaseEvent) EventID() uuid.UUID     { return e.id }
func (e BaseEvent) EventType() string      { return e.eventType }
func (e BaseEvent) AggregateID() uuid.UUID { return e.aggregateID }
func (e BaseEvent) AggregateType() string  { return e.aggregateType }
func (e BaseEvent) OccurredAt() time.Time  { return e.occurredAt }
func (e BaseEvent) Payload() []byte        { return e.payload }

// Headers returns the transport headers describing e.
func Headers(e DomainEvent) map[string]string {
	return map[string]string{
		HeaderEventID:       e.EventID().String(),
		HeaderEventType:     e.EventType(),
		HeaderAggregateType: e.AggregateType(),
		HeaderOccurredAt:    e.OccurredAt().Format(time.RFC3339Nano),
	}
}
