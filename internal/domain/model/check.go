package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/event"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
	"github.com/NuriAnaliserDev/myCyberapp/pkg/events"
)

// Check is the aggregate root for a single reputation check of a URL or hash.
// A Check is created before scoring and completed exactly once.
type Check struct {
	events.EventCollector

	checkedAt   time.Time
	kind        valueobject.TargetKind
	target      string
	result      ScoreResult
	requesterID uuid.UUID
	id          uuid.UUID
	completed   bool
}

// NewCheck starts a check. requesterID may be uuid.Nil for anonymous callers.
func NewCheck(kind valueobject.TargetKind, target string, requesterID uuid.UUID) (*Check, error) {
	if kind.IsZero() {
		return nil, fmt.Errorf("target kind is required")
	}

	return &Check{
		id:          uuid.New(),
		kind:        kind,
		target:      target,
		requesterID: requesterID,
	}, nil
}

// Complete attaches the result and records the domain events for it. Invalid
// input produces no events.
func (c *Check) Complete(result ScoreResult) error {
	if c.completed {
		return fmt.Errorf("check %s already completed", c.id)
	}
	if result.Verdict().IsZero() {
		return fmt.Errorf("result verdict is required")
	}

	c.result = result
	c.checkedAt = time.Now().UTC()
	c.completed = true

	if !c.IsRecordable() {
		return nil
	}

	c.Record(event.NewCheckCompleted(
		c.id, c.requesterID, c.kind.String(), c.target,
		result.Score(), result.Verdict().String(), result.Method().String(),
		result.Reasons(), c.checkedAt,
	))

	if result.Verdict().IsThreat() {
		c.Record(event.NewThreatDetected(
			c.id, c.requesterID, c.kind.String(), c.target,
			result.Score(), result.Reasons(), c.checkedAt,
		))
	}

	return nil
}

// IsRecordable reports whether the completed check belongs in the request log
// and statistics. Invalid input is never recorded.
func (c *Check) IsRecordable() bool {
	return c.completed && !c.result.Verdict().Equal(valueobject.VerdictInvalid)
}

// Counters returns the statistics counters this check increments for a known requester.
func (c *Check) Counters() []valueobject.Counter {
	if c.requesterID == uuid.Nil || !c.IsRecordable() {
		return nil
	}
	counters := []valueobject.Counter{c.kind.Counter()}
	if c.result.Verdict().IsThreat() {
		counters = append(counters, valueobject.CounterThreatsDetected)
	}
	return counters
}

func (c *Check) ID() uuid.UUID                  { return c.id }
func (c *Check) Kind() valueobject.TargetKind   { return c.kind }
func (c *Check) Target() string                 { return c.target }
func (c *Check) RequesterID() uuid.UUID         { return c.requesterID }
func (c *Check) Result() ScoreResult            { return c.result }
func (c *Check) CheckedAt() time.Time           { return c.checkedAt }
func (c *Check) IsAnonymous() bool              { return c.requesterID == uuid.Nil }
func (c *Check) LogEntry() RequestLogEntry      { return NewRequestLogEntry(c.kind, c.target, c.result) }
