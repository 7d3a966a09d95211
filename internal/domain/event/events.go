package event

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/NuriAnaliserDev/myCyberapp/pkg/events"
)

const (
	// EventTypeCheckCompleted is emitted for every check that produced a scored verdict.
	EventTypeCheckCompleted = "reputation.check.completed"

	// EventTypeThreatDetected is emitted when a check ends with a dangerous verdict.
	EventTypeThreatDetected = "reputation.threat.detected"

	aggregateType = "Check"
)

// CheckCompleted is published when a URL or hash check finishes.
type CheckCompleted struct {
	events.BaseEvent `json:"-"`
	CheckID          uuid.UUID  `json:"check_id"`
	RequesterID      *uuid.UUID `json:"requester_id,omitempty"`
	Kind             string     `json:"kind"`
	Target           string     `json:"target"`
	Verdict          string     `json:"verdict"`
	Method           string     `json:"method,omitempty"`
	Reasons          []string   `json:"reasons"`
	Score            int        `json:"score"`
	CheckedAt        time.Time  `json:"checked_at"`
}

// NewCheckCompleted builds the event and serializes its payload.
func NewCheckCompleted(
	checkID uuid.UUID,
	requesterID uuid.UUID,
	kind, target string,
	score int,
	verdict, method string,
	reasons []string,
	checkedAt time.Time,
) CheckCompleted {
	e := CheckCompleted{
		CheckID:     checkID,
		RequesterID: optionalID(requesterID),
		Kind:        kind,
		Target:      target,
		Score:       score,
		Verdict:     verdict,
		Method:      method,
		Reasons:     reasons,
		CheckedAt:   checkedAt,
	}
	e.BaseEvent = events.NewBaseEvent(EventTypeCheckCompleted, checkID, aggregateType, marshal(e))
	return e
}

// ThreatDetected is published when a check returns a dangerous verdict so that
// downstream consumers can alert the requester.
type ThreatDetected struct {
	events.BaseEvent `json:"-"`
	CheckID          uuid.UUID  `json:"check_id"`
	RequesterID      *uuid.UUID `json:"requester_id,omitempty"`
	Kind             string     `json:"kind"`
	Target           string     `json:"target"`
	Reasons          []string   `json:"reasons"`
	Score            int        `json:"score"`
	DetectedAt       time.Time  `json:"detected_at"`
}

// NewThreatDetected builds the event and serializes its payload.
func NewThreatDetected(
	checkID uuid.UUID,
	requesterID uuid.UUID,
	kind, target string,
	score int,
	reasons []string,
	detectedAt time.Time,
) ThreatDetected {
	e := ThreatDetected{
		CheckID:     checkID,
		RequesterID: optionalID(requesterID),
		Kind:        kind,
		Target:      target,
		Score:       score,
		Reasons:     reasons,
		DetectedAt:  detectedAt,
	}
	e.BaseEvent = events.NewBaseEvent(EventTypeThreatDetected, checkID, aggregateType, marshal(e))
	return e
}

func optionalID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

// marshal cannot fail for the flat payload structs above.
func marshal(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}
