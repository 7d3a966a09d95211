package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
)

// RequestLogEntry is one append-only record of a completed check.
type RequestLogEntry struct {
	loggedAt time.Time
	kind     valueobject.TargetKind
	verdict  valueobject.Verdict
	target   string
	score    int
	id       uuid.UUID
}

// NewRequestLogEntry builds the log record for a result.
func NewRequestLogEntry(kind valueobject.TargetKind, target string, result ScoreResult) RequestLogEntry {
	return RequestLogEntry{
		id:       uuid.New(),
		kind:     kind,
		target:   target,
		score:    result.Score(),
		verdict:  result.Verdict(),
		loggedAt: time.Now().UTC(),
	}
}

// ReconstructRequestLogEntry rebuilds an entry from persisted data.
func ReconstructRequestLogEntry(
	id uuid.UUID,
	kind valueobject.TargetKind,
	target string,
	score int,
	verdict valueobject.Verdict,
	loggedAt time.Time,
) RequestLogEntry {
	return RequestLogEntry{id: id, kind: kind, target: target, score: score, verdict: verdict, loggedAt: loggedAt}
}

func (e RequestLogEntry) ID() uuid.UUID                    { return e.id }
func (e RequestLogEntry) Kind() valueobject.TargetKind     { return e.kind }
func (e RequestLogEntry) Target() string                   { return e.target }
func (e RequestLogEntry) Score() int                       { return e.score }
func (e RequestLogEntry) Verdict() valueobject.Verdict     { return e.verdict }
func (e RequestLogEntry) LoggedAt() time.Time              { return e.loggedAt }
