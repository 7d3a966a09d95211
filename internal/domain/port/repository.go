package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
	"github.com/NuriAnaliserDev/myCyberapp/pkg/events"
)

// BlacklistLookup is the read side of the deny-list used by the engine.
// found is false when the target is not listed.
type BlacklistLookup interface {
	Lookup(ctx context.Context, target string) (reason string, found bool, err error)
}

// BlacklistRepository manages the deny-list.
type BlacklistRepository interface {
	BlacklistLookup
	// Save inserts the entry or replaces the reason of an existing one.
	Save(ctx context.Context, entry model.BlacklistEntry) error
	// Delete returns model.ErrNotFound if the target is not listed.
	Delete(ctx context.Context, target string) error
	List(ctx context.Context, limit, offset int) ([]model.BlacklistEntry, int, error)
}

// RequestLog is the append-only record of completed checks.
type RequestLog interface {
	Append(ctx context.Context, entry model.RequestLogEntry) error
}

// StatisticsRepository maintains per-user per-day counters.
type StatisticsRepository interface {
	Increment(ctx context.Context, userID uuid.UUID, day time.Time, counters ...valueobject.Counter) error
	// Daily returns rows for days on or after since, newest first.
	Daily(ctx context.Context, userID uuid.UUID, since time.Time) ([]model.DailyStatistics, error)
	// Totals sums every row the user has, with no date bound.
	Totals(ctx context.Context, userID uuid.UUID) (model.DailyStatistics, error)
}

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, events ...events.DomainEvent) error
}

// Pinger reports store reachability for readiness probes.
type Pinger interface {
	Ping(ctx context.Context) error
}
