package usecase

import (
	"context"
	"log/slog"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/port"
)

// CheckRecorder persists the side effects of a completed check: the request
// log entry, the requester's counters, domain events and metrics. Every step is
// best-effort; failures are logged and never change the check result.
type CheckRecorder struct {
	requestLog port.RequestLog
	stats      port.StatisticsRepository
	publisher  port.EventPublisher
	metrics    port.CheckMetrics
	logger     *slog.Logger
}

// NewCheckRecorder creates a CheckRecorder. Any collaborator may be nil.
func NewCheckRecorder(
	requestLog port.RequestLog,
	stats port.StatisticsRepository,
	publisher port.EventPublisher,
	metrics port.CheckMetrics,
	logger *slog.Logger,
) *CheckRecorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &CheckRecorder{
		requestLog: requestLog,
		stats:      stats,
		publisher:  publisher,
		metrics:    metrics,
		logger:     logger,
	}
}

// Record runs after check has been completed.
func (r *CheckRecorder) Record(ctx context.Context, check *model.Check) {
	result := check.Result()

	if r.metrics != nil {
		r.metrics.RecordCheck(ctx, check.Kind().String(), result.Verdict().String(), result.Method().String(), result.Score())
	}

	if !check.IsRecordable() {
		return
	}

	if r.requestLog != nil {
		if err := r.requestLog.Append(ctx, check.LogEntry()); err != nil {
			r.logger.Warn("failed to append request log",
				slog.String("check_id", check.ID().String()),
				slog.String("error", err.Error()),
			)
		}
	}

	if counters := check.Counters(); len(counters) > 0 && r.stats != nil {
		if err := r.stats.Increment(ctx, check.RequesterID(), model.Day(check.CheckedAt()), counters...); err != nil {
			r.logger.Warn("failed to update user statistics",
				slog.String("user_id", check.RequesterID().String()),
				slog.String("error", err.Error()),
			)
		}
	}

	evts := check.ClearEvents()
	if len(evts) > 0 && r.publisher != nil {
		if err := r.publisher.Publish(ctx, evts...); err != nil {
			r.logger.Warn("failed to publish check events",
				slog.String("check_id", check.ID().String()),
				slog.String("error", err.Error()),
			)
		}
	}
}
