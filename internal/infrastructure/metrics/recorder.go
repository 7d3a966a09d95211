package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/port"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
)

var _ port.CheckMetrics = (*Recorder)(nil)

// Recorder implements port.CheckMetrics with OpenTelemetry instruments.
type Recorder struct {
	checks  metric.Int64Counter
	threats metric.Int64Counter
	scores  metric.Int64Histogram
}

// NewRecorder registers the check instruments on meter.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	checks, err := meter.Int64Counter("phishguard.checks",
		metric.WithDescription("Completed reputation checks"),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return nil, fmt.Errorf("checks counter: %w", err)
	}

	threats, err := meter.Int64Counter("phishguard.threats",
		metric.WithDescription("Checks that returned a dangerous verdict"),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return nil, fmt.Errorf("threats counter: %w", err)
	}

	scores, err := meter.Int64Histogram("phishguard.check.score",
		metric.WithDescription("Distribution of risk scores"),
		metric.WithExplicitBucketBoundaries(10, 20, 30, 40, 50, 60, 70, 80, 90, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("score histogram: %w", err)
	}

	return &Recorder{checks: checks, threats: threats, scores: scores}, nil
}

// RecordCheck records one completed check.
func (r *Recorder) RecordCheck(ctx context.Context, kind, verdict, method string, score int) {
	attrs := metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("verdict", verdict),
		attribute.String("method", method),
	)
	r.checks.Add(ctx, 1, attrs)
	r.scores.Record(ctx, int64(score), metric.WithAttributes(attribute.String("kind", kind)))
	if verdict == valueobject.VerdictDangerous.String() {
		r.threats.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
	}
}
