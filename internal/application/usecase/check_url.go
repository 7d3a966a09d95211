package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/NuriAnaliserDev/myCyberapp/internal/application/dto"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
)

var tracer = otel.Tracer("github.com/NuriAnaliserDev/myCyberapp/internal/application/usecase")

// URLChecker scores a raw URL.
type URLChecker interface {
	CheckURL(ctx context.Context, raw string) model.ScoreResult
}

// CheckURL is the use case for scoring a URL.
type CheckURL struct {
	checker  URLChecker
	recorder *CheckRecorder
}

// NewCheckURL creates a new CheckURL use case.
func NewCheckURL(checker URLChecker, recorder *CheckRecorder) *CheckURL {
	return &CheckURL{checker: checker, recorder: recorder}
}

// Execute scores the URL and records the outcome.
func (uc *CheckURL) Execute(ctx context.Context, req dto.CheckURLRequest) (dto.ScoreResponse, error) {
	ctx, span := tracer.Start(ctx, "CheckURL", trace.WithAttributes(attribute.String("reputation.target_kind", "url")))
	defer span.End()

	check, err := model.NewCheck(valueobject.TargetKindURL, req.URL, req.RequesterID)
	if err != nil {
		return dto.ScoreResponse{}, fmt.Errorf("failed to create check: %w", err)
	}

	if err := check.Complete(uc.checker.CheckURL(ctx, req.URL)); err != nil {
		return dto.ScoreResponse{}, fmt.Errorf("failed to complete check: %w", err)
	}

	uc.recorder.Record(ctx, check)

	result := check.Result()
	span.SetAttributes(
		attribute.Int("reputation.score", result.Score()),
		attribute.String("reputation.verdict", result.Verdict().String()),
	)

	return dto.FromResult(result), nil
}
