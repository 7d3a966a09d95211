package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/NuriAnaliserDev/myCyberapp/internal/application/dto"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
)

// HashChecker checks a file hash.
type HashChecker interface {
	CheckHash(ctx context.Context, hash string) model.ScoreResult
}

// CheckHash is the use case for checking an application package hash.
type CheckHash struct {
	checker  HashChecker
	recorder *CheckRecorder
}

// NewCheckHash creates a new CheckHash use case.
func NewCheckHash(checker HashChecker, recorder *CheckRecorder) *CheckHash {
	return &CheckHash{checker: checker, recorder: recorder}
}

// Execute checks the hash and records the outcome.
func (uc *CheckHash) Execute(ctx context.Context, req dto.CheckHashRequest) (dto.ScoreResponse, error) {
	ctx, span := tracer.Start(ctx, "CheckHash", trace.WithAttributes(attribute.String("reputation.target_kind", "hash")))
	defer span.End()

	check, err := model.NewCheck(valueobject.TargetKindAPK, req.Hash, req.RequesterID)
	if err != nil {
		return dto.ScoreResponse{}, fmt.Errorf("failed to create check: %w", err)
	}

	if err := check.Complete(uc.checker.CheckHash(ctx, req.Hash)); err != nil {
		return dto.ScoreResponse{}, fmt.Errorf("failed to complete check: %w", err)
	}

	uc.recorder.Record(ctx, check)

	span.SetAttributes(attribute.String("reputation.verdict", check.Result().Verdict().String()))

	return dto.FromResult(check.Result()), nil
}
