package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/NuriAnaliserDev/myCyberapp/internal/application/dto"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/port"
)

const (
	DefaultStatisticsDays = 7
	MaxStatisticsDays     = 90
)

// ErrUserRequired is returned when statistics are requested without a user.
var ErrUserRequired = errors.New("user ID is required")

// GetStatistics is the use case for a user's daily check counters.
type GetStatistics struct {
	repo port.StatisticsRepository
	now  func() time.Time
}

// NewGetStatistics creates a new GetStatistics use case.
func NewGetStatistics(repo port.StatisticsRepository) *GetStatistics {
	return &GetStatistics{repo: repo, now: time.Now}
}

// Execute returns rows for the last req.Days calendar days, including today,
// and the user's all-time totals.
func (uc *GetStatistics) Execute(ctx context.Context, req dto.GetStatisticsRequest) (dto.StatisticsResponse, error) {
	if req.UserID == uuid.Nil {
		return dto.StatisticsResponse{}, ErrUserRequired
	}

	days := req.Days
	if days <= 0 {
		days = DefaultStatisticsDays
	}
	if days > MaxStatisticsDays {
		days = MaxStatisticsDays
	}

	since := model.Day(uc.now()).AddDate(0, 0, -(days - 1))

	daily, err := uc.repo.Daily(ctx, req.UserID, since)
	if err != nil {
		return dto.StatisticsResponse{}, fmt.Errorf("failed to load statistics: %w", err)
	}

	total, err := uc.repo.Totals(ctx, req.UserID)
	if err != nil {
		return dto.StatisticsResponse{}, fmt.Errorf("failed to load statistics totals: %w", err)
	}

	return dto.FromSummary(model.Summarize(daily, total), days), nil
}
