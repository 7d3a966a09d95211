package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
)

// StatisticsRepository implements port.StatisticsRepository using PostgreSQL.
type StatisticsRepository struct {
	pool *pgxpool.Pool
}

// NewStatisticsRepository creates a new PostgreSQL-backed statistics repository.
func NewStatisticsRepository(pool *pgxpool.Pool) *StatisticsRepository {
	return &StatisticsRepository{pool: pool}
}

// Increment adds one to each counter for the user's day, creating the row on first use.
func (r *StatisticsRepository) Increment(ctx context.Context, userID uuid.UUID, day time.Time, counters ...valueobject.Counter) error {
	if len(counters) == 0 {
		return nil
	}
	var delta model.DailyStatistics
	delta.Apply(counters...)

	query := `
		INSERT INTO user_statistics (user_id, day, urls_scanned, threats_detected, apps_scanned)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, day) DO UPDATE SET
			urls_scanned = user_statistics.urls_scanned + EXCLUDED.urls_scanned,
			threats_detected = user_statistics.threats_detected + EXCLUDED.threats_detected,
			apps_scanned = user_statistics.apps_scanned + EXCLUDED.apps_scanned
	`
	_, err := r.pool.Exec(ctx, query,
		userID, model.Day(day),
		delta.URLsScanned, delta.ThreatsDetected, delta.AppsScanned,
	)
	if err != nil {
		return fmt.Errorf("failed to increment user statistics: %w", err)
	}
	return nil
}

// Daily returns the user's rows on or after since, newest first.
func (r *StatisticsRepository) Daily(ctx context.Context, userID uuid.UUID, since time.Time) ([]model.DailyStatistics, error) {
	query := `
		SELECT day, urls_scanned, threats_detected, apps_scanned
		FROM user_statistics
		WHERE user_id = $1 AND day >= $2
		ORDER BY day DESC
	`
	rows, err := r.pool.Query(ctx, query, userID, model.Day(since))
	if err != nil {
		return nil, fmt.Errorf("failed to query user statistics: %w", err)
	}
	defer rows.Close()

	daily := make([]model.DailyStatistics, 0)
	for rows.Next() {
		var d model.DailyStatistics
		if err := rows.Scan(&d.Date, &d.URLsScanned, &d.ThreatsDetected, &d.AppsScanned); err != nil {
			return nil, fmt.Errorf("failed to scan user statistics: %w", err)
		}
		d.Date = model.Day(d.Date)
		daily = append(daily, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user statistics: %w", err)
	}
	return daily, nil
}

// Totals sums all of the user's rows.
func (r *StatisticsRepository) Totals(ctx context.Context, userID uuid.UUID) (model.DailyStatistics, error) {
	query := `
		SELECT COALESCE(SUM(urls_scanned), 0), COALESCE(SUM(threats_detected), 0), COALESCE(SUM(apps_scanned), 0)
		FROM user_statistics
		WHERE user_id = $1
	`
	var total model.DailyStatistics
	err := r.pool.QueryRow(ctx, query, userID).Scan(&total.URLsScanned, &total.ThreatsDetected, &total.AppsScanned)
	if err != nil {
		return model.DailyStatistics{}, fmt.Errorf("failed to total user statistics: %w", err)
	}
	return total, nil
}
