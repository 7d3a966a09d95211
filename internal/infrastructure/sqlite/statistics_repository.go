package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
)

// StatisticsRepository implements port.StatisticsRepository on SQLite.
type StatisticsRepository struct {
	db *sql.DB
}

// Increment adds one to each counter for the user's day, creating the row on first use.
func (r *StatisticsRepository) Increment(ctx context.Context, userID uuid.UUID, day time.Time, counters ...valueobject.Counter) error {
	if len(counters) == 0 {
		return nil
	}
	var delta model.DailyStatistics
	delta.Apply(counters...)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_statistics (user_id, day, urls_scanned, threats_detected, apps_scanned)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, day) DO UPDATE SET
			urls_scanned = urls_scanned + excluded.urls_scanned,
			threats_detected = threats_detected + excluded.threats_detected,
			apps_scanned = apps_scanned + excluded.apps_scanned
	`,
		userID.String(), model.Day(day).Format(dayLayout),
		delta.URLsScanned, delta.ThreatsDetected, delta.AppsScanned,
	)
	if err != nil {
		return fmt.Errorf("failed to increment user statistics: %w", err)
	}
	return nil
}

// Daily returns the user's rows on or after since, newest first.
func (r *StatisticsRepository) Daily(ctx context.Context, userID uuid.UUID, since time.Time) ([]model.DailyStatistics, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT day, urls_scanned, threats_detected, apps_scanned
		FROM user_statistics
		WHERE user_id = ? AND day >= ?
		ORDER BY day DESC
	`, userID.String(), model.Day(since).Format(dayLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query user statistics: %w", err)
	}
	defer rows.Close()

	daily := make([]model.DailyStatistics, 0)
	for rows.Next() {
		var (
			d   model.DailyStatistics
			day string
		)
		if err := rows.Scan(&day, &d.URLsScanned, &d.ThreatsDetected, &d.AppsScanned); err != nil {
			return nil, fmt.Errorf("failed to scan user statistics: %w", err)
		}
		if d.Date, err = time.Parse(dayLayout, day); err != nil {
			return nil, fmt.Errorf("failed to parse statistics day %q: %w", day, err)
		}
		daily = append(daily, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user statistics: %w", err)
	}
	return daily, nil
}

// Totals sums all of the user's rows.
func (r *StatisticsRepository) Totals(ctx context.Context, userID uuid.UUID) (model.DailyStatistics, error) {
	var total model.DailyStatistics
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(urls_scanned), 0), COALESCE(SUM(threats_detected), 0), COALESCE(SUM(apps_scanned), 0)
		FROM user_statistics
		WHERE user_id = ?
	`, userID.String()).Scan(&total.URLsScanned, &total.ThreatsDetected, &total.AppsScanned)
	if err != nil {
		return model.DailyStatistics{}, fmt.Errorf("failed to total user statistics: %w", err)
	}
	return total, nil
}
