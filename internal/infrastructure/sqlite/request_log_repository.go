package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
)

// RequestLogRepository implements port.RequestLog on SQLite.
type RequestLogRepository struct {
	db *sql.DB
}

// Append inserts one request log record.
func (r *RequestLogRepository) Append(ctx context.Context, entry model.RequestLogEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO request_log (id, target_kind, target, score, verdict, logged_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		entry.ID().String(),
		entry.Kind().String(),
		entry.Target(),
		entry.Score(),
		entry.Verdict().String(),
		entry.LoggedAt().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to append request log: %w", err)
	}
	return nil
}

// Count returns the number of logged checks.
func (r *RequestLogRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM request_log`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count request log: %w", err)
	}
	return n, nil
}
