package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
)

// RequestLogRepository implements port.RequestLog using PostgreSQL.
type RequestLogRepository struct {
	pool *pgxpool.Pool
}

// NewRequestLogRepository creates a new PostgreSQL-backed request log.
func NewRequestLogRepository(pool *pgxpool.Pool) *RequestLogRepository {
	return &RequestLogRepository{pool: pool}
}

// Append inserts one request log record.
func (r *RequestLogRepository) Append(ctx context.Context, entry model.RequestLogEntry) error {
	query := `
		INSERT INTO request_log (id, target_kind, target, score, verdict, logged_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ID(),
		entry.Kind().String(),
		entry.Target(),
		entry.Score(),
		entry.Verdict().String(),
		entry.LoggedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to append request log: %w", err)
	}
	return nil
}
