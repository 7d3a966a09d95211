package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
	pgutil "github.com/NuriAnaliserDev/myCyberapp/pkg/postgres"
)

// BlacklistRepository implements port.BlacklistRepository using PostgreSQL.
type BlacklistRepository struct {
	pool *pgxpool.Pool
}

// NewBlacklistRepository creates a new PostgreSQL-backed blacklist repository.
func NewBlacklistRepository(pool *pgxpool.Pool) *BlacklistRepository {
	return &BlacklistRepository{pool: pool}
}

// Lookup returns the listing reason for target.
func (r *BlacklistRepository) Lookup(ctx context.Context, target string) (string, bool, error) {
	var reason string
	err := r.pool.QueryRow(ctx, `SELECT reason FROM blacklist WHERE target = $1`, target).Scan(&reason)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to look up blacklist entry: %w", err)
	}
	return reason, true, nil
}

// Save inserts the entry, replacing the reason when the target is already listed.
func (r *BlacklistRepository) Save(ctx context.Context, entry model.BlacklistEntry) error {
	query := `
		INSERT INTO blacklist (target, reason, added_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (target) DO UPDATE SET
			reason = EXCLUDED.reason
	`
	if _, err := r.pool.Exec(ctx, query, entry.Target(), entry.Reason(), entry.AddedAt()); err != nil {
		return fmt.Errorf("failed to save blacklist entry: %w", err)
	}
	return nil
}

// Delete removes target from the blacklist.
func (r *BlacklistRepository) Delete(ctx context.Context, target string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blacklist WHERE target = $1`, target)
	if err != nil {
		return fmt.Errorf("failed to delete blacklist entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("blacklist entry %q: %w", target, model.ErrNotFound)
	}
	return nil
}

// List returns a page of entries, newest first, and the total count.
func (r *BlacklistRepository) List(ctx context.Context, limit, offset int) ([]model.BlacklistEntry, int, error) {
	var (
		entries []model.BlacklistEntry
		total   int
	)

	err := pgutil.WithTransaction(ctx, r.pool, pgutil.ReadSnapshot, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM blacklist`).Scan(&total); err != nil {
			return fmt.Errorf("failed to count blacklist entries: %w", err)
		}

		rows, err := tx.Query(ctx, `
			SELECT target, reason, added_at
			FROM blacklist
			ORDER BY added_at DESC, target
			LIMIT $1 OFFSET $2
		`, limit, offset)
		if err != nil {
			return fmt.Errorf("failed to query blacklist entries: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				target, reason string
				addedAt        time.Time
			)
			if err := rows.Scan(&target, &reason, &addedAt); err != nil {
				return fmt.Errorf("failed to scan blacklist entry: %w", err)
			}
			entries = append(entries, model.ReconstructBlacklistEntry(target, reason, addedAt.UTC()))
		}
		return rows.Err()
	})
	if err != nil {
		return nil, 0, err
	}

	if entries == nil {
		entries = make([]model.BlacklistEntry, 0)
	}
	return entries, total, nil
}

// Ping reports whether the database is reachable.
func (r *BlacklistRepository) Ping(ctx context.Context) error {
	return pgutil.HealthCheck(ctx, r.pool)
}
