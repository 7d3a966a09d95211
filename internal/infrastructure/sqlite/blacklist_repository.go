package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
)

// BlacklistRepository implements port.BlacklistRepository on SQLite.
type BlacklistRepository struct {
	db *sql.DB
}

// Lookup returns the listing reason for target.
func (r *BlacklistRepository) Lookup(ctx context.Context, target string) (string, bool, error) {
	var reason string
	err := r.db.QueryRowContext(ctx, `SELECT reason FROM blacklist WHERE target = ?`, target).Scan(&reason)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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
		VALUES (?, ?, ?)
		ON CONFLICT (target) DO UPDATE SET
			reason = excluded.reason
	`
	_, err := r.db.ExecContext(ctx, query, entry.Target(), entry.Reason(), entry.AddedAt().UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("failed to save blacklist entry: %w", err)
	}
	return nil
}

// Delete removes target from the blacklist.
func (r *BlacklistRepository) Delete(ctx context.Context, target string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blacklist WHERE target = ?`, target)
	if err != nil {
		return fmt.Errorf("failed to delete blacklist entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete blacklist entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("blacklist entry %q: %w", target, model.ErrNotFound)
	}
	return nil
}

// List returns a page of entries, newest first, and the total count.
func (r *BlacklistRepository) List(ctx context.Context, limit, offset int) ([]model.BlacklistEntry, int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var total int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM blacklist`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count blacklist entries: %w", err)
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT target, reason, added_at
		FROM blacklist
		ORDER BY added_at DESC, target
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query blacklist entries: %w", err)
	}
	defer rows.Close()

	entries := make([]model.BlacklistEntry, 0)
	for rows.Next() {
		var target, reason, addedAt string
		if err := rows.Scan(&target, &reason, &addedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan blacklist entry: %w", err)
		}
		at, err := time.Parse(timeLayout, addedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to parse added_at for %q: %w", target, err)
		}
		entries = append(entries, model.ReconstructBlacklistEntry(target, reason, at))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read blacklist entries: %w", err)
	}
	return entries, total, nil
}
