// Package sqlite stores the blacklist, request log and user statistics in an
// embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite" // register the "sqlite" database/sql driver

	"github.com/NuriAnaliserDev/myCyberapp/migrations"
)

// Fixed-width layouts so that text ordering matches time ordering.
const (
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
	dayLayout  = "2006-01-02"
)

// Store owns the database handle shared by the repositories.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// embedded migrations. Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	// One connection serialises writers and keeps :memory: databases alive.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite: %s: %w", pragma, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	m, err := s.migrator()
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("sqlite: run migrations: %w", err)
	}
	return nil
}

// MigrateDown rolls back every migration, dropping all tables.
func (s *Store) MigrateDown() error {
	m, err := s.migrator()
	if err != nil {
		return err
	}
	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("sqlite: roll back migrations: %w", err)
	}
	return nil
}

// The returned migrator must not be closed: m.Close would close the shared
// *sql.DB through the driver.
func (s *Store) migrator() (*migrate.Migrate, error) {
	src, err := iofs.New(migrations.FS, migrations.SQLiteDir)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open migration source: %w", err)
	}

	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("sqlite: create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return nil, fmt.Errorf("sqlite: create migrator: %w", err)
	}
	return m, nil
}

// Ping reports whether the database is usable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite: ping: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Blacklist returns the blacklist repository backed by s.
func (s *Store) Blacklist() *BlacklistRepository {
	return &BlacklistRepository{db: s.db}
}

// RequestLog returns the request log backed by s.
func (s *Store) RequestLog() *RequestLogRepository {
	return &RequestLogRepository{db: s.db}
}

// Statistics returns the statistics repository backed by s.
func (s *Store) Statistics() *StatisticsRepository {
	return &StatisticsRepository{db: s.db}
}
