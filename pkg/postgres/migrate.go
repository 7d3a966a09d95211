package postgres

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // register postgres driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // register file source driver
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Direction selects which way migrations are applied.
type Direction int

const (
	Up Direction = iota
	Down
)

// RunMigrations applies all pending migrations from sourceURL
// (e.g. "file://./migrations/postgres"). No pending change is not an error.
func RunMigrations(dsn, sourceURL string) error {
	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		return fmt.Errorf("postgres: create migrator: %w", err)
	}
	return apply(m, Up)
}

// RunMigrationsDown rolls back all migrations from sourceURL.
func RunMigrationsDown(dsn, sourceURL string) error {
	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		return fmt.Errorf("postgres: create migrator: %w", err)
	}
	return apply(m, Down)
}

// RunEmbeddedMigrations applies migrations stored under dir in fsys.
func RunEmbeddedMigrations(dsn string, fsys fs.FS, dir string, direction Direction) error {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return fmt.Errorf("postgres: open migration source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return fmt.Errorf("postgres: create migrator: %w", err)
	}
	return apply(m, direction)
}

func apply(m *migrate.Migrate, direction Direction) error {
	defer m.Close()

	var err error
	switch direction {
	case Down:
		err = m.Down()
	default:
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("postgres: run migrations: %w", err)
	}
	return nil
}
