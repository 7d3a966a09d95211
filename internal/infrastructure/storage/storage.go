// Package storage selects and opens the configured store backend.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/port"
	"github.com/NuriAnaliserDev/myCyberapp/internal/infrastructure/config"
	"github.com/NuriAnaliserDev/myCyberapp/internal/infrastructure/postgres"
	"github.com/NuriAnaliserDev/myCyberapp/internal/infrastructure/sqlite"
	"github.com/NuriAnaliserDev/myCyberapp/migrations"
	pgutil "github.com/NuriAnaliserDev/myCyberapp/pkg/postgres"
)

// Stores bundles the repositories of one backend.
type Stores struct {
	Blacklist  port.BlacklistRepository
	RequestLog port.RequestLog
	Statistics port.StatisticsRepository
	Pinger     port.Pinger
	Driver     string
	close      func() error
}

// Close releases the backend's connections.
func (s *Stores) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open connects to the backend named by cfg.StoreDriver and brings its schema
// up to date.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Stores, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		if err := Migrate(ctx, cfg, pgutil.Up); err != nil {
			return nil, err
		}
		pool, err := pgutil.NewPool(ctx, pgutil.Config{URL: cfg.DatabaseURL})
		if err != nil {
			return nil, err
		}
		logger.Info("connected to database", "driver", cfg.StoreDriver)

		blacklist := postgres.NewBlacklistRepository(pool)
		return &Stores{
			Blacklist:  blacklist,
			RequestLog: postgres.NewRequestLogRepository(pool),
			Statistics: postgres.NewStatisticsRepository(pool),
			Pinger:     blacklist,
			Driver:     cfg.StoreDriver,
			close: func() error {
				pool.Close()
				return nil
			},
		}, nil

	case config.StoreSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info("opened database", "driver", cfg.StoreDriver, "path", cfg.SQLitePath)

		return &Stores{
			Blacklist:  store.Blacklist(),
			RequestLog: store.RequestLog(),
			Statistics: store.Statistics(),
			Pinger:     store,
			Driver:     cfg.StoreDriver,
			close:      store.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// Migrate applies (Up) or rolls back (Down) the schema of the configured
// backend. Postgres uses cfg.MigrationsDir when set and the embedded
// migrations otherwise; SQLite always uses the embedded ones.
func Migrate(ctx context.Context, cfg *config.Config, direction pgutil.Direction) error {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		if cfg.MigrationsDir == "" {
			return pgutil.RunEmbeddedMigrations(cfg.DatabaseURL, migrations.FS, migrations.PostgresDir, direction)
		}
		if direction == pgutil.Down {
			return pgutil.RunMigrationsDown(cfg.DatabaseURL, cfg.MigrationsDir)
		}
		return pgutil.RunMigrations(cfg.DatabaseURL, cfg.MigrationsDir)

	case config.StoreSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return err
		}
		defer store.Close()
		if direction == pgutil.Down {
			return store.MigrateDown()
		}
		return nil

	default:
		return fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
