package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/NuriAnaliserDev/myCyberapp/migrations"
	pgutil "github.com/NuriAnaliserDev/myCyberapp/pkg/postgres"
)

// PostgresContainer wraps a testcontainers PostgreSQL instance.
type PostgresContainer struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	DSN       string
}

// NewPostgresContainer starts a PostgreSQL container with the schema applied.
// The container is terminated when the test finishes.
func NewPostgresContainer(ctx context.Context, t *testing.T) *PostgresContainer {
	t.Helper()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("phishguard"),
		postgres.WithUsername("phishguard"),
		postgres.WithPassword("phishguard"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	pc := &PostgresContainer{Container: pgContainer}
	t.Cleanup(func() { pc.cleanup(t) })

	pc.DSN, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	if err := pgutil.RunEmbeddedMigrations(pc.DSN, migrations.FS, migrations.PostgresDir, pgutil.Up); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	pc.Pool, err = pgutil.NewPool(ctx, pgutil.Config{URL: pc.DSN})
	if err != nil {
		t.Fatalf("failed to create pgxpool: %v", err)
	}

	return pc
}

// Truncate empties the given tables between subtests.
func (pc *PostgresContainer) Truncate(t *testing.T, tables ...string) {
	t.Helper()
	for _, table := range tables {
		if _, err := pc.Pool.Exec(context.Background(), "TRUNCATE "+table); err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}

func (pc *PostgresContainer) cleanup(t *testing.T) {
	t.Helper()

	if pc.Pool != nil {
		pc.Pool.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := pc.Container.Terminate(ctx); err != nil {
		t.Logf("warning: failed to terminate postgres container: %v", err)
	}
}
