//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/pokehub/pokemon-review-service/internal/database"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dbURL := os.Getenv("POKEREVIEW_TEST_DB_URL")

	var container testcontainers.Container
	if dbURL == "" {
		pgc, err := tcpostgres.Run(ctx, "postgres:16-alpine",
			tcpostgres.WithDatabase("pokereview_test"),
			tcpostgres.WithUsername("pokereview_test"),
			tcpostgres.WithPassword("testpassword"),
			tcpostgres.BasicWaitStrategies(),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start postgres container: %v\n", err)
			os.Exit(1)
		}
		container = pgc

		dbURL, err = pgc.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to get postgres connection string: %v\n", err)
			_ = container.Terminate(ctx)
			os.Exit(1)
		}
	}

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to test database: %v\n", err)
		terminate(ctx, container)
		os.Exit(1)
	}

	if err := pool.Ping(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "test database ping failed: %v\n", err)
		pool.Close()
		terminate(ctx, container)
		os.Exit(1)
	}

	if err := database.EnsureSchema(ctx, pool, zerolog.Nop()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to apply schema: %v\n", err)
		pool.Close()
		terminate(ctx, container)
		os.Exit(1)
	}

	testPool = pool

	code := m.Run()

	pool.Close()
	terminate(context.Background(), container)
	os.Exit(code)
}

func terminate(ctx context.Context, container testcontainers.Container) {
	if container != nil {
		_ = container.Terminate(ctx)
	}
}

// cleanTable truncates the given tables between tests.
// Tables are truncated with CASCADE to handle foreign key dependencies.
func cleanTable(t *testing.T, tables ...string) {
	t.Helper()
	ctx := context.Background()
	for _, table := range tables {
		_, err := testPool.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}
