package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ragweave/maestro/ent"
)

// newTestClient creates a test database client with CI/local environment
// detection. In CI (when CI_DATABASE_URL is set) it connects to an external
// PostgreSQL service container; locally it spins up a testcontainer.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	connStr := os.Getenv("CI_DATABASE_URL")
	if connStr == "" {
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)
		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests instead of embedded SQL migrations.
	require.NoError(t, entClient.Schema.Create(ctx))
	require.NoError(t, CreateGINIndexes(ctx, drv))

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestDatabaseClientConnectionPool(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestFullTextSearchOnArchivedQueries(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	client := newTestClient(t)
	ctx := context.Background()

	now := time.Now().UTC()
	_, err := client.TaskHistory.Create().
		SetTaskID("t1").
		SetUserID("u1").
		SetQuery("why does compaction stall in the storage engine").
		SetTemplateName("deep_reasoning").
		SetPlan([]string{"intent", "retrieval", "reasoning", "moderation", "response_packaging"}).
		SetStatus("complete").
		SetStartedAt(now.Add(-time.Minute)).
		SetCompletedAt(now).
		SetDurationMs(60000).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.TaskHistory.Create().
		SetTaskID("t2").
		SetUserID("u1").
		SetQuery("current request rate limits").
		SetTemplateName("simple_lookup").
		SetPlan([]string{"retrieval", "response_packaging"}).
		SetStatus("complete").
		SetStartedAt(now.Add(-time.Minute)).
		SetCompletedAt(now).
		SetDurationMs(900).
		Save(ctx)
	require.NoError(t, err)

	rows, err := client.DB().QueryContext(ctx,
		`SELECT task_id FROM task_histories
		WHERE to_tsvector('english', query) @@ to_tsquery('english', $1)`,
		"compaction & storage",
	)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var taskID string
		require.NoError(t, rows.Scan(&taskID))
		results = append(results, taskID)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"t1"}, results)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
	}
	reset := func() {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
	}
	t.Cleanup(reset)

	reset()
	t.Setenv("DB_PASSWORD", "secret")
	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
	assert.Equal(t, "maestro", cfg.User)
	assert.Equal(t, "maestro", cfg.Database)
	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, 10, cfg.MaxIdleConns)

	reset()
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_PORT", "not-a-number")
	_, err = LoadConfigFromEnv()
	assert.ErrorContains(t, err, "invalid DB_PORT")

	reset()
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_CONN_MAX_LIFETIME", "bogus")
	_, err = LoadConfigFromEnv()
	assert.ErrorContains(t, err, "invalid DB_CONN_MAX_LIFETIME")

	reset()
	_, err = LoadConfigFromEnv()
	assert.ErrorContains(t, err, "DB_PASSWORD is required")
}

func TestConfigValidate(t *testing.T) {
	base := Config{
		Host: "localhost", Port: 5432, User: "m", Password: "p", Database: "m",
		MaxOpenConns: 10, MaxIdleConns: 5,
	}
	assert.NoError(t, base.Validate())

	noPass := base
	noPass.Password = ""
	assert.Error(t, noPass.Validate())

	idleOverOpen := base
	idleOverOpen.MaxIdleConns = 20
	assert.Error(t, idleOverOpen.Validate())

	zeroOpen := base
	zeroOpen.MaxOpenConns = 0
	assert.Error(t, zeroOpen.Validate())
}
