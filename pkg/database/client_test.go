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

	"github.com/switchyard-ai/switchyard/ent"
	"github.com/switchyard-ai/switchyard/ent/agentswitch"
	"github.com/switchyard-ai/switchyard/ent/message"
	"github.com/switchyard-ai/switchyard/ent/pendingapproval"
)

// newTestClient creates a test database client with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to an external PostgreSQL service.
// In local dev: spins up a testcontainer with PostgreSQL.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string

	if ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
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

		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration is enough for package tests; production runs the
	// embedded SQL migrations instead.
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
}

func TestCascadeDelete(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// Session with one message, a context with one switch, and one pending approval
	sess, err := client.Session.Create().
		SetID("sess-cascade").
		SetUserID("user-1").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Message.Create().
		SetID("msg-1").
		SetSessionID(sess.ID).
		SetSequence(1).
		SetRole(message.RoleUser).
		SetContent("hello").
		Save(ctx)
	require.NoError(t, err)

	ac, err := client.AgentContext.Create().
		SetID("ctx-1").
		SetSessionID(sess.ID).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.AgentSwitch.Create().
		SetID("sw-1").
		SetContextID(ac.ID).
		SetFromAgent("orchestrator").
		SetToAgent("coder").
		SetReason("needs code changes").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.PendingApproval.Create().
		SetID("call-1").
		SetSessionID(sess.ID).
		SetToolName("write_file").
		SetArguments(map[string]interface{}{"path": "a.py"}).
		Save(ctx)
	require.NoError(t, err)

	// Hard delete the session; FK cascades must take everything with it
	err = client.Session.DeleteOneID(sess.ID).Exec(ctx)
	require.NoError(t, err)

	msgCount, err := client.Message.Query().Where(message.SessionID(sess.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, msgCount)

	ctxCount, err := client.AgentContext.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, ctxCount)

	swCount, err := client.AgentSwitch.Query().Where(agentswitch.ContextID(ac.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, swCount)

	paCount, err := client.PendingApproval.Query().Where(pendingapproval.SessionID(sess.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, paCount)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	clearEnv := func() {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
	}

	t.Run("defaults", func(t *testing.T) {
		clearEnv()
		t.Cleanup(clearEnv)

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "switchyard", cfg.User)
		assert.Equal(t, 20, cfg.MaxOpenConns)
		assert.Equal(t, 10, cfg.MaxIdleConns)
	})

	t.Run("custom values", func(t *testing.T) {
		clearEnv()
		t.Cleanup(clearEnv)
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_SSLMODE", "require")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "require", cfg.SSLMode)
	})

	t.Run("invalid port", func(t *testing.T) {
		clearEnv()
		t.Cleanup(clearEnv)
		os.Setenv("DB_PORT", "invalid")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}
