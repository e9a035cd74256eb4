//go:build integration

package styled

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"
)

// setupPostgresContainer starts an ephemeral PostgreSQL container and
// returns its connection string.
func setupPostgresContainer(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:15",
		postgres.WithDatabase("styled_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")
	return connStr
}

func TestPostgres_E2E_Conformance(t *testing.T) {
	connStr := setupPostgresContainer(t)

	// Each subtest gets its own tables so state does not leak between them.
	var n int
	runStorageConformance(t, func(t *testing.T) SheetStorage {
		n++
		storage, err := NewPostgresStorage(PostgresConfig{
			ConnectionString: connStr,
			TablePrefix:      "conf" + string(rune('a'+n)) + "_",
			AutoMigrate:      true,
			Logger:           zaptest.NewLogger(t),
		})
		require.NoError(t, err)
		t.Cleanup(func() { _ = storage.Close() })
		return storage
	})
}

func TestPostgres_E2E_Migrations(t *testing.T) {
	connStr := setupPostgresContainer(t)
	ctx := context.Background()

	storage, err := NewPostgresStorage(PostgresConfig{ConnectionString: connStr})
	require.NoError(t, err)
	defer storage.Close()

	require.NoError(t, storage.RunMigrations(ctx))
	version, err := storage.CurrentSchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(storage.migrations()), version)

	// Re-running is a no-op.
	require.NoError(t, storage.RunMigrations(ctx))
	again, err := storage.CurrentSchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, version, again)
}

func TestPostgres_E2E_DriverOpen(t *testing.T) {
	connStr := setupPostgresContainer(t)
	ctx := context.Background()

	storage, err := OpenStorage(StorageDriverNamePostgres, connStr)
	require.NoError(t, err)
	defer storage.Close()

	sheet := NewSheet()
	_, err = sheet.Compile(CSS("padding: 4px;", "&:hover { color: red; }"))
	require.NoError(t, err)

	require.NoError(t, storage.Save(ctx, sheet.Snapshot("buttons")))

	loaded, err := storage.Get(ctx, "buttons")
	require.NoError(t, err)
	assert.Equal(t, sheet.Classes(), loaded.Classes())

	restored := NewSheet()
	require.NoError(t, restored.Hydrate(loaded))
	assert.Equal(t, sheet.CSS(), restored.CSS())
}
