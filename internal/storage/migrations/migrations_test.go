package migrations

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	createWidgets = Migration{
		Version:     1,
		Description: "Add widgets table",
		Up:          `CREATE TABLE widgets (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`,
		Down:        `DROP TABLE widgets`,
	}
	indexWidgets = Migration{
		Version:     2,
		Description: "Index widget names",
		Up:          `CREATE INDEX idx_widgets_name ON widgets(name)`,
		Down:        `DROP INDEX idx_widgets_name`,
	}
)

func openMemory(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestApplyAndRollback(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t)

	// registered out of order on purpose
	manager := NewManager(indexWidgets, createWidgets)
	require.NoError(t, manager.Apply(ctx, db))

	version, err := Version(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 2, version)
	assert.Equal(t, 2, manager.Latest())

	_, err = db.Exec("INSERT INTO widgets (id, name) VALUES (1, 'gear')")
	require.NoError(t, err)

	require.NoError(t, manager.Rollback(ctx, db))
	version, err = Version(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	require.NoError(t, manager.Rollback(ctx, db))
	_, err = db.Exec("INSERT INTO widgets (id, name) VALUES (2, 'cog')")
	assert.Error(t, err, "widgets table should have been dropped")

	err = manager.Rollback(ctx, db)
	assert.ErrorContains(t, err, "no migrations to rollback")
}

func TestApplyIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t)
	manager := NewManager(createWidgets, indexWidgets)

	require.NoError(t, manager.Apply(ctx, db))
	require.NoError(t, manager.Apply(ctx, db))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&count))
	assert.Equal(t, 2, count)
}

func TestApplyFailureLeavesVersion(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t)

	broken := Migration{Version: 2, Description: "Broken", Up: `CREATE TABLE widgets (`}
	err := NewManager(createWidgets, broken).Apply(ctx, db)
	assert.ErrorContains(t, err, "failed to apply migration 2")

	version, err := Version(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestApplyDuplicateVersion(t *testing.T) {
	err := NewManager(createWidgets, createWidgets).Apply(context.Background(), openMemory(t))
	assert.ErrorContains(t, err, "migration 1 registered twice")
}

func TestMigrationOrdering(t *testing.T) {
	manager := NewManager(
		Migration{Version: 3, Description: "Third"},
		Migration{Version: 1, Description: "First"},
		Migration{Version: 2, Description: "Second"},
	)
	manager.sortMigrations()

	var versions []int
	for _, m := range manager.migrations {
		versions = append(versions, m.Version)
	}
	assert.Equal(t, []int{1, 2, 3}, versions)
}
