package database

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeRunsMigrationsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visitlog.db")

	db, err := Initialize(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, 1, count)

	// Second run is a no-op
	require.NoError(t, RunMigrations(db))
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, 1, count)

	_, err = db.Exec(`INSERT INTO visitor_log (timestamp, client_address, request_url, title, succeeded) VALUES (CURRENT_TIMESTAMP, '', '/', '', 1)`)
	assert.NoError(t, err)
}

func TestRunMigrationsInVersionOrder(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "order.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	fsys := fstest.MapFS{
		"migrations/002_add_column.sql": {Data: []byte("ALTER TABLE items ADD COLUMN name TEXT;")},
		"migrations/001_items.sql":      {Data: []byte("CREATE TABLE items (id INTEGER PRIMARY KEY);")},
	}

	require.NoError(t, runMigrations(db, fsys))

	_, err = db.Exec("INSERT INTO items (name) VALUES ('x')")
	assert.NoError(t, err)
}

func TestRunMigrationsRollsBackFailure(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "broken.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	fsys := fstest.MapFS{
		"migrations/001_broken.sql": {Data: []byte("CREATE TABLE oops (")},
	}

	err = runMigrations(db, fsys)
	assert.ErrorContains(t, err, "001_broken.sql")

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Zero(t, count)
}

func TestRunMigrationsWithoutFiles(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	assert.ErrorContains(t, runMigrations(db, fstest.MapFS{}), "no migration files found")
}
