package migrate

import (
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"medStudyBot/pkg/db"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openDB(t *testing.T) (*sqlx.DB, *gorm.DB) {
	t.Helper()

	conn, err := db.Open(&db.Config{
		File:        filepath.Join(t.TempDir(), "test.sqlite3"),
		BusyTimeout: time.Second,
		MaxOpenConn: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	orm, err := db.NewORM(conn)
	require.NoError(t, err)

	return conn, orm
}

func TestExecuteIsRepeatable(t *testing.T) {
	conn, orm := openDB(t)

	require.NoError(t, Execute(orm))
	require.NoError(t, Execute(orm))

	var ids []string
	require.NoError(t, conn.Select(&ids, "SELECT id FROM schema_migrations ORDER BY id"))
	assert.Equal(t, []string{"001_glossary", "002_hydration_runs"}, ids)

	var cnt int
	require.NoError(t, conn.Get(&cnt, "SELECT COUNT(*) FROM glossary_entries"))
	assert.Zero(t, cnt)
}

func TestExecuteSkipsUnversionedFiles(t *testing.T) {
	conn, orm := openDB(t)

	fsys := fstest.MapFS{
		"001_a.up.sql":   {Data: []byte("CREATE TABLE a (id INTEGER);")},
		"notes.up.sql":   {Data: []byte("garbage")},
		"002_b.down.sql": {Data: []byte("garbage")},
	}

	require.NoError(t, execute(orm, fsys))

	var cnt int
	require.NoError(t, conn.Get(&cnt, "SELECT COUNT(*) FROM a"))
}

func TestExecuteWithoutFiles(t *testing.T) {
	_, orm := openDB(t)

	require.NoError(t, execute(orm, fstest.MapFS{}))
}

func TestExecuteRollsBackBrokenMigration(t *testing.T) {
	conn, orm := openDB(t)

	fsys := fstest.MapFS{
		"001_ok.up.sql":     {Data: []byte("CREATE TABLE ok (id INTEGER);")},
		"002_broken.up.sql": {Data: []byte("CREATE TABLE half (id INTEGER); CREATE TABLE broken (;")},
	}

	err := execute(orm, fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "002_broken.up.sql")

	var ids []string
	require.NoError(t, conn.Select(&ids, "SELECT id FROM schema_migrations"))
	assert.Equal(t, []string{"001_ok"}, ids)

	var tables int
	require.NoError(t, conn.Get(&tables, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'half'"))
	assert.Zero(t, tables)
}
