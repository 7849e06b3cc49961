package glossary

import (
	"path/filepath"
	"testing"
	"time"

	"medStudyBot/pkg/db"
	"medStudyBot/pkg/i18n"
	"medStudyBot/pkg/migrate"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLStore {
	t.Helper()

	conn, err := db.Open(&db.Config{
		File:        filepath.Join(t.TempDir(), "glossary.sqlite3"),
		BusyTimeout: time.Second,
		MaxOpenConn: 2,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	orm, err := db.NewORM(conn)
	require.NoError(t, err)
	require.NoError(t, migrate.Execute(orm))

	return NewSQLStore(conn)
}

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()

	tr, err := i18n.NewTranslator(i18n.LocalesFS, "en")
	require.NoError(t, err)

	return tr
}
