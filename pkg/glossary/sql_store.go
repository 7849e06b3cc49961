package glossary

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"medStudyBot/pkg/errs"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	entryColumns = "term_key, term, translated_term, definition, category, source, updated_at"

	// Empty incoming translation/definition/category keep the stored ones.
	// Rows without an actual change are left alone, updated_at included.
	upsertQuery = `
		INSERT INTO glossary_entries (term_key, term, translated_term, definition, category, source, updated_at)
		VALUES (:term_key, :term, :translated_term, :definition, :category, :source, :updated_at)
		ON CONFLICT(term_key) DO UPDATE SET
			term = excluded.term,
			translated_term = COALESCE(NULLIF(excluded.translated_term, ''), glossary_entries.translated_term),
			definition = COALESCE(NULLIF(excluded.definition, ''), glossary_entries.definition),
			category = COALESCE(NULLIF(excluded.category, ''), glossary_entries.category),
			source = COALESCE(NULLIF(excluded.source, ''), glossary_entries.source),
			updated_at = excluded.updated_at
		WHERE glossary_entries.term <> excluded.term
			OR (excluded.translated_term <> '' AND excluded.translated_term <> glossary_entries.translated_term)
			OR (excluded.definition <> '' AND excluded.definition <> glossary_entries.definition)
			OR (excluded.category <> '' AND excluded.category <> glossary_entries.category)
			OR (excluded.source <> '' AND excluded.source <> glossary_entries.source)
	`

	getManyChunk = 500
)

type SQLStore struct {
	conn *sqlx.DB
	now  func() time.Time
}

func NewSQLStore(conn *sqlx.DB) *SQLStore {
	return &SQLStore{
		conn: conn,
		now:  time.Now,
	}
}

func (s *SQLStore) Get(ctx context.Context, term string) (*Entry, error) {
	key := NormalizeTerm(term)
	if key == "" {
		return nil, nil
	}

	var e Entry
	err := s.conn.GetContext(ctx, &e, "SELECT "+entryColumns+" FROM glossary_entries WHERE term_key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrapf(errs.KindStorage, err, "failed to read glossary entry %q", key)
	}

	return &e, nil
}

func (s *SQLStore) GetMany(ctx context.Context, keys []string) ([]Entry, error) {
	res := make([]Entry, 0, len(keys))

	for start := 0; start < len(keys); start += getManyChunk {
		end := start + getManyChunk
		if end > len(keys) {
			end = len(keys)
		}

		query, args, err := sqlx.In("SELECT "+entryColumns+" FROM glossary_entries WHERE term_key IN (?)", keys[start:end])
		if err != nil {
			return nil, errors.Wrap(err, "failed to build glossary query")
		}

		var chunk []Entry
		err = s.conn.SelectContext(ctx, &chunk, s.conn.Rebind(query), args...)
		if err != nil {
			return nil, errs.Wrapf(errs.KindStorage, err, "failed to read %d glossary entries", end-start)
		}

		res = append(res, chunk...)
	}

	return res, nil
}

func (s *SQLStore) Upsert(ctx context.Context, entry Entry) error {
	entry.Normalize()
	if entry.Key == "" {
		return errors.New("glossary entry without term")
	}

	entry.UpdatedAt = s.now().UTC()

	_, err := s.conn.NamedExecContext(ctx, upsertQuery, entry)
	if err != nil {
		return errs.Wrapf(errs.KindStorage, err, "failed to upsert glossary entry %q", entry.Key)
	}

	return nil
}

// BulkUpsert writes all valid entries in one transaction and returns how many were written.
func (s *SQLStore) BulkUpsert(ctx context.Context, entries []Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return 0, errs.Wrapf(errs.KindStorage, err, "failed to start glossary transaction")
	}

	stmt, err := tx.PrepareNamedContext(ctx, upsertQuery)
	if err != nil {
		_ = tx.Rollback()
		return 0, errs.Wrapf(errs.KindStorage, err, "failed to prepare glossary upsert")
	}
	defer stmt.Close()

	now := s.now().UTC()
	count := 0
	for _, entry := range entries {
		entry.Normalize()
		if entry.Key == "" {
			continue
		}
		entry.UpdatedAt = now

		if _, err := stmt.ExecContext(ctx, entry); err != nil {
			_ = tx.Rollback()
			return 0, errs.Wrapf(errs.KindStorage, err, "failed to upsert glossary entry %q", entry.Key)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, errs.Wrapf(errs.KindStorage, err, "failed to commit %d glossary entries", count)
	}

	logrus.WithContext(ctx).Debugf("upserted %d glossary entries", count)

	return count, nil
}

func (s *SQLStore) Count(ctx context.Context) (int, error) {
	var cnt int
	err := s.conn.GetContext(ctx, &cnt, "SELECT COUNT(*) FROM glossary_entries")
	if err != nil {
		return 0, errs.Wrapf(errs.KindStorage, err, "failed to count glossary entries")
	}

	return cnt, nil
}

func (s *SQLStore) List(ctx context.Context, offset, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}

	var res []Entry
	err := s.conn.SelectContext(
		ctx,
		&res,
		"SELECT "+entryColumns+" FROM glossary_entries ORDER BY term_key LIMIT ? OFFSET ?",
		limit,
		offset,
	)
	if err != nil {
		return nil, errs.Wrapf(errs.KindStorage, err, "failed to list glossary entries")
	}

	return res, nil
}

func (s *SQLStore) Search(ctx context.Context, prefix string, limit int) ([]Entry, error) {
	key := NormalizeTerm(prefix)
	if key == "" || limit <= 0 {
		return nil, nil
	}

	var res []Entry
	err := s.conn.SelectContext(
		ctx,
		&res,
		"SELECT "+entryColumns+` FROM glossary_entries WHERE term_key LIKE ? ESCAPE '\' ORDER BY term_key LIMIT ?`,
		escapeLike(key)+"%",
		limit,
	)
	if err != nil {
		return nil, errs.Wrapf(errs.KindStorage, err, "failed to search glossary entries by %q", key)
	}

	return res, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
