package glossary

import (
	"context"

	"medStudyBot/pkg/storage"

	"github.com/jmoiron/sqlx"
)

// BuildStore returns the sqlite store behind a cache, seeded when configured and empty.
// A nil cache gives the bare sqlite store.
func BuildStore(ctx context.Context, conn *sqlx.DB, cache storage.Client) (Store, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	e := cfg.Validate()
	if e.HasErrors() {
		return nil, e
	}

	var s Store = NewSQLStore(conn)
	if cache != nil {
		s = NewCachedStore(s, cache, cfg.CacheTTL)
	}

	if cfg.Seed {
		if _, err := Seed(ctx, s); err != nil {
			return nil, err
		}
	}

	return s, nil
}
