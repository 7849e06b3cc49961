package glossary

import (
	"context"
)

// Store maps term keys to entries. A miss is (nil, nil).
type Store interface {
	Get(ctx context.Context, term string) (*Entry, error)
	GetMany(ctx context.Context, keys []string) ([]Entry, error)
	Upsert(ctx context.Context, entry Entry) error
	BulkUpsert(ctx context.Context, entries []Entry) (int, error)
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, offset, limit int) ([]Entry, error)
	Search(ctx context.Context, prefix string, limit int) ([]Entry, error)
}
