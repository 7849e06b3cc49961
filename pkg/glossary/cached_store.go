package glossary

import (
	"context"
	"time"

	"medStudyBot/pkg/metrics"
	"medStudyBot/pkg/storage"

	"github.com/sirupsen/logrus"
)

const (
	cacheVersion = "v1"
	cacheName    = "glossary"
)

func cacheKey(termKey string) string {
	return storage.GenerateCacheKey(cacheVersion, cacheName, "entry", termKey)
}

// CachedStore reads entries through a cache, writes invalidate the touched keys.
// Cache failures are logged and never fail the call.
type CachedStore struct {
	Store
	cache storage.Client
	ttl   time.Duration
}

func NewCachedStore(s Store, cache storage.Client, ttl time.Duration) *CachedStore {
	return &CachedStore{
		Store: s,
		cache: cache,
		ttl:   ttl,
	}
}

func (s *CachedStore) Get(ctx context.Context, term string) (*Entry, error) {
	log := logrus.WithContext(ctx)
	cacheCtx := storage.WithoutContentLogging(ctx)

	key := NormalizeTerm(term)
	if key == "" {
		return nil, nil
	}

	var cached Entry
	found, err := s.cache.Load(cacheCtx, cacheKey(key), &cached)
	switch {
	case err != nil:
		log.Warnf("glossary cache read failed for %q: %v", key, err)
		metrics.IncCacheRequest(cacheName, "error")
	case found:
		metrics.IncCacheRequest(cacheName, "hit")
		return &cached, nil
	default:
		metrics.IncCacheRequest(cacheName, "miss")
	}

	entry, err := s.Store.Get(ctx, key)
	if err != nil || entry == nil {
		return entry, err
	}

	err = s.cache.Save(cacheCtx, cacheKey(key), entry, s.ttl)
	if err != nil {
		log.Warnf("glossary cache write failed for %q: %v", key, err)
	}

	return entry, nil
}

func (s *CachedStore) Upsert(ctx context.Context, entry Entry) error {
	err := s.Store.Upsert(ctx, entry)
	if err != nil {
		return err
	}

	s.invalidate(ctx, []Entry{entry})

	return nil
}

func (s *CachedStore) BulkUpsert(ctx context.Context, entries []Entry) (int, error) {
	n, err := s.Store.BulkUpsert(ctx, entries)
	if err != nil {
		return n, err
	}

	s.invalidate(ctx, entries)

	return n, nil
}

func (s *CachedStore) invalidate(ctx context.Context, entries []Entry) {
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if key := NormalizeTerm(e.Term); key != "" {
			keys = append(keys, cacheKey(key))
		}
	}

	err := s.cache.Delete(ctx, keys...)
	if err != nil {
		logrus.WithContext(ctx).Warnf("failed to invalidate %d glossary cache keys: %v", len(keys), err)
	}
}
