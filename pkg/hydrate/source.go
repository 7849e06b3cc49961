package hydrate

import (
	"context"
	"os"
	"strings"
	"time"

	"medStudyBot/pkg/rest"
	"medStudyBot/pkg/storage"

	"github.com/pkg/errors"
)

type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// SourceFetcher reads local files and http(s) URLs. With a cache and a positive CacheTTL
// downloaded bodies are kept in redis.
type SourceFetcher struct {
	Cache    storage.Client
	CacheTTL time.Duration
}

func IsURL(location string) bool {
	l := strings.ToLower(location)

	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

func (f SourceFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	if IsURL(location) {
		var raw []byte
		req := rest.NewRequester(location, &raw)
		if f.Cache != nil && f.CacheTTL > 0 {
			key := storage.GenerateCacheKey("v1", "hydrate", "source", location)
			req = req.WithCache(key, f.Cache, f.CacheTTL)
		}

		err := req.Request(storage.WithoutContentLogging(ctx))
		if err != nil {
			return nil, err
		}

		return raw, nil
	}

	raw, err := os.ReadFile(location)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %q", location)
	}

	return raw, nil
}
