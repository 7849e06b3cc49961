package hydrate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medStudyBot/pkg/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceFetcherCachesDownloads(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = w.Write([]byte("edema\nanemia\n"))
	}))
	defer srv.Close()

	mr := miniredis.RunT(t)
	cache, err := storage.NewClient(&storage.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	defer cache.Close()

	f := SourceFetcher{Cache: cache, CacheTTL: time.Hour}
	url := srv.URL + "/wordlist.txt"

	for i := 0; i < 2; i++ {
		raw, err := f.Fetch(context.Background(), url)
		require.NoError(t, err)
		assert.Equal(t, "edema\nanemia\n", string(raw))
	}
	assert.Equal(t, 1, calls)
	assert.True(t, mr.Exists(storage.GenerateCacheKey("v1", "hydrate", "source", url)))

	raw, err := SourceFetcher{}.Fetch(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, "edema\nanemia\n", string(raw))
	assert.Equal(t, 2, calls)
}

func TestSourceFetcherHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := SourceFetcher{}.Fetch(context.Background(), srv.URL+"/missing.json")
	require.Error(t, err)
}
