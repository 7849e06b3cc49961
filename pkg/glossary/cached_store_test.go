package glossary

import (
	"context"
	"testing"
	"time"

	"medStudyBot/pkg/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCachedStore(t *testing.T) (*CachedStore, *SQLStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	cl, err := storage.NewClient(&storage.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = cl.Close()
	})

	base := newTestStore(t)

	return NewCachedStore(base, cl, time.Hour), base, mr
}

func TestCachedGetReadsThrough(t *testing.T) {
	s, base, mr := newCachedStore(t)
	ctx := context.Background()

	require.NoError(t, base.Upsert(ctx, NewEntry("Edema", "تورم", "Swelling caused by fluid.")))

	e, err := s.Get(ctx, "EDEMA")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.True(t, mr.Exists(cacheKey("edema")))
	assert.Equal(t, time.Hour, mr.TTL(cacheKey("edema")))

	_, err = base.conn.Exec("DELETE FROM glossary_entries")
	require.NoError(t, err)

	cached, err := s.Get(ctx, "edema")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "تورم", cached.TranslatedTerm)
}

func TestCachedMissIsNotCached(t *testing.T) {
	s, _, mr := newCachedStore(t)

	e, err := s.Get(context.Background(), "unknown-term")
	require.NoError(t, err)
	assert.Nil(t, e)
	assert.False(t, mr.Exists(cacheKey("unknown-term")))
}

func TestCachedUpsertInvalidates(t *testing.T) {
	s, _, mr := newCachedStore(t)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, NewEntry("Bias", "انحياز", "old")))
	_, err := s.Get(ctx, "bias")
	require.NoError(t, err)
	assert.True(t, mr.Exists(cacheKey("bias")))

	require.NoError(t, s.Upsert(ctx, NewEntry("Bias", "", "new")))
	assert.False(t, mr.Exists(cacheKey("bias")))

	e, err := s.Get(ctx, "bias")
	require.NoError(t, err)
	assert.Equal(t, "new", e.Definition)

	n, err := s.BulkUpsert(ctx, []Entry{NewEntry("Bias", "", "newer")})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.False(t, mr.Exists(cacheKey("bias")))
}

func TestCachedFallsBackWhenCacheIsDown(t *testing.T) {
	s, base, mr := newCachedStore(t)
	ctx := context.Background()

	require.NoError(t, base.Upsert(ctx, NewEntry("Validity", "الصِدق", "def")))
	mr.Close()

	e, err := s.Get(ctx, "validity")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "Validity", e.Term)

	require.NoError(t, s.Upsert(ctx, NewEntry("Validity", "", "def2")))
}
