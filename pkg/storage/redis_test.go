package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

func newTestClient(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	cl, err := NewClient(&RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = cl.Close()
	})

	return cl, mr
}

func TestSaveLoad(t *testing.T) {
	cl, mr := newTestClient(t)
	ctx := context.Background()

	key := GenerateCacheKey("v1", "Glossary", "Entry", "edema")
	assert.Equal(t, "v1/glossary/entry/edema", key)

	require.NoError(t, cl.Save(ctx, key, payload{Term: "edema", Count: 2}, time.Minute))
	assert.True(t, mr.Exists(key))

	var got payload
	found, err := cl.Load(ctx, key, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Term: "edema", Count: 2}, got)

	mr.FastForward(2 * time.Minute)

	found, err = cl.Load(ctx, key, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDelete(t *testing.T) {
	cl, mr := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, cl.Write(ctx, "a", []byte("1"), 0))
	require.NoError(t, cl.Write(ctx, "b", []byte("2"), 0))
	require.NoError(t, cl.Delete(ctx, "a", "b"))
	require.NoError(t, cl.Delete(ctx))

	assert.False(t, mr.Exists("a"))
	assert.False(t, mr.Exists("b"))
}

func TestIncrWindow(t *testing.T) {
	cl, mr := newTestClient(t)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		cnt, err := cl.Incr(ctx, "rl/42", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, cnt)
	}

	assert.Equal(t, time.Minute, mr.TTL("rl/42"))

	mr.FastForward(time.Minute + time.Second)

	cnt, err := cl.Incr(ctx, "rl/42", time.Minute)
	require.NoError(t, err)
	assert.EqualValues(t, 1, cnt)
}

func TestFindKeys(t *testing.T) {
	cl, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, cl.Write(ctx, "v1/glossary/entry/a", []byte("1"), 0))
	require.NoError(t, cl.Write(ctx, "v1/glossary/entry/b", []byte("1"), 0))
	require.NoError(t, cl.Write(ctx, "v1/other", []byte("1"), 0))

	keys, err := cl.FindKeys(ctx, "v1/glossary/*")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"v1/glossary/entry/a", "v1/glossary/entry/b"}, keys)
}

func TestConfigValidate(t *testing.T) {
	cfg := &RedisConfig{DB: -1}
	e := cfg.Validate()
	assert.True(t, e.HasErrors())
	assert.Contains(t, e.Error(), "REDIS_ADDR")
	assert.Contains(t, e.Error(), "REDIS_DB")
}
