package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medStudyBot/pkg/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echo struct {
	Method string `json:"method"`
	Auth   string `json:"auth"`
	Name   string `json:"name"`
}

func echoServer(t *testing.T, calls *int) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++

		in := map[string]string{}
		_ = json.NewDecoder(r.Body).Decode(&in)

		_ = json.NewEncoder(w).Encode(echo{Method: r.Method, Auth: r.Header.Get("Authorization"), Name: in["name"]})
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestRequestJSON(t *testing.T) {
	calls := 0
	srv := echoServer(t, &calls)

	var out echo
	err := NewRequester(srv.URL, &out).
		WithPOST().
		WithBearer("secret").
		WithInput(map[string]string{"name": "edema"}).
		Request(context.Background())
	require.NoError(t, err)

	assert.Equal(t, echo{Method: http.MethodPost, Auth: "Bearer secret", Name: "edema"}, out)
	assert.Equal(t, 1, calls)
}

func TestRequestRaw(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("edema\nbias\n"))
	}))
	defer srv.Close()

	var raw []byte
	require.NoError(t, NewRequester(srv.URL, &raw).Request(context.Background()))
	assert.Equal(t, "edema\nbias\n", string(raw))
}

func TestRequestStatusError(t *testing.T) {
	code := http.StatusBadGateway
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	var out echo
	err := NewRequester(srv.URL, &out).Request(context.Background())
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadGateway, se.Code)
	assert.Equal(t, "upstream down", se.Body)
	assert.True(t, se.Temporary())

	code = http.StatusUnauthorized
	err = NewRequester(srv.URL, &out).Request(context.Background())
	require.True(t, errors.As(err, &se))
	assert.False(t, se.Temporary())
}

func TestRequestCache(t *testing.T) {
	calls := 0
	srv := echoServer(t, &calls)

	mr := miniredis.RunT(t)
	cl, err := storage.NewClient(&storage.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		var out echo
		err := NewRequester(srv.URL, &out).
			WithCache("v1/test/echo", cl, time.Minute).
			Request(context.Background())
		require.NoError(t, err)
		assert.Equal(t, http.MethodGet, out.Method)
	}

	assert.Equal(t, 1, calls)
	assert.True(t, mr.Exists("v1/test/echo"))
}
