package health

import (
	"context"
	"testing"
	"time"

	"medStudyBot/pkg/i18n"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckerRun(t *testing.T) {
	c := NewChecker(time.Second,
		Configured("telegram token", "123:abc"),
		Configured("telegraph", ""),
		Check{Name: "redis", Fn: func(context.Context) error { return errors.New("connection refused") }},
	)

	results := c.Run(context.Background())
	require.Len(t, results, 3)

	assert.Equal(t, "telegram token", results[0].Name)
	assert.True(t, results[0].OK())
	assert.True(t, results[1].Missing())
	assert.False(t, results[2].OK())
	assert.False(t, results[2].Missing())

	assert.False(t, Healthy(results))
	assert.True(t, Healthy(results[:2]))
}

func TestCheckerTimeout(t *testing.T) {
	c := NewChecker(20*time.Millisecond, Check{Name: "slow", Fn: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}})

	results := c.Run(context.Background())
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, context.DeadlineExceeded)
}

func TestHandler(t *testing.T) {
	tr, err := i18n.NewTranslator(i18n.LocalesFS, "en")
	require.NoError(t, err)

	h := &Handler{
		Checker: NewChecker(time.Second,
			Configured("telegram token", "x"),
			Configured("telegraph", ""),
			Check{Name: "database", Fn: func(context.Context) error { return errors.New("disk I/O error") }},
		),
		T: tr,
	}

	resp, err := h.Handle(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Health:\n• telegram token: ok\n• telegraph: missing\n• database: failed: disk I/O error", resp.Message)
}
