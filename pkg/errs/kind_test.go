package errs

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindOfWrappedChain(t *testing.T) {
	base := errors.New("disk I/O error")
	err := Wrapf(KindStorage, base, "failed to upsert %q", "edema")
	outer := errors.Wrap(err, "hydration batch")

	assert.Equal(t, KindStorage, KindOf(outer))
	assert.True(t, IsRetryable(outer))
	assert.Contains(t, outer.Error(), "disk I/O error")
	assert.True(t, errors.Is(outer, base))
}

func TestRetryableByKind(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.False(t, IsRetryable(errors.New("plain")))
	assert.False(t, IsRetryable(New(KindRender, "wkhtmltopdf not found")))
	assert.False(t, IsRetryable(New(KindInputTooLarge, "too large")))
	assert.True(t, IsRetryable(New(KindPublish, "timeout")))
	assert.False(t, IsRetryable(Permanent(KindPublish, errors.New("ACCESS_TOKEN_INVALID"))))
}

func TestMulti(t *testing.T) {
	m := NewMulti()
	assert.NoError(t, m.ErrOrNil())

	m.Add(nil)
	m.Err("TELEGRAM_ACCESS_TOKEN cannot be empty")

	other := NewMulti()
	other.Errf("DOCUMENT_MAX_TEXT_CHARS must be positive, got %d", 0)
	m.Add(other)

	assert.True(t, m.HasErrors())
	assert.Equal(t, "TELEGRAM_ACCESS_TOKEN cannot be empty; DOCUMENT_MAX_TEXT_CHARS must be positive, got 0", m.Error())
	assert.NotNil(t, m.StackTrace())
}
