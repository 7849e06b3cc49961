package document

import (
	"context"
	"testing"

	"medStudyBot/pkg/i18n"

	"github.com/stretchr/testify/require"
)

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()

	tr, err := i18n.NewTranslator(i18n.LocalesFS, "en")
	require.NoError(t, err)

	return tr
}

// fakeEngine wraps the html into a minimal pdf-like payload.
type fakeEngine struct {
	lastHTML string
	out      []byte
	err      error
}

func (e *fakeEngine) Render(_ context.Context, html []byte) ([]byte, error) {
	e.lastHTML = string(html)
	if e.err != nil {
		return nil, e.err
	}
	if e.out != nil {
		return e.out, nil
	}

	return append([]byte("%PDF-1.4\n"), html...), nil
}
