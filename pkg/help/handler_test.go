package help

import (
	"context"
	"testing"

	"medStudyBot/pkg/i18n"
	"medStudyBot/pkg/msg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticProvider string

func (p staticProvider) GetHelp(context.Context, *msg.Request) Result {
	return Result{Text: string(p)}
}

func TestHandle(t *testing.T) {
	tr, err := i18n.NewTranslator(i18n.LocalesFS, "en")
	require.NoError(t, err)

	h := &Handler{
		T:         tr,
		Providers: []Provider{staticProvider("/term - look up"), staticProvider(""), staticProvider("/pdf - pdf")},
	}

	resp, err := h.Handle(context.Background(), &msg.Request{Message: "/help"})
	require.NoError(t, err)

	assert.Equal(t, msg.Success, resp.Type)
	assert.Equal(t, "Available commands:\n/term - look up\n/pdf - pdf", resp.Message)
}
