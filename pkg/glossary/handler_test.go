package glossary

import (
	"context"
	"testing"

	"medStudyBot/pkg/msg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *SQLStore {
	t.Helper()

	s := newTestStore(t)
	_, err := Seed(context.Background(), s)
	require.NoError(t, err)

	return s
}

func TestLookupHandler(t *testing.T) {
	h := &LookupHandler{Store: seededStore(t), T: newTranslator(t)}
	ctx := context.Background()

	resp, err := h.Handle(ctx, &msg.Request{Message: "/term odds <ratio>"})
	require.NoError(t, err)
	assert.Contains(t, resp.Message, `not found`)
	assert.Contains(t, resp.Message, "Did you mean:\n• Odds Ratio")

	resp, err = h.Handle(ctx, &msg.Request{Message: "/t odds ratio"})
	require.NoError(t, err)
	assert.Equal(t, msg.OutputFormatHTML, resp.Options.GetFormat())
	assert.Contains(t, resp.Message, "<b>Odds Ratio</b>")
	assert.Contains(t, resp.Message, "نسبة الأرجحية")

	resp, err = h.Handle(ctx, &msg.Request{Message: "/term"})
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "/term edema")
}

func TestLookupHandlerMissWithoutSuggestions(t *testing.T) {
	h := &LookupHandler{Store: seededStore(t), T: newTranslator(t)}

	resp, err := h.Handle(context.Background(), &msg.Request{Message: "/term unknown-term"})
	require.NoError(t, err)
	assert.Equal(t, msg.Success, resp.Type)
	assert.Equal(t, `No glossary entry found for "unknown-term".`, resp.Message)
}

func TestLookupHandlerStorageFailure(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.conn.Close())

	h := &LookupHandler{Store: s, T: newTranslator(t)}

	resp, err := h.Handle(context.Background(), &msg.Request{Message: "/term bias"})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, msg.Error, resp.Type)
	assert.Contains(t, resp.Message, "temporarily unavailable")
}

func TestDetectHandler(t *testing.T) {
	h := &DetectHandler{Store: seededStore(t), T: newTranslator(t)}
	ctx := context.Background()

	resp, err := h.Handle(ctx, &msg.Request{Message: "Prevalence differs from incidence."})
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "Found 2 glossary terms:")
	assert.Contains(t, resp.Message, "• Prevalence — الانتشار: ")
	assert.Contains(t, resp.Message, "• Incidence — الحدوث: ")

	resp, err = h.Handle(ctx, &msg.Request{Message: "/terms hello world"})
	require.NoError(t, err)
	assert.Equal(t, "No known medical terms found in the text.", resp.Message)

	resp, err = h.Handle(ctx, &msg.Request{Message: "/terms"})
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "/terms cohort study")
}

func TestStatsHandler(t *testing.T) {
	h := &StatsHandler{Store: seededStore(t), T: newTranslator(t)}

	resp, err := h.Handle(context.Background(), &msg.Request{Message: "/stats"})
	require.NoError(t, err)
	assert.Equal(t, "Glossary entries: 15", resp.Message)
}

func TestEditHandler(t *testing.T) {
	s := seededStore(t)
	h := &EditHandler{Store: s, T: newTranslator(t)}
	ctx := context.Background()

	for _, in := range []string{"/addterm", "/addterm Edema", "/addterm | تورم | swelling", "/addterm Edema | | "} {
		resp, err := h.Handle(ctx, &msg.Request{Message: in})
		require.NoError(t, err, in)
		assert.Contains(t, resp.Message, "/addterm Edema |", in)
	}

	cnt, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15, cnt)

	resp, err := h.Handle(ctx, &msg.Request{Message: "/addterm Edema | تورم | Swelling caused by <fluid>. | pathology"})
	require.NoError(t, err)
	assert.Equal(t, msg.OutputFormatHTML, resp.Options.GetFormat())
	assert.Contains(t, resp.Message, "Saved:\n<b>Edema</b>")
	assert.Contains(t, resp.Message, "Swelling caused by &lt;fluid&gt;.")

	e, err := s.Get(ctx, "edema")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "تورم", e.TranslatedTerm)
	assert.Equal(t, "pathology", e.Category)
	assert.Equal(t, ManualSource, e.Source)

	_, err = h.Handle(ctx, &msg.Request{Message: "/addterm edema | وذمة"})
	require.NoError(t, err)

	e, err = s.Get(ctx, "Edema")
	require.NoError(t, err)
	assert.Equal(t, "وذمة", e.TranslatedTerm)
	assert.Equal(t, "Swelling caused by <fluid>.", e.Definition)
}

func TestEditHandlerStorageFailure(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.conn.Close())

	h := &EditHandler{Store: s, T: newTranslator(t)}

	resp, err := h.Handle(context.Background(), &msg.Request{Message: "/addterm Bias | انحياز"})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, msg.Error, resp.Type)
}
