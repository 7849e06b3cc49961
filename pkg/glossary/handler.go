package glossary

import (
	"context"
	"fmt"
	"html"
	"strings"

	"medStudyBot/pkg/help"
	"medStudyBot/pkg/i18n"
	"medStudyBot/pkg/metrics"
	"medStudyBot/pkg/msg"
	"medStudyBot/pkg/utils"

	"github.com/pkg/errors"
)

const (
	suggestionsLimit   = 5
	suggestionMinRunes = 3
	listDefinitionMax  = 200
)

// FormatEntryHTML renders an entry as a telegram HTML message.
func FormatEntryHTML(t i18n.Localizer, e *Entry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<b>%s</b>", html.EscapeString(e.Term))
	if e.TranslatedTerm != "" {
		fmt.Fprintf(&b, "\n<b>%s:</b> %s", t.T("term.translation"), html.EscapeString(e.TranslatedTerm))
	}
	if e.Definition != "" {
		fmt.Fprintf(&b, "\n<b>%s:</b> %s", t.T("term.definition"), html.EscapeString(e.Definition))
	}
	if e.Category != "" {
		fmt.Fprintf(&b, "\n<i>%s: %s</i>", t.T("term.category"), html.EscapeString(e.Category))
	}

	return b.String()
}

func formatListItem(e Entry) string {
	line := "• " + e.Term
	if e.TranslatedTerm != "" {
		line += " — " + e.TranslatedTerm
	}
	if e.Definition != "" {
		line += ": " + utils.Shorten(e.Definition, listDefinitionMax)
	}

	return line
}

type LookupHandler struct {
	Store Store
	T     i18n.Localizer
}

func (h *LookupHandler) GetHelp(context.Context, *msg.Request) help.Result {
	return help.Result{Text: h.T.T("help.term")}
}

func (h *LookupHandler) Handle(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	term := req.Arg()
	if NormalizeTerm(term) == "" {
		return msg.NewSuccessResponse(h.T.T("term.usage")), nil
	}

	entry, err := h.Store.Get(ctx, term)
	if err != nil {
		metrics.IncLookup("error")
		return msg.NewErrorResponse(h.T.T("common.storage_failed")), err
	}

	if entry != nil {
		metrics.IncLookup("hit")
		return msg.NewHTMLResponse(FormatEntryHTML(h.T, entry)), nil
	}

	metrics.IncLookup("miss")

	reply := h.T.T("term.not_found", term)

	suggestions, err := h.suggest(ctx, term)
	if err != nil {
		return msg.NewSuccessResponse(reply), errors.Wrap(err, "failed to build suggestions")
	}

	if len(suggestions) > 0 {
		reply += "\n" + h.T.T("term.suggestions")
		for _, s := range suggestions {
			reply += "\n• " + s.Term
		}
	}

	return msg.NewSuccessResponse(reply), nil
}

func (h *LookupHandler) suggest(ctx context.Context, term string) ([]Entry, error) {
	res, err := h.Store.Search(ctx, term, suggestionsLimit)
	if err != nil || len(res) > 0 {
		return res, err
	}

	key := []rune(NormalizeTerm(term))
	if len(key) <= suggestionMinRunes {
		return nil, nil
	}

	return h.Store.Search(ctx, string(key[:suggestionMinRunes]), suggestionsLimit)
}

// DetectHandler lists glossary terms found in a text, it serves plain messages as well.
type DetectHandler struct {
	Store Store
	T     i18n.Localizer
	Limit int
}

func (h *DetectHandler) GetHelp(context.Context, *msg.Request) help.Result {
	return help.Result{Text: h.T.T("help.terms")}
}

func (h *DetectHandler) Handle(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	text := req.Arg()
	if strings.TrimSpace(text) == "" {
		return msg.NewSuccessResponse(h.T.T("terms.usage")), nil
	}

	found, err := FindInText(ctx, h.Store, text, h.Limit)
	if err != nil {
		return msg.NewErrorResponse(h.T.T("common.storage_failed")), err
	}

	if len(found) == 0 {
		return msg.NewSuccessResponse(h.T.T("terms.none")), nil
	}

	lines := []string{h.T.T("terms.found", len(found))}
	for _, e := range found {
		lines = append(lines, formatListItem(e))
	}

	return msg.NewSuccessResponse(strings.Join(lines, "\n")), nil
}

type StatsHandler struct {
	Store Store
	T     i18n.Localizer
}

func (h *StatsHandler) GetHelp(context.Context, *msg.Request) help.Result {
	return help.Result{Text: h.T.T("help.stats")}
}

func (h *StatsHandler) Handle(ctx context.Context, _ *msg.Request) (*msg.Response, error) {
	cnt, err := h.Store.Count(ctx)
	if err != nil {
		return msg.NewErrorResponse(h.T.T("common.storage_failed")), err
	}

	return msg.NewSuccessResponse(h.T.T("stats.reply", cnt)), nil
}

// ManualSource marks entries written with /addterm.
const ManualSource = "manual"

const editFieldSeparator = "|"

// parseEditArg reads "term | translation | definition | category", trailing fields are optional.
func parseEditArg(arg string) (Entry, bool) {
	fields := strings.SplitN(arg, editFieldSeparator, 4)
	for len(fields) < 4 {
		fields = append(fields, "")
	}

	e := NewEntry(fields[0], fields[1], fields[2])
	e.Category = strings.TrimSpace(fields[3])
	e.Source = ManualSource

	if e.Key == "" || e.TranslatedTerm+e.Definition+e.Category == "" {
		return Entry{}, false
	}

	return e, true
}

// EditHandler creates or updates a glossary entry, only admins reach it.
type EditHandler struct {
	Store Store
	T     i18n.Localizer
}

func (h *EditHandler) GetHelp(context.Context, *msg.Request) help.Result {
	return help.Result{Text: h.T.T("help.addterm")}
}

func (h *EditHandler) Handle(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	entry, ok := parseEditArg(req.Arg())
	if !ok {
		return msg.NewSuccessResponse(h.T.T("addterm.usage")), nil
	}

	if err := h.Store.Upsert(ctx, entry); err != nil {
		return msg.NewErrorResponse(h.T.T("common.storage_failed")), err
	}

	saved, err := h.Store.Get(ctx, entry.Key)
	if err != nil {
		return msg.NewErrorResponse(h.T.T("common.storage_failed")), err
	}
	if saved == nil {
		return msg.NewErrorResponse(h.T.T("common.unexpected")), errors.Errorf("glossary entry %q missing after upsert", entry.Key)
	}

	return msg.NewHTMLResponse(h.T.T("addterm.saved") + "\n" + FormatEntryHTML(h.T, saved)), nil
}
