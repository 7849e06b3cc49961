package health

import (
	"context"
	"strings"

	"medStudyBot/pkg/help"
	"medStudyBot/pkg/i18n"
	"medStudyBot/pkg/msg"
)

type Handler struct {
	Checker *Checker
	T       i18n.Localizer
}

func (h *Handler) GetHelp(context.Context, *msg.Request) help.Result {
	return help.Result{Text: h.T.T("help.health")}
}

func (h *Handler) Handle(ctx context.Context, _ *msg.Request) (*msg.Response, error) {
	lines := []string{h.T.T("health.title")}
	for _, r := range h.Checker.Run(ctx) {
		lines = append(lines, "• "+r.Name+": "+h.status(r))
	}

	return msg.NewSuccessResponse(strings.Join(lines, "\n")), nil
}

func (h *Handler) status(r Result) string {
	switch {
	case r.OK():
		return h.T.T("health.ok")
	case r.Missing():
		return h.T.T("health.missing")
	default:
		return h.T.T("health.failed", r.Err.Error())
	}
}
