package help

import (
	"context"
	"strings"

	"medStudyBot/pkg/i18n"
	"medStudyBot/pkg/msg"
)

type Result struct {
	Text string
}

type Provider interface {
	GetHelp(ctx context.Context, req *msg.Request) Result
}

type Handler struct {
	Providers []Provider
	T         i18n.Localizer
}

func (ch *Handler) Handle(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	lines := []string{ch.T.T("help.title")}

	for _, prov := range ch.Providers {
		helpResult := prov.GetHelp(ctx, req)
		if helpResult.Text == "" {
			continue
		}

		lines = append(lines, helpResult.Text)
	}

	return msg.NewSuccessResponse(strings.Join(lines, "\n")), nil
}
