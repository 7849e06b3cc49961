package telegram

import (
	"context"
	"strings"

	"medStudyBot/pkg/help"
	"medStudyBot/pkg/i18n"
	"medStudyBot/pkg/msg"
)

type StartHandler struct {
	T i18n.Localizer
}

func (sh *StartHandler) Handle(_ context.Context, req *msg.Request) (*msg.Response, error) {
	name := ""
	if req.Sender != nil {
		name = strings.TrimSpace(req.Sender.FirstName)
	}

	return msg.NewSuccessResponse(sh.T.T("start.greeting", name)), nil
}

type MyIDHandler struct {
	T i18n.Localizer
}

func (h *MyIDHandler) GetHelp(context.Context, *msg.Request) help.Result {
	return help.Result{Text: h.T.T("help.myid")}
}

func (h *MyIDHandler) Handle(_ context.Context, req *msg.Request) (*msg.Response, error) {
	return msg.NewSuccessResponse(h.T.T("myid.reply", req.Sender.GetUserID(), req.ChatID)), nil
}
