package telegram

import (
	"context"
	"fmt"
	"runtime/debug"

	"medStudyBot/pkg/errs"
	"medStudyBot/pkg/i18n"
	"medStudyBot/pkg/logging"
	"medStudyBot/pkg/msg"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const platform = "telegram"

type Router interface {
	Route(ctx context.Context, req *msg.Request) (*msg.Response, error)
}

type Bot struct {
	conf    *Config
	baseBot *telebot.Bot
	router  Router
	sender  *responseSender
	t       i18n.Localizer
}

func NewBot(c *Config, r Router, t i18n.Localizer) (*Bot, error) {
	validationErr := c.Validate()
	if validationErr.HasErrors() {
		return nil, validationErr
	}

	botApi, err := telebot.NewBot(telebot.Settings{
		Token:  c.APIToken,
		Poller: &telebot.LongPoller{Timeout: c.PollTimeout},
		OnError: func(err error, _ telebot.Context) {
			errs.Handle(err, false)
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create telegram bot")
	}

	return &Bot{
		conf:    c,
		baseBot: botApi,
		router:  r,
		sender:  &responseSender{send: botApi.Send},
		t:       t,
	}, nil
}

func messageToRequest(m *telebot.Message) *msg.Request {
	req := &msg.Request{
		Platform: platform,
		Sender:   new(msg.Sender),
		Meta:     map[string]interface{}{},
	}
	if m == nil {
		return req
	}

	req.ID = fmt.Sprint(m.ID)
	req.Message = m.Text
	req.Meta["timestamp"] = m.Unixtime

	if m.Sender != nil {
		req.Sender.ID = m.Sender.Username
		req.Sender.UserID = m.Sender.ID
		req.Sender.FirstName = m.Sender.FirstName
		req.Sender.LastName = m.Sender.LastName
	}

	if m.Chat != nil {
		req.ChatID = m.Chat.ID
	}

	return req
}

func (b *Bot) handle(ctx context.Context, m *telebot.Message, to telebot.Recipient) (err error) {
	log := logrus.WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("panic while handling message: %v\n%s", r, debug.Stack())
			err = b.sender.Send(ctx, to, msg.NewErrorResponse(b.t.T("common.unexpected")))
		}
	}()

	log.Debugf("got telegram message: %q", m.Text)

	req := messageToRequest(m)

	resp, routeErr := b.router.Route(ctx, req)
	if routeErr != nil {
		errs.HandleCtx(ctx, routeErr, false)
		if resp == nil {
			resp = msg.NewErrorResponse(b.t.T("common.unexpected"))
		}
	}

	return b.sender.Send(ctx, to, resp)
}

func (b *Bot) onText(c telebot.Context) error {
	ctx := logging.WithTrackingId(context.Background())
	if chat := c.Chat(); chat != nil {
		ctx = logging.WithChatID(ctx, chat.ID)
	}

	ctx, cancel := context.WithTimeout(ctx, b.conf.HandlerTimeout)
	defer cancel()

	return b.handle(ctx, c.Message(), c.Recipient())
}

// Start blocks until Stop is called.
func (b *Bot) Start() {
	b.baseBot.Handle(telebot.OnText, b.onText)

	logrus.Infof("starting telegram bot @%s", b.baseBot.Me.Username)
	b.baseBot.Start()
}

func (b *Bot) Stop() {
	logrus.Info("will stop telegram bot")
	b.baseBot.Stop()
	logrus.Info("stopped telegram bot")
}
