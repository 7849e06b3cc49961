package auth

import (
	"context"
	"fmt"
	"strings"

	"medStudyBot/pkg/i18n"
	"medStudyBot/pkg/msg"
	"medStudyBot/pkg/storage"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// AdminCommands are only answered for users listed in AUTH_ADMIN_IDS.
var AdminCommands = []msg.Command{msg.CommandStats, msg.CommandAddTerm}

// Middleware resolves the sender, restricts admin commands and limits the request rate per user.
type Middleware struct {
	cfg     *Config
	counter storage.Counter
	t       i18n.Localizer
}

// NewMiddleware accepts a nil counter, rate limiting is off then.
func NewMiddleware(cfg *Config, counter storage.Counter, t i18n.Localizer) (*Middleware, error) {
	validationErr := cfg.Validate()
	if validationErr.HasErrors() {
		return nil, validationErr
	}

	return &Middleware{cfg: cfg, counter: counter, t: t}, nil
}

func (m *Middleware) Handle(ctx context.Context, req *msg.Request) (*msg.Response, error) {
	log := logrus.WithContext(ctx)

	if req.Sender.GetUserID() == 0 {
		return nil, errors.New("unknown message sender id")
	}

	u := m.resolveUser(req.Sender)
	if req.Meta == nil {
		req.Meta = map[string]interface{}{}
	}
	req.Meta[metaCurUser] = u

	cmd := msg.CommandFromReq(req)
	if isAdminCommand(cmd) && !u.IsAdmin() {
		log.Infof("user %s is not allowed to call %s", u, cmd)
		return msg.NewErrorResponse(m.t.T("auth.admin_only")), nil
	}

	if u.IsAdmin() || m.counter == nil || m.cfg.RateLimit == 0 {
		return nil, nil
	}

	key := storage.GenerateCacheKey("v1", "auth", "rate", fmt.Sprint(u.UserID))
	count, err := m.counter.Incr(ctx, key, m.cfg.RateWindow)
	if err != nil {
		log.Warnf("rate limit check failed, letting the request through: %v", err)
		return nil, nil
	}

	if count > int64(m.cfg.RateLimit) {
		log.Infof("user %s exceeded %d requests per %s", u, m.cfg.RateLimit, m.cfg.RateWindow)
		return msg.NewErrorResponse(m.t.T("auth.rate_limited", m.cfg.RateWindow.String())), nil
	}

	return nil, nil
}

func (m *Middleware) resolveUser(s *msg.Sender) *User {
	u := &User{
		UserID: s.GetUserID(),
		Name:   strings.TrimSpace(s.FirstName + " " + s.LastName),
		Role:   RoleUser,
	}
	if m.cfg.IsAdmin(u.UserID) {
		u.Role = RoleAdmin
	}

	return u
}

func isAdminCommand(cmd msg.Command) bool {
	for _, c := range AdminCommands {
		if c == cmd {
			return true
		}
	}

	return false
}
