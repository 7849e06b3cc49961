package msg

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Observer is notified about every routed request, used for metrics.
type Observer interface {
	ObserveCommand(cmd Command, err error, dur time.Duration)
}

type Router struct {
	handlers    map[Command]Handler
	textHandler Handler
	unknown     Handler
	middlewares []Middleware
	observer    Observer
}

func NewRouter() *Router {
	return &Router{
		handlers: map[Command]Handler{},
		unknown:  HandlerFunc(unsupportedCommand),
	}
}

func (r *Router) Register(cmd Command, h Handler) {
	r.handlers[cmd] = h
}

// HandleText sets the handler for messages which are not commands.
func (r *Router) HandleText(h Handler) {
	r.textHandler = h
}

func (r *Router) HandleUnknown(h Handler) {
	r.unknown = h
}

func (r *Router) UseMiddleware(m Middleware) {
	r.middlewares = append(r.middlewares, m)
}

func (r *Router) WithObserver(o Observer) {
	r.observer = o
}

func (r *Router) Commands() []Command {
	res := make([]Command, 0, len(r.handlers))
	for cmd := CommandStart; cmd <= CommandStats; cmd++ {
		if _, ok := r.handlers[cmd]; ok {
			res = append(res, cmd)
		}
	}

	return res
}

func (r *Router) Route(ctx context.Context, req *Request) (resp *Response, err error) {
	log := logrus.WithContext(ctx)

	if req.Meta == nil {
		req.Meta = map[string]interface{}{}
	}

	cmd, _ := ParseCommand(req.Message)
	req.Meta[MetaCommand] = cmd

	start := time.Now()
	defer func() {
		if r.observer != nil {
			r.observer.ObserveCommand(cmd, err, time.Since(start))
		}
	}()

	for _, m := range r.middlewares {
		resp, err = m.Handle(ctx, req)
		if err != nil {
			return nil, err
		}
		if resp != nil {
			return resp, nil
		}
	}

	h := r.resolve(cmd)
	if h == nil {
		return nil, errors.Errorf("no handler registered for %q", cmd.String())
	}

	log.Debugf("routing %s message from %q", cmd.String(), req.Sender.GetID())

	return h.Handle(ctx, req)
}

func (r *Router) resolve(cmd Command) Handler {
	switch cmd {
	case CommandNone:
		return r.textHandler
	case CommandUnknown:
		return r.unknown
	}

	h, ok := r.handlers[cmd]
	if !ok {
		return r.unknown
	}

	return h
}

const MetaCommand = "command"

func CommandFromReq(req *Request) Command {
	if req == nil || req.Meta == nil {
		return CommandNone
	}
	cmd, _ := req.Meta[MetaCommand].(Command)

	return cmd
}

func unsupportedCommand(_ context.Context, req *Request) (*Response, error) {
	return &Response{
		Message: fmt.Sprintf("unsupported command %q, see %s", req.Message, CommandHelp.Usage()),
		Type:    Error,
	}, nil
}
