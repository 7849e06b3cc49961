package msg

import "context"

// Handler may return a response together with an error: the response is sent to the user,
// the error is logged and counted.
type Handler interface {
	Handle(ctx context.Context, req *Request) (*Response, error)
}

type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

func (f HandlerFunc) Handle(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// Middleware runs before the handler. A non-nil response stops the routing and is sent as is.
type Middleware interface {
	Handle(ctx context.Context, req *Request) (*Response, error)
}
