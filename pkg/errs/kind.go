package errs

import (
	"github.com/pkg/errors"
)

type Kind uint

const (
	KindUnknown Kind = iota
	// KindNotFound is a glossary miss. Stores return an empty result instead, the kind exists for callers that need an error value.
	KindNotFound
	KindInputTooLarge
	KindRender
	KindPublish
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInputTooLarge:
		return "input_too_large"
	case KindRender:
		return "render_failure"
	case KindPublish:
		return "publish_failure"
	case KindStorage:
		return "storage_failure"
	default:
		return "unknown"
	}
}

// Error carries a Kind next to the wrapped cause.
type Error struct {
	Kind      Kind
	Permanent bool
	cause     error
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.Kind.String()
	}

	return e.cause.Error()
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Cause() error {
	return e.cause
}

func (e *Error) StackTrace() errors.StackTrace {
	var st stackTracer
	if errors.As(e.cause, &st) {
		return st.StackTrace()
	}

	return nil
}

func New(kind Kind, msg string) error {
	return &Error{Kind: kind, cause: errors.New(msg)}
}

func Wrapf(kind Kind, err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}

	return &Error{Kind: kind, cause: errors.Wrapf(err, format, args...)}
}

// Permanent marks err as not worth retrying while keeping its kind.
func Permanent(kind Kind, err error) error {
	if err == nil {
		return nil
	}

	return &Error{Kind: kind, Permanent: true, cause: errors.WithStack(err)}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnknown
}

func IsPermanent(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Permanent
	}

	return false
}

// IsRetryable reports whether a retry with the same input can succeed: storage and transient publish errors.
func IsRetryable(err error) bool {
	if err == nil || IsPermanent(err) {
		return false
	}

	switch KindOf(err) {
	case KindStorage, KindPublish:
		return true
	default:
		return false
	}
}
