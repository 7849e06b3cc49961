package errs

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Handle logs err with its stack trace if one is attached. With stop it panics after logging.
func Handle(err error, stop bool) {
	HandleCtx(context.Background(), err, stop)
}

func HandleCtx(ctx context.Context, err error, stop bool) {
	if err == nil {
		return
	}

	log := logrus.WithContext(ctx)
	if kind := KindOf(err); kind != KindUnknown {
		log = log.WithField("kind", kind.String())
	}

	var checkErr stackTracer
	if !errors.As(err, &checkErr) {
		if stop {
			log.Panic(err)
		} else {
			log.Error(err)
		}
		return
	}

	st := checkErr.StackTrace()
	if stop {
		log.Panicf("%v\n%+v", err, st)
	} else {
		log.Errorf("%v\n%+v", err, st)
	}
}
