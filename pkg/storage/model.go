package storage

import (
	"context"
	"time"
)

type Client interface {
	Read(ctx context.Context, key string) (raw []byte, found bool, err error)
	Write(ctx context.Context, key string, raw []byte, exp time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Load(ctx context.Context, key string, target interface{}) (found bool, err error)
	Save(ctx context.Context, key string, data interface{}, validity time.Duration) error
}

// Counter is implemented by clients able to keep expiring counters, used for rate limiting.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}
