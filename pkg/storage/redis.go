package storage

import (
	"context"
	"encoding/json"
	"time"

	"medStudyBot/pkg/utils"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	base "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type ctxKey string

const notLoggableContentKey ctxKey = "not_loggable_content"

// WithoutContentLogging makes Read and Write log keys only.
func WithoutContentLogging(ctx context.Context) context.Context {
	return context.WithValue(ctx, notLoggableContentKey, true)
}

const pingMaxElapsed = time.Minute

type RedisClient struct {
	baseClient *base.Client
}

func NewClient(cfg *RedisConfig) (*RedisClient, error) {
	err := cfg.Validate()
	if err.HasErrors() {
		return nil, err
	}

	rdb := base.NewClient(&base.Options{
		Addr:     cfg.Addr,
		Password: cfg.Pass,
		DB:       cfg.DB,
	})

	redisCheckErr := checkRedis(rdb)
	if redisCheckErr != nil {
		logrus.Errorf("failed to ping redis %q", cfg.Addr)
		return nil, redisCheckErr
	}

	logrus.Infof("ping to redis %q is successful", cfg.Addr)
	return &RedisClient{baseClient: rdb}, nil
}

func checkRedis(cl *base.Client) error {
	logrus.Infof("will ping redis")
	operation := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		err := cl.Ping(ctx).Err()
		if err != nil {
			logrus.Errorf("Failed to connect to redis: %v", err)
			return err
		}

		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = pingMaxElapsed

	err := backoff.Retry(operation, b)
	if err != nil {
		return errors.Wrap(err, "failed to connect to redis")
	}

	return nil
}

func (c *RedisClient) Ping(ctx context.Context) error {
	return errors.Wrap(c.baseClient.Ping(ctx).Err(), "redis ping failed")
}

func (c *RedisClient) Close() error {
	return c.baseClient.Close()
}

func (c *RedisClient) Read(ctx context.Context, key string) (raw []byte, found bool, err error) {
	log := logrus.WithContext(ctx)

	val, err := c.baseClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, base.Nil) {
			log.Debugf("nothing found in redis under key %q", key)
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "failed to get data from redis under key %q", key)
	}

	if ctx.Value(notLoggableContentKey) != nil {
		log.Debugf("successfully read data from redis under key %q", key)
	} else {
		log.Debugf("successfully read data %q from redis under key %q", val, key)
	}

	return []byte(val), true, nil
}

func (c *RedisClient) Write(ctx context.Context, key string, raw []byte, exp time.Duration) error {
	log := logrus.WithContext(ctx)

	err := c.baseClient.Set(ctx, key, raw, exp).Err()
	if err != nil {
		return errors.Wrapf(err, "failed to write data to redis under key %q", key)
	}

	if ctx.Value(notLoggableContentKey) != nil {
		log.Debugf("wrote hidden data to redis under key %q", key)
	} else {
		log.Debugf("wrote data %q to redis under key %q", string(raw), key)
	}

	return nil
}

func (c *RedisClient) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	err := c.baseClient.Del(ctx, keys...).Err()
	if err != nil {
		return errors.Wrapf(err, "failed to delete data from redis under keys %q", keys)
	}

	logrus.WithContext(ctx).Debugf("deleted data from redis under keys %q", keys)
	return nil
}

func (c *RedisClient) Load(ctx context.Context, key string, target interface{}) (found bool, err error) {
	log := logrus.WithContext(ctx)

	targetType := utils.GetType(target)
	log.Debugf("will load %q for key %s", targetType, key)

	rawData, found, err := c.Read(ctx, key)
	if err != nil {
		return false, errors.Wrap(err, "failed to read data from storage")
	}

	if !found {
		return false, nil
	}

	err = json.Unmarshal(rawData, target)
	if err != nil {
		return false, errors.Wrapf(err, "failed to convert %q to %s", string(rawData), targetType)
	}

	return true, nil
}

func (c *RedisClient) Save(ctx context.Context, key string, data interface{}, validity time.Duration) error {
	rawBytes, err := json.Marshal(data)
	if err != nil {
		return errors.Wrapf(err, "failed to convert %q to json", utils.GetType(data))
	}

	return c.Write(ctx, key, rawBytes, validity)
}

// Incr increments the counter under key, the window starts with the first increment.
func (c *RedisClient) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	cnt, err := c.baseClient.Incr(ctx, key).Result()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to increment counter %q", key)
	}

	if cnt == 1 && window > 0 {
		err = c.baseClient.Expire(ctx, key, window).Err()
		if err != nil {
			return 0, errors.Wrapf(err, "failed to set expiry for counter %q", key)
		}
	}

	return cnt, nil
}

func (c *RedisClient) FindKeys(ctx context.Context, pattern string) (keys []string, err error) {
	val := c.baseClient.Keys(ctx, pattern)
	if val.Err() != nil {
		return nil, errors.Wrapf(val.Err(), "failed to find keys in redis by pattern %q", pattern)
	}

	return val.Val(), nil
}
