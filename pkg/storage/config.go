package storage

import (
	"medStudyBot/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type RedisConfig struct {
	Addr string `envconfig:"REDIS_ADDR"`
	Pass string `envconfig:"REDIS_PASS"`
	DB   int    `envconfig:"REDIS_DB" default:"0"`
}

func (c *RedisConfig) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.Addr == "" {
		e.Err("REDIS_ADDR cannot be empty")
	}

	if c.DB < 0 {
		e.Errf("REDIS_DB should not be negative, got %d", c.DB)
	}

	return e
}

func LoadConfig() (cfg *RedisConfig, err error) {
	cfg = new(RedisConfig)
	err = envconfig.Process("redis", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load redis config")
	}

	return cfg, nil
}
