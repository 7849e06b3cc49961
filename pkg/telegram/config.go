package telegram

import (
	"time"

	"medStudyBot/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	APIToken       string        `envconfig:"TELEGRAM_ACCESS_TOKEN"`
	HandlerTimeout time.Duration `envconfig:"TELEGRAM_HANDLER_TIMEOUT" default:"60s"`
	PollTimeout    time.Duration `envconfig:"TELEGRAM_POLL_TIMEOUT" default:"10s"`
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.APIToken == "" {
		e.Err("TELEGRAM_ACCESS_TOKEN cannot be empty")
	}
	if c.HandlerTimeout <= 0 {
		e.Err("TELEGRAM_HANDLER_TIMEOUT should be positive")
	}

	return e
}

func LoadConfig() (*Config, error) {
	cfg := new(Config)
	err := envconfig.Process("telegram", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load telegram config")
	}

	return cfg, nil
}
