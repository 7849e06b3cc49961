package db

import (
	"time"

	"medStudyBot/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	File        string        `envconfig:"DB_FILE" default:"bot_data.sqlite3"`
	BusyTimeout time.Duration `envconfig:"DB_BUSY_TIMEOUT" default:"5s"`
	MaxOpenConn int           `envconfig:"DB_MAX_OPEN_CONN" default:"4"`
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.File == "" {
		e.Errf("DB_FILE cannot be empty")
	}

	if c.BusyTimeout < 0 {
		e.Errf("DB_BUSY_TIMEOUT should not be negative, got %s", c.BusyTimeout)
	}

	if c.MaxOpenConn < 1 {
		e.Errf("DB_MAX_OPEN_CONN should be positive, got %d", c.MaxOpenConn)
	}

	return e
}

func LoadConfig() (cfg *Config, err error) {
	cfg = new(Config)
	err = envconfig.Process("db", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load db config")
	}

	return cfg, nil
}
