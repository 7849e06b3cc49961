package i18n

import (
	"medStudyBot/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	Lang string `envconfig:"I18N_LANG" default:"ar"`
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.Lang == "" {
		e.Err("I18N_LANG cannot be empty")
	}

	return e
}

func LoadConfig() (cfg *Config, err error) {
	cfg = new(Config)
	err = envconfig.Process("i18n", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load i18n config")
	}

	return cfg, nil
}
