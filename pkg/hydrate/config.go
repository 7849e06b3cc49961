package hydrate

import (
	"time"

	"medStudyBot/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const DefaultWordlist = "https://raw.githubusercontent.com/glutanimate/wordlist-medicalterms-en/master/wordlist.txt"

type Config struct {
	Sources         []string      `envconfig:"HYDRATE_SOURCES"`
	BatchSize       int           `envconfig:"HYDRATE_BATCH_SIZE" default:"500"`
	MaxRetryElapsed time.Duration `envconfig:"HYDRATE_MAX_RETRY_ELAPSED" default:"1m"`
	CacheTTL        time.Duration `envconfig:"HYDRATE_CACHE_TTL" default:"0"`
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.BatchSize < 1 {
		e.Errf("HYDRATE_BATCH_SIZE should be positive, got %d", c.BatchSize)
	}

	if c.MaxRetryElapsed < 0 {
		e.Errf("HYDRATE_MAX_RETRY_ELAPSED should not be negative, got %s", c.MaxRetryElapsed)
	}

	return e
}

func LoadConfig() (cfg *Config, err error) {
	cfg = new(Config)
	err = envconfig.Process("hydrate", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load hydrate config")
	}

	if len(cfg.Sources) == 0 {
		cfg.Sources = []string{DefaultWordlist}
	}

	return cfg, nil
}
