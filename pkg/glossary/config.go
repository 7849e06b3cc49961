package glossary

import (
	"time"

	"medStudyBot/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	CacheTTL time.Duration `envconfig:"GLOSSARY_CACHE_TTL" default:"24h"`
	Seed     bool          `envconfig:"GLOSSARY_SEED" default:"true"`
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.CacheTTL < 0 {
		e.Errf("GLOSSARY_CACHE_TTL should not be negative, got %s", c.CacheTTL)
	}

	return e
}

func LoadConfig() (cfg *Config, err error) {
	cfg = new(Config)
	err = envconfig.Process("glossary", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load glossary config")
	}

	return cfg, nil
}
