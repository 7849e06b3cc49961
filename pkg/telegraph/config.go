package telegraph

import (
	"time"

	"medStudyBot/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	AccessToken     string        `envconfig:"TELEGRAPH_ACCESS_TOKEN"`
	AuthorName      string        `envconfig:"TELEGRAPH_AUTHOR_NAME" default:"Medical Study Bot"`
	APIURL          string        `envconfig:"TELEGRAPH_API_URL" default:"https://api.telegra.ph"`
	MaxRetryElapsed time.Duration `envconfig:"TELEGRAPH_MAX_RETRY_ELAPSED" default:"30s"`
	RatePerSecond   float64       `envconfig:"TELEGRAPH_RATE_PER_SECOND" default:"1"`
	Burst           int           `envconfig:"TELEGRAPH_BURST" default:"3"`
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.APIURL == "" {
		e.Err("TELEGRAPH_API_URL cannot be empty")
	}

	if c.MaxRetryElapsed < 0 {
		e.Errf("TELEGRAPH_MAX_RETRY_ELAPSED should not be negative, got %s", c.MaxRetryElapsed)
	}

	if c.RatePerSecond <= 0 {
		e.Errf("TELEGRAPH_RATE_PER_SECOND should be positive, got %v", c.RatePerSecond)
	}

	if c.Burst < 1 {
		e.Errf("TELEGRAPH_BURST should be at least 1, got %d", c.Burst)
	}

	return e
}

func (c *Config) IsConfigured() bool {
	return c.AccessToken != ""
}

func LoadConfig() (cfg *Config, err error) {
	cfg = new(Config)
	err = envconfig.Process("telegraph", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load telegraph config")
	}

	return cfg, nil
}
