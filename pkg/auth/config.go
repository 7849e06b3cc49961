package auth

import (
	"strconv"
	"strings"
	"time"

	"medStudyBot/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type RawConfig struct {
	AdminIDs   string        `envconfig:"AUTH_ADMIN_IDS"`
	RateLimit  int           `envconfig:"AUTH_RATE_LIMIT" default:"20"`
	RateWindow time.Duration `envconfig:"AUTH_RATE_WINDOW" default:"1m"`
}

type Config struct {
	AdminIDs   []int64
	RateLimit  int
	RateWindow time.Duration
}

func (c *Config) Validate() *errs.Multi {
	multiErr := errs.NewMulti()
	if c.RateLimit < 0 {
		multiErr.Errf("AUTH_RATE_LIMIT cannot be negative, got %d", c.RateLimit)
	}
	if c.RateLimit > 0 && c.RateWindow <= 0 {
		multiErr.Err("AUTH_RATE_WINDOW should be positive when AUTH_RATE_LIMIT is set")
	}

	return multiErr
}

func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}

	return false
}

func (rc *RawConfig) ToConfig() (*Config, *errs.Multi) {
	multiErr := errs.NewMulti()

	cfg := &Config{
		RateLimit:  rc.RateLimit,
		RateWindow: rc.RateWindow,
	}

	for _, rawID := range strings.Split(rc.AdminIDs, ",") {
		rawID = strings.TrimSpace(rawID)
		if rawID == "" {
			continue
		}

		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			multiErr.Add(errors.Wrapf(err, "failed to parse admin id %q", rawID))
			continue
		}
		cfg.AdminIDs = append(cfg.AdminIDs, id)
	}

	return cfg, multiErr
}

func LoadConfig() (*Config, error) {
	rawCfg := new(RawConfig)
	err := envconfig.Process("auth", rawCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load auth config")
	}

	cfg, convErr := rawCfg.ToConfig()
	if convErr.HasErrors() {
		return nil, convErr
	}

	return cfg, nil
}
