package web

import (
	"time"

	"medStudyBot/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	Addr              string        `envconfig:"WEB_ADDR" default:":8080"`
	AdminUser         string        `envconfig:"WEB_ADMIN_USER"`
	AdminPasswordHash string        `envconfig:"WEB_ADMIN_PASSWORD_HASH"`
	ShutdownTimeout   time.Duration `envconfig:"WEB_SHUTDOWN_TIMEOUT" default:"10s"`
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()
	if (c.AdminUser == "") != (c.AdminPasswordHash == "") {
		e.Err("WEB_ADMIN_USER and WEB_ADMIN_PASSWORD_HASH should be set together")
	}

	return e
}

// Enabled is false for an empty WEB_ADDR.
func (c *Config) Enabled() bool {
	return c.Addr != ""
}

// AdminEnabled is false without credentials, the admin routes answer 401 then.
func (c *Config) AdminEnabled() bool {
	return c.AdminUser != "" && c.AdminPasswordHash != ""
}

func LoadConfig() (*Config, error) {
	cfg := new(Config)
	err := envconfig.Process("web", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load web config")
	}

	return cfg, nil
}
