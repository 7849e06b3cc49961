package document

import (
	"time"

	"medStudyBot/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const DefaultMaxTextChars = 120000

type Config struct {
	MaxTextChars    int           `envconfig:"DOCUMENT_MAX_TEXT_CHARS" default:"120000"`
	WkhtmltopdfPath string        `envconfig:"DOCUMENT_WKHTMLTOPDF_PATH"`
	Author          string        `envconfig:"DOCUMENT_AUTHOR" default:"Medical Study Bot"`
	RenderTimeout   time.Duration `envconfig:"DOCUMENT_RENDER_TIMEOUT" default:"60s"`
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.MaxTextChars <= 0 {
		e.Errf("DOCUMENT_MAX_TEXT_CHARS should be positive, got %d", c.MaxTextChars)
	}

	if c.RenderTimeout < 0 {
		e.Errf("DOCUMENT_RENDER_TIMEOUT should not be negative, got %s", c.RenderTimeout)
	}

	return e
}

func LoadConfig() (cfg *Config, err error) {
	cfg = new(Config)
	err = envconfig.Process("document", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document config")
	}

	return cfg, nil
}
