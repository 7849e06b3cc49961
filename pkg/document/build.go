package document

import (
	"medStudyBot/pkg/i18n"
)

type Components struct {
	Config    *Config
	Formatter *Formatter
	Generator *Generator
	Engine    *WkhtmltopdfEngine
}

func Build(t i18n.Localizer) (*Components, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	e := cfg.Validate()
	if e.HasErrors() {
		return nil, e
	}

	engine := NewWkhtmltopdfEngine(cfg.WkhtmltopdfPath, cfg.Author)

	return &Components{
		Config:    cfg,
		Formatter: NewFormatter(cfg.MaxTextChars, t),
		Generator: NewGenerator(engine, cfg.Author, cfg.RenderTimeout),
		Engine:    engine,
	}, nil
}
