package web

import (
	"medStudyBot/pkg/glossary"
	"medStudyBot/pkg/health"
)

// Build returns a nil server when WEB_ADDR is empty.
func Build(store glossary.Store, runs RunReader, checker *health.Checker) (*Server, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	e := cfg.Validate()
	if e.HasErrors() {
		return nil, e
	}

	if !cfg.Enabled() {
		return nil, nil
	}

	return NewServer(cfg, store, runs, checker), nil
}
