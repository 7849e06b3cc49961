package auth

import (
	"medStudyBot/pkg/i18n"
	"medStudyBot/pkg/storage"
)

func BuildMiddleware(counter storage.Counter, t i18n.Localizer) (*Middleware, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	return NewMiddleware(cfg, counter, t)
}
