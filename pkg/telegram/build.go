package telegram

import (
	"medStudyBot/pkg/i18n"
)

func BuildBot(r Router, t i18n.Localizer) (*Bot, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	return NewBot(config, r, t)
}
