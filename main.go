package main

import (
	"os"

	"medStudyBot/pkg/cmd"
	"medStudyBot/pkg/errs"
	"medStudyBot/pkg/logging"

	"github.com/joho/godotenv"
)

var envFiles = []string{".env.default", ".env.secret", ".env.local"}

func main() {
	var existing []string
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}

	if len(existing) > 0 {
		err := godotenv.Overload(existing...)
		errs.Handle(err, true)
	}

	logging.Init()

	err := cmd.Execute()
	errs.Handle(err, true)
}
