package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "medbot",
	Short: "Medical glossary and study bot for Telegram",
}

func Execute() error {
	initVersionCmd()
	initTelegramCmd()
	initHydrateCmd()
	initBcryptCmd()

	return rootCmd.Execute()
}
