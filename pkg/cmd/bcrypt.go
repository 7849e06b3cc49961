package cmd

import (
	"fmt"
	"os"

	"medStudyBot/pkg/auth"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var bcryptCmd = &cobra.Command{
	Use:   "bcrypt",
	Short: "Generates a bcrypt hash of the prompted password for WEB_ADMIN_PASSWORD_HASH",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print("Enter password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return errors.WithStack(err)
		}
		fmt.Println()

		hashedPassword, err := auth.HashPassword(string(password))
		if err != nil {
			return err
		}

		fmt.Println(hashedPassword)

		return nil
	},
}

func initBcryptCmd() {
	rootCmd.AddCommand(bcryptCmd)
}
