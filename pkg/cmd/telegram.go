package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"medStudyBot/pkg/errs"
	"medStudyBot/pkg/hydrate"
	"medStudyBot/pkg/metrics"
	"medStudyBot/pkg/telegram"
	"medStudyBot/pkg/web"

	logging "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var telegramCmd = &cobra.Command{
	Use:   "telegram",
	Short: "Starts the Telegram bot together with the admin web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		metrics.MustRegister()

		app, err := BuildApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		tgCfg, err := telegram.LoadConfig()
		if err != nil {
			return err
		}

		checker := app.Checker(tgCfg.APIToken)

		msgRouter, err := BuildMessageRouter(app, checker)
		if err != nil {
			return err
		}

		bot, err := telegram.NewBot(tgCfg, msgRouter, app.T)
		if err != nil {
			return err
		}

		webServer, err := web.Build(app.Store, hydrate.NewRunStore(app.ORM), checker)
		if err != nil {
			return err
		}

		if webServer != nil {
			go func() {
				errs.Handle(webServer.Start(), false)
			}()
		}

		go bot.Start()

		logging.Info("started telegram bot")

		waitForSignal()

		bot.Stop()
		if webServer != nil {
			errs.Handle(webServer.Shutdown(ctx), false)
		}

		return nil
	},
}

func initTelegramCmd() {
	rootCmd.AddCommand(telegramCmd)
}

func waitForSignal() {
	terminateSignals := make(chan os.Signal, 1)

	signal.Notify(terminateSignals, syscall.SIGINT, syscall.SIGTERM)

	s := <-terminateSignals
	logging.Infof("Got one of stop signals, shutting down gracefully, SIGNAL NAME : %v", s)
}
