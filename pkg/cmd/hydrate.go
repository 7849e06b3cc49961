package cmd

import (
	"context"
	"fmt"

	"medStudyBot/pkg/hydrate"
	"medStudyBot/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	hydrateSources   []string
	hydrateBatchSize int
)

var hydrateCmd = &cobra.Command{
	Use:   "hydrate",
	Short: "Loads glossary entries from word lists and JSON sources",
	Long: `Reads every --source (a local file or an http(s) URL), merges the entries and upserts them
into the glossary. Without --source the HYDRATE_SOURCES list is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := logging.WithTrackingId(context.Background())

		app, err := BuildApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		job, cfg, err := hydrate.BuildJob(app.Store, app.ORM, app.Cache, hydrateBatchSize)
		if err != nil {
			return err
		}

		sources := hydrateSources
		if len(sources) == 0 {
			sources = cfg.Sources
		}

		sum, err := job.Run(ctx, sources)
		if sum != nil {
			fmt.Fprintln(cmd.OutOrStdout(), sum.String())
		}

		return err
	},
}

func initHydrateCmd() {
	hydrateCmd.Flags().StringArrayVar(&hydrateSources, "source", nil, "file path or URL of a glossary source, repeatable")
	hydrateCmd.Flags().IntVar(&hydrateBatchSize, "batch", 0, "entries per transaction, overrides HYDRATE_BATCH_SIZE")
	rootCmd.AddCommand(hydrateCmd)
}
