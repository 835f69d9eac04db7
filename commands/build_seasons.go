package commands

import (
	"github.com/spf13/cobra"

	"github.com/c360studio/rostergraph/model"
	"github.com/c360studio/rostergraph/report"
	"github.com/c360studio/rostergraph/season"
)

func newBuildSeasonsCommand() *cobra.Command {
	var (
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "build-seasons",
		Short: "Derive season entities from the stats records",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			rec := report.NewRecorder(logger)

			records, err := model.ReadArtifact[model.PlayerSeasonStats](input)
			if err != nil {
				return err
			}

			seasons := season.NewRegistry(logger).Derive(records, rec)
			if err := model.WriteArtifact(output, seasons); err != nil {
				return err
			}

			logger.Info("seasons derived", "count", len(seasons), "output", output)
			finish(rec)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", defaultStats, "Stats artifact path")
	cmd.Flags().StringVarP(&output, "output", "o", defaultSeasons, "Season artifact path")

	return cmd
}
