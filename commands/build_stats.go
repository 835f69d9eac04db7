package commands

import (
	"github.com/spf13/cobra"

	"github.com/c360studio/rostergraph/model"
	"github.com/c360studio/rostergraph/pipeline"
	"github.com/c360studio/rostergraph/report"
	"github.com/c360studio/rostergraph/roster"
	"github.com/c360studio/rostergraph/stats"
)

func newBuildStatsCommand() *cobra.Command {
	var (
		input   string
		clubs   string
		players string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "build-stats",
		Short: "Build per-season stats records from sightings",
		Long: `Build-stats maps raw stat fields onto the canonical schema and keys
each record by player, club, and season. Duplicate cumulative snapshots of
the same record are merged field-wise by maximum.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			rec := report.NewRecorder(logger)

			entries, err := model.ReadArtifact[roster.Entry](input)
			if err != nil {
				return err
			}
			clubArtifact, err := model.ReadArtifactObject[pipeline.ClubArtifact](clubs)
			if err != nil {
				return err
			}
			playerArtifact, err := model.ReadArtifactObject[pipeline.PlayerArtifact](players)
			if err != nil {
				return err
			}

			records := stats.NewBuilder(logger).Build(entries, playerArtifact.Assignments, clubArtifact.Assignments, rec)
			if err := model.WriteArtifact(output, records); err != nil {
				return err
			}

			logger.Info("stats built", "count", len(records), "output", output)
			finish(rec)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", defaultEntries, "Sighting artifact path")
	cmd.Flags().StringVar(&clubs, "clubs", defaultClubs, "Club artifact path")
	cmd.Flags().StringVar(&players, "players", defaultPlayers, "Player artifact path")
	cmd.Flags().StringVarP(&output, "output", "o", defaultStats, "Stats artifact path")

	return cmd
}
