package commands

import (
	"github.com/spf13/cobra"

	"github.com/c360studio/rostergraph/aggregate"
	"github.com/c360studio/rostergraph/model"
	"github.com/c360studio/rostergraph/pipeline"
	"github.com/c360studio/rostergraph/report"
)

func newAggregateTotalsCommand() *cobra.Command {
	var (
		players string
		input   string
	)

	cmd := &cobra.Command{
		Use:   "aggregate-totals",
		Short: "Recompute career totals from the full stats set",
		Long: `Aggregate-totals recomputes every player's appearance, goal, and
assist totals from scratch over the complete stats artifact, so repeated
runs over grown data stay consistent. Stored totals that disagree with the
recomputation are reported and overwritten.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			rec := report.NewRecorder(logger)

			playerArtifact, err := model.ReadArtifactObject[pipeline.PlayerArtifact](players)
			if err != nil {
				return err
			}
			records, err := model.ReadArtifact[model.PlayerSeasonStats](input)
			if err != nil {
				return err
			}

			aggregate.NewTotals(logger).Apply(playerArtifact.Players, records, rec)
			if err := model.WriteArtifactObject(players, playerArtifact); err != nil {
				return err
			}

			logger.Info("totals aggregated", "players", len(playerArtifact.Players))
			finish(rec)
			return nil
		},
	}

	cmd.Flags().StringVar(&players, "players", defaultPlayers, "Player artifact path (rewritten with totals)")
	cmd.Flags().StringVarP(&input, "input", "i", defaultStats, "Stats artifact path")

	return cmd
}
