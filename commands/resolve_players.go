package commands

import (
	"github.com/spf13/cobra"

	"github.com/c360studio/rostergraph/model"
	"github.com/c360studio/rostergraph/pipeline"
	"github.com/c360studio/rostergraph/report"
	"github.com/c360studio/rostergraph/resolve"
	"github.com/c360studio/rostergraph/roster"
)

func newResolvePlayersCommand() *cobra.Command {
	var (
		input  string
		clubs  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "resolve-players",
		Short: "Resolve player sightings into canonical players",
		Long: `Resolve-players merges sightings of the same individual into one
canonical player and splits same-name sightings that disagree on date of
birth or nationality into distinct players.`,
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

			players, assignments := resolve.NewPlayerResolver(logger).Resolve(entries, clubArtifact.Assignments, rec)
			artifact := pipeline.PlayerArtifact{Players: players, Assignments: assignments}
			if err := model.WriteArtifactObject(output, &artifact); err != nil {
				return err
			}

			logger.Info("players resolved", "count", len(players), "output", output)
			finish(rec)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", defaultEntries, "Sighting artifact path")
	cmd.Flags().StringVar(&clubs, "clubs", defaultClubs, "Club artifact path")
	cmd.Flags().StringVarP(&output, "output", "o", defaultPlayers, "Player artifact path")

	return cmd
}
