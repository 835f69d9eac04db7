package commands

import (
	"github.com/spf13/cobra"

	"github.com/c360studio/rostergraph/model"
	"github.com/c360studio/rostergraph/pipeline"
	"github.com/c360studio/rostergraph/report"
	"github.com/c360studio/rostergraph/resolve"
	"github.com/c360studio/rostergraph/roster"
)

func newResolveClubsCommand() *cobra.Command {
	var (
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "resolve-clubs",
		Short: "Resolve club sightings into canonical clubs",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			rec := report.NewRecorder(logger)

			entries, err := model.ReadArtifact[roster.Entry](input)
			if err != nil {
				return err
			}

			clubs, assignments := resolve.NewClubRegistry(logger).Resolve(entries, rec)
			artifact := pipeline.ClubArtifact{Clubs: clubs, Assignments: assignments}
			if err := model.WriteArtifactObject(output, &artifact); err != nil {
				return err
			}

			logger.Info("clubs resolved", "count", len(clubs), "output", output)
			finish(rec)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", defaultEntries, "Sighting artifact path")
	cmd.Flags().StringVarP(&output, "output", "o", defaultClubs, "Club artifact path")

	return cmd
}
