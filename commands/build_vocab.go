package commands

import (
	"github.com/spf13/cobra"

	"github.com/c360studio/rostergraph/model"
	"github.com/c360studio/rostergraph/pipeline"
	"github.com/c360studio/rostergraph/report"
	"github.com/c360studio/rostergraph/vocab"
)

func newBuildVocabCommand() *cobra.Command {
	var (
		players string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "build-vocab",
		Short: "Intern position and nationality vocabulary entries",
		Long: `Build-vocab interns distinct positions and nationalities across the
canonical players and assigns the vocabulary IDs back onto them, so the
player artifact is rewritten alongside the vocabulary output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			rec := report.NewRecorder(logger)

			playerArtifact, err := model.ReadArtifactObject[pipeline.PlayerArtifact](players)
			if err != nil {
				return err
			}

			positions := vocab.ExtractPositions(playerArtifact.Players)
			nationalities := vocab.ExtractNationalities(playerArtifact.Players)

			artifact := pipeline.VocabArtifact{Positions: positions, Nationalities: nationalities}
			if err := model.WriteArtifactObject(output, &artifact); err != nil {
				return err
			}
			if err := model.WriteArtifactObject(players, playerArtifact); err != nil {
				return err
			}

			logger.Info("vocabulary interned",
				"positions", len(positions),
				"nationalities", len(nationalities),
				"output", output)
			finish(rec)
			return nil
		},
	}

	cmd.Flags().StringVar(&players, "players", defaultPlayers, "Player artifact path (rewritten with vocabulary IDs)")
	cmd.Flags().StringVarP(&output, "output", "o", defaultVocab, "Vocabulary artifact path")

	return cmd
}
