package commands

import (
	"github.com/spf13/cobra"

	"github.com/c360studio/rostergraph/model"
	"github.com/c360studio/rostergraph/pipeline"
	"github.com/c360studio/rostergraph/relation"
	"github.com/c360studio/rostergraph/report"
)

func newDeriveRelationsCommand() *cobra.Command {
	var (
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "derive-relations",
		Short: "Derive teammate pairs and club participations",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			rec := report.NewRecorder(logger)

			records, err := model.ReadArtifact[model.PlayerSeasonStats](input)
			if err != nil {
				return err
			}

			artifact := pipeline.RelationArtifact{
				Teammates:      relation.Teammates(records),
				Participations: relation.Participations(records),
			}
			if err := model.WriteArtifactObject(output, &artifact); err != nil {
				return err
			}

			logger.Info("relations derived",
				"teammates", len(artifact.Teammates),
				"participations", len(artifact.Participations),
				"output", output)
			finish(rec)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", defaultStats, "Stats artifact path")
	cmd.Flags().StringVarP(&output, "output", "o", defaultRelations, "Relation artifact path")

	return cmd
}
