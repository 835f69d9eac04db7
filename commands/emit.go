package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/c360studio/rostergraph/export"
	"github.com/c360studio/rostergraph/graph"
	"github.com/c360studio/rostergraph/model"
	"github.com/c360studio/rostergraph/pipeline"
	"github.com/c360studio/rostergraph/report"
)

func newEmitCommand() *cobra.Command {
	var (
		clubs     string
		players   string
		statsPath string
		seasons   string
		vocabPath string
		relations string
		format    string
		output    string
		natsURL   string
	)

	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Emit the knowledge graph from the stage artifacts",
		Long: `Emit maps every canonical entity and relation onto the football
ontology and serializes the result as Turtle, N-Triples, or JSON-LD.
With a NATS URL the entities are also published to the graph ingest
stream.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			rec := report.NewRecorder(logger)

			clubArtifact, err := model.ReadArtifactObject[pipeline.ClubArtifact](clubs)
			if err != nil {
				return err
			}
			playerArtifact, err := model.ReadArtifactObject[pipeline.PlayerArtifact](players)
			if err != nil {
				return err
			}
			records, err := model.ReadArtifact[model.PlayerSeasonStats](statsPath)
			if err != nil {
				return err
			}
			seasonList, err := model.ReadArtifact[model.Season](seasons)
			if err != nil {
				return err
			}
			vocabArtifact, err := model.ReadArtifactObject[pipeline.VocabArtifact](vocabPath)
			if err != nil {
				return err
			}
			relationArtifact, err := model.ReadArtifactObject[pipeline.RelationArtifact](relations)
			if err != nil {
				return err
			}

			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			exporter := export.Emit(export.GraphInput{
				Players:        playerArtifact.Players,
				Clubs:          clubArtifact.Clubs,
				Seasons:        seasonList,
				Stats:          records,
				Positions:      vocabArtifact.Positions,
				Nationalities:  vocabArtifact.Nationalities,
				Teammates:      relationArtifact.Teammates,
				Participations: relationArtifact.Participations,
			}, rec)

			serialized, err := exporter.Export(f)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			if err := os.WriteFile(output, []byte(serialized), 0o644); err != nil {
				return fmt.Errorf("write graph output: %w", err)
			}
			logger.Info("graph written", "path", output, "entities", exporter.Len(), "format", string(f))

			nc, err := graph.Connect(cmd.Context(), natsURL, logger)
			if err != nil {
				return err
			}
			if nc != nil {
				defer nc.Close(cmd.Context())
			}
			if err := graph.PublishEntities(cmd.Context(), nc, exporter); err != nil {
				return err
			}

			finish(rec)
			return nil
		},
	}

	cmd.Flags().StringVar(&clubs, "clubs", defaultClubs, "Club artifact path")
	cmd.Flags().StringVar(&players, "players", defaultPlayers, "Player artifact path")
	cmd.Flags().StringVar(&statsPath, "stats", defaultStats, "Stats artifact path")
	cmd.Flags().StringVar(&seasons, "seasons", defaultSeasons, "Season artifact path")
	cmd.Flags().StringVar(&vocabPath, "vocab", defaultVocab, "Vocabulary artifact path")
	cmd.Flags().StringVar(&relations, "relations", defaultRelations, "Relation artifact path")
	cmd.Flags().StringVarP(&format, "format", "f", "turtle", "Output format (turtle, ntriples, jsonld)")
	cmd.Flags().StringVarP(&output, "output", "o", "graph.ttl", "Graph output path")
	cmd.Flags().StringVar(&natsURL, "nats-url", "", "NATS URL for graph publishing (empty = file only)")

	return cmd
}
