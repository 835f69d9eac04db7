package commands

import (
	"github.com/spf13/cobra"

	"github.com/c360studio/rostergraph/config"
	"github.com/c360studio/rostergraph/graph"
	"github.com/c360studio/rostergraph/pipeline"
	"github.com/c360studio/rostergraph/report"
)

func newRunCommand() *cobra.Command {
	var (
		configPath string
		source     string
		workdir    string
		format     string
		output     string
		natsURL    string
		scope      scopeOverride
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the complete roster-to-graph pipeline",
		Long: `Run executes every stage in order: load, club and player resolution,
stats, seasons, vocabulary, totals, relations, and graph emission. Each
stage persists its artifact to the workdir before the next one starts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			rec := report.NewRecorder(logger)

			var cfg *config.Config
			var err error
			if configPath != "" {
				cfg, err = config.LoadFromFile(configPath)
				if err != nil {
					return err
				}
			} else {
				cfg, err = config.NewLoader(logger).Load()
				if err != nil {
					return err
				}
			}

			// Flags take precedence over file configuration.
			if source != "" {
				cfg.Source.Glob = source
			}
			if workdir != "" {
				cfg.Pipeline.Workdir = workdir
			}
			if format != "" {
				cfg.Export.Format = format
			}
			if output != "" {
				cfg.Export.Output = output
			}
			if natsURL != "" {
				cfg.NATS.URL = natsURL
			}
			scope.apply(cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			nc, err := graph.Connect(cmd.Context(), cfg.NATS.URL, logger)
			if err != nil {
				return err
			}
			if nc != nil {
				defer nc.Close(cmd.Context())
			}

			if err := pipeline.NewRunner(cfg, rec, nc, logger).Run(cmd.Context()); err != nil {
				return err
			}

			finish(rec)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVarP(&source, "source", "s", "", "Glob selecting crawl artifact files")
	cmd.Flags().StringVar(&workdir, "workdir", "", "Directory for stage artifacts")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (turtle, ntriples, jsonld)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Graph output path")
	cmd.Flags().StringVar(&natsURL, "nats-url", "", "NATS URL for graph publishing (empty = file only)")
	cmd.Flags().StringVar(&scope.competition, "competition", "", "Limit to a single competition")
	cmd.Flags().StringVar(&scope.seasonFrom, "season-from", "", "Earliest season label to include")
	cmd.Flags().StringVar(&scope.seasonTo, "season-to", "", "Latest season label to include")

	return cmd
}

type scopeOverride struct {
	competition string
	seasonFrom  string
	seasonTo    string
}

func (s scopeOverride) apply(cfg *config.Config) {
	if s.competition != "" {
		cfg.Scope.Competition = s.competition
	}
	if s.seasonFrom != "" {
		cfg.Scope.SeasonFrom = s.seasonFrom
	}
	if s.seasonTo != "" {
		cfg.Scope.SeasonTo = s.seasonTo
	}
}
