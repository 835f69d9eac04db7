package commands

import (
	"github.com/spf13/cobra"

	"github.com/c360studio/rostergraph/model"
	"github.com/c360studio/rostergraph/report"
	"github.com/c360studio/rostergraph/roster"
)

func newLoadCommand() *cobra.Command {
	var (
		source string
		output string
		scope  scopeArgs
	)

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load crawl artifacts into a sighting artifact",
		Long: `Load reads roster crawl files matching the source glob, filters them
to the requested scope, and writes the usable sightings as a flat JSON
artifact for the downstream stages.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			rec := report.NewRecorder(logger)

			sc, err := scope.toScope()
			if err != nil {
				return err
			}

			store := roster.NewStore(logger)
			if err := store.LoadGlob(source, sc, rec); err != nil {
				return err
			}
			if err := model.WriteArtifact(output, store.Entries()); err != nil {
				return err
			}

			logger.Info("sightings loaded", "count", store.Len(), "output", output)
			finish(rec)
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "data/rosters/**/*.json", "Glob selecting crawl artifact files")
	cmd.Flags().StringVarP(&output, "output", "o", defaultEntries, "Sighting artifact path")
	scopeFlags(cmd, &scope)

	return cmd
}
