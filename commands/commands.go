// Package commands provides the rostergraph CLI subcommands. Each pipeline
// stage is exposed as its own command exchanging flat JSON artifacts, and
// the run command executes the whole pipeline in one process.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/rostergraph/report"
	"github.com/c360studio/rostergraph/roster"
)

// Default artifact paths shared by the stage commands.
const (
	defaultEntries   = "artifacts/entries.json"
	defaultClubs     = "artifacts/clubs.json"
	defaultPlayers   = "artifacts/players.json"
	defaultStats     = "artifacts/stats.json"
	defaultSeasons   = "artifacts/seasons.json"
	defaultVocab     = "artifacts/vocabulary.json"
	defaultRelations = "artifacts/relations.json"
)

// Register attaches every subcommand to the root command.
func Register(root *cobra.Command) {
	root.AddCommand(
		newRunCommand(),
		newLoadCommand(),
		newResolveClubsCommand(),
		newResolvePlayersCommand(),
		newBuildStatsCommand(),
		newBuildSeasonsCommand(),
		newBuildVocabCommand(),
		newAggregateTotalsCommand(),
		newDeriveRelationsCommand(),
		newEmitCommand(),
	)
}

// scopeArgs carries the shared sighting scope flags before label parsing.
type scopeArgs struct {
	competition string
	seasonFrom  string
	seasonTo    string
}

// scopeFlags binds the shared sighting scope flags onto a command.
func scopeFlags(cmd *cobra.Command, scope *scopeArgs) {
	cmd.Flags().StringVar(&scope.competition, "competition", "", "Limit to a single competition")
	cmd.Flags().StringVar(&scope.seasonFrom, "season-from", "", "Earliest season label to include, e.g. 2020/21")
	cmd.Flags().StringVar(&scope.seasonTo, "season-to", "", "Latest season label to include, e.g. 2024/25")
}

func (s scopeArgs) toScope() (roster.Scope, error) {
	return roster.NewScope(s.competition, s.seasonFrom, s.seasonTo)
}

// finish prints the run summary. Recorded conditions never change the exit
// code; only unreadable inputs do, via the returned command error.
func finish(rec *report.Recorder) {
	fmt.Fprintln(os.Stdout, rec.Summary())
}

func newLogger() *slog.Logger {
	return slog.Default()
}
