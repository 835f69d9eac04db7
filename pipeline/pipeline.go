// Package pipeline orchestrates the roster-to-graph stages.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/c360studio/semstreams/natsclient"

	"github.com/c360studio/rostergraph/aggregate"
	"github.com/c360studio/rostergraph/config"
	"github.com/c360studio/rostergraph/export"
	"github.com/c360studio/rostergraph/graph"
	"github.com/c360studio/rostergraph/model"
	"github.com/c360studio/rostergraph/relation"
	"github.com/c360studio/rostergraph/report"
	"github.com/c360studio/rostergraph/resolve"
	"github.com/c360studio/rostergraph/roster"
	"github.com/c360studio/rostergraph/season"
	"github.com/c360studio/rostergraph/stats"
	"github.com/c360studio/rostergraph/vocab"
)

// State is the shared working set the stages build up. A full run carries
// it in memory; every stage also persists its output artifact so the same
// data can flow between the per-stage commands.
type State struct {
	Entries        []roster.Entry
	Clubs          []model.Club
	ClubIDs        map[int]string
	Players        []model.Player
	PlayerIDs      map[int]string
	Stats          []model.PlayerSeasonStats
	Seasons        []model.Season
	Positions      []model.Position
	Nationalities  []model.Nationality
	Teammates      []model.TeammatePair
	Participations []model.Participation
	Graph          *export.RDFExporter
}

// Stage is one unit of pipeline work. A stage runs only after every named
// dependency has completed.
type Stage struct {
	Name string
	Deps []string
	Run  func(ctx context.Context, st *State) error
}

// Runner executes the stages in order with a strict completion barrier:
// a stage never starts while one of its dependencies is unfinished.
type Runner struct {
	cfg    *config.Config
	rec    *report.Recorder
	nc     *natsclient.Client
	logger *slog.Logger
	stages []Stage
}

// NewRunner builds a runner over the full stage set. A nil NATS client
// disables graph publishing.
func NewRunner(cfg *config.Config, rec *report.Recorder, nc *natsclient.Client, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Runner{cfg: cfg, rec: rec, nc: nc, logger: logger}
	r.stages = []Stage{
		{Name: "load", Run: r.stageLoad},
		{Name: "resolve-clubs", Deps: []string{"load"}, Run: r.stageClubs},
		{Name: "resolve-players", Deps: []string{"resolve-clubs"}, Run: r.stagePlayers},
		{Name: "build-stats", Deps: []string{"resolve-players"}, Run: r.stageStats},
		{Name: "build-seasons", Deps: []string{"build-stats"}, Run: r.stageSeasons},
		{Name: "build-vocab", Deps: []string{"resolve-players"}, Run: r.stageVocab},
		{Name: "aggregate-totals", Deps: []string{"build-stats", "build-vocab"}, Run: r.stageTotals},
		{Name: "derive-relations", Deps: []string{"build-stats"}, Run: r.stageRelations},
		{Name: "emit", Deps: []string{"build-seasons", "aggregate-totals", "derive-relations"}, Run: r.stageEmit},
	}
	return r
}

// Run executes every stage. The first stage error aborts the run; record
// level problems inside a stage are recorded as conditions instead.
func (r *Runner) Run(ctx context.Context) error {
	st := &State{}
	done := make(map[string]bool, len(r.stages))

	for _, stage := range r.stages {
		for _, dep := range stage.Deps {
			if !done[dep] {
				return fmt.Errorf("stage %s: dependency %s has not completed", stage.Name, dep)
			}
		}

		start := time.Now()
		r.logger.Info("stage starting", "stage", stage.Name)
		if err := stage.Run(ctx, st); err != nil {
			return fmt.Errorf("stage %s: %w", stage.Name, err)
		}
		done[stage.Name] = true
		r.logger.Info("stage complete", "stage", stage.Name, "elapsed", time.Since(start))
	}

	r.logger.Info("pipeline complete", "summary", r.rec.Summary())
	return nil
}

func (r *Runner) path(name string) string {
	return filepath.Join(r.cfg.Pipeline.Workdir, name)
}

func (r *Runner) stageLoad(ctx context.Context, st *State) error {
	store := roster.NewStore(r.logger)
	scope, err := roster.NewScope(r.cfg.Scope.Competition, r.cfg.Scope.SeasonFrom, r.cfg.Scope.SeasonTo)
	if err != nil {
		return err
	}
	if err := store.LoadGlob(r.cfg.Source.Glob, scope, r.rec); err != nil {
		return err
	}
	st.Entries = store.Entries()
	return model.WriteArtifact(r.path(EntriesFile), st.Entries)
}

func (r *Runner) stageClubs(ctx context.Context, st *State) error {
	st.Clubs, st.ClubIDs = resolve.NewClubRegistry(r.logger).Resolve(st.Entries, r.rec)
	artifact := ClubArtifact{Clubs: st.Clubs, Assignments: st.ClubIDs}
	return model.WriteArtifactObject(r.path(ClubsFile), &artifact)
}

func (r *Runner) stagePlayers(ctx context.Context, st *State) error {
	st.Players, st.PlayerIDs = resolve.NewPlayerResolver(r.logger).Resolve(st.Entries, st.ClubIDs, r.rec)
	artifact := PlayerArtifact{Players: st.Players, Assignments: st.PlayerIDs}
	return model.WriteArtifactObject(r.path(PlayersFile), &artifact)
}

func (r *Runner) stageStats(ctx context.Context, st *State) error {
	st.Stats = stats.NewBuilder(r.logger).Build(st.Entries, st.PlayerIDs, st.ClubIDs, r.rec)
	return model.WriteArtifact(r.path(StatsFile), st.Stats)
}

func (r *Runner) stageSeasons(ctx context.Context, st *State) error {
	st.Seasons = season.NewRegistry(r.logger).Derive(st.Stats, r.rec)
	return model.WriteArtifact(r.path(SeasonsFile), st.Seasons)
}

func (r *Runner) stageVocab(ctx context.Context, st *State) error {
	st.Positions = vocab.ExtractPositions(st.Players)
	st.Nationalities = vocab.ExtractNationalities(st.Players)
	artifact := VocabArtifact{Positions: st.Positions, Nationalities: st.Nationalities}
	if err := model.WriteArtifactObject(r.path(VocabFile), &artifact); err != nil {
		return err
	}
	// Extraction assigns vocabulary IDs onto the players, so the player
	// artifact is refreshed to keep it consistent.
	players := PlayerArtifact{Players: st.Players, Assignments: st.PlayerIDs}
	return model.WriteArtifactObject(r.path(PlayersFile), &players)
}

func (r *Runner) stageTotals(ctx context.Context, st *State) error {
	aggregate.NewTotals(r.logger).Apply(st.Players, st.Stats, r.rec)
	players := PlayerArtifact{Players: st.Players, Assignments: st.PlayerIDs}
	return model.WriteArtifactObject(r.path(PlayersFile), &players)
}

func (r *Runner) stageRelations(ctx context.Context, st *State) error {
	st.Teammates = relation.Teammates(st.Stats)
	st.Participations = relation.Participations(st.Stats)
	artifact := RelationArtifact{Teammates: st.Teammates, Participations: st.Participations}
	return model.WriteArtifactObject(r.path(RelationsFile), &artifact)
}

func (r *Runner) stageEmit(ctx context.Context, st *State) error {
	st.Graph = export.Emit(export.GraphInput{
		Players:        st.Players,
		Clubs:          st.Clubs,
		Seasons:        st.Seasons,
		Stats:          st.Stats,
		Positions:      st.Positions,
		Nationalities:  st.Nationalities,
		Teammates:      st.Teammates,
		Participations: st.Participations,
	}, r.rec)

	format, err := export.ParseFormat(r.cfg.Export.Format)
	if err != nil {
		return err
	}
	serialized, err := st.Graph.Export(format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.cfg.Export.Output), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(r.cfg.Export.Output, []byte(serialized), 0o644); err != nil {
		return fmt.Errorf("write graph output: %w", err)
	}
	r.logger.Info("graph written", "path", r.cfg.Export.Output, "entities", st.Graph.Len())

	return graph.PublishEntities(ctx, r.nc, st.Graph)
}
