// Package aggregate folds per-season statistics into career totals.
package aggregate

import (
	"log/slog"

	"github.com/c360studio/rostergraph/model"
	"github.com/c360studio/rostergraph/report"
	"github.com/c360studio/rostergraph/vocabulary/football"
)

// Totals recomputes every player's career appearance/goal/assist totals as
// the sum over that player's full stats set.
//
// Recomputing from scratch (never incrementing a running counter) makes the
// operation idempotent: running it twice yields identical totals, and adding
// a season's stats and re-running updates totals without double-counting.
// Absent fields contribute zero to the sum; a player with no stats records
// at all keeps nil totals rather than a fabricated zero.
type Totals struct {
	logger *slog.Logger
}

// NewTotals creates a Totals aggregator.
func NewTotals(logger *slog.Logger) *Totals {
	if logger == nil {
		logger = slog.Default()
	}
	return &Totals{logger: logger}
}

// Apply recomputes totals for every player in place. A previously stored
// total that disagrees with the recomputed value raises an
// aggregation_inconsistency condition and is overwritten: recomputation is
// authoritative.
func (t *Totals) Apply(players []model.Player, records []model.PlayerSeasonStats, rec *report.Recorder) {
	type sums struct {
		appearances, goals, assists int64
	}
	byPlayer := make(map[string]*sums)

	for i := range records {
		r := &records[i]
		s, ok := byPlayer[r.PlayerID]
		if !ok {
			s = &sums{}
			byPlayer[r.PlayerID] = s
		}
		if v, ok := r.Value(football.StatAppearances); ok {
			s.appearances += v
		}
		if v, ok := r.Value(football.StatGoals); ok {
			s.goals += v
		}
		if v, ok := r.Value(football.StatAssists); ok {
			s.assists += v
		}
	}

	for i := range players {
		p := &players[i]
		s, ok := byPlayer[p.ID]
		if !ok {
			continue
		}
		p.TotalAppearances = t.reconcile(p, "appearances", p.TotalAppearances, s.appearances, rec)
		p.TotalGoals = t.reconcile(p, "goals", p.TotalGoals, s.goals, rec)
		p.TotalAssists = t.reconcile(p, "assists", p.TotalAssists, s.assists, rec)
	}
}

func (t *Totals) reconcile(p *model.Player, field string, prev *int64, computed int64, rec *report.Recorder) *int64 {
	if prev != nil && *prev != computed {
		rec.Record(report.AggregationInconsistency,
			"player %s: stored total %s %d != recomputed %d, overwriting", p.Name, field, *prev, computed)
		t.logger.Warn("stored total disagrees with recomputation, overwriting",
			"player", p.Name, "field", field, "stored", *prev, "recomputed", computed)
	}
	return &computed
}
