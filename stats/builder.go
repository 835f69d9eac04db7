package stats

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/c360studio/rostergraph/model"
	"github.com/c360studio/rostergraph/report"
	"github.com/c360studio/rostergraph/resolve"
	"github.com/c360studio/rostergraph/roster"
	"github.com/c360studio/rostergraph/vocabulary/football"
)

// SeasonID derives the season identifier from a display label:
// "2024/25" → "2024-25".
func SeasonID(label string) string {
	return strings.ReplaceAll(strings.TrimSpace(label), "/", "-")
}

// Builder extracts canonical PlayerSeasonStats from roster sightings.
//
// A stat that was never reported stays absent from the record; absence is
// distinct from a reported zero. A field that fails numeric coercion is
// dropped with a malformed_field condition and the record is otherwise
// kept. Duplicate (player, club, season) sightings in one batch merge by
// maximum observed value, because source snapshots are cumulative within a
// season.
type Builder struct {
	logger *slog.Logger
}

// NewBuilder creates a Builder.
func NewBuilder(logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{logger: logger}
}

// Build emits one PlayerSeasonStats per distinct (player, club, season)
// carrying statistic fields. playerIDs and clubIDs map sighting indices to
// resolved identifiers; sightings without both resolutions are skipped.
func (b *Builder) Build(entries []roster.Entry, playerIDs, clubIDs map[int]string, rec *report.Recorder) []model.PlayerSeasonStats {
	byKey := make(map[string]*model.PlayerSeasonStats)

	for i := range entries {
		e := &entries[i]
		if !e.HasStats() {
			continue
		}
		playerID, clubID := playerIDs[i], clubIDs[i]
		if playerID == "" || clubID == "" {
			rec.Record(report.CrawlGap, "stats sighting for %q unresolvable (player=%q club=%q)",
				e.FullName, playerID, clubID)
			continue
		}
		seasonID := SeasonID(e.Season)

		values := b.mapValues(e, rec)
		if len(values) == 0 {
			continue
		}

		key := playerID + "|" + clubID + "|" + seasonID
		record, seen := byKey[key]
		if !seen {
			byKey[key] = &model.PlayerSeasonStats{
				ID:       resolve.NewID("stats", key),
				PlayerID: playerID,
				ClubID:   clubID,
				SeasonID: seasonID,
				Values:   values,
			}
			continue
		}

		// Cumulative snapshots: the larger observation dominates.
		rec.RecordMerge()
		b.logger.Debug("merging duplicate stats sighting",
			"player", e.FullName, "season", seasonID)
		for field, v := range values {
			if prev, ok := record.Values[field]; !ok || v > prev {
				record.Values[field] = v
			}
		}
	}

	records := make([]model.PlayerSeasonStats, 0, len(byKey))
	for _, r := range byKey {
		records = append(records, *r)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records
}

// mapValues maps one sighting's raw stat fields onto the canonical schema.
func (b *Builder) mapValues(e *roster.Entry, rec *report.Recorder) map[string]int64 {
	raw := e.FlatStats()
	values := make(map[string]int64)

	for _, field := range football.AllStatFields() {
		if field == football.StatPassesCompleted {
			continue
		}
		for _, source := range sourceAliases[field] {
			v, present := raw[source]
			if !present {
				continue
			}
			n, ok := coerceValue(v)
			if !ok {
				rec.Record(report.MalformedField, "player %q season %s: %s=%v dropped",
					e.FullName, e.Season, source, v)
				continue
			}
			values[field] = n
			break
		}
	}

	// passesCompleted sums the split pass-completion fields; absent only
	// when no source field was reported at all.
	var passes int64
	anyPresent := false
	for _, source := range passesCompletedSources {
		v, present := raw[source]
		if !present {
			continue
		}
		n, ok := coerceValue(v)
		if !ok {
			rec.Record(report.MalformedField, "player %q season %s: %s=%v dropped",
				e.FullName, e.Season, source, v)
			continue
		}
		passes += n
		anyPresent = true
	}
	if anyPresent {
		values[football.StatPassesCompleted] = passes
	}

	return values
}

// coerceValue converts one raw stat value to a count. Fractional inputs are
// floored; only non-numeric content fails.
func coerceValue(v any) (int64, bool) {
	switch t := v.(type) {
	case float64:
		return int64(t), true
	case int:
		return int64(t), true
	case int64:
		return t, true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return int64(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}
