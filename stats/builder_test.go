package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/rostergraph/report"
	"github.com/c360studio/rostergraph/roster"
	"github.com/c360studio/rostergraph/vocabulary/football"
)

func entryWithStats(name, club, seasonLabel string, stats map[string]any) roster.Entry {
	return roster.Entry{
		FullName: name,
		ClubName: club,
		Season:   seasonLabel,
		Stats:    map[string]map[string]any{"attack": stats},
	}
}

func TestSeasonID(t *testing.T) {
	assert.Equal(t, "2024-25", SeasonID("2024/25"))
	assert.Equal(t, "1999-00", SeasonID(" 1999/00 "))
}

func TestBuildMapsAliases(t *testing.T) {
	entries := []roster.Entry{
		entryWithStats("Jordan Reyes", "Riverton FC", "2024/25", map[string]any{
			"goals":        float64(7),
			"timePlayed":   float64(2430),
			"totalTackles": float64(41),
		}),
	}
	playerIDs := map[int]string{0: "p1"}
	clubIDs := map[int]string{0: "c1"}

	rec := report.NewRecorder(nil)
	records := NewBuilder(nil).Build(entries, playerIDs, clubIDs, rec)

	require.Len(t, records, 1)
	r := records[0]
	assert.Equal(t, "p1", r.PlayerID)
	assert.Equal(t, "c1", r.ClubID)
	assert.Equal(t, "2024-25", r.SeasonID)

	goals, ok := r.Value(football.StatGoals)
	require.True(t, ok)
	assert.Equal(t, int64(7), goals)

	// Legacy source names map onto the canonical schema.
	minutes, ok := r.Value(football.StatMinutesPlayed)
	require.True(t, ok)
	assert.Equal(t, int64(2430), minutes)

	tackles, ok := r.Value(football.StatTackles)
	require.True(t, ok)
	assert.Equal(t, int64(41), tackles)
}

func TestBuildAbsentFieldStaysAbsent(t *testing.T) {
	entries := []roster.Entry{
		entryWithStats("Jordan Reyes", "Riverton FC", "2024/25", map[string]any{
			"goals": float64(0),
		}),
	}

	rec := report.NewRecorder(nil)
	records := NewBuilder(nil).Build(entries, map[int]string{0: "p1"}, map[int]string{0: "c1"}, rec)

	require.Len(t, records, 1)

	goals, ok := records[0].Value(football.StatGoals)
	require.True(t, ok, "a reported zero is a real observation")
	assert.Zero(t, goals)

	_, ok = records[0].Value(football.StatAssists)
	assert.False(t, ok, "a never-reported field must stay absent, not become zero")
}

func TestBuildSumsPassCompletion(t *testing.T) {
	entries := []roster.Entry{
		entryWithStats("Jordan Reyes", "Riverton FC", "2024/25", map[string]any{
			"successfulShortPasses": float64(900),
			"successfulLongPasses":  float64(120),
			"successfulCrosses":     float64(30),
		}),
	}

	rec := report.NewRecorder(nil)
	records := NewBuilder(nil).Build(entries, map[int]string{0: "p1"}, map[int]string{0: "c1"}, rec)

	require.Len(t, records, 1)
	passes, ok := records[0].Value(football.StatPassesCompleted)
	require.True(t, ok)
	assert.Equal(t, int64(1050), passes)
}

func TestBuildMergesDuplicatesByMaximum(t *testing.T) {
	// Two cumulative snapshots of the same season; the larger observation
	// wins per field.
	entries := []roster.Entry{
		entryWithStats("Jordan Reyes", "Riverton FC", "2024/25", map[string]any{
			"goals":   float64(4),
			"assists": float64(6),
		}),
		entryWithStats("Jordan Reyes", "Riverton FC", "2024/25", map[string]any{
			"goals": float64(7),
		}),
	}
	playerIDs := map[int]string{0: "p1", 1: "p1"}
	clubIDs := map[int]string{0: "c1", 1: "c1"}

	rec := report.NewRecorder(nil)
	records := NewBuilder(nil).Build(entries, playerIDs, clubIDs, rec)

	require.Len(t, records, 1)
	goals, _ := records[0].Value(football.StatGoals)
	assert.Equal(t, int64(7), goals)
	assists, _ := records[0].Value(football.StatAssists)
	assert.Equal(t, int64(6), assists, "fields absent from the later snapshot keep the earlier value")
	assert.Equal(t, 1, rec.MergedCount())
}

func TestBuildDropsMalformedField(t *testing.T) {
	entries := []roster.Entry{
		entryWithStats("Jordan Reyes", "Riverton FC", "2024/25", map[string]any{
			"goals":   "n/a",
			"assists": float64(3),
		}),
	}

	rec := report.NewRecorder(nil)
	records := NewBuilder(nil).Build(entries, map[int]string{0: "p1"}, map[int]string{0: "c1"}, rec)

	require.Len(t, records, 1, "the record survives a dropped field")
	_, ok := records[0].Value(football.StatGoals)
	assert.False(t, ok)
	assists, _ := records[0].Value(football.StatAssists)
	assert.Equal(t, int64(3), assists)
	assert.Equal(t, 1, rec.Count(report.MalformedField))
}

func TestBuildFlooredFractionalValues(t *testing.T) {
	entries := []roster.Entry{
		entryWithStats("Jordan Reyes", "Riverton FC", "2024/25", map[string]any{
			"expectedGoals": float64(5.83),
		}),
	}

	rec := report.NewRecorder(nil)
	records := NewBuilder(nil).Build(entries, map[int]string{0: "p1"}, map[int]string{0: "c1"}, rec)

	require.Len(t, records, 1)
	xg, ok := records[0].Value(football.StatExpectedGoals)
	require.True(t, ok)
	assert.Equal(t, int64(5), xg)
}

func TestBuildSkipsUnresolvableSightings(t *testing.T) {
	entries := []roster.Entry{
		entryWithStats("Mystery Player", "Riverton FC", "2024/25", map[string]any{
			"goals": float64(2),
		}),
	}

	rec := report.NewRecorder(nil)
	records := NewBuilder(nil).Build(entries, map[int]string{}, map[int]string{0: "c1"}, rec)

	assert.Empty(t, records)
	assert.Equal(t, 1, rec.Count(report.CrawlGap))
}

func TestBuildDeterministicIDs(t *testing.T) {
	entries := []roster.Entry{
		entryWithStats("Jordan Reyes", "Riverton FC", "2024/25", map[string]any{"goals": float64(1)}),
	}

	a := NewBuilder(nil).Build(entries, map[int]string{0: "p1"}, map[int]string{0: "c1"}, report.NewRecorder(nil))
	b := NewBuilder(nil).Build(entries, map[int]string{0: "p1"}, map[int]string{0: "c1"}, report.NewRecorder(nil))

	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, a[0].ID, b[0].ID)
}
