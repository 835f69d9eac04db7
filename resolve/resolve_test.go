package resolve

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/rostergraph/report"
	"github.com/c360studio/rostergraph/roster"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Brighton & Hove Albion", "brighton and hove albion"},
		{"  Atlético   Madrid ", "atlético madrid"},
		{"St. Mirren F.C.", "st mirren f c"},
		{"KØBENHAVN", "københavn"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "centre_back", Slug("Centre Back"))
	assert.Equal(t, "st_mirren_f_c", Slug("St. Mirren F.C."))
}

func TestNewIDDeterministic(t *testing.T) {
	a := NewID("club", "riverton fc")
	b := NewID("club", "riverton fc")
	assert.Equal(t, a, b, "same kind and key must derive the same ID")

	assert.NotEqual(t, a, NewID("player", "riverton fc"), "kind participates in the key")
	assert.NotEqual(t, a, NewID("club", "riverton afc"))
}

func TestClubRegistryMergesSightings(t *testing.T) {
	entries := []roster.Entry{
		{FullName: "A", ClubName: "Riverton FC", Season: "2023/24", Stadium: "River Park"},
		{FullName: "B", ClubName: "RIVERTON  FC", Season: "2024/25", Founded: float64(1901)},
		{FullName: "C", ClubName: "Harbour Town", Season: "2024/25"},
	}

	rec := report.NewRecorder(nil)
	clubs, sightings := NewClubRegistry(nil).Resolve(entries, rec)

	require.Len(t, clubs, 2)
	assert.Equal(t, "Harbour Town", clubs[0].Name)
	assert.Equal(t, "Riverton FC", clubs[1].Name)

	// Case and spacing variants resolve to the same club and pool attributes.
	assert.Equal(t, sightings[0], sightings[1])
	assert.Equal(t, "River Park", clubs[1].Stadium)
	assert.Equal(t, 1901, clubs[1].FoundationYear)
	assert.Equal(t, 1, rec.MergedCount())
}

func TestClubRegistryMalformedFoundationYear(t *testing.T) {
	entries := []roster.Entry{
		{FullName: "A", ClubName: "Riverton FC", Season: "2024/25", Founded: "unknown"},
	}

	rec := report.NewRecorder(nil)
	clubs, _ := NewClubRegistry(nil).Resolve(entries, rec)

	require.Len(t, clubs, 1)
	assert.Zero(t, clubs[0].FoundationYear)
	assert.Equal(t, 1, rec.Count(report.MalformedField))
}

func TestClubRegistryKeepsEarliestOnConflict(t *testing.T) {
	entries := []roster.Entry{
		{FullName: "A", ClubName: "Riverton FC", Season: "2023/24", Stadium: "River Park"},
		{FullName: "B", ClubName: "Riverton FC", Season: "2024/25", Stadium: "New River Park"},
	}

	rec := report.NewRecorder(nil)
	clubs, _ := NewClubRegistry(nil).Resolve(entries, rec)

	require.Len(t, clubs, 1)
	assert.Equal(t, "River Park", clubs[0].Stadium)
}

func TestPlayerResolverMergesAcrossSeasons(t *testing.T) {
	entries := []roster.Entry{
		{FullName: "Jordan Reyes", DateOfBirth: "1998-04-12", Country: "Spain", ClubName: "Riverton FC", Season: "2023/24", ShirtNumber: float64(14)},
		{FullName: "Jordan Reyes", DateOfBirth: "1998-04-12", Country: "Spain", ClubName: "Harbour Town", Season: "2024/25", ShirtNumber: float64(8), Position: "Midfielder"},
	}
	clubIDs := map[int]string{0: "club-riverton", 1: "club-harbour"}

	rec := report.NewRecorder(nil)
	players, sightings := NewPlayerResolver(nil).Resolve(entries, clubIDs, rec)

	require.Len(t, players, 1)
	p := players[0]
	assert.Equal(t, sightings[0], sightings[1])
	assert.Equal(t, "2023/24", p.JoinedSeason, "earliest season observed")
	assert.Equal(t, "club-harbour", p.CurrentClubID, "latest season supplies the current club")
	assert.Equal(t, 8, p.ShirtNumber, "latest season supplies the shirt number")
	assert.Equal(t, "Midfielder", p.Position)
	assert.Equal(t, 1, rec.MergedCount())
}

func TestPlayerResolverSplitsOnBirthDate(t *testing.T) {
	entries := []roster.Entry{
		{FullName: "Jordan Reyes", DateOfBirth: "1998-04-12", ClubName: "Riverton FC", Season: "2024/25"},
		{FullName: "Jordan Reyes", DateOfBirth: "2001-09-30", ClubName: "Harbour Town", Season: "2024/25"},
	}

	rec := report.NewRecorder(nil)
	players, sightings := NewPlayerResolver(nil).Resolve(entries, nil, rec)

	require.Len(t, players, 2, "conflicting birth dates are distinct individuals")
	assert.NotEqual(t, sightings[0], sightings[1])
	assert.NotEqual(t, players[0].ID, players[1].ID)
	assert.Zero(t, rec.MergedCount())
}

func TestPlayerResolverSplitsOnNationality(t *testing.T) {
	entries := []roster.Entry{
		{FullName: "Alex Mensah", Country: "Ghana", ClubName: "Riverton FC", Season: "2024/25"},
		{FullName: "Alex Mensah", Country: "England", ClubName: "Harbour Town", Season: "2024/25"},
	}

	rec := report.NewRecorder(nil)
	players, _ := NewPlayerResolver(nil).Resolve(entries, nil, rec)

	require.Len(t, players, 2)
}

func TestPlayerResolverAmbiguousMergeFlagged(t *testing.T) {
	entries := []roster.Entry{
		{FullName: "Jordan Reyes", DateOfBirth: "1998-04-12", ClubName: "Riverton FC", Season: "2023/24"},
		{FullName: "Jordan Reyes", ClubName: "Riverton FC", Season: "2024/25"},
	}

	rec := report.NewRecorder(nil)
	players, _ := NewPlayerResolver(nil).Resolve(entries, nil, rec)

	require.Len(t, players, 1, "missing birth date merges optimistically")
	assert.Equal(t, 1, rec.Count(report.IdentityAmbiguity))
	assert.Equal(t, "1998-04-12", players[0].DateOfBirth)
}

func TestPlayerResolverIDsIndependentOfOrder(t *testing.T) {
	forward := []roster.Entry{
		{FullName: "Jordan Reyes", DateOfBirth: "1998-04-12", Country: "Spain", ClubName: "Riverton FC", Season: "2023/24"},
		{FullName: "Jordan Reyes", DateOfBirth: "1998-04-12", Country: "Spain", ClubName: "Harbour Town", Season: "2024/25"},
	}
	reversed := []roster.Entry{forward[1], forward[0]}

	a, _ := NewPlayerResolver(nil).Resolve(forward, nil, report.NewRecorder(nil))
	b, _ := NewPlayerResolver(nil).Resolve(reversed, nil, report.NewRecorder(nil))

	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, a[0].ID, b[0].ID, "identifier derives from the matching key, not processing order")
}

func TestPlayerResolverFillsIdentityLater(t *testing.T) {
	// The birth date arrives only in the second sighting; the final ID must
	// still incorporate it.
	entries := []roster.Entry{
		{FullName: "Jordan Reyes", ClubName: "Riverton FC", Season: "2023/24"},
		{FullName: "Jordan Reyes", DateOfBirth: "1998-04-12", ClubName: "Riverton FC", Season: "2024/25"},
	}

	rec := report.NewRecorder(nil)
	players, _ := NewPlayerResolver(nil).Resolve(entries, nil, rec)

	require.Len(t, players, 1)
	assert.Equal(t, NewID("player", "jordan reyes|1998-04-12|"), players[0].ID)
}

func TestPlayerResolverLogsIdentityDecisions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	entries := []roster.Entry{
		{FullName: "Jordan Reyes", DateOfBirth: "1998-04-12", ClubName: "Riverton FC", Season: "2023/24"},
		{FullName: "Jordan Reyes", ClubName: "Riverton FC", Season: "2024/25"},
		{FullName: "Jordan Reyes", DateOfBirth: "1991-01-30", ClubName: "Harbour Town", Season: "2024/25"},
	}

	rec := report.NewRecorder(nil)
	players, _ := NewPlayerResolver(logger).Resolve(entries, nil, rec)

	require.Len(t, players, 2)
	out := buf.String()
	assert.Contains(t, out, "optimistic merge without birth date")
	assert.Contains(t, out, "conflicting identity, keeping separate")
}
