package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/rostergraph/model"
)

func record(player, club, season string) model.PlayerSeasonStats {
	return model.PlayerSeasonStats{PlayerID: player, ClubID: club, SeasonID: season}
}

func TestTeammatesPairsBucket(t *testing.T) {
	records := []model.PlayerSeasonStats{
		record("p1", "c1", "2024-25"),
		record("p2", "c1", "2024-25"),
		record("p3", "c1", "2024-25"),
	}

	pairs := Teammates(records)

	require.Len(t, pairs, 3, "three players in one bucket yield C(3,2) pairs")
	assert.Equal(t, model.TeammatePair{A: "p1", B: "p2"}, pairs[0])
	assert.Equal(t, model.TeammatePair{A: "p1", B: "p3"}, pairs[1])
	assert.Equal(t, model.TeammatePair{A: "p2", B: "p3"}, pairs[2])
}

func TestTeammatesDeduplicatesAcrossSeasons(t *testing.T) {
	// The same pair shares two seasons at the same club; it appears once.
	records := []model.PlayerSeasonStats{
		record("p1", "c1", "2023-24"),
		record("p2", "c1", "2023-24"),
		record("p1", "c1", "2024-25"),
		record("p2", "c1", "2024-25"),
	}

	pairs := Teammates(records)

	require.Len(t, pairs, 1)
	assert.Equal(t, model.TeammatePair{A: "p1", B: "p2"}, pairs[0])
}

func TestTeammatesRequireSharedClubAndSeason(t *testing.T) {
	records := []model.PlayerSeasonStats{
		record("p1", "c1", "2023-24"),
		record("p2", "c1", "2024-25"), // same club, different season
		record("p3", "c2", "2023-24"), // same season, different club
	}

	assert.Empty(t, Teammates(records))
}

func TestTeammatesPairOrdering(t *testing.T) {
	// Input order must not affect the canonical A < B orientation.
	records := []model.PlayerSeasonStats{
		record("zz", "c1", "2024-25"),
		record("aa", "c1", "2024-25"),
	}

	pairs := Teammates(records)

	require.Len(t, pairs, 1)
	assert.Equal(t, "aa", pairs[0].A)
	assert.Equal(t, "zz", pairs[0].B)
}

func TestTeammatesOfSymmetric(t *testing.T) {
	records := []model.PlayerSeasonStats{
		record("p1", "c1", "2024-25"),
		record("p2", "c1", "2024-25"),
	}
	pairs := Teammates(records)

	assert.Equal(t, []string{"p2"}, TeammatesOf(pairs, "p1"))
	assert.Equal(t, []string{"p1"}, TeammatesOf(pairs, "p2"))
	assert.Empty(t, TeammatesOf(pairs, "p3"))
}

func TestParticipations(t *testing.T) {
	records := []model.PlayerSeasonStats{
		record("p1", "c1", "2024-25"),
		record("p2", "c1", "2024-25"),
		record("p3", "c2", "2023-24"),
	}

	parts := Participations(records)

	require.Len(t, parts, 2)
	assert.Equal(t, model.Participation{ClubID: "c1", SeasonID: "2024-25"}, parts[0])
	assert.Equal(t, model.Participation{ClubID: "c2", SeasonID: "2023-24"}, parts[1])
}
