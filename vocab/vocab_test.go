package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/rostergraph/model"
)

func TestExtractPositionsInternsCaseVariants(t *testing.T) {
	players := []model.Player{
		{ID: "p1", Position: "centre back"},
		{ID: "p2", Position: "Centre Back"},
		{ID: "p3", Position: "GOALKEEPER"},
		{ID: "p4"},
	}

	positions := ExtractPositions(players)

	require.Len(t, positions, 2)
	assert.Equal(t, "Centre Back", positions[0].Label)
	assert.Equal(t, "centre_back", positions[0].ID)
	assert.Equal(t, "Goalkeeper", positions[1].Label)

	assert.Equal(t, "centre_back", players[0].PositionID)
	assert.Equal(t, "centre_back", players[1].PositionID)
	assert.Equal(t, "goalkeeper", players[2].PositionID)
	assert.Empty(t, players[3].PositionID, "players without a position get no entry")
}

func TestExtractNationalitiesPrefersISO(t *testing.T) {
	players := []model.Player{
		{ID: "p1", Nationality: "Spain", NationalityISO: "ES", Demonym: "Spanish"},
		{ID: "p2", Nationality: "Spain", NationalityISO: "ES"},
		{ID: "p3", Nationality: "Côte d'Ivoire"},
	}

	nationalities := ExtractNationalities(players)

	require.Len(t, nationalities, 2)
	assert.Equal(t, "côte_d_ivoire", nationalities[0].ID, "missing ISO falls back to the label slug")
	assert.Equal(t, "es", nationalities[1].ID)
	assert.Equal(t, "Spanish", nationalities[1].Demonym)

	assert.Equal(t, "es", players[0].NationalityID)
	assert.Equal(t, "es", players[1].NationalityID)
}

func TestExtractNationalitiesFillsGaps(t *testing.T) {
	// The first sighting lacks the demonym; a later one supplies it.
	players := []model.Player{
		{ID: "p1", Nationality: "Ghana", NationalityISO: "GH"},
		{ID: "p2", Nationality: "Ghana", NationalityISO: "GH", Demonym: "Ghanaian"},
	}

	nationalities := ExtractNationalities(players)

	require.Len(t, nationalities, 1)
	assert.Equal(t, "Ghanaian", nationalities[0].Demonym)
	assert.Equal(t, "GH", nationalities[0].ISOCode)
}
