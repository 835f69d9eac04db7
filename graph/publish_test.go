package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/rostergraph/export"
	"github.com/c360studio/rostergraph/vocabulary/football"
)

func TestTripleObjectUnwrapsLiterals(t *testing.T) {
	assert.Equal(t, "rostergraph.local.football.club.abc", tripleObject(export.Ref("rostergraph.local.football.club.abc")))
	assert.Equal(t, "1998-04-12", tripleObject(export.Date("1998-04-12")))
	assert.Equal(t, 1901, tripleObject(export.Year(1901)))
	assert.Equal(t, int64(183), tripleObject(export.Integer(183)))
	assert.Equal(t, 51.555, tripleObject(export.Decimal(51.555)))
	assert.Equal(t, "plain", tripleObject("plain"))
}

func TestPublishEntitiesNilClientIsNoop(t *testing.T) {
	exporter := export.NewRDFExporter()
	exporter.AddEntity(export.Entity{
		ID:         "rostergraph.local.football.club.abc",
		EntityType: football.EntityTypeClub,
		Triples: []export.Triple{
			{Predicate: football.ClubName, Object: "Riverton FC"},
		},
	})

	require.NoError(t, PublishEntities(context.Background(), nil, exporter))
}
