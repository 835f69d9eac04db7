package football_test

import (
	"strings"
	"testing"

	"github.com/c360studio/rostergraph/vocabulary/football"
	"github.com/c360studio/semstreams/vocabulary"
)

func TestClassMapCoversEveryEntityType(t *testing.T) {
	types := []football.EntityType{
		football.EntityTypePlayer,
		football.EntityTypeClub,
		football.EntityTypeSeason,
		football.EntityTypeSeasonStats,
		football.EntityTypePosition,
		football.EntityTypeNationality,
	}
	for _, et := range types {
		t.Run(string(et), func(t *testing.T) {
			class := football.GetTypeForEntity(et)
			if class == "" {
				t.Fatalf("entity type %q has no class mapping", et)
			}
			if !strings.HasPrefix(class, football.Namespace) {
				t.Errorf("class %q outside the football namespace", class)
			}
		})
	}
}

func TestEntityID(t *testing.T) {
	got := football.EntityID(football.EntityTypePlayer, "abc-123")
	want := "rostergraph.local.football.player.abc-123"
	if got != want {
		t.Errorf("EntityID = %q, want %q", got, want)
	}
}

func TestGetPredicateIRI(t *testing.T) {
	tests := []struct {
		predicate string
		want      string
	}{
		{football.PlayerName, football.Namespace + "hasName"},
		{football.ClubFounded, football.Namespace + "foundationYear"},
		{football.VocabLabel, "http://www.w3.org/2000/01/rdf-schema#label"},
		{football.RelTeammateWith, football.PropTeammateWith},
		{football.StatPredicate(football.StatGoals), football.Namespace + "goals"},
		{"football.unmapped.thing", football.Namespace + "football.unmapped.thing"},
	}
	for _, tc := range tests {
		t.Run(tc.predicate, func(t *testing.T) {
			if got := football.GetPredicateIRI(tc.predicate); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestStatFieldsRegistered(t *testing.T) {
	fields := football.AllStatFields()
	if len(fields) != 24 {
		t.Fatalf("expected 24 canonical stat fields, got %d", len(fields))
	}
	for _, field := range fields {
		if _, ok := football.CategoryOf(field); !ok {
			t.Errorf("stat field %q has no category", field)
		}
	}
}

func TestPredicatesRegisteredInVocabulary(t *testing.T) {
	// Registration happens in this package's init; spot-check a few.
	for _, predicate := range []string{
		football.PlayerName,
		football.RelPlaysFor,
		football.StatPredicate(football.StatMinutesPlayed),
	} {
		meta := vocabulary.GetPredicateMetadata(predicate)
		if meta.Description == "" {
			t.Errorf("predicate %q not registered or missing description", predicate)
		}
	}
}
