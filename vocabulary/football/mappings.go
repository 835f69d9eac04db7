package football

// EntityType represents the type of a football entity for mapping purposes.
type EntityType string

// Entity type constants map entity kinds to their string identifiers.
const (
	// EntityTypePlayer is the entity type for canonical players.
	EntityTypePlayer EntityType = "player"
	// EntityTypeClub is the entity type for canonical clubs.
	EntityTypeClub EntityType = "club"
	// EntityTypeSeason is the entity type for derived seasons.
	EntityTypeSeason EntityType = "season"
	// EntityTypeSeasonStats is the entity type for per-season stats records.
	EntityTypeSeasonStats EntityType = "stats"
	// EntityTypePosition is the entity type for position vocabulary entries.
	EntityTypePosition EntityType = "position"
	// EntityTypeNationality is the entity type for nationality entries.
	EntityTypeNationality EntityType = "nationality"
)

// ClassMap maps entity types to football ontology class IRIs.
var ClassMap = map[EntityType]string{
	EntityTypePlayer:      ClassPlayer,
	EntityTypeClub:        ClassClub,
	EntityTypeSeason:      ClassSeason,
	EntityTypeSeasonStats: ClassPlayerSeasonStats,
	EntityTypePosition:    ClassPosition,
	EntityTypeNationality: ClassNationality,
}

// PredicateIRIMap maps dotted predicates to their standard IRIs.
var PredicateIRIMap = map[string]string{
	PlayerName:             Namespace + "hasName",
	PlayerDateOfBirth:      Namespace + "dateOfBirth",
	PlayerPreferredFoot:    Namespace + "preferredFoot",
	PlayerHeight:           Namespace + "height",
	PlayerShirtNumber:      Namespace + "shirtNumber",
	PlayerJoinedSeason:     Namespace + "joinedSeason",
	PlayerTotalAppearances: Namespace + "totalAppearances",
	PlayerTotalGoals:       Namespace + "totalGoals",
	PlayerTotalAssists:     Namespace + "totalAssists",

	ClubName:      Namespace + "clubName",
	ClubFounded:   Namespace + "foundationYear",
	ClubStadium:   Namespace + "stadium",
	ClubLatitude:  Namespace + "latitude",
	ClubLongitude: Namespace + "longitude",

	SeasonLabel:     Namespace + "seasonName",
	SeasonStartYear: Namespace + "startYear",
	SeasonEndYear:   Namespace + "endYear",

	VocabLabel:   "http://www.w3.org/2000/01/rdf-schema#label",
	VocabISOCode: Namespace + "isoCode",
	VocabDemonym: Namespace + "demonym",

	RelPlaysFor:       PropPlaysFor,
	RelHasPosition:    PropHasPosition,
	RelHasNationality: PropHasNationality,
	RelHasSeasonStats: PropHasSeasonStats,
	RelTeammateWith:   PropTeammateWith,
	RelParticipatesIn: PropParticipatesIn,
	RelHasPlayer:      PropHasPlayer,
	RelForPlayer:      PropForPlayer,
	RelForClub:        PropForClub,
	RelInSeason:       PropInSeason,
	RelIncludesStats:  PropIncludesStats,
}

func init() {
	for _, field := range AllStatFields() {
		PredicateIRIMap[StatPredicate(field)] = Namespace + field
	}
}

// EntityID builds a consistent dotted entity ID for a football entity.
// Format: rostergraph.local.football.<type>.<instance>
func EntityID(entityType EntityType, instance string) string {
	return "rostergraph.local.football." + string(entityType) + "." + instance
}

// GetTypeForEntity returns the ontology class IRI for an entity type, or
// empty string for an unknown type.
func GetTypeForEntity(entityType EntityType) string {
	return ClassMap[entityType]
}

// GetPredicateIRI returns the standard IRI for a predicate, if mapped.
// Unmapped predicates fall back to the football namespace.
func GetPredicateIRI(predicate string) string {
	if iri, ok := PredicateIRIMap[predicate]; ok {
		return iri
	}
	return Namespace + predicate
}
