package football

import "github.com/c360studio/semstreams/vocabulary"

// Player predicates for canonical player attributes.
const (
	// PlayerName is the player's full display name.
	PlayerName = "football.player.name"

	// PlayerDateOfBirth is the player's birth date (YYYY-MM-DD).
	PlayerDateOfBirth = "football.player.date_of_birth"

	// PlayerPreferredFoot is the preferred foot.
	// Values: "left", "right", "unknown"
	PlayerPreferredFoot = "football.player.preferred_foot"

	// PlayerHeight is the player's height in centimetres.
	PlayerHeight = "football.player.height_cm"

	// PlayerShirtNumber is the current shirt number.
	PlayerShirtNumber = "football.player.shirt_number"

	// PlayerJoinedSeason is the season the player first appeared in.
	PlayerJoinedSeason = "football.player.joined_season"

	// PlayerTotalAppearances is the derived career appearance total.
	PlayerTotalAppearances = "football.player.total_appearances"

	// PlayerTotalGoals is the derived career goal total.
	PlayerTotalGoals = "football.player.total_goals"

	// PlayerTotalAssists is the derived career assist total.
	PlayerTotalAssists = "football.player.total_assists"
)

// Club predicates for canonical club attributes.
const (
	// ClubName is the club's canonical name.
	ClubName = "football.club.name"

	// ClubFounded is the club's foundation year.
	ClubFounded = "football.club.founded"

	// ClubStadium is the club's primary ground name.
	ClubStadium = "football.club.stadium"

	// ClubLatitude is the ground latitude.
	ClubLatitude = "football.club.latitude"

	// ClubLongitude is the ground longitude.
	ClubLongitude = "football.club.longitude"
)

// Season predicates for derived season attributes.
const (
	// SeasonLabel is the display label, e.g. "2024/25".
	SeasonLabel = "football.season.label"

	// SeasonStartYear is the season's starting year.
	SeasonStartYear = "football.season.start_year"

	// SeasonEndYear is the season's ending year.
	SeasonEndYear = "football.season.end_year"
)

// Vocabulary predicates for Position and Nationality entries.
const (
	// VocabLabel is the entry's display label.
	VocabLabel = "football.vocab.label"

	// VocabISOCode is the ISO country code of a nationality entry.
	VocabISOCode = "football.vocab.iso_code"

	// VocabDemonym is the demonym of a nationality entry.
	VocabDemonym = "football.vocab.demonym"
)

// Relationship predicates linking football entities.
const (
	// RelPlaysFor links a player to their current club.
	RelPlaysFor = "football.rel.plays_for"

	// RelHasPosition links a player to a position entry.
	RelHasPosition = "football.rel.has_position"

	// RelHasNationality links a player to a nationality entry.
	RelHasNationality = "football.rel.has_nationality"

	// RelHasSeasonStats links a player to a per-season stats record.
	RelHasSeasonStats = "football.rel.has_season_stats"

	// RelTeammateWith is the derived symmetric teammate relation.
	RelTeammateWith = "football.rel.teammate_with"

	// RelParticipatesIn links a club to a season.
	RelParticipatesIn = "football.rel.participates_in"

	// RelHasPlayer links a club to a player.
	RelHasPlayer = "football.rel.has_player"

	// RelForPlayer links a stats record to its player.
	RelForPlayer = "football.rel.for_player"

	// RelForClub links a stats record to its club.
	RelForClub = "football.rel.for_club"

	// RelInSeason links a stats record to its season.
	RelInSeason = "football.rel.in_season"

	// RelIncludesStats links a season to a stats record it covers.
	RelIncludesStats = "football.rel.includes_stats"
)

// StatPredicate returns the dotted predicate for a canonical stat field.
func StatPredicate(field string) string {
	return "football.stats." + field
}

func init() {
	// Player attribute predicates
	vocabulary.Register(PlayerName,
		vocabulary.WithDescription("Player full display name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"hasName"))

	vocabulary.Register(PlayerDateOfBirth,
		vocabulary.WithDescription("Player birth date (YYYY-MM-DD)"),
		vocabulary.WithDataType("date"),
		vocabulary.WithIRI(Namespace+"dateOfBirth"))

	vocabulary.Register(PlayerPreferredFoot,
		vocabulary.WithDescription("Preferred foot: left, right, unknown"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"preferredFoot"))

	vocabulary.Register(PlayerHeight,
		vocabulary.WithDescription("Player height in centimetres"),
		vocabulary.WithDataType("integer"),
		vocabulary.WithIRI(Namespace+"height"))

	vocabulary.Register(PlayerShirtNumber,
		vocabulary.WithDescription("Current shirt number"),
		vocabulary.WithDataType("integer"),
		vocabulary.WithIRI(Namespace+"shirtNumber"))

	vocabulary.Register(PlayerJoinedSeason,
		vocabulary.WithDescription("Season the player first appeared in"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"joinedSeason"))

	vocabulary.Register(PlayerTotalAppearances,
		vocabulary.WithDescription("Derived career appearance total"),
		vocabulary.WithDataType("integer"),
		vocabulary.WithIRI(Namespace+"totalAppearances"))

	vocabulary.Register(PlayerTotalGoals,
		vocabulary.WithDescription("Derived career goal total"),
		vocabulary.WithDataType("integer"),
		vocabulary.WithIRI(Namespace+"totalGoals"))

	vocabulary.Register(PlayerTotalAssists,
		vocabulary.WithDescription("Derived career assist total"),
		vocabulary.WithDataType("integer"),
		vocabulary.WithIRI(Namespace+"totalAssists"))

	// Club attribute predicates
	vocabulary.Register(ClubName,
		vocabulary.WithDescription("Club canonical name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"clubName"))

	vocabulary.Register(ClubFounded,
		vocabulary.WithDescription("Club foundation year"),
		vocabulary.WithDataType("integer"),
		vocabulary.WithIRI(Namespace+"foundationYear"))

	vocabulary.Register(ClubStadium,
		vocabulary.WithDescription("Primary ground name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"stadium"))

	vocabulary.Register(ClubLatitude,
		vocabulary.WithDescription("Ground latitude"),
		vocabulary.WithDataType("float64"),
		vocabulary.WithIRI(Namespace+"latitude"))

	vocabulary.Register(ClubLongitude,
		vocabulary.WithDescription("Ground longitude"),
		vocabulary.WithDataType("float64"),
		vocabulary.WithIRI(Namespace+"longitude"))

	// Season attribute predicates
	vocabulary.Register(SeasonLabel,
		vocabulary.WithDescription("Season display label, e.g. 2024/25"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"seasonName"))

	vocabulary.Register(SeasonStartYear,
		vocabulary.WithDescription("Season starting year"),
		vocabulary.WithDataType("integer"),
		vocabulary.WithIRI(Namespace+"startYear"))

	vocabulary.Register(SeasonEndYear,
		vocabulary.WithDescription("Season ending year"),
		vocabulary.WithDataType("integer"),
		vocabulary.WithIRI(Namespace+"endYear"))

	// Vocabulary entry predicates
	vocabulary.Register(VocabLabel,
		vocabulary.WithDescription("Vocabulary entry display label"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI("http://www.w3.org/2000/01/rdf-schema#label"))

	vocabulary.Register(VocabISOCode,
		vocabulary.WithDescription("ISO country code"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"isoCode"))

	vocabulary.Register(VocabDemonym,
		vocabulary.WithDescription("Nationality demonym"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"demonym"))

	// Relationship predicates
	vocabulary.Register(RelPlaysFor,
		vocabulary.WithDescription("Links player to current club"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropPlaysFor))

	vocabulary.Register(RelHasPosition,
		vocabulary.WithDescription("Links player to position entry"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropHasPosition))

	vocabulary.Register(RelHasNationality,
		vocabulary.WithDescription("Links player to nationality entry"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropHasNationality))

	vocabulary.Register(RelHasSeasonStats,
		vocabulary.WithDescription("Links player to per-season stats record"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropHasSeasonStats))

	vocabulary.Register(RelTeammateWith,
		vocabulary.WithDescription("Derived symmetric teammate relation"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropTeammateWith))

	vocabulary.Register(RelParticipatesIn,
		vocabulary.WithDescription("Links club to season"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropParticipatesIn))

	vocabulary.Register(RelHasPlayer,
		vocabulary.WithDescription("Links club to player"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropHasPlayer))

	vocabulary.Register(RelForPlayer,
		vocabulary.WithDescription("Links stats record to player"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropForPlayer))

	vocabulary.Register(RelForClub,
		vocabulary.WithDescription("Links stats record to club"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropForClub))

	vocabulary.Register(RelInSeason,
		vocabulary.WithDescription("Links stats record to season"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropInSeason))

	vocabulary.Register(RelIncludesStats,
		vocabulary.WithDescription("Links season to stats records it covers"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropIncludesStats))

	// Per-season stat predicates, one per canonical field.
	for _, field := range AllStatFields() {
		vocabulary.Register(StatPredicate(field),
			vocabulary.WithDescription("Per-season stat: "+field),
			vocabulary.WithDataType("integer"),
			vocabulary.WithIRI(Namespace+field))
	}
}
