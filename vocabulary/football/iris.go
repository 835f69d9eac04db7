package football

// Namespace is the base IRI prefix for football ontology terms.
const Namespace = "https://rostergraph.dev/ontology/football/"

// EntityNamespace is the base IRI for football entity instances.
const EntityNamespace = "https://rostergraph.dev/entity/football/"

// Class IRIs define the types of football entities.
const (
	// ClassPlayer represents a canonical player.
	ClassPlayer = Namespace + "Player"

	// ClassClub represents a canonical club.
	ClassClub = Namespace + "Club"

	// ClassSeason represents one competition season.
	ClassSeason = Namespace + "Season"

	// ClassPlayerSeasonStats represents one player's statistics for one
	// club in one season.
	ClassPlayerSeasonStats = Namespace + "PlayerSeasonStats"

	// ClassPosition represents a playing-position vocabulary entry.
	ClassPosition = Namespace + "Position"

	// ClassNationality represents a nationality vocabulary entry.
	ClassNationality = Namespace + "Nationality"
)

// Object property IRIs define relationships between football entities.
const (
	// PropPlaysFor links a player to their current club.
	// Domain: ClassPlayer, Range: ClassClub
	PropPlaysFor = Namespace + "playsFor"

	// PropHasPosition links a player to a position vocabulary entry.
	// Domain: ClassPlayer, Range: ClassPosition
	PropHasPosition = Namespace + "hasPosition"

	// PropHasNationality links a player to a nationality vocabulary entry.
	// Domain: ClassPlayer, Range: ClassNationality
	PropHasNationality = Namespace + "hasNationality"

	// PropHasSeasonStats links a player to their per-season stats records.
	// Domain: ClassPlayer, Range: ClassPlayerSeasonStats
	PropHasSeasonStats = Namespace + "hasSeasonStats"

	// PropTeammateWith is the derived, symmetric teammate relation.
	// Domain: ClassPlayer, Range: ClassPlayer
	PropTeammateWith = Namespace + "teammateWith"

	// PropParticipatesIn links a club to a season it fielded players in.
	// Domain: ClassClub, Range: ClassSeason
	PropParticipatesIn = Namespace + "participatesIn"

	// PropHasPlayer links a club to its players.
	// Domain: ClassClub, Range: ClassPlayer
	PropHasPlayer = Namespace + "hasPlayer"

	// PropForPlayer links a stats record to its player.
	// Domain: ClassPlayerSeasonStats, Range: ClassPlayer
	PropForPlayer = Namespace + "forPlayer"

	// PropForClub links a stats record to its club.
	// Domain: ClassPlayerSeasonStats, Range: ClassClub
	PropForClub = Namespace + "forClub"

	// PropInSeason links a stats record to its season.
	// Domain: ClassPlayerSeasonStats, Range: ClassSeason
	PropInSeason = Namespace + "inSeason"

	// PropIncludesStats links a season to the stats records it covers.
	// Domain: ClassSeason, Range: ClassPlayerSeasonStats
	PropIncludesStats = Namespace + "includesPlayerSeasonStats"
)
