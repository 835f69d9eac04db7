// Package model defines the canonical records produced by the pipeline.
//
// Each record type has exactly one owning stage: Player records are created
// by the identity resolver, Club records by the club registry, Season records
// by the season registry, PlayerSeasonStats by the stats builder, and the
// vocabulary entities by their extractors. The totals aggregator is the only
// stage allowed to mutate a Player after creation, and only its career-total
// fields.
package model

// PreferredFoot is the player's preferred foot.
type PreferredFoot string

const (
	FootLeft    PreferredFoot = "left"
	FootRight   PreferredFoot = "right"
	FootUnknown PreferredFoot = "unknown"
)

// ParseFoot normalizes a raw preferred-foot value. Anything that is not
// recognizably left or right maps to FootUnknown.
func ParseFoot(s string) PreferredFoot {
	switch s {
	case "left", "Left", "LEFT", "L":
		return FootLeft
	case "right", "Right", "RIGHT", "R":
		return FootRight
	default:
		return FootUnknown
	}
}

// Player is the canonical, deduplicated representation of one real-world
// player. Career totals are derived by the aggregator and are nil until the
// player has at least one stats record aggregated.
type Player struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	DateOfBirth    string        `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	Nationality    string        `json:"nationality,omitempty"`
	NationalityISO string        `json:"nationality_iso,omitempty"`
	Demonym        string        `json:"demonym,omitempty"`
	NationalityID  string        `json:"nationality_id,omitempty"`
	Position       string        `json:"position,omitempty"`
	PositionID     string        `json:"position_id,omitempty"`
	PreferredFoot  PreferredFoot `json:"preferred_foot"`
	HeightCM       int           `json:"height_cm,omitempty"`
	ShirtNumber    int           `json:"shirt_number,omitempty"`
	JoinedSeason   string        `json:"joined_season,omitempty"`
	CurrentClubID  string        `json:"current_club_id,omitempty"`

	// Derived career totals. Never hand-set; recomputed from the full
	// stats set by the aggregator.
	TotalAppearances *int64 `json:"total_appearances,omitempty"`
	TotalGoals       *int64 `json:"total_goals,omitempty"`
	TotalAssists     *int64 `json:"total_assists,omitempty"`
}

// Location is a club ground location.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Club is the canonical representation of one club.
type Club struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	FoundationYear int       `json:"foundation_year,omitempty"`
	Stadium        string    `json:"stadium,omitempty"`
	Location       *Location `json:"location,omitempty"`
}

// Season is derived from the season labels referenced by stats records.
type Season struct {
	ID        string `json:"id"`    // e.g. "2024-25"
	Label     string `json:"label"` // e.g. "2024/25"
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year"`
}

// PlayerSeasonStats holds one player's statistics for one club in one
// season. Values maps canonical stat names to counts; a stat that was never
// reported is absent from the map, which is distinct from a reported zero.
// At most one record exists per (player, club, season); a mid-season
// transfer yields two records under the same season.
type PlayerSeasonStats struct {
	ID       string           `json:"id"`
	PlayerID string           `json:"player_id"`
	ClubID   string           `json:"club_id"`
	SeasonID string           `json:"season_id"`
	Values   map[string]int64 `json:"values"`
}

// Value returns the stat value and whether it was reported.
func (s *PlayerSeasonStats) Value(name string) (int64, bool) {
	v, ok := s.Values[name]
	return v, ok
}

// Position is a controlled-vocabulary entry referenced by Player records.
type Position struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Nationality is a controlled-vocabulary entry referenced by Player records.
type Nationality struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	ISOCode string `json:"iso_code,omitempty"`
	Demonym string `json:"demonym,omitempty"`
}

// TeammatePair is one derived, undirected teammate edge. A < B always holds
// so a pair is never stored in both directions.
type TeammatePair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Participation links a club to a season it fielded players in.
type Participation struct {
	ClubID   string `json:"club_id"`
	SeasonID string `json:"season_id"`
}
