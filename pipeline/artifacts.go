package pipeline

import "github.com/c360studio/rostergraph/model"

// Artifact file names written under the configured workdir. Every stage
// leaves a flat JSON artifact behind so runs can be inspected and resumed
// stage by stage.
const (
	EntriesFile   = "entries.json"
	ClubsFile     = "clubs.json"
	PlayersFile   = "players.json"
	StatsFile     = "stats.json"
	SeasonsFile   = "seasons.json"
	VocabFile     = "vocabulary.json"
	RelationsFile = "relations.json"
)

// ClubArtifact carries the canonical clubs plus the sighting-to-club
// assignment the player resolver and stats builder consume.
type ClubArtifact struct {
	Clubs       []model.Club   `json:"clubs"`
	Assignments map[int]string `json:"assignments"`
}

// PlayerArtifact carries the canonical players plus the sighting-to-player
// assignment the stats builder consumes.
type PlayerArtifact struct {
	Players     []model.Player `json:"players"`
	Assignments map[int]string `json:"assignments"`
}

// VocabArtifact carries the interned position and nationality entries.
type VocabArtifact struct {
	Positions     []model.Position    `json:"positions"`
	Nationalities []model.Nationality `json:"nationalities"`
}

// RelationArtifact carries the derived relations.
type RelationArtifact struct {
	Teammates      []model.TeammatePair  `json:"teammates"`
	Participations []model.Participation `json:"participations"`
}
