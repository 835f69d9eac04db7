// Package stats builds canonical PlayerSeasonStats records from raw roster
// sightings.
package stats

import "github.com/c360studio/rostergraph/vocabulary/football"

// sourceAliases maps each canonical stat field to the snapshot field names
// that may carry it, in preference order: the first present key wins. The
// source API renamed several fields over time, so most chains start with
// the canonical name and fall back to legacy names.
var sourceAliases = map[string][]string{
	football.StatAppearances:       {"appearances"},
	football.StatGoals:             {"goals"},
	football.StatAssists:           {"assists"},
	football.StatExpectedGoals:     {"expectedGoals", "expectedGoalsOnTargetConceded"},
	football.StatExpectedAssists:   {"expectedAssists"},
	football.StatTouchesInBox:      {"touchesInBox", "touchesInOppositionBox", "touches"},
	football.StatPenaltiesTaken:    {"penaltiesTaken"},
	football.StatHitWoodwork:       {"hitWoodwork"},
	football.StatFreeKicksScored:   {"freeKicksScored"},
	football.StatCrossesCompleted:  {"crossesCompleted", "successfulCrosses", "successfulCrossesAndCorners", "successfulCrossesOpenPlay"},
	football.StatMinutesPlayed:     {"minutesPlayed", "timePlayed"},
	football.StatDribblesCompleted: {"dribblesCompleted", "successfulDribbles"},
	football.StatDuelsWon:          {"duelsWon"},
	football.StatAerialDuelsWon:    {"aerialDuelsWon"},
	football.StatTackles:           {"tackles", "totalTackles"},
	football.StatInterceptions:     {"interceptions"},
	football.StatBlocks:            {"blocks"},
	football.StatRedCards:          {"redCards", "totalRedCards"},
	football.StatYellowCards:       {"yellowCards"},
	football.StatFoulsCommitted:    {"foulsCommitted", "fouls"},
	football.StatOffsides:          {"offsides"},
	football.StatOwnGoals:          {"ownGoals"},
	football.StatCornersTaken:      {"cornersTaken", "corners"},
}

// passesCompletedSources are summed into the passesCompleted composite; the
// source reports pass completion split across pass types.
var passesCompletedSources = []string{
	"passesCompleted",
	"successfulPasses",
	"successfulShortPasses",
	"successfulLongPasses",
	"successfulLaunches",
	"successfulCrosses",
	"successfulCrossesAndCorners",
	"successfulCrossesOpenPlay",
}
