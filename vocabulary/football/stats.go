package football

// StatCategory groups the per-season statistic fields. Category membership
// is part of the ontology schema, not stored per-value.
type StatCategory string

const (
	CategoryAttack     StatCategory = "attack"
	CategoryPhysical   StatCategory = "physical"
	CategoryDefence    StatCategory = "defence"
	CategoryDiscipline StatCategory = "discipline"
	CategoryPossession StatCategory = "possession"
)

// Canonical stat field names, as they appear in PlayerSeasonStats values
// and as datatype-property local names in the ontology.
const (
	StatAppearances       = "appearances"
	StatGoals             = "goals"
	StatAssists           = "assists"
	StatExpectedGoals     = "expectedGoals"
	StatExpectedAssists   = "expectedAssists"
	StatTouchesInBox      = "touchesInBox"
	StatPenaltiesTaken    = "penaltiesTaken"
	StatHitWoodwork       = "hitWoodwork"
	StatFreeKicksScored   = "freeKicksScored"
	StatCrossesCompleted  = "crossesCompleted"
	StatMinutesPlayed     = "minutesPlayed"
	StatDribblesCompleted = "dribblesCompleted"
	StatDuelsWon          = "duelsWon"
	StatAerialDuelsWon    = "aerialDuelsWon"
	StatTackles           = "tackles"
	StatInterceptions     = "interceptions"
	StatBlocks            = "blocks"
	StatRedCards          = "redCards"
	StatYellowCards       = "yellowCards"
	StatFoulsCommitted    = "foulsCommitted"
	StatOffsides          = "offsides"
	StatOwnGoals          = "ownGoals"
	StatCornersTaken      = "cornersTaken"
	StatPassesCompleted   = "passesCompleted"
)

// StatFields maps each category to its canonical fields, in a fixed order.
var StatFields = map[StatCategory][]string{
	CategoryAttack: {
		StatAppearances, StatGoals, StatAssists, StatExpectedGoals,
		StatExpectedAssists, StatTouchesInBox, StatPenaltiesTaken,
		StatHitWoodwork, StatFreeKicksScored, StatCrossesCompleted,
	},
	CategoryPhysical: {
		StatMinutesPlayed, StatDribblesCompleted, StatDuelsWon,
		StatAerialDuelsWon,
	},
	CategoryDefence: {
		StatTackles, StatInterceptions, StatBlocks,
	},
	CategoryDiscipline: {
		StatRedCards, StatYellowCards, StatFoulsCommitted,
		StatOffsides, StatOwnGoals,
	},
	CategoryPossession: {
		StatCornersTaken, StatPassesCompleted,
	},
}

// Categories lists the stat categories in schema order.
var Categories = []StatCategory{
	CategoryAttack, CategoryPhysical, CategoryDefence,
	CategoryDiscipline, CategoryPossession,
}

// AllStatFields returns every canonical stat field in schema order.
func AllStatFields() []string {
	fields := make([]string, 0, 24)
	for _, cat := range Categories {
		fields = append(fields, StatFields[cat]...)
	}
	return fields
}

// CategoryOf returns the category a canonical stat field belongs to, or
// false if the field is not part of the schema.
func CategoryOf(field string) (StatCategory, bool) {
	for cat, fields := range StatFields {
		for _, f := range fields {
			if f == field {
				return cat, true
			}
		}
	}
	return "", false
}
