package export

import (
	"regexp"
	"sort"

	"github.com/c360studio/rostergraph/model"
	"github.com/c360studio/rostergraph/report"
	"github.com/c360studio/rostergraph/vocabulary/football"
)

// datePattern guards xsd:date literals; anything else stays unemitted
// rather than producing an invalid typed literal.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// GraphInput is the complete canonical model handed to the emitter.
type GraphInput struct {
	Players        []model.Player
	Clubs          []model.Club
	Seasons        []model.Season
	Stats          []model.PlayerSeasonStats
	Positions      []model.Position
	Nationalities  []model.Nationality
	Teammates      []model.TeammatePair
	Participations []model.Participation
}

// Emit maps every canonical entity and relation onto the football ontology
// and returns an exporter holding the statement set. Emission is pure
// beyond recording conditions: a record whose mandatory relation target is
// missing is rejected with an rdf_type_mapping condition and emission
// continues for the rest of the graph.
func Emit(in GraphInput, rec *report.Recorder) *RDFExporter {
	e := NewRDFExporter()

	players := make(map[string]bool, len(in.Players))
	for i := range in.Players {
		players[in.Players[i].ID] = true
	}
	clubs := make(map[string]bool, len(in.Clubs))
	for i := range in.Clubs {
		clubs[in.Clubs[i].ID] = true
	}
	seasons := make(map[string]bool, len(in.Seasons))
	for i := range in.Seasons {
		seasons[in.Seasons[i].ID] = true
	}

	// Stats records are validated first: they carry the mandatory
	// references, and the accepted set drives the hasSeasonStats and
	// includesPlayerSeasonStats edges below.
	accepted := make([]*model.PlayerSeasonStats, 0, len(in.Stats))
	statsByPlayer := make(map[string][]string)
	statsBySeason := make(map[string][]string)
	playersByClub := make(map[string]map[string]bool)
	for i := range in.Stats {
		s := &in.Stats[i]
		switch {
		case !players[s.PlayerID]:
			rec.Record(report.RDFTypeMapping, "stats %s: player %s unresolvable, record skipped", s.ID, s.PlayerID)
			continue
		case !clubs[s.ClubID]:
			rec.Record(report.RDFTypeMapping, "stats %s: club %s unresolvable, record skipped", s.ID, s.ClubID)
			continue
		case !seasons[s.SeasonID]:
			rec.Record(report.RDFTypeMapping, "stats %s: season %s unresolvable, record skipped", s.ID, s.SeasonID)
			continue
		}
		accepted = append(accepted, s)
		statsByPlayer[s.PlayerID] = append(statsByPlayer[s.PlayerID], s.ID)
		statsBySeason[s.SeasonID] = append(statsBySeason[s.SeasonID], s.ID)
		if playersByClub[s.ClubID] == nil {
			playersByClub[s.ClubID] = make(map[string]bool)
		}
		playersByClub[s.ClubID][s.PlayerID] = true
	}

	teammates := make(map[string][]string)
	for _, pair := range in.Teammates {
		teammates[pair.A] = append(teammates[pair.A], pair.B)
	}

	for i := range in.Players {
		e.AddEntity(playerEntity(&in.Players[i], clubs, statsByPlayer, teammates, rec))
	}
	for i := range in.Clubs {
		e.AddEntity(clubEntity(&in.Clubs[i], in.Participations, playersByClub))
	}
	for i := range in.Seasons {
		e.AddEntity(seasonEntity(&in.Seasons[i], statsBySeason))
	}
	for _, s := range accepted {
		e.AddEntity(statsEntity(s))
	}
	for i := range in.Positions {
		p := &in.Positions[i]
		e.AddEntity(Entity{
			ID:         football.EntityID(football.EntityTypePosition, p.ID),
			EntityType: football.EntityTypePosition,
			Triples:    []Triple{{Predicate: football.VocabLabel, Object: p.Label}},
		})
	}
	for i := range in.Nationalities {
		n := &in.Nationalities[i]
		triples := []Triple{{Predicate: football.VocabLabel, Object: n.Label}}
		if n.ISOCode != "" {
			triples = append(triples, Triple{Predicate: football.VocabISOCode, Object: n.ISOCode})
		}
		if n.Demonym != "" {
			triples = append(triples, Triple{Predicate: football.VocabDemonym, Object: n.Demonym})
		}
		e.AddEntity(Entity{
			ID:         football.EntityID(football.EntityTypeNationality, n.ID),
			EntityType: football.EntityTypeNationality,
			Triples:    triples,
		})
	}

	return e
}

func playerEntity(p *model.Player, clubs map[string]bool, statsByPlayer, teammates map[string][]string, rec *report.Recorder) Entity {
	triples := []Triple{{Predicate: football.PlayerName, Object: p.Name}}

	if p.DateOfBirth != "" {
		if datePattern.MatchString(p.DateOfBirth) {
			triples = append(triples, Triple{Predicate: football.PlayerDateOfBirth, Object: Date(p.DateOfBirth)})
		} else {
			rec.Record(report.MalformedField, "player %s: date of birth %q not a date, dropped", p.Name, p.DateOfBirth)
		}
	}
	triples = append(triples, Triple{Predicate: football.PlayerPreferredFoot, Object: string(p.PreferredFoot)})
	if p.HeightCM != 0 {
		triples = append(triples, Triple{Predicate: football.PlayerHeight, Object: Integer(p.HeightCM)})
	}
	if p.ShirtNumber != 0 {
		triples = append(triples, Triple{Predicate: football.PlayerShirtNumber, Object: Integer(p.ShirtNumber)})
	}
	if p.JoinedSeason != "" {
		triples = append(triples, Triple{Predicate: football.PlayerJoinedSeason, Object: p.JoinedSeason})
	}
	if p.TotalAppearances != nil {
		triples = append(triples, Triple{Predicate: football.PlayerTotalAppearances, Object: Integer(*p.TotalAppearances)})
	}
	if p.TotalGoals != nil {
		triples = append(triples, Triple{Predicate: football.PlayerTotalGoals, Object: Integer(*p.TotalGoals)})
	}
	if p.TotalAssists != nil {
		triples = append(triples, Triple{Predicate: football.PlayerTotalAssists, Object: Integer(*p.TotalAssists)})
	}

	if p.CurrentClubID != "" {
		if clubs[p.CurrentClubID] {
			triples = append(triples, Triple{
				Predicate: football.RelPlaysFor,
				Object:    Ref(football.EntityID(football.EntityTypeClub, p.CurrentClubID)),
			})
		} else {
			rec.Record(report.RDFTypeMapping, "player %s: current club %s unresolvable, playsFor dropped", p.Name, p.CurrentClubID)
		}
	}
	if p.PositionID != "" {
		triples = append(triples, Triple{
			Predicate: football.RelHasPosition,
			Object:    Ref(football.EntityID(football.EntityTypePosition, p.PositionID)),
		})
	}
	if p.NationalityID != "" {
		triples = append(triples, Triple{
			Predicate: football.RelHasNationality,
			Object:    Ref(football.EntityID(football.EntityTypeNationality, p.NationalityID)),
		})
	}
	for _, statsID := range sorted(statsByPlayer[p.ID]) {
		triples = append(triples, Triple{
			Predicate: football.RelHasSeasonStats,
			Object:    Ref(football.EntityID(football.EntityTypeSeasonStats, statsID)),
		})
	}
	// Teammate pairs are undirected; each pair is asserted once, on the
	// lexically smaller player.
	for _, other := range sorted(teammates[p.ID]) {
		triples = append(triples, Triple{
			Predicate: football.RelTeammateWith,
			Object:    Ref(football.EntityID(football.EntityTypePlayer, other)),
		})
	}

	return Entity{
		ID:         football.EntityID(football.EntityTypePlayer, p.ID),
		EntityType: football.EntityTypePlayer,
		Triples:    triples,
	}
}

func clubEntity(c *model.Club, participations []model.Participation, playersByClub map[string]map[string]bool) Entity {
	triples := []Triple{{Predicate: football.ClubName, Object: c.Name}}

	if c.FoundationYear != 0 {
		triples = append(triples, Triple{Predicate: football.ClubFounded, Object: Year(c.FoundationYear)})
	}
	if c.Stadium != "" {
		triples = append(triples, Triple{Predicate: football.ClubStadium, Object: c.Stadium})
	}
	if c.Location != nil {
		triples = append(triples,
			Triple{Predicate: football.ClubLatitude, Object: Decimal(c.Location.Latitude)},
			Triple{Predicate: football.ClubLongitude, Object: Decimal(c.Location.Longitude)},
		)
	}
	for _, part := range participations {
		if part.ClubID != c.ID {
			continue
		}
		triples = append(triples, Triple{
			Predicate: football.RelParticipatesIn,
			Object:    Ref(football.EntityID(football.EntityTypeSeason, part.SeasonID)),
		})
	}
	var playerIDs []string
	for id := range playersByClub[c.ID] {
		playerIDs = append(playerIDs, id)
	}
	for _, id := range sorted(playerIDs) {
		triples = append(triples, Triple{
			Predicate: football.RelHasPlayer,
			Object:    Ref(football.EntityID(football.EntityTypePlayer, id)),
		})
	}

	return Entity{
		ID:         football.EntityID(football.EntityTypeClub, c.ID),
		EntityType: football.EntityTypeClub,
		Triples:    triples,
	}
}

func seasonEntity(s *model.Season, statsBySeason map[string][]string) Entity {
	triples := []Triple{
		{Predicate: football.SeasonLabel, Object: s.Label},
		{Predicate: football.SeasonStartYear, Object: Year(s.StartYear)},
		{Predicate: football.SeasonEndYear, Object: Year(s.EndYear)},
	}
	for _, statsID := range sorted(statsBySeason[s.ID]) {
		triples = append(triples, Triple{
			Predicate: football.RelIncludesStats,
			Object:    Ref(football.EntityID(football.EntityTypeSeasonStats, statsID)),
		})
	}
	return Entity{
		ID:         football.EntityID(football.EntityTypeSeason, s.ID),
		EntityType: football.EntityTypeSeason,
		Triples:    triples,
	}
}

func statsEntity(s *model.PlayerSeasonStats) Entity {
	triples := []Triple{
		{Predicate: football.RelForPlayer, Object: Ref(football.EntityID(football.EntityTypePlayer, s.PlayerID))},
		{Predicate: football.RelForClub, Object: Ref(football.EntityID(football.EntityTypeClub, s.ClubID))},
		{Predicate: football.RelInSeason, Object: Ref(football.EntityID(football.EntityTypeSeason, s.SeasonID))},
	}
	// Schema order keeps re-emission byte-stable.
	for _, field := range football.AllStatFields() {
		if v, ok := s.Value(field); ok {
			triples = append(triples, Triple{Predicate: football.StatPredicate(field), Object: Integer(v)})
		}
	}
	return Entity{
		ID:         football.EntityID(football.EntityTypeSeasonStats, s.ID),
		EntityType: football.EntityTypeSeasonStats,
		Triples:    triples,
	}
}

func sorted(ids []string) []string {
	sort.Strings(ids)
	return ids
}
