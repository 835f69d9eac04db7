package resolve

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/c360studio/rostergraph/model"
	"github.com/c360studio/rostergraph/report"
	"github.com/c360studio/rostergraph/roster"
)

// PlayerResolver deduplicates player sightings across seasons and clubs
// into canonical Player records.
//
// The primary matching key is the normalized name. Two sightings with the
// same normalized name but materially different birth dates or
// nationalities are kept as distinct individuals; a sighting whose birth
// date is missing is merged optimistically and flagged for review.
type PlayerResolver struct {
	logger *slog.Logger
}

// NewPlayerResolver creates a PlayerResolver.
func NewPlayerResolver(logger *slog.Logger) *PlayerResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlayerResolver{logger: logger}
}

// identity is one candidate individual while a name group is being split.
type identity struct {
	player       model.Player
	normName     string
	dob          string // "" while unknown
	nat          string // normalized nationality, "" while unknown
	joinedStart  int
	currentStart int
}

// Resolve produces canonical players plus a sighting-index → player-id map.
// Identifier assignment happens after all sightings are folded, from each
// identity's final matching key, so IDs do not depend on processing order.
func (r *PlayerResolver) Resolve(entries []roster.Entry, clubIDs map[int]string, rec *report.Recorder) ([]model.Player, map[int]string) {
	groups := make(map[string][]*identity)
	assigned := make(map[int]*identity, len(entries))

	for i := range entries {
		e := &entries[i]
		norm := Normalize(e.FullName)
		if norm == "" {
			continue
		}

		ident := r.match(groups[norm], e, rec)
		if ident == nil {
			ident = &identity{
				normName: norm,
				player:   model.Player{Name: e.FullName, PreferredFoot: model.FootUnknown},
			}
			groups[norm] = append(groups[norm], ident)
		} else {
			rec.RecordMerge()
		}
		r.fill(ident, e, clubIDs[i], rec)
		assigned[i] = ident
	}

	var players []model.Player
	for _, idents := range groups {
		for _, ident := range idents {
			ident.player.ID = NewID("player", ident.normName+"|"+ident.dob+"|"+ident.nat)
			players = append(players, ident.player)
		}
	}
	sort.Slice(players, func(i, j int) bool {
		if players[i].Name != players[j].Name {
			return players[i].Name < players[j].Name
		}
		return players[i].ID < players[j].ID
	})

	sightings := make(map[int]string, len(assigned))
	for i, ident := range assigned {
		sightings[i] = ident.player.ID
	}
	return players, sightings
}

// match finds an existing identity in the name group that this sighting can
// merge into, or nil if every candidate conflicts.
func (r *PlayerResolver) match(candidates []*identity, e *roster.Entry, rec *report.Recorder) *identity {
	dob := strings.TrimSpace(e.DateOfBirth)
	nat := Normalize(e.Country)

	for _, c := range candidates {
		if c.dob != "" && dob != "" && c.dob != dob {
			continue // materially different birth date: distinct individual
		}
		if c.nat != "" && nat != "" && c.nat != nat {
			continue // materially different nationality: distinct individual
		}
		if c.dob == "" || dob == "" {
			rec.Record(report.IdentityAmbiguity,
				"merged %q without birth-date confirmation", e.FullName)
			r.logger.Debug("optimistic merge without birth date",
				"player", e.FullName, "season", e.Season)
		}
		return c
	}
	if len(candidates) > 0 {
		r.logger.Debug("conflicting identity, keeping separate",
			"player", e.FullName, "dob", dob, "nationality", e.Country)
	}
	return nil
}

// fill folds one sighting's attributes into an identity. Earlier non-empty
// values win; the latest season observed supplies the current club and
// shirt number.
func (r *PlayerResolver) fill(ident *identity, e *roster.Entry, clubID string, rec *report.Recorder) {
	p := &ident.player

	if ident.dob == "" && e.DateOfBirth != "" {
		ident.dob = strings.TrimSpace(e.DateOfBirth)
		p.DateOfBirth = ident.dob
	}
	if ident.nat == "" && e.Country != "" {
		ident.nat = Normalize(e.Country)
		p.Nationality = e.Country
	}
	if p.NationalityISO == "" && e.CountryISO != "" {
		p.NationalityISO = e.CountryISO
	}
	if p.Demonym == "" && e.Demonym != "" {
		p.Demonym = e.Demonym
	}
	if p.Position == "" && e.Position != "" {
		p.Position = e.Position
	}
	if p.PreferredFoot == model.FootUnknown {
		p.PreferredFoot = model.ParseFoot(e.PreferredFoot)
	}

	if e.HeightCM != nil && p.HeightCM == 0 {
		height, present, ok := coerceInt(e.HeightCM)
		if present && !ok {
			rec.Record(report.MalformedField, "player %s: height %v not numeric", p.Name, e.HeightCM)
		} else if ok {
			p.HeightCM = height
		}
	}

	start := seasonStart(e.Season)
	if ident.joinedStart == 0 || (start != 0 && start < ident.joinedStart) {
		ident.joinedStart = start
		p.JoinedSeason = e.Season
	}
	if start >= ident.currentStart {
		ident.currentStart = start
		if clubID != "" {
			p.CurrentClubID = clubID
		}
		if e.ShirtNumber != nil {
			shirt, present, ok := coerceInt(e.ShirtNumber)
			if present && !ok {
				rec.Record(report.MalformedField, "player %s: shirt number %v not numeric", p.Name, e.ShirtNumber)
			} else if ok {
				p.ShirtNumber = shirt
			}
		}
	}
}

// seasonStart parses the starting year out of a "YYYY/YY" label; malformed
// labels yield zero and are reported by the season registry, not here.
func seasonStart(label string) int {
	head, _, found := strings.Cut(label, "/")
	if !found {
		return 0
	}
	year, err := strconv.Atoi(head)
	if err != nil {
		return 0
	}
	return year
}
