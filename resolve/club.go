package resolve

import (
	"log/slog"
	"sort"

	"github.com/c360studio/rostergraph/model"
	"github.com/c360studio/rostergraph/report"
	"github.com/c360studio/rostergraph/roster"
)

// ClubRegistry deduplicates clubs seen across all seasons into canonical
// Club records. The matching key is the normalized club name.
type ClubRegistry struct {
	logger *slog.Logger
}

// NewClubRegistry creates a ClubRegistry.
func NewClubRegistry(logger *slog.Logger) *ClubRegistry {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClubRegistry{logger: logger}
}

// Resolve produces one canonical Club per distinct normalized name, plus a
// sighting-index → club-identifier map. Secondary attributes merge by
// first-non-empty-wins; later non-conflicting values fill gaps; outright
// conflicts keep the earliest-seen value and are logged.
func (r *ClubRegistry) Resolve(entries []roster.Entry, rec *report.Recorder) ([]model.Club, map[int]string) {
	byKey := make(map[string]*model.Club)
	sightings := make(map[int]string, len(entries))

	for i := range entries {
		e := &entries[i]
		key := Normalize(e.ClubName)
		if key == "" {
			continue
		}

		club, seen := byKey[key]
		if !seen {
			club = &model.Club{
				ID:   NewID("club", key),
				Name: e.ClubName,
			}
			byKey[key] = club
		} else {
			rec.RecordMerge()
		}
		sightings[i] = club.ID
		r.fill(club, e, rec)
	}

	clubs := make([]model.Club, 0, len(byKey))
	for _, c := range byKey {
		clubs = append(clubs, *c)
	}
	sort.Slice(clubs, func(i, j int) bool { return clubs[i].Name < clubs[j].Name })
	return clubs, sightings
}

// fill merges one sighting's secondary attributes into a canonical club.
func (r *ClubRegistry) fill(club *model.Club, e *roster.Entry, rec *report.Recorder) {
	if e.Stadium != "" {
		if club.Stadium == "" {
			club.Stadium = e.Stadium
		} else if club.Stadium != e.Stadium {
			r.logger.Warn("conflicting stadium, keeping earliest",
				"club", club.Name, "kept", club.Stadium, "ignored", e.Stadium)
		}
	}

	if e.Founded != nil {
		year, present, ok := coerceInt(e.Founded)
		switch {
		case present && !ok:
			rec.Record(report.MalformedField, "club %s: foundation year %v not numeric", club.Name, e.Founded)
		case ok && club.FoundationYear == 0:
			club.FoundationYear = year
		case ok && club.FoundationYear != year:
			r.logger.Warn("conflicting foundation year, keeping earliest",
				"club", club.Name, "kept", club.FoundationYear, "ignored", year)
		}
	}

	if e.Latitude != nil && e.Longitude != nil {
		loc := model.Location{Latitude: *e.Latitude, Longitude: *e.Longitude}
		if club.Location == nil {
			club.Location = &loc
		} else if *club.Location != loc {
			r.logger.Warn("conflicting location, keeping earliest", "club", club.Name)
		}
	}
}
