// Package roster holds the raw, season-sharded roster sightings that feed
// the pipeline. One Entry is one observation of a player at a club in a
// season, exactly as the crawler produced it; nothing here is canonical.
package roster

// Entry is one raw roster sighting. Numeric fields that arrive from the
// crawler are typed `any` because snapshots sometimes carry non-numeric
// content under API errors; coercion happens downstream where a failed
// field can be dropped without losing the record.
type Entry struct {
	FullName  string `json:"fullName"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`

	DateOfBirth string `json:"dateOfBirth,omitempty"` // YYYY-MM-DD
	Country     string `json:"country,omitempty"`
	CountryISO  string `json:"countryISO,omitempty"`
	Demonym     string `json:"demonym,omitempty"`

	PreferredFoot string `json:"preferredFoot,omitempty"`
	Position      string `json:"position,omitempty"`
	HeightCM      any    `json:"heightCm,omitempty"`
	ShirtNumber   any    `json:"shirtNumber,omitempty"`

	ClubName      string   `json:"clubName"`
	ClubShortName string   `json:"clubShortName,omitempty"`
	Stadium       string   `json:"stadium,omitempty"`
	Founded       any      `json:"founded,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`

	Competition string `json:"competition,omitempty"`
	Season      string `json:"season"` // display label, e.g. "2024/25"

	// Stats nests statistic fields by category (attack, physical,
	// defence, discipline, possession). Field names are raw API names;
	// the stats builder maps them onto the canonical schema.
	Stats map[string]map[string]any `json:"stats,omitempty"`
}

// Usable reports whether the sighting carries the minimum fields to take
// part in resolution: a player name, a club name, and a season label.
func (e *Entry) Usable() bool {
	return e.FullName != "" && e.ClubName != "" && e.Season != ""
}

// FlatStats flattens the per-category stat groups into one raw field map.
// Category membership is schema knowledge, so downstream mapping works on
// field names alone.
func (e *Entry) FlatStats() map[string]any {
	if len(e.Stats) == 0 {
		return nil
	}
	flat := make(map[string]any)
	for _, group := range e.Stats {
		for k, v := range group {
			flat[k] = v
		}
	}
	return flat
}

// HasStats reports whether the sighting carries any statistic fields.
func (e *Entry) HasStats() bool {
	for _, group := range e.Stats {
		if len(group) > 0 {
			return true
		}
	}
	return false
}
