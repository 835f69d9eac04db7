package vocab

import (
	"sort"
	"strings"

	"github.com/c360studio/rostergraph/model"
	"github.com/c360studio/rostergraph/resolve"
)

// ExtractNationalities interns each distinct player nationality into a
// Nationality entry, preferring the ISO code as identifier with a
// label-slug fallback, and writes the identifier back onto the referencing
// players. The first player to intern a country supplies its ISO code and
// demonym; later sightings fill gaps but never overwrite.
func ExtractNationalities(players []model.Player) []model.Nationality {
	byID := make(map[string]*model.Nationality)

	for i := range players {
		p := &players[i]
		if p.Nationality == "" {
			continue
		}

		id := strings.ToLower(strings.TrimSpace(p.NationalityISO))
		if id == "" {
			id = resolve.Slug(p.Nationality)
		}

		entry, ok := byID[id]
		if !ok {
			entry = &model.Nationality{
				ID:      id,
				Label:   p.Nationality,
				ISOCode: p.NationalityISO,
				Demonym: p.Demonym,
			}
			byID[id] = entry
		} else {
			if entry.ISOCode == "" {
				entry.ISOCode = p.NationalityISO
			}
			if entry.Demonym == "" {
				entry.Demonym = p.Demonym
			}
		}
		p.NationalityID = id
	}

	nationalities := make([]model.Nationality, 0, len(byID))
	for _, n := range byID {
		nationalities = append(nationalities, *n)
	}
	sort.Slice(nationalities, func(i, j int) bool { return nationalities[i].Label < nationalities[j].Label })
	return nationalities
}
