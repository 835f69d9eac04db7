// Package vocab derives the controlled vocabularies (Position,
// Nationality) from canonical player attributes. Entries are arena-style
// registries keyed by normalized label and referenced by identifier from
// Player records, never duplicated inline.
package vocab

import (
	"sort"
	"strings"

	"github.com/c360studio/rostergraph/model"
	"github.com/c360studio/rostergraph/resolve"
)

// titleCase normalizes a position label for interning ("centre back" →
// "Centre Back").
func titleCase(label string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(label)))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ExtractPositions interns each distinct player position into a Position
// entry and writes the entry identifier back onto the referencing players.
func ExtractPositions(players []model.Player) []model.Position {
	byID := make(map[string]model.Position)

	for i := range players {
		p := &players[i]
		if p.Position == "" {
			continue
		}
		label := titleCase(p.Position)
		id := resolve.Slug(label)
		if _, ok := byID[id]; !ok {
			byID[id] = model.Position{ID: id, Label: label}
		}
		p.PositionID = id
	}

	positions := make([]model.Position, 0, len(byID))
	for _, pos := range byID {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].Label < positions[j].Label })
	return positions
}
