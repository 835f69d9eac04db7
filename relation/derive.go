// Package relation computes derived relations from canonical records: the
// symmetric teammate relation and club season participation.
package relation

import (
	"sort"

	"github.com/c360studio/rostergraph/model"
)

// Teammates derives the undirected teammate edge set: two distinct players
// are teammates iff they share at least one (club, season) pair in their
// stats records.
//
// Stats are bucketed by (club, season); each bucket of n players yields all
// C(n,2) unordered pairs, and the union across buckets is deduplicated so a
// pair sharing several club/season combinations appears once. Bucket sizes
// are bounded by single-club roster size, so the quadratic pass stays
// cheap.
func Teammates(records []model.PlayerSeasonStats) []model.TeammatePair {
	buckets := make(map[string]map[string]bool)
	for i := range records {
		r := &records[i]
		key := r.ClubID + "|" + r.SeasonID
		if buckets[key] == nil {
			buckets[key] = make(map[string]bool)
		}
		buckets[key][r.PlayerID] = true
	}

	seen := make(map[model.TeammatePair]bool)
	for _, bucket := range buckets {
		players := make([]string, 0, len(bucket))
		for id := range bucket {
			players = append(players, id)
		}
		sort.Strings(players)

		for i := 0; i < len(players); i++ {
			for j := i + 1; j < len(players); j++ {
				seen[model.TeammatePair{A: players[i], B: players[j]}] = true
			}
		}
	}

	pairs := make([]model.TeammatePair, 0, len(seen))
	for pair := range seen {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	return pairs
}

// TeammatesOf returns the teammates of one player from a derived pair set.
// Because pairs are unordered, membership is symmetric by construction.
func TeammatesOf(pairs []model.TeammatePair, playerID string) []string {
	var out []string
	for _, p := range pairs {
		switch playerID {
		case p.A:
			out = append(out, p.B)
		case p.B:
			out = append(out, p.A)
		}
	}
	sort.Strings(out)
	return out
}

// Participations derives the club-participates-in-season relation from the
// stats set, deduplicated and stably ordered.
func Participations(records []model.PlayerSeasonStats) []model.Participation {
	seen := make(map[model.Participation]bool)
	for i := range records {
		seen[model.Participation{ClubID: records[i].ClubID, SeasonID: records[i].SeasonID}] = true
	}

	parts := make([]model.Participation, 0, len(seen))
	for p := range seen {
		parts = append(parts, p)
	}
	sort.Slice(parts, func(i, j int) bool {
		if parts[i].ClubID != parts[j].ClubID {
			return parts[i].ClubID < parts[j].ClubID
		}
		return parts[i].SeasonID < parts[j].SeasonID
	})
	return parts
}
