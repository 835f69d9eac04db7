// Package season derives canonical Season records from the season
// identifiers referenced by stats records.
package season

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/c360studio/rostergraph/model"
	"github.com/c360studio/rostergraph/report"
)

// Registry derives Season records. Seasons are never direct input; they
// exist only because a stats record references them.
type Registry struct {
	logger *slog.Logger
}

// NewRegistry creates a Registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{logger: logger}
}

// Derive collects the distinct season identifiers referenced by stats and
// parses each into a Season. An individual malformed identifier is skipped
// with a crawl_gap condition; the batch never fails.
func (r *Registry) Derive(records []model.PlayerSeasonStats, rec *report.Recorder) []model.Season {
	seen := make(map[string]bool)
	var seasons []model.Season

	for i := range records {
		id := records[i].SeasonID
		if seen[id] {
			continue
		}
		seen[id] = true

		s, err := Parse(id)
		if err != nil {
			rec.Record(report.CrawlGap, "season %q skipped: %v", id, err)
			r.logger.Warn("skipping malformed season identifier", "season", id, "error", err)
			continue
		}
		seasons = append(seasons, s)
	}

	sort.Slice(seasons, func(i, j int) bool { return seasons[i].StartYear < seasons[j].StartYear })
	return seasons
}

// Parse converts a season identifier ("2024-25") into a Season using the
// fixed YYYY/YY convention. The two-digit suffix must agree with the start
// year's successor.
func Parse(id string) (model.Season, error) {
	head, tail, found := strings.Cut(id, "-")
	if !found {
		return model.Season{}, fmt.Errorf("season %q: want YYYY-YY", id)
	}
	start, err := strconv.Atoi(head)
	if err != nil || len(head) != 4 {
		return model.Season{}, fmt.Errorf("season %q: bad start year", id)
	}
	suffix, err := strconv.Atoi(tail)
	if err != nil || len(tail) != 2 {
		return model.Season{}, fmt.Errorf("season %q: bad end-year suffix", id)
	}
	if (start+1)%100 != suffix {
		return model.Season{}, fmt.Errorf("season %q: end year does not follow start year", id)
	}
	return model.Season{
		ID:        id,
		Label:     fmt.Sprintf("%d/%02d", start, suffix),
		StartYear: start,
		EndYear:   start + 1,
	}, nil
}
