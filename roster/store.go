package roster

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/c360studio/rostergraph/model"
	"github.com/c360studio/rostergraph/report"
)

// Scope narrows which sightings a load admits. Zero values mean unbounded.
type Scope struct {
	Competition string
	SeasonFrom  int // inclusive start year, e.g. 2022
	SeasonTo    int // inclusive start year
}

// NewScope builds a Scope from season display labels ("2020/21"). Empty
// labels leave the corresponding bound open.
func NewScope(competition, fromLabel, toLabel string) (Scope, error) {
	s := Scope{Competition: competition}
	if fromLabel != "" {
		start, ok := seasonStartYear(fromLabel)
		if !ok {
			return Scope{}, fmt.Errorf("season-from %q: want YYYY/YY", fromLabel)
		}
		s.SeasonFrom = start
	}
	if toLabel != "" {
		start, ok := seasonStartYear(toLabel)
		if !ok {
			return Scope{}, fmt.Errorf("season-to %q: want YYYY/YY", toLabel)
		}
		s.SeasonTo = start
	}
	return s, nil
}

// Admits reports whether an entry falls inside the scope.
func (s Scope) Admits(e *Entry) bool {
	if s.Competition != "" && e.Competition != "" && e.Competition != s.Competition {
		return false
	}
	if s.SeasonFrom == 0 && s.SeasonTo == 0 {
		return true
	}
	start, ok := seasonStartYear(e.Season)
	if !ok {
		// Malformed labels are the season registry's concern; scope
		// filtering admits them so they surface there.
		return true
	}
	if s.SeasonFrom != 0 && start < s.SeasonFrom {
		return false
	}
	if s.SeasonTo != 0 && start > s.SeasonTo {
		return false
	}
	return true
}

func seasonStartYear(label string) (int, bool) {
	head, _, found := strings.Cut(label, "/")
	if !found {
		return 0, false
	}
	year, err := strconv.Atoi(head)
	if err != nil {
		return 0, false
	}
	return year, true
}

// Store is the in-memory collection of raw roster sightings, the pipeline's
// sole input artifact.
type Store struct {
	logger  *slog.Logger
	entries []Entry
}

// NewStore creates an empty Store.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{logger: logger}
}

// Entries returns the loaded sightings in load order.
func (s *Store) Entries() []Entry {
	return s.entries
}

// Len returns the number of loaded sightings.
func (s *Store) Len() int {
	return len(s.entries)
}

// Load reads one snapshot file of roster sightings. Unusable entries are
// recorded as crawl gaps and skipped; only an unreadable file is fatal.
func (s *Store) Load(path string, scope Scope, rec *report.Recorder) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read snapshot %s: %v", model.ErrUnreadableArtifact, path, err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("%w: parse snapshot %s: %v", model.ErrUnreadableArtifact, path, err)
	}
	if len(entries) == 0 {
		rec.Record(report.CrawlGap, "snapshot %s contains no sightings", path)
		return nil
	}

	kept := 0
	for _, e := range entries {
		if !e.Usable() {
			rec.Record(report.CrawlGap, "snapshot %s: sighting missing name/club/season (name=%q club=%q season=%q)",
				path, e.FullName, e.ClubName, e.Season)
			continue
		}
		if !scope.Admits(&e) {
			continue
		}
		s.entries = append(s.entries, e)
		kept++
	}
	s.logger.Debug("loaded snapshot", "path", path, "sightings", len(entries), "kept", kept)
	return nil
}

// LoadGlob reads every snapshot matching a doublestar pattern, in sorted
// path order so repeated runs see identical input order. A pattern that
// matches nothing is fatal: there is no artifact to read at all.
func (s *Store) LoadGlob(pattern string, scope Scope, rec *report.Recorder) error {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return fmt.Errorf("%w: glob %s: %v", model.ErrUnreadableArtifact, pattern, err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("%w: no snapshots match %s", model.ErrUnreadableArtifact, pattern)
	}
	sort.Strings(matches)
	for _, path := range matches {
		if err := s.Load(path, scope, rec); err != nil {
			return err
		}
	}
	return nil
}
