// Package report implements the pipeline's data-quality condition taxonomy
// and the per-run operator summary.
//
// Almost every failure in the pipeline is record-local and non-fatal: a
// season with no usable data, an ambiguous identity merge, a field that
// fails coercion, a record that cannot be mapped onto the ontology. Those
// conditions are counted here rather than propagated as errors; only an
// unreadable input artifact aborts a stage.
package report

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Condition identifies one kind of non-fatal data-quality event.
type Condition string

const (
	// CrawlGap records a season or club with no usable source data.
	CrawlGap Condition = "crawl_gap"

	// IdentityAmbiguity records a merge performed with insufficient
	// confidence (e.g. matching names but one missing birth date).
	IdentityAmbiguity Condition = "identity_ambiguity"

	// MalformedField records a single field dropped after failed type
	// coercion; the record is otherwise kept.
	MalformedField Condition = "malformed_field"

	// AggregationInconsistency records recomputed totals that differ from
	// a previously persisted value. Recomputation is authoritative, so the
	// previous value is overwritten.
	AggregationInconsistency Condition = "aggregation_inconsistency"

	// RDFTypeMapping records an entity that could not be validly emitted
	// against the ontology and was skipped.
	RDFTypeMapping Condition = "rdf_type_mapping"
)

// maxDetails bounds per-condition detail retention so a badly degraded
// crawl cannot balloon the summary.
const maxDetails = 50

// Recorder accumulates conditions for one pipeline run.
type Recorder struct {
	mu      sync.Mutex
	logger  *slog.Logger
	counts  map[Condition]int
	details map[Condition][]string

	registry   *prometheus.Registry
	conditions *prometheus.CounterVec
	merged     prometheus.Counter
}

// NewRecorder creates a Recorder backed by a private prometheus registry.
func NewRecorder(logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	registry := prometheus.NewRegistry()
	conditions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rostergraph_conditions_total",
		Help: "Non-fatal data-quality conditions observed during a pipeline run.",
	}, []string{"condition"})
	merged := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rostergraph_sightings_merged_total",
		Help: "Raw sightings merged into canonical records.",
	})
	registry.MustRegister(conditions, merged)

	return &Recorder{
		logger:     logger,
		counts:     make(map[Condition]int),
		details:    make(map[Condition][]string),
		registry:   registry,
		conditions: conditions,
		merged:     merged,
	}
}

// Record counts one occurrence of a condition and logs it at warn level.
func (r *Recorder) Record(c Condition, format string, args ...any) {
	detail := fmt.Sprintf(format, args...)

	r.mu.Lock()
	r.counts[c]++
	if len(r.details[c]) < maxDetails {
		r.details[c] = append(r.details[c], detail)
	}
	r.mu.Unlock()

	r.conditions.WithLabelValues(string(c)).Inc()
	r.logger.Warn("data-quality condition", "condition", string(c), "detail", detail)
}

// RecordMerge counts one sighting folded into an existing canonical record.
func (r *Recorder) RecordMerge() {
	r.mu.Lock()
	r.counts["merged"]++
	r.mu.Unlock()
	r.merged.Inc()
}

// Count returns the number of occurrences of a condition.
func (r *Recorder) Count(c Condition) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[c]
}

// MergedCount returns the number of sightings merged into existing records.
func (r *Recorder) MergedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts["merged"]
}

// Registry exposes the prometheus registry for scraping or push gateways.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Summary renders the per-run operator summary. Conditions are listed in a
// stable order with up to maxDetails detail lines each.
func (r *Recorder) Summary() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	sb.WriteString("pipeline run summary\n")
	fmt.Fprintf(&sb, "  sightings merged: %d\n", r.counts["merged"])

	names := make([]string, 0, len(r.counts))
	for c := range r.counts {
		if c == "merged" {
			continue
		}
		names = append(names, string(c))
	}
	sort.Strings(names)

	if len(names) == 0 {
		sb.WriteString("  no data-quality conditions recorded\n")
		return sb.String()
	}
	for _, name := range names {
		c := Condition(name)
		fmt.Fprintf(&sb, "  %s: %d\n", name, r.counts[c])
		for _, d := range r.details[c] {
			fmt.Fprintf(&sb, "    - %s\n", d)
		}
		if r.counts[c] > len(r.details[c]) {
			fmt.Fprintf(&sb, "    ... %d more\n", r.counts[c]-len(r.details[c]))
		}
	}
	return sb.String()
}
