// Package graph publishes canonical football entities to the knowledge graph.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/natsclient"

	"github.com/c360studio/rostergraph/export"
)

// Subject for graph ingestion.
const GraphIngestSubject = "graph.ingest.entity"

// Source tag stamped on every published triple.
const TripleSource = "rostergraph.emit"

// EntityIngestMessage is the message format for graph ingestion.
// Matches the format used by semstreams graph components.
type EntityIngestMessage struct {
	ID        string           `json:"id"`
	Triples   []message.Triple `json:"triples"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// PublishEntities publishes every exported entity to the knowledge graph,
// one ingest message per entity. A nil client skips publishing entirely so
// file-only runs work without a broker.
func PublishEntities(ctx context.Context, nc *natsclient.Client, exporter *export.RDFExporter) error {
	if nc == nil {
		return nil
	}

	now := time.Now()
	for _, entity := range exporter.Entities() {
		triples := make([]message.Triple, 0, len(entity.Triples))
		for _, t := range entity.Triples {
			triples = append(triples, message.Triple{
				Subject:    entity.ID,
				Predicate:  t.Predicate,
				Object:     tripleObject(t.Object),
				Source:     TripleSource,
				Timestamp:  now,
				Confidence: 1.0,
			})
		}

		msg := EntityIngestMessage{
			ID:        entity.ID,
			Triples:   triples,
			UpdatedAt: now,
		}

		data, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("marshal entity %s: %w", entity.ID, err)
		}

		if err := nc.PublishToStream(ctx, GraphIngestSubject, data); err != nil {
			return fmt.Errorf("publish entity %s: %w", entity.ID, err)
		}
	}

	slog.Info("published entities to graph", "count", exporter.Len(), "subject", GraphIngestSubject)
	return nil
}

// tripleObject unwraps the exporter's typed literal wrappers into plain
// values for the wire format. Entity references travel as dotted entity IDs,
// the way semstreams entity_id predicates expect them.
func tripleObject(obj any) any {
	switch v := obj.(type) {
	case export.Ref:
		return string(v)
	case export.Date:
		return string(v)
	case export.Year:
		return int(v)
	case export.Integer:
		return int64(v)
	case export.Decimal:
		return float64(v)
	default:
		return obj
	}
}
