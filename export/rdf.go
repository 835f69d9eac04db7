// Package export serializes canonical football entities as typed RDF
// statements.
package export

import (
	"fmt"
	"strings"

	"github.com/c360studio/rostergraph/vocabulary/football"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"
)

// ParseFormat resolves user input to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "turtle", "ttl":
		return FormatTurtle, nil
	case "ntriples", "nt":
		return FormatNTriples, nil
	case "jsonld", "json-ld":
		return FormatJSONLD, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

// Extension returns the conventional file extension for a format.
func (f Format) Extension() string {
	switch f {
	case FormatTurtle:
		return ".ttl"
	case FormatNTriples:
		return ".nt"
	case FormatJSONLD:
		return ".jsonld"
	default:
		return ""
	}
}

// Object values carry their literal datatype explicitly so downstream
// filtering and sorting work: a plain string stays a plain literal, Integer
// becomes xsd:integer, Date xsd:date, Year xsd:gYear, Decimal xsd:decimal,
// and Ref an IRI reference to another entity.

// Ref is an object-property reference to another entity by entity ID.
type Ref string

// Date is an xsd:date literal (YYYY-MM-DD).
type Date string

// Year is an xsd:gYear literal.
type Year int

// Integer is an xsd:integer literal.
type Integer int64

// Decimal is an xsd:decimal literal.
type Decimal float64

// Triple is one statement awaiting serialization. Predicate is a dotted
// vocabulary predicate; its IRI mapping is resolved at write time.
type Triple struct {
	Predicate string
	Object    any
}

// Entity is one exportable entity with its type assertion and statements.
type Entity struct {
	ID         string
	EntityType football.EntityType
	Triples    []Triple
}

// RDFExporter exports entities against the football ontology.
type RDFExporter struct {
	entities []Entity
	prefixes []prefix
}

type prefix struct{ name, iri string }

// NewRDFExporter creates an empty exporter with the standard prefixes.
func NewRDFExporter() *RDFExporter {
	return &RDFExporter{
		prefixes: []prefix{
			{"rdf", "http://www.w3.org/1999/02/22-rdf-syntax-ns#"},
			{"rdfs", "http://www.w3.org/2000/01/rdf-schema#"},
			{"xsd", "http://www.w3.org/2001/XMLSchema#"},
			{"fb", football.Namespace},
			{"entity", football.EntityNamespace},
		},
	}
}

// AddEntity appends an entity to the export set.
func (e *RDFExporter) AddEntity(entity Entity) {
	e.entities = append(e.entities, entity)
}

// Len returns the number of entities queued for export.
func (e *RDFExporter) Len() int {
	return len(e.entities)
}

// Entities returns the queued entities in insertion order.
func (e *RDFExporter) Entities() []Entity {
	return e.entities
}

// Export serializes all entities to the specified format.
func (e *RDFExporter) Export(format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return e.toTurtle(), nil
	case FormatNTriples:
		return e.toNTriples(), nil
	case FormatJSONLD:
		return e.toJSONLD(), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (e *RDFExporter) toTurtle() string {
	var sb strings.Builder
	for _, p := range e.prefixes {
		fmt.Fprintf(&sb, "@prefix %s: <%s> .\n", p.name, p.iri)
	}
	sb.WriteString("\n")

	for _, entity := range e.entities {
		iri := EntityIRI(entity.ID)
		classIRI := football.GetTypeForEntity(entity.EntityType)

		fmt.Fprintf(&sb, "<%s>\n", iri)
		fmt.Fprintf(&sb, "    a <%s>", classIRI)
		for _, t := range entity.Triples {
			sb.WriteString(" ;\n")
			fmt.Fprintf(&sb, "    <%s> %s", football.GetPredicateIRI(t.Predicate), formatObject(t.Object, false))
		}
		sb.WriteString(" .\n\n")
	}
	return sb.String()
}

func (e *RDFExporter) toNTriples() string {
	const rdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

	var sb strings.Builder
	for _, entity := range e.entities {
		iri := EntityIRI(entity.ID)
		fmt.Fprintf(&sb, "<%s> <%s> <%s> .\n", iri, rdfType, football.GetTypeForEntity(entity.EntityType))
		for _, t := range entity.Triples {
			fmt.Fprintf(&sb, "<%s> <%s> %s .\n", iri, football.GetPredicateIRI(t.Predicate), formatObject(t.Object, true))
		}
	}
	return sb.String()
}

func (e *RDFExporter) toJSONLD() string {
	var sb strings.Builder
	sb.WriteString("{\n  \"@context\": {\n")
	for i, p := range e.prefixes {
		fmt.Fprintf(&sb, "    %q: %q", p.name, p.iri)
		if i < len(e.prefixes)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  },\n  \"@graph\": [\n")

	for i, entity := range e.entities {
		sb.WriteString("    {\n")
		fmt.Fprintf(&sb, "      \"@id\": %q,\n", EntityIRI(entity.ID))
		fmt.Fprintf(&sb, "      \"@type\": %q", football.GetTypeForEntity(entity.EntityType))
		for _, t := range entity.Triples {
			sb.WriteString(",\n")
			fmt.Fprintf(&sb, "      %q: %s", football.GetPredicateIRI(t.Predicate), formatObjectJSONLD(t.Object))
		}
		sb.WriteString("\n    }")
		if i < len(e.entities)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  ]\n}\n")
	return sb.String()
}

// EntityIRI converts a dotted entity ID to an instance IRI, e.g.
// "rostergraph.local.football.player.<id>" becomes
// "https://rostergraph.dev/entity/football/player/<id>".
func EntityIRI(entityID string) string {
	parts := strings.Split(entityID, ".")
	if len(parts) < 5 {
		return football.EntityNamespace + entityID
	}
	// Skip org (0), context (1), domain (2); use type (3), instance (4+).
	kind := parts[3]
	instance := strings.Join(parts[4:], "/")
	return fmt.Sprintf("%s%s/%s", football.EntityNamespace, kind, instance)
}

// formatObject renders a typed object value for Turtle or N-Triples.
func formatObject(obj any, expandXSD bool) string {
	xsd := func(local string) string {
		if expandXSD {
			return fmt.Sprintf("<http://www.w3.org/2001/XMLSchema#%s>", local)
		}
		return "xsd:" + local
	}
	switch v := obj.(type) {
	case Ref:
		return fmt.Sprintf("<%s>", EntityIRI(string(v)))
	case Date:
		return fmt.Sprintf("\"%s\"^^%s", v, xsd("date"))
	case Year:
		return fmt.Sprintf("\"%d\"^^%s", v, xsd("gYear"))
	case Integer:
		return fmt.Sprintf("\"%d\"^^%s", v, xsd("integer"))
	case Decimal:
		return fmt.Sprintf("\"%g\"^^%s", float64(v), xsd("decimal"))
	case string:
		return "\"" + escapeString(v) + "\""
	default:
		return "\"" + escapeString(fmt.Sprintf("%v", v)) + "\""
	}
}

// formatObjectJSONLD renders a typed object value for JSON-LD.
func formatObjectJSONLD(obj any) string {
	switch v := obj.(type) {
	case Ref:
		return fmt.Sprintf("{\"@id\": %q}", EntityIRI(string(v)))
	case Date:
		return fmt.Sprintf("{\"@value\": %q, \"@type\": \"xsd:date\"}", string(v))
	case Year:
		return fmt.Sprintf("{\"@value\": \"%d\", \"@type\": \"xsd:gYear\"}", v)
	case Integer:
		return fmt.Sprintf("%d", v)
	case Decimal:
		return fmt.Sprintf("%g", float64(v))
	case string:
		return "\"" + escapeString(v) + "\""
	default:
		return "\"" + escapeString(fmt.Sprintf("%v", v)) + "\""
	}
}

// escapeString escapes special characters for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
