// Package football provides vocabulary predicates for the football
// knowledge graph: players, clubs, seasons, per-season statistics, and the
// position/nationality controlled vocabularies.
//
// Predicates use dotted notation internally and carry IRI mappings for RDF
// export at the boundary.
//
// Import this package to auto-register predicates:
//
//	import _ "github.com/c360studio/rostergraph/vocabulary/football"
package football
