// Package agraph provides an in-memory directed graph whose vertices and
// edges carry open attribute bundles (map[string]any).
//
// It is the native backend for the weight package's Store contract, and a
// usable labeled-graph store on its own:
//
//   - Vertices are identified by name; AddVertex is idempotent.
//   - Edges are identified by their ordered (from, to) pair. By default the
//     graph holds at most one edge per pair: adding a second merges the new
//     attribute bundle into the existing edge, which is what lets several
//     cost layers share one topology. WithMultiEdges restores parallel
//     edges instead.
//   - AddEdge auto-creates missing endpoints; self-loops are permitted.
//   - Enumerations (VertexNames, Vertices, EdgeList, Edges) return sorted
//     results, so downstream output is reproducible.
//   - ASCII renders the adjacency structure for quick inspection.
//
// The graph is deliberately not safe for concurrent use: the intended
// lifecycle is single-threaded population followed by read-only querying.
// Adopters needing concurrency must serialize access around the whole
// graph.
//
// Errors:
//
//	ErrEmptyVertexName – vertex name is the empty string.
//	ErrVertexNotFound  – attribute operation on a missing vertex.
//
// All operations are O(1) amortized except the sorted enumerations
// (O(V log V) / O(E log E)) and ASCII (O(V + E) plus sorting).
package agraph
