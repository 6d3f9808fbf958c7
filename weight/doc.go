// Package weight layers named numeric cost attributes over an attributed
// graph store.
//
// The package does not implement graph storage itself. It drives a narrow
// collaborator contract (the Store interface) that any attributed graph can
// satisfy; two backends ship with this module: agraph (native in-memory
// store) and gstore (an adapter over github.com/dominikbraun/graph).
//
// A Service ingests raw weight data in one of two shapes and materializes
// vertices and edges in the store:
//
//   - Dense: an adjacency matrix ([][]float64). Row i holds vertex i's
//     outgoing weights; column j addresses vertex j. Zero entries mean
//     "no edge" and are skipped, including the diagonal, so only a non-zero
//     diagonal entry creates a self-loop.
//   - Sparse: a map from vertex name to a NeighborSpec, itself a map from
//     neighbor name to numeric weight. A reserved "attributes" sub-map is
//     stripped out and applied as vertex display attributes before any edge
//     is created.
//
// Quirk, preserved deliberately: a weight of exactly zero is skipped in
// dense form but still creates an edge in sparse form. Callers relying on
// zero-weight edges must use the sparse shape.
//
// Every populated edge carries the reserved cost key "x-<attr>" holding its
// weight, plus a display label. Every populated vertex carries "x-<attr>"
// holding the sum of its outgoing edge weights from that call (zero when it
// has none). Several attribute names may be layered onto one topology by
// calling Populate repeatedly; each layer is independent.
//
// Reads built on top of the cost accessor:
//
//   - Cost:       cost of a single vertex (by name) or edge handle;
//     an absent attribute reads as 0, never as an error.
//   - VertexSpan: the sets of lightest and heaviest vertices.
//   - EdgeSpan:   the sets of lightest and heaviest edges, ordered by their
//     (from, to) composite key.
//   - PathCost:   the summed cost along an explicit vertex sequence; a pair
//     with no connecting edge contributes 0 and the walk continues.
//
// Span grouping compares costs with exact float64 equality; callers
// supplying floating-point weights should expect strict tie matching.
//
// Errors (sentinel):
//
//	– ErrNilStore         if a Service is constructed without a store.
//	– ErrUnsupportedInput if Populate receives neither a dense nor a sparse
//	  shape; the call mutates nothing.
//	– ErrInvalidArgument  if Cost receives a nil, empty or foreign-typed
//	  reference.
//
// All other "missing" conditions (absent attribute, absent edge on a path,
// empty graph in a span) yield zero or empty results by design.
//
// The package is single-threaded: populate first, query after. Adopters who
// need concurrent access must serialize around the whole store themselves.
//
// Complexity: Populate is O(V + E) over the input, spans are O(V) resp.
// O(E log E), PathCost is O(len(path)) edge lookups.
package weight
