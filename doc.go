// Package lvlweight layers named numeric cost attributes over attributed
// graph stores: bulk-populate weights from dense matrices or sparse
// neighbor maps, then query per-element costs, lightest/heaviest spans, and
// path sums.
//
// Everything is organized under three subpackages:
//
//	weight/ — the weighting layer: Populate, Cost, VertexSpan, EdgeSpan,
//	          PathCost, plus the narrow Store contract it drives
//	agraph/ — native in-memory attributed graph store (vertices and edges
//	          carry open map[string]any bundles, sorted enumeration,
//	          ASCII rendering)
//	gstore/ — the same contract backed by github.com/dominikbraun/graph
//
// Quick example:
//
//	g := agraph.NewGraph()
//	svc, _ := weight.New(g)
//	_ = svc.Populate(weight.Dense{
//		{0, 1, 2},
//		{1, 0, 3},
//		{2, 3, 0},
//	})
//	lightest, heaviest := svc.VertexSpan()
//
// The module is single-threaded by design: populate first, query after,
// serialize externally if you must share a graph across goroutines.
package lvlweight
