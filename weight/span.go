package weight

import (
	"sort"
	"strings"
)

// pairSep joins an edge's endpoints into its composite grouping key. The
// NUL byte sorts below every printable byte, so composite-key order matches
// ordering by (from, to).
const pairSep = "\x00"

// VertexSpan scans every vertex and returns the subsets achieving the
// minimum and maximum cost under the attribute.
//
// Ties are not broken: both sets may hold several vertices, and when the
// graph carries exactly one distinct cost value the two sets are identical.
// An empty graph yields two empty sets. Comparison is exact float64
// equality. Results follow the store's sorted vertex enumeration.
//
// Complexity: O(V) store lookups.
func (s *Service) VertexSpan(opts ...Option) (lightest, heaviest []string) {
	cfg := buildOptions(opts)

	names := s.store.VertexNames()
	if len(names) == 0 {
		return nil, nil
	}

	costs := make(map[string]float64, len(names))
	var name string
	for _, name = range names {
		costs[name] = s.vertexCost(name, cfg.Attr)
	}

	minCost, maxCost := spanBounds(names, costs)
	for _, name = range names {
		if costs[name] == minCost {
			lightest = append(lightest, name)
		}
		if costs[name] == maxCost {
			heaviest = append(heaviest, name)
		}
	}

	return lightest, heaviest
}

// EdgeSpan scans every edge and returns the endpoint pairs achieving the
// minimum and maximum cost under the attribute.
//
// Edges are grouped by their composite (from, to) key, results are produced
// in ascending lexical order of that key and decomposed back into endpoint
// pairs. The tie and empty-graph semantics match VertexSpan.
//
// Complexity: O(E log E) for the ordering pass.
func (s *Service) EdgeSpan(opts ...Option) (lightest, heaviest []Endpoints) {
	cfg := buildOptions(opts)

	edges := s.store.Edges()
	if len(edges) == 0 {
		return nil, nil
	}

	costs := make(map[string]float64, len(edges))
	keys := make([]string, 0, len(edges))
	var key string
	for _, e := range edges {
		key = e.From() + pairSep + e.To()
		if _, seen := costs[key]; !seen {
			keys = append(keys, key)
		}
		costs[key] = bundleCost(e.Attributes(), cfg.Attr)
	}
	sort.Strings(keys)

	minCost, maxCost := spanBounds(keys, costs)
	var from, to string
	for _, key = range keys {
		from, to, _ = strings.Cut(key, pairSep)
		if costs[key] == minCost {
			lightest = append(lightest, Endpoints{From: from, To: to})
		}
		if costs[key] == maxCost {
			heaviest = append(heaviest, Endpoints{From: from, To: to})
		}
	}

	return lightest, heaviest
}

// spanBounds finds the minimum and maximum cost across keys in one pass.
// keys must be non-empty.
func spanBounds(keys []string, costs map[string]float64) (minCost, maxCost float64) {
	minCost, maxCost = costs[keys[0]], costs[keys[0]]
	var c float64
	for _, k := range keys[1:] {
		c = costs[k]
		if c < minCost {
			minCost = c
		}
		if c > maxCost {
			maxCost = c
		}
	}

	return minCost, maxCost
}
