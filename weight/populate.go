package weight

import (
	"fmt"
	"sort"
	"strconv"
)

// Populate converts raw weight data into vertices and edges in the
// collaborator store and accrues per-vertex weights as a side effect.
//
// data must be one of:
//
//   - Dense / [][]float64: row i is vertex i's outgoing weights; zero
//     entries (including the diagonal) are skipped, so a zero self-weight
//     never creates a self-loop while a non-zero diagonal entry does.
//   - Sparse / map[string]NeighborSpec / map[string]map[string]any: vertex
//     name → neighbor weights. The reserved "attributes" sub-map is applied
//     as vertex display attributes before edge processing. A zero weight
//     still creates an edge here — the dense/sparse asymmetry is kept on
//     purpose.
//
// Each created edge carries a display label (the weight, rendered through
// Options.LabelFormat when set) and the reserved cost key "x-<attr>". After
// a vertex's neighbors are processed its accrued weight is stored
// unconditionally, so a vertex with no outgoing edges reads as 0.
//
// Any other data shape fails with ErrUnsupportedInput; sparse shapes are
// validated in full before the first mutation, so a failed call leaves the
// store untouched. Layering: calling Populate again under a different
// attribute name adds an independent cost layer to the same topology.
//
// Complexity: O(V + E) over the input plus store insertion costs.
func (s *Service) Populate(data any, opts ...Option) error {
	cfg := buildOptions(opts)

	switch d := data.(type) {
	case Dense:
		return s.populateDense(d, cfg)
	case [][]float64:
		return s.populateDense(d, cfg)
	case Sparse:
		return s.populateSparse(d, cfg)
	case map[string]NeighborSpec:
		return s.populateSparse(d, cfg)
	case map[string]map[string]any:
		sp := make(Sparse, len(d))
		for name, spec := range d {
			sp[name] = spec
		}

		return s.populateSparse(sp, cfg)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedInput, data)
	}
}

// populateDense walks the adjacency matrix row by row. Row index i names
// vertex strconv.Itoa(i); column index j names the neighbor.
func (s *Service) populateDense(rows [][]float64, cfg Options) error {
	var (
		from, to string
		total, w float64
		err      error
	)
	for i, row := range rows {
		from = strconv.Itoa(i)
		// The row vertex must exist even when every entry is zero.
		if err = s.store.AddVertex(from); err != nil {
			return fmt.Errorf("weight: add vertex %q: %w", from, err)
		}

		total = 0
		for j := range row {
			w = row[j]
			if w == 0 {
				// Dense zero means "no edge", diagonal included.
				continue
			}
			to = strconv.Itoa(j)
			if err = s.store.AddEdge(from, to, edgeBundle(w, cfg)); err != nil {
				return fmt.Errorf("weight: add edge %s→%s: %w", from, to, err)
			}
			total += w
		}

		if err = s.store.SetVertexAttribute(from, CostKey(cfg.Attr), total); err != nil {
			return fmt.Errorf("weight: accrue vertex %q: %w", from, err)
		}
	}

	return nil
}

// populateSparse walks the key mapping. The whole shape is validated before
// the first mutation so an unsupported value leaves the store untouched.
// Vertex and neighbor keys are visited in sorted order for reproducibility,
// but callers must not rely on edge enumeration order matching input order.
func (s *Service) populateSparse(data Sparse, cfg Options) error {
	if err := validateSparse(data); err != nil {
		return err
	}

	var (
		spec  NeighborSpec
		total float64
		err   error
	)
	for _, from := range sortedKeys(data) {
		spec = data[from]
		if err = s.store.AddVertex(from); err != nil {
			return fmt.Errorf("weight: add vertex %q: %w", from, err)
		}

		// Strip the reserved attributes sub-map and apply it directly to
		// the vertex before any edge is created.
		if raw, ok := spec[AttributesKey]; ok {
			attrs := raw.(map[string]any)
			for _, key := range sortedKeys(attrs) {
				if err = s.store.SetVertexAttribute(from, key, attrs[key]); err != nil {
					return fmt.Errorf("weight: set attribute %q on vertex %q: %w", key, from, err)
				}
			}
		}

		total = 0
		for _, to := range sortedKeys(spec) {
			if to == AttributesKey {
				continue
			}
			// Zero weights still create edges in sparse form.
			w, _ := toFloat(spec[to])
			if err = s.store.AddEdge(from, to, edgeBundle(w, cfg)); err != nil {
				return fmt.Errorf("weight: add edge %s→%s: %w", from, to, err)
			}
			total += w
		}

		if err = s.store.SetVertexAttribute(from, CostKey(cfg.Attr), total); err != nil {
			return fmt.Errorf("weight: accrue vertex %q: %w", from, err)
		}
	}

	return nil
}

// validateSparse checks every neighbor value up front: numeric weights, or
// a map[string]any under the reserved attributes key.
func validateSparse(data Sparse) error {
	for from, spec := range data {
		for key, raw := range spec {
			if key == AttributesKey {
				if _, ok := raw.(map[string]any); !ok {
					return fmt.Errorf("%w: vertex %q: %s must be map[string]any, got %T",
						ErrUnsupportedInput, from, AttributesKey, raw)
				}

				continue
			}
			if _, ok := toFloat(raw); !ok {
				return fmt.Errorf("%w: vertex %q: weight of neighbor %q must be numeric, got %T",
					ErrUnsupportedInput, from, key, raw)
			}
		}
	}

	return nil
}

// edgeBundle builds the attribute bundle for one populated edge: a display
// label plus the reserved cost key.
func edgeBundle(w float64, cfg Options) map[string]any {
	var label any = w
	if cfg.LabelFormat != "" {
		label = fmt.Sprintf(cfg.LabelFormat, w)
	}

	return map[string]any{
		LabelKey:          label,
		CostKey(cfg.Attr): w,
	}
}

// toFloat coerces any Go numeric kind to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// sortedKeys returns m's keys in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
