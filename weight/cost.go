package weight

import (
	"fmt"
)

// Cost reads the named cost attribute off a single vertex or edge.
//
// ref is either an Edge handle (as returned by the store) or a vertex name
// (string). A nil ref, an empty name, or any other type fails with
// ErrInvalidArgument. An element with no value under the attribute reads as
// 0 — never an error — so sparse and partially populated graphs query
// cleanly.
//
// Pure read, no side effects. Complexity: O(1) plus one store lookup for
// vertices.
func (s *Service) Cost(ref any, opts ...Option) (float64, error) {
	cfg := buildOptions(opts)

	switch r := ref.(type) {
	case nil:
		return 0, ErrInvalidArgument
	case Edge:
		return bundleCost(r.Attributes(), cfg.Attr), nil
	case string:
		if r == "" {
			return 0, ErrInvalidArgument
		}

		return s.vertexCost(r, cfg.Attr), nil
	default:
		return 0, fmt.Errorf("%w: cannot read cost off %T", ErrInvalidArgument, ref)
	}
}

// vertexCost reads the accrued cost of one vertex; absent vertex or
// attribute reads as zero.
func (s *Service) vertexCost(name, attr string) float64 {
	raw, ok := s.store.VertexAttribute(name, CostKey(attr))
	if !ok {
		return 0
	}
	c, _ := toFloat(raw)

	return c
}

// bundleCost reads the reserved cost key out of an attribute bundle;
// absent or non-numeric values read as zero.
func bundleCost(attrs map[string]any, attr string) float64 {
	if attrs == nil {
		return 0
	}
	raw, ok := attrs[CostKey(attr)]
	if !ok {
		return 0
	}
	c, _ := toFloat(raw)

	return c
}
