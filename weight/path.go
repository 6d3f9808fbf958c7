package weight

// PathCost sums the cost attribute across the edges of an explicit vertex
// sequence.
//
// For each consecutive pair (path[i], path[i+1]) the connecting edge is
// looked up in the store; a pair with no edge — including pairs naming
// vertices that do not exist — contributes exactly 0 and the walk
// continues. A sequence of length 0 or 1 yields 0.
//
// Complexity: O(len(path)) edge lookups.
func (s *Service) PathCost(path []string, opts ...Option) float64 {
	cfg := buildOptions(opts)

	var total float64
	for i := 0; i+1 < len(path); i++ {
		e, ok := s.store.FindEdge(path[i], path[i+1])
		if !ok {
			continue
		}
		total += bundleCost(e.Attributes(), cfg.Attr)
	}

	return total
}
