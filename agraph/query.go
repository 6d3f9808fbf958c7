package agraph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvlweight/weight"
)

// Graph satisfies the weighting layer's collaborator contract.
var _ weight.Store = (*Graph)(nil)

// VertexNames returns all vertex names sorted ascending.
// Complexity: O(V log V).
func (g *Graph) VertexNames() []string {
	names := make([]string, 0, len(g.vertices))
	for name := range g.vertices {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Vertices returns all vertices sorted by name.
// Complexity: O(V log V).
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, 0, len(g.vertices))
	for _, name := range g.VertexNames() {
		out = append(out, g.vertices[name])
	}

	return out
}

// EdgeList returns all edges sorted by (from, to, id).
// Complexity: O(E log E).
func (g *Graph) EdgeList() []*Edge {
	out := make([]*Edge, 0, g.edgeCount)
	for _, buckets := range g.adjacency {
		for _, edges := range buckets {
			out = append(out, edges...)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].from != out[j].from {
			return out[i].from < out[j].from
		}
		if out[i].to != out[j].to {
			return out[i].to < out[j].to
		}

		return out[i].id < out[j].id
	})

	return out
}

// Edges returns all edges as collaborator handles, sorted by (from, to, id).
func (g *Graph) Edges() []weight.Edge {
	list := g.EdgeList()
	out := make([]weight.Edge, len(list))
	for i, e := range list {
		out[i] = e
	}

	return out
}

// EdgesFrom returns the outgoing edges of one vertex sorted by (to, id);
// nil when the vertex is absent.
// Complexity: O(d log d) where d is the out-degree.
func (g *Graph) EdgesFrom(name string) []*Edge {
	buckets, ok := g.adjacency[name]
	if !ok {
		return nil
	}
	out := make([]*Edge, 0, len(buckets))
	for _, edges := range buckets {
		out = append(out, edges...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].to != out[j].to {
			return out[i].to < out[j].to
		}

		return out[i].id < out[j].id
	})

	return out
}

// FindEdge returns the first edge for the ordered pair as a collaborator
// handle, if any.
func (g *Graph) FindEdge(from, to string) (weight.Edge, bool) {
	e, ok := g.EdgeBetween(from, to)
	if !ok {
		return nil, false
	}

	return e, true
}

// ASCII renders the adjacency structure as indented text, one vertex block
// per line group, attributes listed as sorted key=value pairs:
//
//	A
//	  -> B  [label=1 x-weight=1]
//
// Intended for debugging and examples, not as a stable wire format.
func (g *Graph) ASCII() string {
	var b strings.Builder
	for _, name := range g.VertexNames() {
		b.WriteString(name)
		b.WriteByte('\n')
		for _, e := range g.EdgesFrom(name) {
			fmt.Fprintf(&b, "  -> %s", e.to)
			if len(e.attrs) > 0 {
				b.WriteString("  [")
				for i, key := range sortedAttrKeys(e.attrs) {
					if i > 0 {
						b.WriteByte(' ')
					}
					fmt.Fprintf(&b, "%s=%v", key, e.attrs[key])
				}
				b.WriteByte(']')
			}
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func sortedAttrKeys(attrs map[string]any) []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
