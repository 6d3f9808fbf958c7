package gstore

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dominikbraun/graph"

	"github.com/katalvlaran/lvlweight/weight"
)

// node is the vertex record stored in the underlying graph; keeping the
// attribute bundle here makes it mutable after AddVertex.
type node struct {
	name  string
	attrs map[string]any
}

// edge is a read handle over one stored edge; it satisfies weight.Edge.
type edge struct {
	from, to string
	attrs    map[string]any
}

func (e edge) From() string { return e.from }

func (e edge) To() string { return e.to }

func (e edge) Attributes() map[string]any { return e.attrs }

// Graph is a weight.Store backed by a directed dominikbraun/graph instance.
type Graph struct {
	g graph.Graph[string, *node]
}

var _ weight.Store = (*Graph)(nil)

// New creates an empty directed store.
func New() *Graph {
	return &Graph{
		g: graph.New(func(n *node) string { return n.name }, graph.Directed()),
	}
}

// AddVertex inserts the named vertex if absent; adding an existing vertex
// is a no-op.
func (s *Graph) AddVertex(name string) error {
	err := s.g.AddVertex(&node{name: name, attrs: make(map[string]any)})
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return fmt.Errorf("gstore: add vertex %q: %w", name, err)
	}

	return nil
}

// AddEdge creates a directed edge from→to carrying the given attribute
// bundle, creating missing endpoints on the fly. When the ordered pair
// already holds an edge, the new bundle is merged into it (new keys win).
func (s *Graph) AddEdge(from, to string, attrs map[string]any) error {
	if err := s.AddVertex(from); err != nil {
		return err
	}
	if err := s.AddVertex(to); err != nil {
		return err
	}

	bundle := make(map[string]any, len(attrs))
	for k, v := range attrs {
		bundle[k] = v
	}

	err := s.g.AddEdge(from, to, graph.EdgeData(bundle))
	if errors.Is(err, graph.ErrEdgeAlreadyExists) {
		existing, lookupErr := s.g.Edge(from, to)
		if lookupErr != nil {
			return fmt.Errorf("gstore: merge edge %s→%s: %w", from, to, lookupErr)
		}
		data, ok := existing.Properties.Data.(map[string]any)
		if !ok {
			return fmt.Errorf("gstore: edge %s→%s carries foreign data %T", from, to, existing.Properties.Data)
		}
		for k, v := range attrs {
			data[k] = v
		}

		return nil
	}
	if err != nil {
		return fmt.Errorf("gstore: add edge %s→%s: %w", from, to, err)
	}

	return nil
}

// VertexNames returns all vertex names sorted ascending.
func (s *Graph) VertexNames() []string {
	adjacency, err := s.g.AdjacencyMap()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(adjacency))
	for name := range adjacency {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Edges returns all edges as collaborator handles sorted by (from, to).
func (s *Graph) Edges() []weight.Edge {
	stored, err := s.g.Edges()
	if err != nil {
		return nil
	}
	out := make([]weight.Edge, 0, len(stored))
	for _, e := range stored {
		out = append(out, edge{from: e.Source, to: e.Target, attrs: dataBundle(e.Properties)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From() != out[j].From() {
			return out[i].From() < out[j].From()
		}

		return out[i].To() < out[j].To()
	})

	return out
}

// SetVertexAttribute sets one named attribute on an existing vertex.
func (s *Graph) SetVertexAttribute(name, key string, value any) error {
	n, err := s.g.Vertex(name)
	if err != nil {
		return fmt.Errorf("gstore: set attribute %q on vertex %q: %w", key, name, err)
	}
	n.attrs[key] = value

	return nil
}

// VertexAttribute reads one named attribute off a vertex. The second result
// is false when either the vertex or the attribute is absent.
func (s *Graph) VertexAttribute(name, key string) (any, bool) {
	n, err := s.g.Vertex(name)
	if err != nil {
		return nil, false
	}
	value, ok := n.attrs[key]

	return value, ok
}

// FindEdge returns the edge for the ordered pair, if any.
func (s *Graph) FindEdge(from, to string) (weight.Edge, bool) {
	stored, err := s.g.Edge(from, to)
	if err != nil {
		return nil, false
	}

	return edge{from: from, to: to, attrs: dataBundle(stored.Properties)}, true
}

// VertexCount returns the number of vertices.
func (s *Graph) VertexCount() int {
	order, err := s.g.Order()
	if err != nil {
		return 0
	}

	return order
}

// EdgeCount returns the number of edges.
func (s *Graph) EdgeCount() int {
	size, err := s.g.Size()
	if err != nil {
		return 0
	}

	return size
}

// dataBundle extracts the attribute bundle riding in EdgeProperties.Data.
func dataBundle(p graph.EdgeProperties) map[string]any {
	if m, ok := p.Data.(map[string]any); ok {
		return m
	}

	return nil
}
