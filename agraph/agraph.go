package agraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for agraph operations.
var (
	// ErrEmptyVertexName indicates that a vertex name was the empty string.
	ErrEmptyVertexName = errors.New("agraph: vertex name is empty")

	// ErrVertexNotFound indicates an attribute operation on a missing vertex.
	ErrVertexNotFound = errors.New("agraph: vertex not found")
)

// Vertex is a named node carrying an open attribute bundle.
type Vertex struct {
	name  string
	attrs map[string]any
}

// Name returns the vertex's unique name.
func (v *Vertex) Name() string { return v.name }

// Attributes returns the vertex's live attribute bundle.
func (v *Vertex) Attributes() map[string]any { return v.attrs }

// Edge is a directed connection carrying an open attribute bundle.
// It satisfies the weight.Edge interface.
type Edge struct {
	id    string
	from  string
	to    string
	attrs map[string]any
}

// ID returns the edge's catalog identifier ("e1", "e2", …).
func (e *Edge) ID() string { return e.id }

// From returns the source vertex name.
func (e *Edge) From() string { return e.from }

// To returns the destination vertex name.
func (e *Edge) To() string { return e.to }

// Attributes returns the edge's live attribute bundle.
func (e *Edge) Attributes() map[string]any { return e.attrs }

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithMultiEdges permits parallel edges between the same ordered pair.
// Without it, adding a duplicate pair merges attribute bundles instead.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is the in-memory attributed graph store.
//
// vertices is the name catalog; adjacency[from][to] holds the edges for an
// ordered pair in insertion order. nextEdgeID feeds the "e<N>" identifier
// sequence.
type Graph struct {
	allowMulti bool

	nextEdgeID uint64
	edgeCount  int
	vertices   map[string]*Vertex
	adjacency  map[string]map[string][]*Edge
}

// NewGraph creates an empty Graph. By default duplicate ordered pairs are
// merged; pass WithMultiEdges to keep them as parallel edges.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddVertex inserts the named vertex if absent (idempotent).
// Returns ErrEmptyVertexName for the empty string.
// Complexity: O(1).
func (g *Graph) AddVertex(name string) error {
	_, err := g.ensureVertex(name)

	return err
}

// ensureVertex returns the existing vertex or creates it.
func (g *Graph) ensureVertex(name string) (*Vertex, error) {
	if name == "" {
		return nil, ErrEmptyVertexName
	}
	if v, ok := g.vertices[name]; ok {
		return v, nil
	}

	v := &Vertex{name: name, attrs: make(map[string]any)}
	g.vertices[name] = v
	g.adjacency[name] = make(map[string][]*Edge)

	return v, nil
}

// AddEdge creates a directed edge from→to carrying the given attribute
// bundle. Missing endpoints are auto-created; self-loops are permitted.
//
// When the ordered pair already holds an edge and multi-edges are disabled,
// the new bundle is merged into the existing edge (new keys win), so
// repeated population layers attributes onto one edge.
// Complexity: O(1) amortized (plus bundle size for the copy/merge).
func (g *Graph) AddEdge(from, to string, attrs map[string]any) error {
	if _, err := g.ensureVertex(from); err != nil {
		return fmt.Errorf("agraph: add edge source: %w", err)
	}
	if _, err := g.ensureVertex(to); err != nil {
		return fmt.Errorf("agraph: add edge target: %w", err)
	}

	if !g.allowMulti {
		if existing := g.adjacency[from][to]; len(existing) > 0 {
			for k, v := range attrs {
				existing[0].attrs[k] = v
			}

			return nil
		}
	}

	g.nextEdgeID++
	e := &Edge{
		id:    fmt.Sprintf("e%d", g.nextEdgeID),
		from:  from,
		to:    to,
		attrs: make(map[string]any, len(attrs)),
	}
	for k, v := range attrs {
		e.attrs[k] = v
	}
	g.adjacency[from][to] = append(g.adjacency[from][to], e)
	g.edgeCount++

	return nil
}

// HasVertex reports whether the named vertex exists. Complexity: O(1).
func (g *Graph) HasVertex(name string) bool {
	_, ok := g.vertices[name]

	return ok
}

// HasEdge reports whether at least one edge exists for the ordered pair.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	return len(g.adjacency[from][to]) > 0
}

// Vertex returns the named vertex, if present.
func (g *Graph) Vertex(name string) (*Vertex, bool) {
	v, ok := g.vertices[name]

	return v, ok
}

// EdgeBetween returns the first edge for the ordered pair, if any. With
// multi-edges enabled "first" means first inserted.
func (g *Graph) EdgeBetween(from, to string) (*Edge, bool) {
	edges := g.adjacency[from][to]
	if len(edges) == 0 {
		return nil, false
	}

	return edges[0], true
}

// SetVertexAttribute sets one named attribute on an existing vertex.
// Returns ErrVertexNotFound when the vertex is absent.
// Complexity: O(1).
func (g *Graph) SetVertexAttribute(name, key string, value any) error {
	v, ok := g.vertices[name]
	if !ok {
		return fmt.Errorf("agraph: set attribute %q on vertex %q: %w", key, name, ErrVertexNotFound)
	}
	v.attrs[key] = value

	return nil
}

// VertexAttribute reads one named attribute off a vertex. The second result
// is false when either the vertex or the attribute is absent.
// Complexity: O(1).
func (g *Graph) VertexAttribute(name, key string) (any, bool) {
	v, ok := g.vertices[name]
	if !ok {
		return nil, false
	}
	value, ok := v.attrs[key]

	return value, ok
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Clear removes all vertices and edges, preserving configuration flags and
// the edge ID sequence.
func (g *Graph) Clear() {
	g.vertices = make(map[string]*Vertex)
	g.adjacency = make(map[string]map[string][]*Edge)
	g.edgeCount = 0
}
