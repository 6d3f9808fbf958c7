// Package weight defines core types, sentinel errors, functional options,
// and the collaborator Store contract for the weighting layer.
package weight

import (
	"errors"
)

// Sentinel errors returned by the weighting layer.
var (
	// ErrNilStore indicates that New was called without a collaborator store.
	ErrNilStore = errors.New("weight: store is nil")

	// ErrUnsupportedInput indicates that Populate received data that is
	// neither a dense row sequence nor a sparse key mapping. The failed call
	// performs no mutation.
	ErrUnsupportedInput = errors.New("weight: unsupported input kind")

	// ErrInvalidArgument indicates that Cost received a nil, empty, or
	// foreign-typed vertex/edge reference.
	ErrInvalidArgument = errors.New("weight: vertex or edge reference required")
)

const (
	// DefaultAttr is the attribute name used when none is supplied.
	DefaultAttr = "weight"

	// AttributesKey is the reserved key inside a sparse NeighborSpec whose
	// sub-map is applied as vertex display attributes instead of edges.
	AttributesKey = "attributes"

	// LabelKey is the display-label key written onto every populated edge.
	LabelKey = "label"

	// costPrefix namespaces cost values inside an element's open attribute
	// bundle so they never collide with display attributes.
	costPrefix = "x-"
)

// CostKey returns the reserved attribute key under which the numeric cost
// for attr is stored on a vertex or edge bundle, e.g. "x-weight".
func CostKey(attr string) string {
	return costPrefix + attr
}

// Dense is the adjacency-matrix input shape: row i column j holds the weight
// of the edge i→j. Zero entries mean "no edge" and are skipped.
type Dense [][]float64

// NeighborSpec maps neighbor vertex names to numeric weights. Values may be
// any Go numeric kind. The reserved AttributesKey entry, when present, must
// hold a map[string]any of vertex display attributes and produces no edge.
type NeighborSpec map[string]any

// Sparse is the key-mapping input shape: vertex name → NeighborSpec.
// Unlike Dense, a weight of exactly zero still creates an edge.
type Sparse map[string]NeighborSpec

// Endpoints identifies a directed edge by its ordered vertex-name pair.
type Endpoints struct {
	From string
	To   string
}

// Edge is the collaborator's handle to a directed edge and its open
// attribute bundle.
type Edge interface {
	// From returns the source vertex name.
	From() string
	// To returns the destination vertex name.
	To() string
	// Attributes returns the edge's live attribute bundle.
	Attributes() map[string]any
}

// Store is the narrow surface the weighting layer requires from the
// underlying attributed graph. Both agraph.Graph and gstore.Graph satisfy
// it; any other attributed graph can be adapted the same way.
//
// Implementations must make AddVertex idempotent by name and must let
// AddEdge auto-create missing endpoints. Enumerations should be
// deterministic (sorted) so that span and example output is reproducible.
type Store interface {
	// AddVertex inserts the named vertex if absent; adding an existing
	// vertex is a no-op.
	AddVertex(name string) error

	// AddEdge creates a directed edge from→to carrying the given attribute
	// bundle, creating missing endpoints on the fly.
	AddEdge(from, to string, attrs map[string]any) error

	// VertexNames enumerates all vertex names, sorted ascending.
	VertexNames() []string

	// Edges enumerates all edges.
	Edges() []Edge

	// SetVertexAttribute sets one named attribute on an existing vertex.
	SetVertexAttribute(name, key string, value any) error

	// VertexAttribute reads one named attribute off a vertex; the second
	// result is false when the vertex or the attribute is absent.
	VertexAttribute(name, key string) (any, bool)

	// FindEdge returns the edge between the ordered pair, if any.
	FindEdge(from, to string) (Edge, bool)
}

// Options configures a single Populate or query call.
//
// Attr        – cost attribute name; DefaultAttr when left empty.
// LabelFormat – optional fmt verb (e.g. "%.2f") applied to each edge weight
// to render its display label; the raw numeric value is used when empty.
type Options struct {
	Attr        string
	LabelFormat string
}

// Option is a functional option applied to Options.
type Option func(*Options)

// WithAttr selects the cost attribute name for a call. An empty name keeps
// the default ("weight").
func WithAttr(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Attr = name
		}
	}
}

// WithLabelFormat sets the fmt verb used to render edge display labels
// during Populate, e.g. WithLabelFormat("%.2f") turns 1.5 into "1.50".
func WithLabelFormat(format string) Option {
	return func(o *Options) {
		o.LabelFormat = format
	}
}

// DefaultOptions returns the Options used when no functional options are
// supplied: the "weight" attribute and raw (unformatted) edge labels.
func DefaultOptions() Options {
	return Options{Attr: DefaultAttr}
}

// Service is the weighting layer over one collaborator store. It wraps the
// store by composition and exposes only the populate/cost/span/path
// operations; the store's own API stays available to the caller for direct
// topology work.
type Service struct {
	store Store
}

// New wraps the given collaborator store. Returns ErrNilStore when store is
// nil.
func New(store Store) (*Service, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	return &Service{store: store}, nil
}

// Store returns the wrapped collaborator store.
func (s *Service) Store() Store {
	return s.store
}

// buildOptions folds functional options over the defaults.
func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg
}
