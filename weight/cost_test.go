package weight_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlweight/agraph"
	"github.com/katalvlaran/lvlweight/weight"
)

// newService returns a fresh service over an empty native store.
func newService(t *testing.T) (*agraph.Graph, *weight.Service) {
	t.Helper()
	store := agraph.NewGraph()
	svc, err := weight.New(store)
	require.NoError(t, err)

	return store, svc
}

func TestNew_NilStore(t *testing.T) {
	_, err := weight.New(nil)
	require.ErrorIs(t, err, weight.ErrNilStore)
}

// TestCost_MissingAttributeReadsZero: an unknown attribute on a populated
// element, or a vertex never populated at all, reads as 0 without error.
func TestCost_MissingAttributeReadsZero(t *testing.T) {
	store, svc := newService(t)
	require.NoError(t, svc.Populate(weight.Sparse{"A": {"B": 1}}))

	c, err := svc.Cost("A", weight.WithAttr("nonexistent"))
	require.NoError(t, err)
	require.Equal(t, 0.0, c)

	e, ok := store.FindEdge("A", "B")
	require.True(t, ok)
	c, err = svc.Cost(e, weight.WithAttr("nonexistent"))
	require.NoError(t, err)
	require.Equal(t, 0.0, c)

	c, err = svc.Cost("no-such-vertex")
	require.NoError(t, err)
	require.Equal(t, 0.0, c)
}

// TestCost_InvalidRefs: nil, empty and foreign-typed references fail with
// ErrInvalidArgument.
func TestCost_InvalidRefs(t *testing.T) {
	_, svc := newService(t)

	for _, ref := range []any{nil, "", 42, struct{}{}, []string{"A"}} {
		_, err := svc.Cost(ref)
		require.ErrorIs(t, err, weight.ErrInvalidArgument, "ref %T(%v)", ref, ref)
	}
}

// TestPathCost_SkipsMissingEdges: a pair with no connecting edge adds
// exactly 0 and the walk continues.
func TestPathCost_SkipsMissingEdges(t *testing.T) {
	_, svc := newService(t)
	require.NoError(t, svc.Populate(weight.Sparse{"A": {"B": 2}}))

	require.Equal(t, 2.0, svc.PathCost([]string{"A", "B", "C"}))
	require.Equal(t, 2.0, svc.PathCost([]string{"X", "A", "B"}))
}

func TestPathCost_ShortSequences(t *testing.T) {
	_, svc := newService(t)
	require.NoError(t, svc.Populate(weight.Sparse{"A": {"B": 2}}))

	require.Equal(t, 0.0, svc.PathCost(nil))
	require.Equal(t, 0.0, svc.PathCost([]string{"A"}))
}

func TestPathCost_SumsAlongSequence(t *testing.T) {
	_, svc := newService(t)
	require.NoError(t, svc.Populate(weight.Dense{
		{0, 1, 2, 0},
		{1, 0, 3, 0},
		{2, 3, 0, 0},
		{0, 0, 0, 0},
	}))

	// 0→1 (1) + 1→2 (3) + 2→0 (2)
	require.Equal(t, 6.0, svc.PathCost([]string{"0", "1", "2", "0"}))
	// Direction matters: 3 has no outgoing edges.
	require.Equal(t, 0.0, svc.PathCost([]string{"3", "0"}))
}

// TestPathCost_CustomAttribute sums under the attribute it was populated
// with, independent of other layers.
func TestPathCost_CustomAttribute(t *testing.T) {
	_, svc := newService(t)
	require.NoError(t, svc.Populate(weight.Sparse{"A": {"B": 0.4}, "B": {"C": 0.6}}, weight.WithAttr("p")))
	require.NoError(t, svc.Populate(weight.Sparse{"A": {"B": 7}, "B": {"C": 7}}, weight.WithAttr("q")))

	require.Equal(t, 1.0, svc.PathCost([]string{"A", "B", "C"}, weight.WithAttr("p")))
	require.Equal(t, 14.0, svc.PathCost([]string{"A", "B", "C"}, weight.WithAttr("q")))
	require.Equal(t, 0.0, svc.PathCost([]string{"A", "B", "C"}))
}
