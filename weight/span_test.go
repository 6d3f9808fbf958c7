package weight_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlweight/weight"
)

// referenceMatrix is the shared dense fixture: accrued vertex weights
// 0→3, 1→4, 2→5, 3→0; edge costs 1..3 with symmetric duplicates.
var referenceMatrix = weight.Dense{
	{0, 1, 2, 0},
	{1, 0, 3, 0},
	{2, 3, 0, 0},
	{0, 0, 0, 0},
}

func TestVertexSpan_ReferenceMatrix(t *testing.T) {
	_, svc := newService(t)
	require.NoError(t, svc.Populate(referenceMatrix))

	lightest, heaviest := svc.VertexSpan()
	require.Equal(t, []string{"3"}, lightest)
	require.Equal(t, []string{"2"}, heaviest)
}

func TestVertexSpan_EmptyGraph(t *testing.T) {
	_, svc := newService(t)

	lightest, heaviest := svc.VertexSpan()
	require.Empty(t, lightest)
	require.Empty(t, heaviest)

	le, he := svc.EdgeSpan()
	require.Empty(t, le)
	require.Empty(t, he)
}

// TestSpan_SingleDistinctValue: with exactly one distinct cost, lightest
// and heaviest are identical and cover every element.
func TestSpan_SingleDistinctValue(t *testing.T) {
	_, svc := newService(t)
	require.NoError(t, svc.Populate(weight.Sparse{
		"A": {"B": 2},
		"B": {"C": 2},
		"C": {"A": 2},
	}))

	lightest, heaviest := svc.VertexSpan()
	require.Equal(t, []string{"A", "B", "C"}, lightest)
	require.Equal(t, lightest, heaviest)

	le, he := svc.EdgeSpan()
	want := []weight.Endpoints{{From: "A", To: "B"}, {From: "B", To: "C"}, {From: "C", To: "A"}}
	require.Equal(t, want, le)
	require.Equal(t, le, he)
}

// TestEdgeSpan_ReferenceMatrix: ties collect every extremal edge, ordered
// by the (from, to) composite key.
func TestEdgeSpan_ReferenceMatrix(t *testing.T) {
	_, svc := newService(t)
	require.NoError(t, svc.Populate(referenceMatrix))

	lightest, heaviest := svc.EdgeSpan()
	require.Equal(t, []weight.Endpoints{{From: "0", To: "1"}, {From: "1", To: "0"}}, lightest)
	require.Equal(t, []weight.Endpoints{{From: "1", To: "2"}, {From: "2", To: "1"}}, heaviest)
}

// TestSpan_CustomAttribute: spans follow the requested layer only.
func TestSpan_CustomAttribute(t *testing.T) {
	_, svc := newService(t)
	require.NoError(t, svc.Populate(weight.Sparse{"A": {"B": 0.4, "C": 0.6}, "B": {"A": 0.3}, "C": {}},
		weight.WithAttr("p")))

	lightest, heaviest := svc.VertexSpan(weight.WithAttr("p"))
	require.Equal(t, []string{"C"}, lightest)
	require.Equal(t, []string{"A"}, heaviest)

	// Under the default attribute no layer exists: every vertex reads 0.
	lightest, heaviest = svc.VertexSpan()
	require.Equal(t, []string{"A", "B", "C"}, lightest)
	require.Equal(t, lightest, heaviest)
}
