package weight_test

import (
	"fmt"

	"github.com/katalvlaran/lvlweight/agraph"
	"github.com/katalvlaran/lvlweight/weight"
)

// ExampleService_Populate ingests an adjacency matrix and reads back the
// accrued per-vertex weights. Zero entries create no edges, so vertex 3
// exists with weight 0.
func ExampleService_Populate() {
	store := agraph.NewGraph()
	svc, _ := weight.New(store)

	_ = svc.Populate(weight.Dense{
		{0, 1, 2, 0},
		{1, 0, 3, 0},
		{2, 3, 0, 0},
		{0, 0, 0, 0},
	})

	for _, name := range store.VertexNames() {
		c, _ := svc.Cost(name)
		fmt.Printf("vertex %s: %v\n", name, c)
	}
	// Output:
	// vertex 0: 3
	// vertex 1: 4
	// vertex 2: 5
	// vertex 3: 0
}

// ExampleService_VertexSpan locates the lightest and heaviest vertices of
// the populated graph.
func ExampleService_VertexSpan() {
	svc, _ := weight.New(agraph.NewGraph())
	_ = svc.Populate(weight.Dense{
		{0, 1, 2, 0},
		{1, 0, 3, 0},
		{2, 3, 0, 0},
		{0, 0, 0, 0},
	})

	lightest, heaviest := svc.VertexSpan()
	fmt.Println("lightest:", lightest)
	fmt.Println("heaviest:", heaviest)
	// Output:
	// lightest: [3]
	// heaviest: [2]
}

// ExampleService_PathCost sums costs along an explicit route; the missing
// B→C edge contributes zero.
func ExampleService_PathCost() {
	svc, _ := weight.New(agraph.NewGraph())
	_ = svc.Populate(weight.Sparse{"A": {"B": 2}})

	fmt.Println(svc.PathCost([]string{"A", "B", "C"}))
	// Output:
	// 2
}

// ExampleService_Cost layers an independent probability attribute onto the
// graph and strips the reserved attributes sub-map into vertex attributes.
func ExampleService_Cost() {
	store := agraph.NewGraph()
	svc, _ := weight.New(store)

	_ = svc.Populate(weight.Sparse{
		"A": {"B": 0.4, "C": 0.6, "attributes": map[string]any{"title": "Start"}},
		"B": {"A": 0.3},
		"C": {},
	}, weight.WithAttr("p"))

	a, _ := svc.Cost("A", weight.WithAttr("p"))
	title, _ := store.VertexAttribute("A", "title")
	fmt.Printf("A accrues %v, titled %v\n", a, title)
	// Output:
	// A accrues 1, titled Start
}
