package graph_test

import (
	"fmt"
	"os"

	"github.com/matzehuels/funkdigen/pkg/code"
	"github.com/matzehuels/funkdigen/pkg/graph"
)

func ExampleRender() {
	// A 2-cycle whose first vertex has one pendant child.
	g := graph.Render(code.Component{{2, 1}, {1}})
	for u, v := range g.Arcs() {
		fmt.Printf("%d -> %d\n", u, v)
	}
	fmt.Println(g.CycleVertices())
	// Output:
	// 0 -> 2
	// 1 -> 0
	// 2 -> 0
	// [true false true]
}

func ExampleWriteJSON() {
	g, _ := graph.FromFunction([]int{1, 1})
	_ = graph.WriteJSON(g, os.Stdout)
	// Output:
	// {
	//   "order": 2,
	//   "arcs": [
	//     [
	//       0,
	//       1
	//     ],
	//     [
	//       1,
	//       1
	//     ]
	//   ]
	// }
}
