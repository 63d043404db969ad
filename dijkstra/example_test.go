// Package dijkstra_test provides runnable examples for Shortest.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/emdist/dijkstra"
)

// ExampleShortest computes distances and a path on a small triangle.
func ExampleShortest() {
	g := dijkstra.Adjacency{
		{{To: 1, Weight: 1}, {To: 2, Weight: 5}},
		{{To: 2, Weight: 2}},
		nil,
	}

	dist, prev, err := dijkstra.Shortest(g, 0, dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)
	fmt.Println(dijkstra.PathTo(prev, 0, 2))
	// Output:
	// [0 1 3]
	// [0 1 2]
}
