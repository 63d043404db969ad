package flow_test

import (
	"fmt"

	"github.com/katalvlaran/emdist/flow"
	"github.com/katalvlaran/emdist/matrix"
)

// ExampleTransport splits one supply over two demands.
func ExampleTransport() {
	cost, _ := matrix.NewFromRows([][]float64{
		{1, 3},
		{2, 1},
	})
	plan, err := flow.Transport([]float64{0.75, 0.25}, []float64{0.5, 0.5}, cost, flow.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("cost: %.3f\n", plan.Cost)
	fmt.Print(plan.Flow)
	// Output:
	// cost: 1.500
	// [0.5, 0.25]
	// [0, 0.25]
}
