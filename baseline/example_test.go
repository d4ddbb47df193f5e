package baseline_test

import (
	"fmt"

	"github.com/cwbudde/algo-sweep/baseline"
)

func ExampleRemove() {
	// A sweep trace with a constant 5-unit offset under a small peak.
	trace := []float64{5, 5, 5, 9, 5, 5, 5}

	res, err := baseline.Remove(trace, baseline.ModeBoxcar, baseline.WithWindow(3))
	if err != nil {
		panic(err)
	}

	fmt.Println(res.Corrected)

	// Output:
	// [0 0 0 4 0 0 0]
}

func ExampleRemove_passThrough() {
	trace := []float64{0, 1, 9, 1, 0}

	res, err := baseline.Remove(trace, baseline.ModeNone)
	if err != nil {
		panic(err)
	}

	fmt.Println(res.Corrected)

	// Output:
	// [0 1 9 1 0]
}
