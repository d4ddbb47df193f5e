package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-sweep/spectrum"
)

func ExampleRestore() {
	// A 5-sample sweep centered on 100 MHz covering 4 MHz.
	trace := []float64{0, 1, 9, 1, 0}

	s, err := spectrum.Restore(trace, 100, 4)
	if err != nil {
		panic(err)
	}

	fmt.Println(s.Freq)
	fmt.Println(s.Inten)

	// Output:
	// [98 99 100 101 102]
	// [0 1 9 1 0]
}

func ExampleAssemble() {
	a := spectrum.Spectrum{Freq: []float64{0, 1, 2}, Inten: []float64{1, 1, 1}}
	b := spectrum.Spectrum{Freq: []float64{2, 3, 4}, Inten: []float64{3, 3, 3}}

	full, err := spectrum.Assemble([]spectrum.Spectrum{a, b})
	if err != nil {
		panic(err)
	}

	fmt.Println(full.Freq)
	fmt.Println(full.Inten)

	// Output:
	// [0 1 2 3 4]
	// [1 1 2 3 3]
}
