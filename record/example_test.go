package record_test

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-sweep/record"
)

func ExampleDecode() {
	// A capture with a header row, read from the second column.
	data := []byte("freq,inten\n101.2,5\n101.3,6\n101.4,7\n")

	trace, err := record.Decode(data, record.WithColumn(1))
	if err != nil {
		panic(err)
	}

	fmt.Println(trace)

	// Output:
	// [5 6 7]
}

func ExampleWriteCSV() {
	freq := []float64{98, 99, 100}
	inten := []float64{0.5, 9, 0.25}

	if err := record.WriteCSV(os.Stdout, freq, inten); err != nil {
		panic(err)
	}

	// Output:
	// freq,inten
	// 98,0.5
	// 99,9
	// 100,0.25
}
