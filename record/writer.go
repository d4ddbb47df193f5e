package record

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// WriteCSV writes a spectrum as CSV with a "freq,inten" header and one row
// per sample, formatted with 10 significant digits.
func WriteCSV(w io.Writer, freq, inten []float64) error {
	if len(freq) != len(inten) {
		return fmt.Errorf("%w: freq has %d samples, inten has %d",
			ErrDimensionMismatch, len(freq), len(inten))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"freq", "inten"}); err != nil {
		return fmt.Errorf("record: write header: %w", err)
	}

	row := make([]string, 2)
	for i := range freq {
		row[0] = strconv.FormatFloat(freq[i], 'g', 10, 64)
		row[1] = strconv.FormatFloat(inten[i], 'g', 10, 64)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("record: write row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("record: flush output: %w", err)
	}

	return nil
}

// WriteCSVFile writes the spectrum to path, replacing it atomically so a
// failed run leaves no partial output behind.
func WriteCSVFile(path string, freq, inten []float64) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("record: create temp output: %w", err)
	}
	tmpName := tmp.Name()

	if err := WriteCSV(tmp, freq, inten); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("record: close temp output: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("record: rename output: %w", err)
	}

	return nil
}
