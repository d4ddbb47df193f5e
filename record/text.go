package record

import (
	"fmt"
	"strconv"
	"strings"
)

// sniffFormat decides between text and packed binary from the leading
// bytes. Delimited numeric records are plain printable ASCII; packed
// float arrays contain control or high bytes within the first few samples.
func sniffFormat(data []byte) Format {
	n := len(data)
	if n > 1024 {
		n = 1024
	}

	for _, b := range data[:n] {
		if b == '\t' || b == '\n' || b == '\r' {
			continue
		}
		if b < ' ' || b > '~' {
			return FormatFloat64
		}
	}

	return FormatText
}

func decodeText(data []byte, cfg Config) ([]float64, error) {
	var (
		out     []float64
		rowErr  error
		rowLine int
	)

	headerBudget := cfg.MaxHeaderLines

	for ln, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' || line[0] == '%' {
			continue
		}

		v, err := parseField(splitFields(line, cfg.Delimiter), cfg.Column)
		if err != nil {
			// Title and column-name rows parse like any other bad row, so
			// a limited number of them is skipped before data starts.
			if len(out) == 0 && headerBudget > 0 {
				headerBudget--
				rowErr, rowLine = err, ln+1
				continue
			}
			return nil, fmt.Errorf("row %d: %w", ln+1, err)
		}

		out = append(out, v)
	}

	if len(out) == 0 {
		// A file of nothing but skipped rows reports the last real parse
		// failure rather than a generic complaint.
		if rowErr != nil {
			return nil, fmt.Errorf("row %d: %w", rowLine, rowErr)
		}
		return nil, fmt.Errorf("%w: no numeric rows", ErrFormat)
	}

	return out, nil
}

func splitFields(line string, delim rune) []string {
	if delim != 0 {
		parts := strings.Split(line, string(delim))
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}

	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == '\t' || r == ' '
	})
}

func parseField(fields []string, col int) (float64, error) {
	if col >= len(fields) {
		return 0, fmt.Errorf("%w: want column %d, row has %d fields", ErrColumn, col, len(fields))
	}

	v, err := strconv.ParseFloat(fields[col], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFormat, fields[col])
	}

	return v, nil
}
