package record

import (
	"errors"
	"fmt"
	"os"
)

// Errors returned by record loading and writing functions.
var (
	ErrFormat            = errors.New("record: unrecognized data format")
	ErrDimensionMismatch = errors.New("record: trace length mismatch")
	ErrColumn            = errors.New("record: column index out of range")
)

// Format identifies the on-disk encoding of a capture record.
type Format int

const (
	// FormatAuto sniffs the encoding from the file content: records whose
	// leading bytes are printable ASCII are parsed as delimited text,
	// anything else as packed little-endian float64.
	FormatAuto Format = iota

	// FormatText parses delimited text, one sample row per line.
	FormatText

	// FormatFloat64 parses a packed array of little-endian float64 samples.
	FormatFloat64

	// FormatFloat32 parses a packed array of little-endian float32 samples.
	FormatFloat32
)

// Config holds record loading settings.
type Config struct {
	// Format selects the record encoding. FormatAuto sniffs per file.
	Format Format

	// Column is the zero-based column of a multi-column text record that
	// holds the intensity samples.
	Column int

	// MaxHeaderLines is the number of leading non-numeric text lines
	// tolerated before the first data row.
	MaxHeaderLines int

	// Delimiter forces a field separator for text records. Zero means any
	// of comma, semicolon, tab, or whitespace.
	Delimiter rune
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the loader defaults: sniffed format, first column,
// up to 8 header lines, any common delimiter.
func DefaultConfig() Config {
	return Config{
		Format:         FormatAuto,
		Column:         0,
		MaxHeaderLines: 8,
	}
}

// WithFormat forces the record encoding instead of sniffing it.
func WithFormat(f Format) Option {
	return func(cfg *Config) {
		cfg.Format = f
	}
}

// WithColumn selects the text column holding the intensity samples.
func WithColumn(col int) Option {
	return func(cfg *Config) {
		if col >= 0 {
			cfg.Column = col
		}
	}
}

// WithDelimiter forces a single field separator for text records.
func WithDelimiter(d rune) Option {
	return func(cfg *Config) {
		cfg.Delimiter = d
	}
}

// WithMaxHeaderLines sets how many leading non-numeric lines are skipped.
func WithMaxHeaderLines(n int) Option {
	return func(cfg *Config) {
		if n >= 0 {
			cfg.MaxHeaderLines = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Load reads one capture record from path into a trace.
func Load(path string, opts ...Option) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("record: read: %w", err)
	}

	trace, err := Decode(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return trace, nil
}

// Decode parses a capture record from raw bytes.
func Decode(data []byte, opts ...Option) ([]float64, error) {
	cfg := ApplyOptions(opts...)

	format := cfg.Format
	if format == FormatAuto {
		format = sniffFormat(data)
	}

	switch format {
	case FormatText:
		return decodeText(data, cfg)
	case FormatFloat64:
		trace, err := decodeFloat64(data)
		if err != nil {
			return nil, err
		}
		// Sniffed binary must decode to finite samples; misread text or a
		// truncated dump rarely does.
		if cfg.Format == FormatAuto && !allFinite(trace) {
			return nil, fmt.Errorf("%w: binary data decodes to non-finite samples", ErrFormat)
		}
		return trace, nil
	case FormatFloat32:
		return decodeFloat32(data)
	default:
		return nil, fmt.Errorf("%w: unknown format %d", ErrFormat, format)
	}
}

// LoadAll loads repeated capture records that must share one length.
func LoadAll(paths []string, opts ...Option) ([][]float64, error) {
	traces := make([][]float64, 0, len(paths))

	for i, path := range paths {
		trace, err := Load(path, opts...)
		if err != nil {
			return nil, err
		}

		if i > 0 && len(trace) != len(traces[0]) {
			return nil, fmt.Errorf("%w: %s has %d samples, %s has %d",
				ErrDimensionMismatch, path, len(trace), paths[0], len(traces[0]))
		}

		traces = append(traces, trace)
	}

	return traces, nil
}
