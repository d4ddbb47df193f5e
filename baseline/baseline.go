package baseline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by baseline removal.
var (
	ErrEmptyInput = errors.New("baseline: empty trace")
	ErrMode       = errors.New("baseline: unknown baseline mode")
	ErrWindow     = errors.New("baseline: window must be a positive odd integer no longer than the trace")
	ErrKnots      = errors.New("baseline: spline needs at least 4 knots")
	ErrShortTrace = errors.New("baseline: trace too short for this baseline mode")
	ErrDegree     = errors.New("baseline: invalid polynomial degree")
)

// Mode selects the baseline removal strategy.
type Mode int

const (
	// ModeNone passes the trace through unchanged.
	ModeNone Mode = iota

	// ModeBoxcar subtracts the smoothed sliding-window minimum.
	ModeBoxcar

	// ModeSpline subtracts a natural cubic spline fitted through
	// minima-anchored knots.
	ModeSpline

	// ModePolynomial subtracts a least-squares polynomial over the
	// sample index.
	ModePolynomial

	// ModeSinusoid subtracts a fitted sine ripple.
	ModeSinusoid
)

// String returns the mode name as used on the command line.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeBoxcar:
		return "boxcar"
	case ModeSpline:
		return "spline"
	case ModePolynomial:
		return "polynomial"
	case ModeSinusoid:
		return "sinusoid"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode resolves a mode name as used on the command line or in a
// segment manifest.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "nobase":
		return ModeNone, nil
	case "boxcar":
		return ModeBoxcar, nil
	case "spline":
		return ModeSpline, nil
	case "polynomial", "poly":
		return ModePolynomial, nil
	case "sinusoid", "sine":
		return ModeSinusoid, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrMode, s)
	}
}

// Result holds a baseline-corrected trace and the estimate that was
// subtracted from it. Both have the length of the input trace.
type Result struct {
	Corrected []float64
	Baseline  []float64
}

// Config holds baseline removal settings.
type Config struct {
	// Window is the boxcar width in samples. Must be a positive odd
	// integer no longer than the trace.
	Window int

	// Knots is the number of minima-anchored knots for the spline mode.
	Knots int

	// Degree is the polynomial mode degree.
	Degree int

	// Period is the initial ripple period guess in samples for the
	// sinusoid mode. Zero guesses a quarter of the trace length.
	Period float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the baseline removal defaults.
func DefaultConfig() Config {
	return Config{
		Window: 25,
		Knots:  12,
		Degree: 1,
	}
}

// WithWindow sets the boxcar window width. The value is validated by
// Remove, not here, so a bad width surfaces as an error instead of being
// silently replaced.
func WithWindow(window int) Option {
	return func(cfg *Config) {
		cfg.Window = window
	}
}

// WithKnots sets the spline knot count.
func WithKnots(knots int) Option {
	return func(cfg *Config) {
		cfg.Knots = knots
	}
}

// WithDegree sets the polynomial degree.
func WithDegree(degree int) Option {
	return func(cfg *Config) {
		cfg.Degree = degree
	}
}

// WithPeriod sets the initial sinusoid period guess in samples.
func WithPeriod(period float64) Option {
	return func(cfg *Config) {
		cfg.Period = period
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

// Remove subtracts the baseline estimate chosen by mode from the trace.
// The corrected trace and the estimate always have the input length; the
// input itself is never modified.
func Remove(trace []float64, mode Mode, opts ...Option) (Result, error) {
	if len(trace) == 0 {
		return Result{}, ErrEmptyInput
	}

	cfg := ApplyOptions(opts...)

	switch mode {
	case ModeNone:
		corrected := make([]float64, len(trace))
		copy(corrected, trace)
		return Result{Corrected: corrected, Baseline: make([]float64, len(trace))}, nil
	case ModeBoxcar:
		return removeBoxcar(trace, cfg)
	case ModeSpline:
		return removeSpline(trace, cfg)
	case ModePolynomial:
		return removePolynomial(trace, cfg)
	case ModeSinusoid:
		return removeSinusoid(trace, cfg)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrMode, int(mode))
	}
}

// subtract returns trace - base without touching either input.
func subtract(trace, base []float64) Result {
	corrected := make([]float64, len(trace))
	vecmath.ScaleBlock(corrected, base, -1)
	vecmath.AddBlockInPlace(corrected, trace)
	return Result{Corrected: corrected, Baseline: base}
}
