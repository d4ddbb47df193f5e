package reconstruct

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cwbudde/algo-sweep/baseline"
)

// Errors returned by segment validation and manifest loading.
var (
	ErrNoForeground = errors.New("reconstruct: segment needs at least one foreground capture")
	ErrBandwidth    = errors.New("reconstruct: bandwidth must be positive")
	ErrManifest     = errors.New("reconstruct: unreadable segment manifest")
	ErrNoSegments   = errors.New("reconstruct: manifest defines no segments")
)

// Segment is the immutable configuration of one reconstruction unit: the
// captures of a single LO position together with everything needed to
// turn them into a calibrated spectrum slice. Segments are independent of
// each other and safe to process concurrently.
type Segment struct {
	// Foreground lists the capture files taken with the signal source on.
	// At least one is required; repeats are averaged.
	Foreground []string

	// Background lists the capture files taken with the source off. May
	// be empty, in which case no background is subtracted.
	Background []string

	// LO is the local oscillator frequency marking the band center.
	LO float64

	// Bandwidth is the swept width. The restored axis spans LO ± Bandwidth/2.
	Bandwidth float64

	// DownSweep marks the captures as swept from the upper band edge down.
	DownSweep bool

	// Delay is the detector response lag in samples, rolled out of the
	// difference trace before baseline removal.
	Delay int

	// Baseline selects the baseline removal strategy.
	Baseline baseline.Mode

	// Window is the boxcar baseline window width in samples. Zero means
	// the baseline package default.
	Window int

	// Knots is the spline baseline knot count. Zero means the default.
	Knots int

	// Degree is the polynomial baseline degree. Only consulted when
	// Baseline is baseline.ModePolynomial.
	Degree int

	// Label names the segment in errors and logs. Empty falls back to the
	// first foreground path.
	Label string
}

// Validate checks that the Segment parameters are usable before any file
// is touched.
func (s Segment) Validate() error {
	if len(s.Foreground) == 0 {
		return fmt.Errorf("segment %s: %w", s.label(), ErrNoForeground)
	}

	if s.Bandwidth <= 0 {
		return fmt.Errorf("segment %s: %w: got %g", s.label(), ErrBandwidth, s.Bandwidth)
	}

	return nil
}

// label returns the segment's display name.
func (s Segment) label() string {
	if s.Label != "" {
		return s.Label
	}
	if len(s.Foreground) > 0 {
		return filepath.Base(s.Foreground[0])
	}
	return "(unnamed)"
}

// baselineOptions translates the segment fields into baseline options,
// leaving zero values to the baseline defaults.
func (s Segment) baselineOptions() []baseline.Option {
	var opts []baseline.Option

	if s.Window > 0 {
		opts = append(opts, baseline.WithWindow(s.Window))
	}
	if s.Knots > 0 {
		opts = append(opts, baseline.WithKnots(s.Knots))
	}
	if s.Degree > 0 {
		opts = append(opts, baseline.WithDegree(s.Degree))
	}

	return opts
}
