package spectrum

import (
	"errors"
	"fmt"
)

// Errors returned by spectrum operations.
var (
	ErrBandwidth    = errors.New("spectrum: bandwidth must be positive")
	ErrShortTrace   = errors.New("spectrum: trace needs at least 2 samples")
	ErrNoSegments   = errors.New("spectrum: no segments to assemble")
	ErrEmptySegment = errors.New("spectrum: empty segment")
	ErrAxisLength   = errors.New("spectrum: freq/inten length mismatch")
	ErrAxisOrder    = errors.New("spectrum: frequency axis must be strictly increasing")
)

// Spectrum is a reconstructed slice of spectrum: a strictly increasing
// frequency axis and one intensity per frequency point. A Spectrum is
// never mutated once created; every operation returns a new one.
type Spectrum struct {
	Freq  []float64
	Inten []float64
}

// Len returns the number of frequency points.
func (s Spectrum) Len() int {
	return len(s.Freq)
}

// Range returns the lowest and highest frequency. An empty spectrum
// returns (0, 0).
func (s Spectrum) Range() (lo, hi float64) {
	if len(s.Freq) == 0 {
		return 0, 0
	}
	return s.Freq[0], s.Freq[len(s.Freq)-1]
}

// Validate checks the axis pairing and ordering invariants.
func (s Spectrum) Validate() error {
	if len(s.Freq) != len(s.Inten) {
		return fmt.Errorf("%w: freq has %d samples, inten has %d",
			ErrAxisLength, len(s.Freq), len(s.Inten))
	}

	for i := 1; i < len(s.Freq); i++ {
		if !(s.Freq[i] > s.Freq[i-1]) {
			return fmt.Errorf("%w: freq[%d]=%g, freq[%d]=%g",
				ErrAxisOrder, i-1, s.Freq[i-1], i, s.Freq[i])
		}
	}

	return nil
}
