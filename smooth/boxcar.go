package smooth

import (
	"github.com/cwbudde/algo-sweep/spectrum"
)

// Boxcar smooths a reconstructed spectrum with a valid-mode moving
// average. The frequency axis is trimmed by window/2 samples on each side
// so that every remaining intensity is a full-window average.
func Boxcar(s spectrum.Spectrum, window int) (spectrum.Spectrum, error) {
	if err := s.Validate(); err != nil {
		return spectrum.Spectrum{}, err
	}

	inten, err := MovingAverage(s.Inten, window)
	if err != nil {
		return spectrum.Spectrum{}, err
	}

	half := window / 2
	freq := make([]float64, len(inten))
	copy(freq, s.Freq[half:half+len(inten)])

	return spectrum.Spectrum{Freq: freq, Inten: inten}, nil
}
