package spectrum

import "fmt"

// Derivative returns the first-difference spectrum: each output sample is
// the intensity change between two adjacent input samples, placed at
// their midpoint frequency. The result is one sample shorter than the
// input. Differencing suppresses any residual slowly varying baseline and
// sharpens line positions.
func Derivative(s Spectrum) (Spectrum, error) {
	if err := s.Validate(); err != nil {
		return Spectrum{}, err
	}
	if s.Len() < 2 {
		return Spectrum{}, fmt.Errorf("%w: got %d", ErrShortTrace, s.Len())
	}

	n := s.Len() - 1
	freq := make([]float64, n)
	inten := make([]float64, n)

	for i := 0; i < n; i++ {
		freq[i] = s.Freq[i] + (s.Freq[i+1]-s.Freq[i])/2
		inten[i] = s.Inten[i+1] - s.Inten[i]
	}

	return Spectrum{Freq: freq, Inten: inten}, nil
}
