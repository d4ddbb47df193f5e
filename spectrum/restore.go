package spectrum

import "fmt"

// RestoreConfig holds frequency restoration settings.
type RestoreConfig struct {
	// DownSweep marks a capture acquired high-to-low. Its samples are
	// reversed so the restored axis still ascends.
	DownSweep bool
}

// RestoreOption mutates a RestoreConfig.
type RestoreOption func(*RestoreConfig)

// WithDownSweep marks the trace as swept from the upper band edge down.
func WithDownSweep() RestoreOption {
	return func(cfg *RestoreConfig) {
		cfg.DownSweep = true
	}
}

// Restore maps a baseline-corrected sweep trace onto its true frequency
// axis.
//
// The LO frequency marks the center of the swept band. With N samples,
// sample i sits at
//
//	freq[i] = lo - bandwidth/2 + i*bandwidth/(N-1)
//
// so the first and last samples land exactly on lo ± bandwidth/2. The
// intensity values are carried over unchanged.
func Restore(inten []float64, lo, bandwidth float64, opts ...RestoreOption) (Spectrum, error) {
	var cfg RestoreConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := len(inten)
	if n < 2 {
		return Spectrum{}, fmt.Errorf("%w: got %d", ErrShortTrace, n)
	}
	if bandwidth <= 0 {
		return Spectrum{}, fmt.Errorf("%w: got %g", ErrBandwidth, bandwidth)
	}

	start := lo - bandwidth/2
	step := bandwidth / float64(n-1)

	freq := make([]float64, n)
	for i := range freq {
		freq[i] = start + float64(i)*step
	}
	// Pin the last sample to the exact upper band edge.
	freq[n-1] = lo + bandwidth/2

	out := make([]float64, n)
	if cfg.DownSweep {
		for i, v := range inten {
			out[n-1-i] = v
		}
	} else {
		copy(out, inten)
	}

	return Spectrum{Freq: freq, Inten: out}, nil
}
