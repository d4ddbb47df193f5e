// Package smooth provides boxcar smoothing for sweep traces and
// reconstructed spectra.
//
// Smoothing trades frequency resolution for noise reduction. The moving
// average runs in "valid" mode: only output samples whose window lies
// fully inside the input are kept, so the result is window-1 samples
// shorter than the input and the frequency axis shrinks accordingly.
//
// Short windows are summed directly; wide windows go through a single
// FFT convolution against a ones kernel.
package smooth

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by smoothing functions.
var (
	ErrEmptyInput = errors.New("smooth: empty input")
	ErrWindow     = errors.New("smooth: window must be a positive odd integer no longer than the input")
)

// directThreshold is the window width above which the FFT path is used.
const directThreshold = 64

// NormalizeWindow coerces any integer into a usable odd window width: the
// magnitude is taken, zero becomes one, and even widths round up to the
// next odd value.
func NormalizeWindow(window int) int {
	if window < 0 {
		window = -window
	}
	if window == 0 {
		return 1
	}
	if window%2 == 0 {
		return window + 1
	}
	return window
}

func validateWindow(window, n int) error {
	if window < 1 || window%2 == 0 || window > n {
		return fmt.Errorf("%w: window %d, input %d", ErrWindow, window, n)
	}
	return nil
}

// MovingAverage smooths a trace with a boxcar kernel in valid mode.
// The result has length len(trace) - window + 1. The window must be a
// positive odd integer no longer than the trace; window 1 returns a copy.
func MovingAverage(trace []float64, window int) ([]float64, error) {
	if len(trace) == 0 {
		return nil, ErrEmptyInput
	}
	if err := validateWindow(window, len(trace)); err != nil {
		return nil, err
	}

	if window == 1 {
		out := make([]float64, len(trace))
		copy(out, trace)
		return out, nil
	}

	var (
		sums []float64
		err  error
	)

	if window <= directThreshold {
		sums = directWindowSums(trace, window)
	} else {
		sums, err = fftWindowSums(trace, window)
		if err != nil {
			return nil, err
		}
	}

	vecmath.ScaleBlockInPlace(sums, 1/float64(window))

	return sums, nil
}

// MovingAverageSame smooths a trace to its original length, shrinking the
// window where it would cross an edge. Used for baseline envelopes, which
// must stay index-aligned with the trace they estimate.
func MovingAverageSame(trace []float64, window int) ([]float64, error) {
	if len(trace) == 0 {
		return nil, ErrEmptyInput
	}
	if err := validateWindow(window, len(trace)); err != nil {
		return nil, err
	}

	n := len(trace)
	half := window / 2
	out := make([]float64, n)

	for i := range out {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half + 1
		if hi > n {
			hi = n
		}
		out[i] = vecmath.Sum(trace[lo:hi]) / float64(hi-lo)
	}

	return out, nil
}

// directWindowSums computes sliding-window sums by direct summation.
func directWindowSums(trace []float64, window int) []float64 {
	n := len(trace) - window + 1
	out := make([]float64, n)

	for i := 0; i < n; i++ {
		out[i] = vecmath.Sum(trace[i : i+window])
	}

	return out
}
