package baseline

import (
	"fmt"

	"github.com/cwbudde/algo-sweep/smooth"
)

// removeBoxcar estimates the baseline as the slowly varying lower
// envelope of the trace: a sliding-window minimum, smoothed by a moving
// average of the same width so single deep noise samples do not dent the
// estimate. Narrow emission peaks never enter the envelope because some
// sample in their window sits on the baseline.
func removeBoxcar(trace []float64, cfg Config) (Result, error) {
	window := cfg.Window
	if window < 1 || window%2 == 0 || window > len(trace) {
		return Result{}, fmt.Errorf("%w: window %d, trace %d", ErrWindow, window, len(trace))
	}

	envelope := windowedMin(trace, window)

	base, err := smooth.MovingAverageSame(envelope, window)
	if err != nil {
		return Result{}, err
	}

	return subtract(trace, base), nil
}

// windowedMin returns the sliding minimum with the window clamped at the
// trace edges.
func windowedMin(trace []float64, window int) []float64 {
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

		m := trace[lo]
		for _, v := range trace[lo+1 : hi] {
			if v < m {
				m = v
			}
		}
		out[i] = m
	}

	return out
}
