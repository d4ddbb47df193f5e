package baseline

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// removeSpline anchors knots at windowed minima and fits a natural cubic
// spline through them as the baseline estimate. Emission peaks are never
// knots, so the spline follows the drifting baseline underneath them.
//
// The strategy is isolated here so it can be replaced wholesale; only the
// Mode dispatch in Remove knows about it.
func removeSpline(trace []float64, cfg Config) (Result, error) {
	if cfg.Knots < 4 {
		return Result{}, fmt.Errorf("%w: got %d", ErrKnots, cfg.Knots)
	}

	n := len(trace)
	if n < 4 {
		return Result{}, fmt.Errorf("%w: spline needs at least 4 samples, got %d", ErrShortTrace, n)
	}

	knots := cfg.Knots
	if knots > n {
		knots = n
	}

	xs, ys := minimaKnots(trace, knots)

	var nc interp.NaturalCubic
	if err := nc.Fit(xs, ys); err != nil {
		return Result{}, fmt.Errorf("baseline: spline fit failed: %w", err)
	}

	base := make([]float64, n)
	for i := range base {
		base[i] = nc.Predict(float64(i))
	}

	return subtract(trace, base), nil
}

// minimaKnots picks baseline-representative samples: the minimum of each
// of k roughly equal chunks, plus both endpoints so the spline is never
// evaluated outside its fitted range.
func minimaKnots(trace []float64, k int) (xs, ys []float64) {
	n := len(trace)
	xs = make([]float64, 0, k+2)
	ys = make([]float64, 0, k+2)

	add := func(idx int) {
		x := float64(idx)
		if len(xs) > 0 && x <= xs[len(xs)-1] {
			return
		}
		xs = append(xs, x)
		ys = append(ys, trace[idx])
	}

	add(0)

	for c := 0; c < k; c++ {
		lo := c * n / k
		hi := (c + 1) * n / k
		if hi <= lo {
			continue
		}

		minIdx := lo
		for i := lo + 1; i < hi; i++ {
			if trace[i] < trace[minIdx] {
				minIdx = i
			}
		}
		add(minIdx)
	}

	add(n - 1)

	return xs, ys
}
