package baseline

import (
	"fmt"
	"math"

	"github.com/maorshutman/lm"

	"github.com/cwbudde/algo-vecmath"
)

// removeSinusoid fits the ripple model
//
//	base(x) = a * sin(2*pi*x/T + phi)
//
// over the sample index by Levenberg-Marquardt and subtracts it. A short
// period corrects detector-response ringing; a long period corrects the
// overall wavy structure left after flattening the sweeps.
func removeSinusoid(trace []float64, cfg Config) (Result, error) {
	n := len(trace)
	if n < 4 {
		return Result{}, fmt.Errorf("%w: sinusoid fit needs at least 4 samples, got %d", ErrShortTrace, n)
	}

	period := cfg.Period
	if period <= 0 {
		period = float64(n) / 4
	}

	residual := func(dst, p []float64) {
		a, t, phi := p[0], p[1], p[2]
		for i := range dst {
			dst[i] = trace[i] - a*math.Sin(2*math.Pi*float64(i)/t+phi)
		}
	}

	numJac := &lm.NumJac{Func: residual}

	problem := lm.LMProblem{
		Dim:        3,
		Size:       n,
		Func:       residual,
		Jac:        numJac.Jac,
		InitParams: []float64{stddev(trace), period, 0},
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}

	results, err := lm.LM(problem, &lm.Settings{Iterations: 100, ObjectiveTol: 1e-16})
	if err != nil {
		return Result{}, fmt.Errorf("baseline: sinusoid fit failed: %w", err)
	}

	a, t, phi := results.X[0], results.X[1], results.X[2]

	base := make([]float64, n)
	for i := range base {
		base[i] = a * math.Sin(2*math.Pi*float64(i)/t+phi)
	}

	return subtract(trace, base), nil
}

func stddev(x []float64) float64 {
	mean := vecmath.Sum(x) / float64(len(x))

	var ss float64
	for _, v := range x {
		d := v - mean
		ss += d * d
	}

	return math.Sqrt(ss / float64(len(x)))
}
