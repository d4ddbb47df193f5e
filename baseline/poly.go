package baseline

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// removePolynomial fits a least-squares polynomial over the sample index
// and subtracts it. Degree 1 removes the linear drift left between
// foreground and background captures taken minutes apart.
func removePolynomial(trace []float64, cfg Config) (Result, error) {
	n := len(trace)
	deg := cfg.Degree

	if deg < 0 || deg >= n {
		return Result{}, fmt.Errorf("%w: degree %d, trace %d", ErrDegree, deg, n)
	}

	base, err := polyfitEval(trace, deg)
	if err != nil {
		return Result{}, err
	}

	return subtract(trace, base), nil
}

// polyfitEval fits a degree-deg polynomial to the trace over x = 0..n-1
// and returns its value at every index. The design matrix uses x scaled
// to [0, 1] to keep the factorization well conditioned for long traces.
func polyfitEval(trace []float64, deg int) ([]float64, error) {
	n := len(trace)
	scale := float64(max(n-1, 1))

	a := mat.NewDense(n, deg+1, nil)
	for i := 0; i < n; i++ {
		x := float64(i) / scale
		v := 1.0
		for j := 0; j <= deg; j++ {
			a.Set(i, j, v)
			v *= x
		}
	}

	b := mat.NewVecDense(n, append([]float64(nil), trace...))

	var qr mat.QR
	qr.Factorize(a)

	coef := mat.NewVecDense(deg+1, nil)
	if err := qr.SolveVecTo(coef, false, b); err != nil {
		return nil, fmt.Errorf("baseline: polynomial fit failed: %w", err)
	}

	base := make([]float64, n)
	for i := range base {
		x := float64(i) / scale
		v := 1.0
		s := 0.0
		for j := 0; j <= deg; j++ {
			s += coef.AtVec(j) * v
			v *= x
		}
		base[i] = s
	}

	return base, nil
}
