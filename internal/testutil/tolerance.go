package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireNearZero fails t if any element's magnitude exceeds eps.
func RequireNearZero(t *testing.T, data []float64, eps float64) {
	t.Helper()
	for i, v := range data {
		if math.Abs(v) > eps {
			t.Fatalf("index %d: got %v, want 0 (eps %v)", i, v, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireStrictlyIncreasing fails t unless every element is greater than
// its predecessor. Frequency axes must satisfy this everywhere.
func RequireStrictlyIncreasing(t *testing.T, axis []float64) {
	t.Helper()
	for i := 1; i < len(axis); i++ {
		if !(axis[i] > axis[i-1]) {
			t.Fatalf("axis not strictly increasing: axis[%d]=%v, axis[%d]=%v",
				i-1, axis[i-1], i, axis[i])
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
