// Package average collapses repeated sweep captures into a single trace.
//
// A fast-sweep acquisition records the same frequency window many times.
// Averaging the repeats improves the signal-to-noise ratio, and
// subtracting an averaged background capture removes source power
// variation across the sweep.
package average

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by averaging functions.
var (
	ErrEmptyInput     = errors.New("average: no traces")
	ErrLengthMismatch = errors.New("average: trace length mismatch")
)

// Mean returns the sample-wise arithmetic mean of the given traces.
// All traces must share one nonzero length.
func Mean(traces [][]float64) ([]float64, error) {
	if len(traces) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(traces[0])
	if n == 0 {
		return nil, fmt.Errorf("%w: trace 0 is empty", ErrEmptyInput)
	}

	for i, trace := range traces[1:] {
		if len(trace) != n {
			return nil, fmt.Errorf("%w: trace %d has %d samples, trace 0 has %d",
				ErrLengthMismatch, i+1, len(trace), n)
		}
	}

	out := make([]float64, n)
	copy(out, traces[0])

	for _, trace := range traces[1:] {
		vecmath.AddBlockInPlace(out, trace)
	}

	vecmath.ScaleBlockInPlace(out, 1/float64(len(traces)))

	return out, nil
}

// Difference returns mean(foreground) - mean(background), the
// background-corrected sweep trace. With no background traces the
// foreground mean is returned unchanged.
func Difference(foreground, background [][]float64) ([]float64, error) {
	fg, err := Mean(foreground)
	if err != nil {
		return nil, err
	}

	if len(background) == 0 {
		return fg, nil
	}

	bg, err := Mean(background)
	if err != nil {
		return nil, err
	}

	if len(bg) != len(fg) {
		return nil, fmt.Errorf("%w: background has %d samples, foreground has %d",
			ErrLengthMismatch, len(bg), len(fg))
	}

	neg := make([]float64, len(bg))
	vecmath.ScaleBlock(neg, bg, -1)
	vecmath.AddBlockInPlace(fg, neg)

	return fg, nil
}

// Roll compensates detector response lag by circularly shifting a trace
// left by delay samples. A negative delay shifts right. The input is not
// modified.
//
// Rolling commutes with averaging and subtraction, so the pipeline applies
// it once to the averaged difference trace instead of per capture.
func Roll(trace []float64, delay int) []float64 {
	n := len(trace)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	shift := ((delay % n) + n) % n
	copy(out, trace[shift:])
	copy(out[n-shift:], trace[:shift])

	return out
}
