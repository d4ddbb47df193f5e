package testutil

import (
	"math"
	"math/rand"
)

// Flat generates a constant-valued trace.
func Flat(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// LinearDrift generates a trace ramping linearly from start to end,
// mimicking slow source power drift across a sweep.
func LinearDrift(start, end float64, length int) []float64 {
	out := make([]float64, length)
	if length == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(length-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// GaussianPeak generates a single emission line of the given amplitude
// centered at sample index center with the given width (standard
// deviation in samples), on a zero baseline.
func GaussianPeak(center, width, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		d := (float64(i) - center) / width
		out[i] = amplitude * math.Exp(-d*d/2)
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for
// reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Add sums traces of equal length into a new trace.
func Add(traces ...[]float64) []float64 {
	if len(traces) == 0 {
		return nil
	}
	out := make([]float64, len(traces[0]))
	copy(out, traces[0])
	for _, trace := range traces[1:] {
		for i, v := range trace {
			out[i] += v
		}
	}
	return out
}
