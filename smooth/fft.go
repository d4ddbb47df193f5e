package smooth

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// fftWindowSums computes sliding-window sums for wide windows with a
// single FFT convolution against a ones kernel, trimmed to valid mode.
func fftWindowSums(trace []float64, window int) ([]float64, error) {
	n := len(trace)
	fftSize := nextPowerOf2(n + window - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("smooth: failed to create FFT plan: %w", err)
	}

	tracePadded := make([]complex128, fftSize)
	for i, v := range trace {
		tracePadded[i] = complex(v, 0)
	}

	traceFreq := make([]complex128, fftSize)
	if err := plan.Forward(traceFreq, tracePadded); err != nil {
		return nil, fmt.Errorf("smooth: forward FFT failed: %w", err)
	}

	kernelPadded := make([]complex128, fftSize)
	for i := 0; i < window; i++ {
		kernelPadded[i] = 1
	}

	kernelFreq := make([]complex128, fftSize)
	if err := plan.Forward(kernelFreq, kernelPadded); err != nil {
		return nil, fmt.Errorf("smooth: forward FFT failed: %w", err)
	}

	for i := range traceFreq {
		traceFreq[i] *= kernelFreq[i]
	}

	resultTime := make([]complex128, fftSize)
	if err := plan.Inverse(resultTime, traceFreq); err != nil {
		return nil, fmt.Errorf("smooth: inverse FFT failed: %w", err)
	}

	// Valid-mode slice of the full linear convolution.
	out := make([]float64, n-window+1)
	for i := range out {
		out[i] = real(resultTime[window-1+i])
	}

	return out, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
