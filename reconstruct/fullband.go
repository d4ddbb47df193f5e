package reconstruct

import (
	"runtime"
	"sync"

	"github.com/cwbudde/algo-sweep/spectrum"
)

// Config holds fullband processing settings.
type Config struct {
	// Workers bounds the number of segments processed concurrently.
	Workers int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the fullband defaults: one worker per CPU.
func DefaultConfig() Config {
	return Config{Workers: runtime.NumCPU()}
}

// WithWorkers bounds the number of concurrently processed segments.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// Fullband reconstructs every segment and stitches the results into one
// continuous spectrum.
//
// Segments share no state, so they are processed by a bounded pool of
// workers; the merge itself is single-threaded. When several segments
// fail, the error of the lowest-indexed one is returned so the reported
// failure does not depend on scheduling. A single segment short-circuits
// to [Process] with no merge step.
func Fullband(segments []Segment, opts ...Option) (spectrum.Spectrum, error) {
	if len(segments) == 0 {
		return spectrum.Spectrum{}, spectrum.ErrNoSegments
	}

	if len(segments) == 1 {
		return Process(segments[0])
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	workers := cfg.Workers
	if workers > len(segments) {
		workers = len(segments)
	}

	results := make([]spectrum.Spectrum, len(segments))
	errs := make([]error, len(segments))
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i], errs[i] = Process(segments[i])
			}
		}()
	}

	for i := range segments {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return spectrum.Spectrum{}, err
		}
	}

	return spectrum.Assemble(results)
}
