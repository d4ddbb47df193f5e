package spectrum

import (
	"errors"
	"math"
	"testing"
)

func TestRestore(t *testing.T) {
	trace := []float64{0, 1, 9, 1, 0}

	s, err := Restore(trace, 100, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantFreq := []float64{98, 99, 100, 101, 102}
	for i := range wantFreq {
		if math.Abs(s.Freq[i]-wantFreq[i]) > 1e-12 {
			t.Errorf("freq[%d]: got %v, want %v", i, s.Freq[i], wantFreq[i])
		}
	}

	for i := range trace {
		if s.Inten[i] != trace[i] {
			t.Errorf("inten[%d]: got %v, want %v", i, s.Inten[i], trace[i])
		}
	}
}

func TestRestoreAxisProperties(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		lo        float64
		bandwidth float64
	}{
		{"two samples", 2, 10, 1},
		{"five samples", 5, 96500, 60},
		{"long trace", 4097, 203400, 120},
		{"negative band edge", 3, 0.25, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trace := make([]float64, tt.n)

			s, err := Restore(trace, tt.lo, tt.bandwidth)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if s.Len() != tt.n {
				t.Fatalf("got %d samples, want %d", s.Len(), tt.n)
			}

			if err := s.Validate(); err != nil {
				t.Fatalf("restored axis invalid: %v", err)
			}

			if s.Freq[0] != tt.lo-tt.bandwidth/2 {
				t.Errorf("lower edge: got %v, want %v", s.Freq[0], tt.lo-tt.bandwidth/2)
			}
			if s.Freq[tt.n-1] != tt.lo+tt.bandwidth/2 {
				t.Errorf("upper edge: got %v, want %v", s.Freq[tt.n-1], tt.lo+tt.bandwidth/2)
			}

			wantStep := tt.bandwidth / float64(tt.n-1)
			for i := 1; i < tt.n; i++ {
				step := s.Freq[i] - s.Freq[i-1]
				if math.Abs(step-wantStep) > 1e-9*wantStep {
					t.Fatalf("step at %d: got %v, want %v", i, step, wantStep)
				}
			}
		})
	}
}

func TestRestoreDownSweep(t *testing.T) {
	trace := []float64{1, 2, 3, 4}

	s, err := Restore(trace, 50, 3, WithDownSweep())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Validate(); err != nil {
		t.Fatalf("axis invalid: %v", err)
	}

	// The first acquired sample sat at the upper band edge.
	want := []float64{4, 3, 2, 1}
	for i := range want {
		if s.Inten[i] != want[i] {
			t.Errorf("inten[%d]: got %v, want %v", i, s.Inten[i], want[i])
		}
	}
}

func TestRestoreErrors(t *testing.T) {
	tests := []struct {
		name      string
		trace     []float64
		bandwidth float64
		wantErr   error
	}{
		{"empty trace", nil, 10, ErrShortTrace},
		{"one sample", []float64{1}, 10, ErrShortTrace},
		{"zero bandwidth", []float64{1, 2}, 0, ErrBandwidth},
		{"negative bandwidth", []float64{1, 2}, -5, ErrBandwidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Restore(tt.trace, 100, tt.bandwidth)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}
