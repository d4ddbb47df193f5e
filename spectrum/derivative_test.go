package spectrum

import (
	"errors"
	"math"
	"testing"
)

func TestDerivative(t *testing.T) {
	s := Spectrum{
		Freq:  []float64{0, 1, 2, 3},
		Inten: []float64{0, 2, 6, 12},
	}

	got, err := Derivative(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantFreq := []float64{0.5, 1.5, 2.5}
	wantInten := []float64{2, 4, 6}

	if got.Len() != 3 {
		t.Fatalf("got %d samples, want 3", got.Len())
	}

	for i := range wantFreq {
		if math.Abs(got.Freq[i]-wantFreq[i]) > 1e-12 {
			t.Errorf("freq[%d]: got %v, want %v", i, got.Freq[i], wantFreq[i])
		}
		if math.Abs(got.Inten[i]-wantInten[i]) > 1e-12 {
			t.Errorf("inten[%d]: got %v, want %v", i, got.Inten[i], wantInten[i])
		}
	}
}

func TestDerivativeLinearIsConstant(t *testing.T) {
	n := 100
	s := Spectrum{Freq: make([]float64, n), Inten: make([]float64, n)}
	for i := 0; i < n; i++ {
		s.Freq[i] = 50 + 0.5*float64(i)
		s.Inten[i] = 3*s.Freq[i] - 7
	}

	got, err := Derivative(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, v := range got.Inten {
		if math.Abs(v-1.5) > 1e-9 {
			t.Fatalf("sample %d: got %v, want 1.5", i, v)
		}
	}
}

func TestDerivativeErrors(t *testing.T) {
	_, err := Derivative(Spectrum{Freq: []float64{1}, Inten: []float64{1}})
	if !errors.Is(err, ErrShortTrace) {
		t.Errorf("short input: got %v, want ErrShortTrace", err)
	}

	_, err = Derivative(Spectrum{Freq: []float64{1, 2}, Inten: []float64{1}})
	if !errors.Is(err, ErrAxisLength) {
		t.Errorf("mismatched input: got %v, want ErrAxisLength", err)
	}
}
