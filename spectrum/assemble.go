package spectrum

import (
	"fmt"
	"math"
	"sort"
)

// Assemble merges per-segment spectra into one fullband spectrum.
//
// Segments are ordered by their lowest frequency and merged into the
// union of all sample points. Where segments overlap, each retained
// sample averages its native intensity with the values linearly
// interpolated from every other segment covering that frequency. Sample
// points whose frequencies coincide collapse to a single point. Gaps
// between segments are preserved; the output axis is strictly increasing
// but need not be uniformly spaced.
//
// A single segment is returned unchanged.
func Assemble(segments []Spectrum) (Spectrum, error) {
	if len(segments) == 0 {
		return Spectrum{}, ErrNoSegments
	}

	for i, seg := range segments {
		if seg.Len() == 0 {
			return Spectrum{}, fmt.Errorf("segment %d: %w", i, ErrEmptySegment)
		}
		if err := seg.Validate(); err != nil {
			return Spectrum{}, fmt.Errorf("segment %d: %w", i, err)
		}
	}

	if len(segments) == 1 {
		return segments[0], nil
	}

	ordered := make([]Spectrum, len(segments))
	copy(ordered, segments)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Freq[0] < ordered[j].Freq[0]
	})

	type samplePoint struct {
		freq  float64
		inten float64
	}

	points := make([]samplePoint, 0, totalLen(ordered))

	for si, seg := range ordered {
		for i, f := range seg.Freq {
			sum := seg.Inten[i]
			count := 1

			for oi, other := range ordered {
				if oi == si {
					continue
				}
				lo, hi := other.Range()
				if f < lo || f > hi {
					continue
				}
				sum += valueAt(other, f)
				count++
			}

			points = append(points, samplePoint{freq: f, inten: sum / float64(count)})
		}
	}

	sort.Slice(points, func(i, j int) bool { return points[i].freq < points[j].freq })

	eps := mergeEps(ordered)

	freq := make([]float64, 0, len(points))
	inten := make([]float64, 0, len(points))

	for _, p := range points {
		// Coinciding grid points from different segments carry the same
		// averaged value; keep one sample per frequency.
		if k := len(freq) - 1; k >= 0 && p.freq-freq[k] <= eps {
			inten[k] = (inten[k] + p.inten) / 2
			continue
		}
		freq = append(freq, p.freq)
		inten = append(inten, p.inten)
	}

	out := Spectrum{Freq: freq, Inten: inten}
	if err := out.Validate(); err != nil {
		return Spectrum{}, err
	}

	return out, nil
}

func totalLen(segments []Spectrum) int {
	n := 0
	for _, seg := range segments {
		n += seg.Len()
	}
	return n
}

// valueAt linearly interpolates a segment at frequency f, which must lie
// within the segment's range.
func valueAt(s Spectrum, f float64) float64 {
	x := s.Freq

	j := sort.SearchFloat64s(x, f)
	if j < len(x) && x[j] == f {
		return s.Inten[j]
	}

	// x[j-1] < f < x[j]
	t := (f - x[j-1]) / (x[j] - x[j-1])
	return s.Inten[j-1] + t*(s.Inten[j]-s.Inten[j-1])
}

// mergeEps returns the duplicate-collapse tolerance: a billionth of the
// finest grid spacing across all segments.
func mergeEps(segments []Spectrum) float64 {
	minStep := math.Inf(1)

	for _, seg := range segments {
		for i := 1; i < len(seg.Freq); i++ {
			if step := seg.Freq[i] - seg.Freq[i-1]; step < minStep {
				minStep = step
			}
		}
	}

	if math.IsInf(minStep, 1) {
		return 0
	}

	return minStep * 1e-9
}
