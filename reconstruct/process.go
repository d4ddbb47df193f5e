package reconstruct

import (
	"fmt"

	"github.com/cwbudde/algo-sweep/average"
	"github.com/cwbudde/algo-sweep/baseline"
	"github.com/cwbudde/algo-sweep/record"
	"github.com/cwbudde/algo-sweep/spectrum"
)

// Process reconstructs one segment: load the captures, average the
// repeats, subtract the background, remove the baseline, and restore the
// frequency axis. Every failure carries the segment label.
func Process(seg Segment) (spectrum.Spectrum, error) {
	if err := seg.Validate(); err != nil {
		return spectrum.Spectrum{}, err
	}

	fg, err := record.LoadAll(seg.Foreground)
	if err != nil {
		return spectrum.Spectrum{}, seg.wrap("foreground", err)
	}

	var bg [][]float64
	if len(seg.Background) > 0 {
		bg, err = record.LoadAll(seg.Background)
		if err != nil {
			return spectrum.Spectrum{}, seg.wrap("background", err)
		}
	}

	diff, err := average.Difference(fg, bg)
	if err != nil {
		return spectrum.Spectrum{}, seg.wrap("average", err)
	}

	// Rolling commutes with averaging, so the lag is removed once from
	// the difference trace rather than from every capture.
	if seg.Delay != 0 {
		diff = average.Roll(diff, seg.Delay)
	}

	res, err := baseline.Remove(diff, seg.Baseline, seg.baselineOptions()...)
	if err != nil {
		return spectrum.Spectrum{}, seg.wrap("baseline", err)
	}

	var restoreOpts []spectrum.RestoreOption
	if seg.DownSweep {
		restoreOpts = append(restoreOpts, spectrum.WithDownSweep())
	}

	s, err := spectrum.Restore(res.Corrected, seg.LO, seg.Bandwidth, restoreOpts...)
	if err != nil {
		return spectrum.Spectrum{}, seg.wrap("restore", err)
	}

	return s, nil
}

func (s Segment) wrap(stage string, err error) error {
	return fmt.Errorf("segment %s: %s: %w", s.label(), stage, err)
}
