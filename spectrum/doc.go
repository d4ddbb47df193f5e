// Package spectrum restores frequency axes for sweep traces and stitches
// per-segment spectra into a continuous fullband spectrum.
//
// A raw sweep trace is indexed by sample number. [Restore] maps it onto
// the true frequency axis using the segment's LO frequency (the center of
// the swept band) and the declared sweep bandwidth. [Assemble] merges the
// restored segments of a fullband acquisition, averaging intensities where
// segments overlap and preserving gaps where coverage is missing.
//
// # Usage
//
//	seg, err := spectrum.Restore(trace, 96500, 60)
//	full, err := spectrum.Assemble([]spectrum.Spectrum{seg1, seg2})
//
// All spectra keep a strictly increasing frequency axis; [Spectrum.Validate]
// enforces it.
package spectrum
