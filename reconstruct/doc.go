// Package reconstruct drives the full sweep reconstruction pipeline.
//
// A [Segment] describes one acquisition unit: the foreground and
// background capture files, the LO frequency and sweep bandwidth, and the
// baseline removal settings. [Process] turns one segment into a
// calibrated spectrum by running load, average, baseline removal, and
// frequency restoration in order. [Fullband] processes many segments
// concurrently and stitches the results into one continuous spectrum.
//
// Segment lists for fullband runs can be written down in a manifest file
// (YAML, TOML, or JSON) and loaded with [LoadManifest].
package reconstruct
