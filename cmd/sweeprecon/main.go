// Command sweeprecon reconstructs a calibrated spectrum from raw fast-sweep
// captures.
//
// Usage:
//
//	sweeprecon [flags] inten.dat [inten2.dat ...]
//
// A single intensity file yields a single-sweep spectrum. Several intensity
// files (or a -manifest) form a fullband run: each file is one segment, the
// -lo calibration file must supply one LO per segment, and the segments are
// stitched into one continuous spectrum.
//
// Examples:
//
//	sweeprecon -lo 96500 -bdwth 60 -bg bg.dat inten.dat
//	sweeprecon -lo 96500 -bdwth 60 -spline inten.dat
//	sweeprecon -lo lofile.dat -bdwth 60 -down seg0.dat seg1.dat seg2.dat
//	sweeprecon -manifest fullband.yaml -o spectrum.csv
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-sweep/baseline"
	"github.com/cwbudde/algo-sweep/reconstruct"
	"github.com/cwbudde/algo-sweep/record"
	"github.com/cwbudde/algo-sweep/smooth"
	"github.com/cwbudde/algo-sweep/spectrum"
)

func main() {
	bg := flag.String("bg", "", "comma-separated background capture files")
	lo := flag.String("lo", "", "LO frequency or calibration file with one LO per segment")
	bdwth := flag.Float64("bdwth", 0, "sweep bandwidth per segment")
	nobase := flag.Bool("nobase", false, "disable baseline removal")
	spline := flag.Bool("spline", false, "spline baseline instead of boxcar")
	win := flag.Int("win", 0, "boxcar baseline window in samples (odd, default 25)")
	box := flag.Int("box", 0, "boxcar output smoothing window (normalized to odd, 0 = off)")
	delay := flag.Int("delay", 0, "detector response delay in samples")
	down := flag.Bool("down", false, "first sweep runs high-to-low (directions alternate)")
	diff := flag.Bool("diff", false, "emit the first-derivative spectrum")
	manifest := flag.String("manifest", "", "fullband segment manifest (YAML, TOML, or JSON)")
	out := flag.String("o", "", "output CSV path (default SPlot_<inten>.csv)")
	quiet := flag.Bool("q", false, "errors only")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sweeprecon [flags] inten.dat [inten2.dat ...]\n\n")
		fmt.Fprintf(os.Stderr, "Reconstructs a calibrated spectrum from raw fast-sweep captures.\n")
		fmt.Fprintf(os.Stderr, "Multiple intensity files or a -manifest select fullband stitching.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sweeprecon -lo 96500 -bdwth 60 -bg bg.dat inten.dat\n")
		fmt.Fprintf(os.Stderr, "  sweeprecon -lo lofile.dat -bdwth 60 seg0.dat seg1.dat seg2.dat\n")
		fmt.Fprintf(os.Stderr, "  sweeprecon -manifest fullband.yaml -o spectrum.csv\n")
	}
	flag.Parse()

	level := zerolog.InfoLevel
	if *quiet {
		level = zerolog.ErrorLevel
	}
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	if *nobase && *spline {
		fail(log, errors.New("-nobase and -spline are mutually exclusive"))
	}

	mode := baseline.ModeBoxcar
	switch {
	case *nobase:
		mode = baseline.ModeNone
	case *spline:
		mode = baseline.ModeSpline
	}

	var (
		segments []reconstruct.Segment
		err      error
	)

	if *manifest != "" {
		if flag.NArg() > 0 {
			fail(log, errors.New("intensity file arguments and -manifest are mutually exclusive"))
		}
		segments, err = reconstruct.LoadManifest(*manifest)
	} else {
		segments, err = buildSegments(flag.Args(), *bg, *lo, *bdwth, mode, *win, *delay, *down)
	}
	if err != nil {
		fail(log, err)
	}

	for _, seg := range segments {
		log.Debug().
			Str("segment", seg.Label).
			Float64("lo", seg.LO).
			Float64("bandwidth", seg.Bandwidth).
			Int("foreground", len(seg.Foreground)).
			Int("background", len(seg.Background)).
			Stringer("baseline", seg.Baseline).
			Msg("segment configured")
	}

	result, err := reconstruct.Fullband(segments)
	if err != nil {
		fail(log, err)
	}

	if *diff {
		result, err = spectrum.Derivative(result)
		if err != nil {
			fail(log, err)
		}
	}

	if w := smooth.NormalizeWindow(*box); *box != 0 && w > 1 {
		result, err = smooth.Boxcar(result, w)
		if err != nil {
			fail(log, err)
		}
		log.Debug().Int("window", w).Msg("output smoothed")
	}

	outPath := *out
	if outPath == "" {
		outPath = defaultOutput(*manifest, flag.Args())
	}

	if err := record.WriteCSVFile(outPath, result.Freq, result.Inten); err != nil {
		fail(log, err)
	}

	log.Info().Str("output", outPath).Int("rows", result.Len()).Msg("spectrum written")
}

// buildSegments turns command line arguments into one segment per
// intensity file. With one file, all background files are repeats of its
// background; with several, backgrounds pair up one per segment.
func buildSegments(intenFiles []string, bgArg, loArg string, bandwidth float64, mode baseline.Mode, window, delay int, down bool) ([]reconstruct.Segment, error) {
	if len(intenFiles) == 0 {
		return nil, errors.New("no intensity files given (-h for usage)")
	}
	if loArg == "" {
		return nil, errors.New("-lo is required")
	}
	if bandwidth <= 0 {
		return nil, fmt.Errorf("-bdwth is required and must be positive, got %g", bandwidth)
	}

	los, err := record.ResolveLO(loArg)
	if err != nil {
		return nil, err
	}
	if len(los) < len(intenFiles) {
		return nil, fmt.Errorf("%w: %d segments but %d LO values",
			record.ErrDimensionMismatch, len(intenFiles), len(los))
	}

	var bgFiles []string
	if bgArg != "" {
		bgFiles = strings.Split(bgArg, ",")
	}
	if len(intenFiles) > 1 && len(bgFiles) > 0 && len(bgFiles) != len(intenFiles) {
		return nil, fmt.Errorf("%w: %d segments but %d background files",
			record.ErrDimensionMismatch, len(intenFiles), len(bgFiles))
	}

	segments := make([]reconstruct.Segment, len(intenFiles))
	for i, inten := range intenFiles {
		seg := reconstruct.Segment{
			Foreground: []string{inten},
			LO:         los[i],
			Bandwidth:  bandwidth,
			Delay:      delay,
			Baseline:   mode,
			Window:     window,
			Label:      filepath.Base(inten),
		}

		if len(intenFiles) == 1 {
			seg.DownSweep = down
			seg.Background = bgFiles
		} else {
			// Fast sweeps run the LO up and down alternately; -down marks
			// the first segment as the descending one.
			seg.DownSweep = down == (i%2 == 0)
			if len(bgFiles) > 0 {
				seg.Background = bgFiles[i : i+1]
			}
		}

		segments[i] = seg
	}

	return segments, nil
}

// defaultOutput derives the original SPlot_<name>.csv output naming.
func defaultOutput(manifest string, intenFiles []string) string {
	src := manifest
	if src == "" && len(intenFiles) > 0 {
		src = intenFiles[0]
	}

	base := filepath.Base(src)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}

	return "SPlot_" + base + ".csv"
}

func fail(log zerolog.Logger, err error) {
	log.Error().Msg(err.Error())
	os.Exit(1)
}
