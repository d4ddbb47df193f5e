package record

import "strconv"

// LoadCalibration reads a frequency calibration file: one or more LO
// frequencies as delimited text, in acquisition order.
func LoadCalibration(path string, opts ...Option) ([]float64, error) {
	return Load(path, append(opts, WithFormat(FormatText))...)
}

// ResolveLO interprets a command line LO argument as either a literal
// frequency or the path of a calibration file holding one LO per segment.
func ResolveLO(arg string) ([]float64, error) {
	if v, err := strconv.ParseFloat(arg, 64); err == nil {
		return []float64{v}, nil
	}
	return LoadCalibration(arg)
}
