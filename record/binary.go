package record

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	float64Size = 8
	float32Size = 4
)

func decodeFloat64(data []byte) ([]float64, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty record", ErrFormat)
	}
	if len(data)%float64Size != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of float64 samples",
			ErrFormat, len(data))
	}

	out := make([]float64, len(data)/float64Size)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*float64Size:]))
	}

	return out, nil
}

func decodeFloat32(data []byte) ([]float64, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty record", ErrFormat)
	}
	if len(data)%float32Size != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of float32 samples",
			ErrFormat, len(data))
	}

	out := make([]float64, len(data)/float32Size)
	for i := range out {
		out[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(data[i*float32Size:])))
	}

	return out, nil
}

// allFinite reports whether every sample is a real number.
func allFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
