package record

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name string
		data string
		opts []Option
		want []float64
	}{
		{
			name: "single column",
			data: "1.0\n2.5\n-3e2\n",
			want: []float64{1, 2.5, -300},
		},
		{
			name: "comma separated second column",
			data: "1.0,5.0\n2.0,6.0\n",
			opts: []Option{WithColumn(1)},
			want: []float64{5, 6},
		},
		{
			name: "semicolon separated",
			data: "1;2\n3;4\n",
			want: []float64{1, 3},
		},
		{
			name: "tab separated",
			data: "1\t9\n2\t8\n",
			opts: []Option{WithColumn(1)},
			want: []float64{9, 8},
		},
		{
			name: "whitespace separated",
			data: "  1   2 \n 3 4\n",
			want: []float64{1, 3},
		},
		{
			name: "blank lines ignored",
			data: "1\n\n\n2\n",
			want: []float64{1, 2},
		},
		{
			name: "comment lines ignored",
			data: "# comment\n1\n% note\n2\n",
			want: []float64{1, 2},
		},
		{
			name: "header rows skipped",
			data: "freq,inten\nMHz,a.u.\n1,5\n2,6\n",
			opts: []Option{WithColumn(1)},
			want: []float64{5, 6},
		},
		{
			name: "crlf line endings",
			data: "1\r\n2\r\n",
			want: []float64{1, 2},
		},
		{
			name: "forced delimiter",
			data: "1|5\n2|6\n",
			opts: []Option{WithDelimiter('|'), WithColumn(1)},
			want: []float64{5, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.data), tt.opts...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("length mismatch: got %d, want %d", len(got), len(tt.want))
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sample %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDecodeTextErrors(t *testing.T) {
	_, err := Decode([]byte("1\n2\nabc\n"))
	if !errors.Is(err, ErrFormat) {
		t.Errorf("bad token: expected ErrFormat, got %v", err)
	}

	_, err = Decode([]byte("1,2\n3,4\n"), WithColumn(5))
	if !errors.Is(err, ErrColumn) {
		t.Errorf("short row: expected ErrColumn, got %v", err)
	}

	_, err = Decode([]byte("# only comments\n\n"))
	if !errors.Is(err, ErrFormat) {
		t.Errorf("empty record: expected ErrFormat, got %v", err)
	}
}

func TestDecodeFloat64(t *testing.T) {
	want := []float64{0.5, -1.25, 3e8, 0}

	data := make([]byte, len(want)*float64Size)
	for i, v := range want {
		binary.LittleEndian.PutUint64(data[i*float64Size:], math.Float64bits(v))
	}

	got, err := Decode(data, WithFormat(FormatFloat64))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range got {
		if got[i] != want[i] {
			t.Errorf("sample %d: got %v, want %v", i, got[i], want[i])
		}
	}

	// Same bytes without a format hint must sniff as binary.
	sniffed, err := Decode(data)
	if err != nil {
		t.Fatalf("sniffed decode failed: %v", err)
	}
	for i := range sniffed {
		if sniffed[i] != want[i] {
			t.Errorf("sniffed sample %d: got %v, want %v", i, sniffed[i], want[i])
		}
	}
}

func TestDecodeFloat32(t *testing.T) {
	src := []float32{1.5, -2.25, 100}
	want := []float64{1.5, -2.25, 100}

	data := make([]byte, len(src)*float32Size)
	for i, v := range src {
		binary.LittleEndian.PutUint32(data[i*float32Size:], math.Float32bits(v))
	}

	got, err := Decode(data, WithFormat(FormatFloat32))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range got {
		if got[i] != want[i] {
			t.Errorf("sample %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecodeBinaryErrors(t *testing.T) {
	_, err := Decode(make([]byte, 10), WithFormat(FormatFloat64))
	if !errors.Is(err, ErrFormat) {
		t.Errorf("truncated float64: expected ErrFormat, got %v", err)
	}

	_, err = Decode(make([]byte, 6), WithFormat(FormatFloat32))
	if !errors.Is(err, ErrFormat) {
		t.Errorf("truncated float32: expected ErrFormat, got %v", err)
	}

	_, err = Decode(nil, WithFormat(FormatFloat64))
	if !errors.Is(err, ErrFormat) {
		t.Errorf("empty record: expected ErrFormat, got %v", err)
	}
}

func TestTextBinaryEquivalence(t *testing.T) {
	values := []float64{0.0012207, -7.5, 96500.25, 3.14159265358979}

	var sb strings.Builder
	for _, v := range values {
		fmt.Fprintf(&sb, "%.17g\n", v)
	}

	fromText, err := Decode([]byte(sb.String()))
	if err != nil {
		t.Fatalf("text decode failed: %v", err)
	}

	bin := make([]byte, len(values)*float64Size)
	for i, v := range values {
		binary.LittleEndian.PutUint64(bin[i*float64Size:], math.Float64bits(v))
	}

	fromBin, err := Decode(bin, WithFormat(FormatFloat64))
	if err != nil {
		t.Fatalf("binary decode failed: %v", err)
	}

	if len(fromText) != len(fromBin) {
		t.Fatalf("length mismatch: text %d, binary %d", len(fromText), len(fromBin))
	}

	for i := range fromText {
		if math.Abs(fromText[i]-fromBin[i]) > 1e-12 {
			t.Errorf("sample %d: text %v, binary %v", i, fromText[i], fromBin[i])
		}
	}
}

func TestSniffFormat(t *testing.T) {
	if got := sniffFormat([]byte("1.5, 2.5\n3.5, 4.5\n")); got != FormatText {
		t.Errorf("text data sniffed as %d", got)
	}

	bin := make([]byte, 16)
	binary.LittleEndian.PutUint64(bin, math.Float64bits(0.125))
	binary.LittleEndian.PutUint64(bin[8:], math.Float64bits(-42.5))
	if got := sniffFormat(bin); got != FormatFloat64 {
		t.Errorf("binary data sniffed as %d", got)
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()

	a := filepath.Join(dir, "a.dat")
	b := filepath.Join(dir, "b.dat")
	writeFile(t, a, "1\n2\n3\n")
	writeFile(t, b, "4\n5\n6\n")

	traces, err := LoadAll([]string{a, b})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(traces) != 2 {
		t.Fatalf("got %d traces, want 2", len(traces))
	}

	for i, trace := range traces {
		if len(trace) != 3 {
			t.Errorf("trace %d: got %d samples, want 3", i, len(trace))
		}
	}
}

func TestLoadAllLengthMismatch(t *testing.T) {
	dir := t.TempDir()

	a := filepath.Join(dir, "a.dat")
	c := filepath.Join(dir, "c.dat")
	writeFile(t, a, "1\n2\n3\n")
	writeFile(t, c, "1\n2\n")

	_, err := LoadAll([]string{a, c})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}

	// The offending file must be named.
	if !strings.Contains(err.Error(), "c.dat") {
		t.Errorf("error does not name the offending file: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.dat"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestResolveLO(t *testing.T) {
	los, err := ResolveLO("96500.5")
	if err != nil {
		t.Fatalf("literal LO failed: %v", err)
	}
	if len(los) != 1 || los[0] != 96500.5 {
		t.Errorf("literal LO: got %v, want [96500.5]", los)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "lo.txt")
	writeFile(t, path, "100\n200\n300\n")

	los, err = ResolveLO(path)
	if err != nil {
		t.Fatalf("calibration file failed: %v", err)
	}
	if len(los) != 3 || los[0] != 100 || los[2] != 300 {
		t.Errorf("calibration file: got %v", los)
	}

	if _, err := ResolveLO(filepath.Join(dir, "nope.txt")); err == nil {
		t.Error("expected error for missing calibration file")
	}
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
