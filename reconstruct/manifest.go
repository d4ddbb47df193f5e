package reconstruct

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/cwbudde/algo-sweep/baseline"
)

// manifestSegment is the on-disk shape of one segment entry.
type manifestSegment struct {
	Label      string   `mapstructure:"label"`
	Foreground []string `mapstructure:"foreground"`
	Background []string `mapstructure:"background"`
	LO         float64  `mapstructure:"lo"`
	Bandwidth  float64  `mapstructure:"bandwidth"`
	DownSweep  bool     `mapstructure:"down_sweep"`
	Delay      int      `mapstructure:"delay"`
	Baseline   string   `mapstructure:"baseline"`
	Window     int      `mapstructure:"window"`
	Knots      int      `mapstructure:"knots"`
	Degree     int      `mapstructure:"degree"`
}

type manifestFile struct {
	Segments []manifestSegment `mapstructure:"segments"`
}

// LoadManifest reads a fullband segment manifest. The format (YAML, TOML,
// or JSON) follows the file extension. Capture paths in the manifest are
// resolved relative to the manifest's own directory, so a manifest can
// live next to its data. An absent baseline entry means boxcar; every
// segment is validated before the list is returned.
func LoadManifest(path string) ([]Segment, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifest, path, err)
	}

	var mf manifestFile
	if err := v.Unmarshal(&mf); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifest, path, err)
	}

	if len(mf.Segments) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSegments, path)
	}

	dir := filepath.Dir(path)
	segments := make([]Segment, 0, len(mf.Segments))

	for i, ms := range mf.Segments {
		mode := baseline.ModeBoxcar
		if ms.Baseline != "" {
			var err error
			mode, err = baseline.ParseMode(ms.Baseline)
			if err != nil {
				return nil, fmt.Errorf("%s: segment %d: %w", path, i, err)
			}
		}

		seg := Segment{
			Foreground: resolvePaths(dir, ms.Foreground),
			Background: resolvePaths(dir, ms.Background),
			LO:         ms.LO,
			Bandwidth:  ms.Bandwidth,
			DownSweep:  ms.DownSweep,
			Delay:      ms.Delay,
			Baseline:   mode,
			Window:     ms.Window,
			Knots:      ms.Knots,
			Degree:     ms.Degree,
			Label:      ms.Label,
		}
		if seg.Label == "" {
			seg.Label = fmt.Sprintf("segment %d", i)
		}

		if err := seg.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		segments = append(segments, seg)
	}

	return segments, nil
}

func resolvePaths(dir string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}

	out := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) {
			out[i] = p
			continue
		}
		out[i] = filepath.Join(dir, p)
	}
	return out
}
