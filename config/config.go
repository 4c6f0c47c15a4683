// Package config holds the settings of a sketching session, stored as TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
	"honnef.co/go/sketchpath"
	"honnef.co/go/sketchpath/motion"
	"honnef.co/go/sketchpath/view"
)

// ErrInvalid is returned by [Config.Validate].
var ErrInvalid = errors.New("config: invalid setting")

type Config struct {
	Scene    Scene    `toml:"scene"`
	Timeline Timeline `toml:"timeline"`
	View     View     `toml:"view"`
	Preview  Preview  `toml:"preview"`
}

// Scene describes the animation the reference path is sampled from.
type Scene struct {
	FrameStart int `toml:"frame_start"`
	FrameEnd   int `toml:"frame_end"`
	// Bone names the bone whose motion is the reference path.
	Bone string `toml:"bone"`
	// Resample, if positive, resamples the reference path to this many
	// evenly spaced points before retargeting.
	Resample int `toml:"resample"`
}

// Range returns the scene's frame range.
func (s Scene) Range() motion.FrameRange {
	return motion.FrameRange{Start: s.FrameStart, End: s.FrameEnd}
}

// Timeline controls which part of the reference path is shown around the
// current frame.
type Timeline struct {
	// Width is the number of frames shown on either side of the current
	// frame. Zero means half the scene's length.
	Width   int `toml:"width"`
	Current int `toml:"current"`
}

type View struct {
	Location    [3]float64 `toml:"location"`
	Rotation    [3]float64 `toml:"rotation"` // XYZ Euler angles, degrees
	Distance    float64    `toml:"distance"`
	Perspective bool       `toml:"perspective"`
	FOV         float64    `toml:"fov"` // degrees
	OrthoScale  float64    `toml:"ortho_scale"`
	Width       int        `toml:"width"`
	Height      int        `toml:"height"`
}

// View converts the settings into a [view.View].
func (v View) View() view.View {
	return view.View{
		Rotation:    Euler(v.Rotation[0], v.Rotation[1], v.Rotation[2]),
		Location:    sketchpath.Pt3(v.Location[0], v.Location[1], v.Location[2]),
		Distance:    v.Distance,
		Perspective: v.Perspective,
		FOV:         v.FOV * math.Pi / 180,
		OrthoScale:  v.OrthoScale,
		Width:       v.Width,
		Height:      v.Height,
	}
}

type Preview struct {
	LineWidth  float64 `toml:"line_width"`
	Background string  `toml:"background"`
	Reference  string  `toml:"reference"`
	Sketch     string  `toml:"sketch"`
	Result     string  `toml:"result"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Scene: Scene{
			FrameStart: 1,
			FrameEnd:   256,
		},
		Timeline: Timeline{
			Current: 1,
		},
		View: View{
			Location:    [3]float64{0, 0, 0},
			Rotation:    [3]float64{60, 0, 45},
			Distance:    15,
			Perspective: true,
			FOV:         50,
			OrthoScale:  10,
			Width:       800,
			Height:      600,
		},
		Preview: Preview{
			LineWidth:  2,
			Background: "#ffffff",
			Reference:  "#ff0000",
			Sketch:     "#000000",
			Result:     "#0060ff",
		},
	}
}

// Load reads the configuration in path on top of [Default]. Unknown keys are
// an error.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Save writes cfg to path.
func (cfg Config) Save(path string) error {
	b, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Validate checks the configuration for settings that cannot work.
func (cfg Config) Validate() error {
	if err := cfg.Scene.Range().Validate(); err != nil {
		return fmt.Errorf("scene: %w: %w", ErrInvalid, err)
	}
	if cfg.Scene.Resample < 0 {
		return fmt.Errorf("scene: resample %d: %w", cfg.Scene.Resample, ErrInvalid)
	}
	if cfg.Timeline.Width < 0 {
		return fmt.Errorf("timeline: width %d: %w", cfg.Timeline.Width, ErrInvalid)
	}
	if err := cfg.View.View().Validate(); err != nil {
		return fmt.Errorf("view: %w: %w", ErrInvalid, err)
	}
	if cfg.Preview.LineWidth <= 0 {
		return fmt.Errorf("preview: line width %g: %w", cfg.Preview.LineWidth, ErrInvalid)
	}
	for _, c := range []string{cfg.Preview.Background, cfg.Preview.Reference, cfg.Preview.Sketch, cfg.Preview.Result} {
		if _, err := ParseColor(c); err != nil {
			return fmt.Errorf("preview: %w: %w", ErrInvalid, err)
		}
	}
	return nil
}

// Euler returns the rotation about x, then y, then z, by angles given in
// degrees.
func Euler(x, y, z float64) r3.Rotation {
	const rad = math.Pi / 180
	var rx, ry, rz quat.Number
	rx.Imag, rx.Real = math.Sincos(x * rad / 2)
	ry.Jmag, ry.Real = math.Sincos(y * rad / 2)
	rz.Kmag, rz.Real = math.Sincos(z * rad / 2)
	return r3.Rotation(quat.Mul(rz, quat.Mul(ry, rx)))
}
