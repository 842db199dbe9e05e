// Package config holds the dimension annotation style and its YAML loader.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidStyle is returned when a style fails validation
var ErrInvalidStyle = errors.New("invalid style")

// Color is an RGBA colour written as "#rrggbb" or "#rrggbbaa" in YAML
type Color color.RGBA

// Style holds every constant used to build and draw dimension annotations.
// Lengths are in world units.
type Style struct {
	SnapIncrement float64 `yaml:"snap_increment"`
	Unit          string  `yaml:"unit"`
	Precision     int     `yaml:"precision"`

	Gap         float64 `yaml:"gap"`
	Overshoot   float64 `yaml:"overshoot"`
	Margin      float64 `yaml:"margin"`
	ArrowLength float64 `yaml:"arrow_length"`
	ArrowWidth  float64 `yaml:"arrow_width"`
	LabelOffset float64 `yaml:"label_offset"`
	LabelHeight float64 `yaml:"label_height"`

	LineColor    Color   `yaml:"line_color"`
	PreviewColor Color   `yaml:"preview_color"`
	LabelColor   Color   `yaml:"label_color"`
	DashSize     float64 `yaml:"dash_size"`
	DashGap      float64 `yaml:"dash_gap"`
}

// Default returns the built-in style
func Default() Style {
	return Style{
		SnapIncrement: 0.5,
		Unit:          "m",
		Precision:     2,

		Gap:         0.2,
		Overshoot:   0.1,
		Margin:      0.14,
		ArrowLength: 0.12,
		ArrowWidth:  0.08,
		LabelOffset: 0.15,
		LabelHeight: 0.18,

		LineColor:    Color{R: 0x25, G: 0x63, B: 0xeb, A: 0xff},
		PreviewColor: Color{R: 0x94, G: 0xa3, B: 0xb8, A: 0xff},
		LabelColor:   Color{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff},
		DashSize:     0.2,
		DashGap:      0.1,
	}
}

// Load reads a YAML style file. Fields not set in the file keep their
// default values.
func Load(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	style := Default()
	if err := yaml.Unmarshal(data, &style); err != nil {
		return Style{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := style.Validate(); err != nil {
		return Style{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return style, nil
}

// Validate checks that lengths are usable
func (s Style) Validate() error {
	if s.SnapIncrement <= 0 {
		return fmt.Errorf("%w: snap_increment must be positive, got %v", ErrInvalidStyle, s.SnapIncrement)
	}
	if s.Precision < 0 || s.Precision > 6 {
		return fmt.Errorf("%w: precision must be within 0..6, got %d", ErrInvalidStyle, s.Precision)
	}

	lengths := []struct {
		name  string
		value float64
	}{
		{"gap", s.Gap},
		{"overshoot", s.Overshoot},
		{"margin", s.Margin},
		{"arrow_length", s.ArrowLength},
		{"arrow_width", s.ArrowWidth},
		{"label_offset", s.LabelOffset},
		{"label_height", s.LabelHeight},
		{"dash_size", s.DashSize},
		{"dash_gap", s.DashGap},
	}
	for _, l := range lengths {
		if l.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidStyle, l.name, l.value)
		}
	}
	return nil
}

// Overrides carries values set on the command line
type Overrides struct {
	SnapIncrement float64
	Unit          string
	Precision     int // negative means unset
}

// Resolve applies command line overrides. Zero values are ignored.
func (s *Style) Resolve(o Overrides) {
	if o.SnapIncrement > 0 {
		s.SnapIncrement = o.SnapIncrement
	}
	if o.Unit != "" {
		s.Unit = o.Unit
	}
	if o.Precision >= 0 {
		s.Precision = o.Precision
	}
}
