package primitive

import (
	"errors"
	"fmt"
	"os"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// DefPath is the primitive definition file, relative to the working directory.
const DefPath = "assets/primitives/square.yaml"

// Metrics are the side length and per-frame step of the square in one space.
type Metrics struct {
	Side float32 `yaml:"side"`
	Step float32 `yaml:"step"`
}

// Def is the YAML definition of the square (assets/primitives/square.yaml).
type Def struct {
	Color  string  `yaml:"color"`
	Device Metrics `yaml:"device"`
	Screen Metrics `yaml:"screen"`
}

// DefaultDef returns the built-in definition: blue, side 1 stepping 0.01 in device space,
// side 50 stepping 3 px in screen space.
func DefaultDef() Def {
	return Def{
		Color:  "#0000ff",
		Device: Metrics{Side: 1, Step: 0.01},
		Screen: Metrics{Side: 50, Step: 3},
	}
}

// Metrics returns the metrics for space.
func (d Def) Metrics(space Space) Metrics {
	if space == Screen {
		return d.Screen
	}
	return d.Device
}

// StartColor parses the hex color of the definition.
func (d Def) StartColor() (Color, error) {
	c, err := colorful.Hex(d.Color)
	if err != nil {
		return Color{}, fmt.Errorf("primitive color %q: %w", d.Color, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

func (d Def) validate() error {
	for _, m := range []Metrics{d.Device, d.Screen} {
		if !(m.Side > 0) || math32.IsInf(m.Side, 0) {
			return fmt.Errorf("primitive side %v must be positive", m.Side)
		}
		if !(m.Step > 0) || math32.IsInf(m.Step, 0) {
			return fmt.Errorf("primitive step %v must be positive", m.Step)
		}
	}
	if _, err := d.StartColor(); err != nil {
		return err
	}
	return nil
}

// LoadDef reads the definition at path. Fields missing from the file keep their defaults;
// a missing file yields DefaultDef.
func LoadDef(path string) (Def, error) {
	d := DefaultDef()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return d, nil
		}
		return d, err
	}
	if err := yaml.Unmarshal(data, &d); err != nil {
		return DefaultDef(), fmt.Errorf("parse %s: %w", path, err)
	}
	if err := d.validate(); err != nil {
		return DefaultDef(), fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
