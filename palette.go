package losange

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Palette holds one RGB color per losange corner. Colors are theme data,
// not part of the program itself: the same quad program renders any
// palette that passes validation.
type Palette []Vertex

// DefaultPalette is the classic variant: red, green, blue, white corners.
func DefaultPalette() Palette {
	return Palette{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	}
}

// EmberPalette is the warm variant of the demo.
func EmberPalette() Palette {
	return Palette{
		{1, .2, 0},
		{1, .6, 0},
		{1, 1, .4},
		{.6, 0, .2},
	}
}

type paletteFile struct {
	Name   string      `yaml:"name"`
	Colors [][]float32 `yaml:"colors"`
}

// LoadPalette reads a palette from a YAML file of the form:
//
//	name: ember
//	colors:
//	  - [1, 0.2, 0]
//	  - [1, 0.6, 0]
//	  - [1, 1, 0.4]
//	  - [0.6, 0, 0.2]
func LoadPalette(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file paletteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("losange: palette %s: %w", path, err)
	}

	var palette Palette
	for _, color := range file.Colors {
		if len(color) != 3 {
			return nil, fmt.Errorf("losange: palette %s: %w", path, ErrBadChannel)
		}

		palette = append(palette, Vertex(color))
	}

	if err := palette.validate(); err != nil {
		return nil, fmt.Errorf("losange: palette %s: %w", path, err)
	}

	return palette, nil
}

func (palette Palette) validate() error {
	for _, color := range palette {
		if len(color) != 3 {
			return ErrBadChannel
		}

		for _, channel := range color {
			if channel < 0 || channel > 1 {
				return ErrBadChannel
			}
		}
	}

	return nil
}
