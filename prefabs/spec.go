package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MarkerSpec describes the fixed visual of a non-tile object (mob or
// player marker).
type MarkerSpec struct {
	Name   string     `yaml:"name"`
	Color  *YAMLColor `yaml:"color"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
}

// RGBA returns the spec color, or the fallback when the spec omits one.
func (s *MarkerSpec) RGBA(fallback color.Color) color.Color {
	if s == nil || s.Color == nil || s.Color.Color == nil {
		return fallback
	}
	return s.Color.Color
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadMobSpec() (*MarkerSpec, error) {
	return LoadSpec[*MarkerSpec]("mob.yaml")
}

func LoadPlayerSpec() (*MarkerSpec, error) {
	return LoadSpec[*MarkerSpec]("player.yaml")
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
