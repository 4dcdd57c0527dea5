// Package config handles configuration loading and shared data structures.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/woozymasta/dzmeasure/internal/geo"
	"github.com/woozymasta/dzmeasure/internal/geom"
	"github.com/woozymasta/dzmeasure/internal/tooltip"

	"gopkg.in/yaml.v3"
)

// DefaultScale is the number of map units (metres) one screen pixel covers.
const DefaultScale = 10.0

// Config represents the root configuration file structure.
type Config struct {
	// planar (game metres) or spherical (lon/lat)
	Projection      string  `yaml:"projection,omitempty" json:"projection"`
	DefaultSelector string  `yaml:"default_selector,omitempty" json:"default_selector"`
	Attribution     string  `yaml:"attribution,omitempty" json:"attribution,omitempty"`
	HelpOffset      []int   `yaml:"help_offset,omitempty" json:"-"`
	MeasureOffset   []int   `yaml:"measure_offset,omitempty" json:"-"`
	StaticOffset    []int   `yaml:"static_offset,omitempty" json:"-"`
	Scale           float64 `yaml:"scale,omitempty" json:"scale"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Normalize()
	return cfg
}

// Load reads and parses the YAML configuration file from the specified path.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Normalize(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &cfg, nil
}

// Normalize fills defaults and validates values.
func (c *Config) Normalize() error {
	switch c.Projection {
	case "":
		c.Projection = geo.ProjectionPlanar
	case geo.ProjectionPlanar, geo.ProjectionSpherical:
	default:
		return fmt.Errorf("unknown projection %q", c.Projection)
	}

	if c.DefaultSelector == "" {
		c.DefaultSelector = geom.SelectorLength
	}
	if _, err := geom.ParseSelector(c.DefaultSelector); err != nil {
		return err
	}

	if c.Scale <= 0 {
		c.Scale = DefaultScale
	}

	for name, off := range map[string][]int{
		"help_offset":    c.HelpOffset,
		"measure_offset": c.MeasureOffset,
		"static_offset":  c.StaticOffset,
	} {
		if off != nil && len(off) != 2 {
			return fmt.Errorf("%s needs 2 values, got %d", name, len(off))
		}
	}

	return nil
}

// Math returns the geometry math service for the configured projection.
func (c *Config) Math() geo.Math {
	return geo.ForProjection(c.Projection)
}

// DefaultKind returns the geometry kind selected when a session opens.
func (c *Config) DefaultKind() geom.Kind {
	kind, _ := geom.ParseSelector(c.DefaultSelector)
	return kind
}

// Offsets returns label offsets with configured overrides applied.
func (c *Config) Offsets() tooltip.Offsets {
	o := tooltip.DefaultOffsets
	if len(c.HelpOffset) == 2 {
		o.Help = [2]int{c.HelpOffset[0], c.HelpOffset[1]}
	}
	if len(c.MeasureOffset) == 2 {
		o.Measure = [2]int{c.MeasureOffset[0], c.MeasureOffset[1]}
	}
	if len(c.StaticOffset) == 2 {
		o.Static = [2]int{c.StaticOffset[0], c.StaticOffset[1]}
	}

	return o
}
