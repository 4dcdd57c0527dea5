package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woozymasta/dzmeasure/internal/geo"
	"github.com/woozymasta/dzmeasure/internal/geom"
	"github.com/woozymasta/dzmeasure/internal/tooltip"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, geo.ProjectionPlanar, cfg.Projection)
	assert.Equal(t, DefaultScale, cfg.Scale)
	assert.Equal(t, geom.Line, cfg.DefaultKind())
	assert.Equal(t, tooltip.DefaultOffsets, cfg.Offsets())
	assert.IsType(t, geo.Planar{}, cfg.Math())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
projection: spherical
scale: 2.5
default_selector: area
help_offset: [20, 5]
static_offset: [0, -10]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.IsType(t, geo.Spherical{}, cfg.Math())
	assert.Equal(t, 2.5, cfg.Scale)
	assert.Equal(t, geom.Polygon, cfg.DefaultKind())

	off := cfg.Offsets()
	assert.Equal(t, [2]int{20, 5}, off.Help)
	assert.Equal(t, tooltip.DefaultOffsets.Measure, off.Measure)
	assert.Equal(t, [2]int{0, -10}, off.Static)
}

func TestLoadRejectsInvalid(t *testing.T) {
	for name, body := range map[string]string{
		"projection": "projection: mercator\n",
		"selector":   "default_selector: volume\n",
		"offset":     "help_offset: [1, 2, 3]\n",
		"yaml":       "scale: [\n",
	} {
		_, err := Load(writeConfig(t, body))
		assert.Error(t, err, name)
	}
}
