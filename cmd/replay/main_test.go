package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woozymasta/dzmeasure/internal/export"
)

const script = `[
  {"type": "select", "value": "area"},
  {"type": "drawstart", "coordinates": [[0, 0]]},
  {"type": "drawchange", "coordinates": [[0, 0], [2000, 0], [2000, 1250]]},
  {"type": "drawend", "coordinates": [[0, 0], [2000, 0], [2000, 1250], [0, 1250]]}
]`

func TestRunToStdout(t *testing.T) {
	var out bytes.Buffer
	opts := Options{
		ConfigFile: filepath.Join(t.TempDir(), "absent.yaml"),
		Format:     "json",
	}

	require.NoError(t, run(opts, strings.NewReader(script), &out))

	features, err := export.Parse(out.Bytes())
	require.NoError(t, err)
	require.Len(t, features, 1)
	assert.Equal(t, "2.5 km²", features[0].Properties["area"])
	assert.Equal(t, "6.5 km", features[0].Properties["perimeter"])
}

func TestRunToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "events.json")
	require.NoError(t, os.WriteFile(in, []byte(script), 0644))

	opts := Options{
		ConfigFile: filepath.Join(dir, "absent.yaml"),
		Input:      in,
		Output:     filepath.Join(dir, "data.geojson"),
		Format:     "json",
	}
	require.NoError(t, run(opts, strings.NewReader(""), &bytes.Buffer{}))

	data, err := os.ReadFile(opts.Output)
	require.NoError(t, err)
	features, err := export.Parse(data)
	require.NoError(t, err)
	assert.Len(t, features, 1)
}

func TestRunBadScript(t *testing.T) {
	opts := Options{
		ConfigFile: filepath.Join(t.TempDir(), "absent.yaml"),
		Format:     "json",
	}
	assert.Error(t, run(opts, strings.NewReader("{"), &bytes.Buffer{}))
}

func TestRunSpherical(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("projection: spherical\n"), 0644))

	// one degree of longitude along the equator
	lonlat := `[
  {"type": "drawstart", "coordinates": [[0, 0]]},
  {"type": "drawend", "coordinates": [[0, 0], [1, 0]]}
]`

	var out bytes.Buffer
	opts := Options{ConfigFile: cfgPath, Format: "json"}
	require.NoError(t, run(opts, strings.NewReader(lonlat), &out))

	features, err := export.Parse(out.Bytes())
	require.NoError(t, err)
	require.Len(t, features, 1)
	assert.Equal(t, "111.32 km", features[0].Properties["length"])
}
