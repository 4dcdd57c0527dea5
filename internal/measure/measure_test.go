package measure

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/woozymasta/dzmeasure/internal/geom"
)

func TestFormatLength(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0 m"},
		{50, "50 m"},
		{12.3456, "12.35 m"},
		{100, "100 m"},
		{100.001, "0.1 km"},
		{1500, "1.5 km"},
		{123456, "123.46 km"},
		{math.NaN(), "0 m"},
		{math.Inf(1), "0 m"},
		{-5, "0 m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatLength(tt.in), "length %v", tt.in)
	}
}

func TestFormatArea(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0 m²"},
		{5000, "5000 m²"},
		{10000, "10000 m²"},
		{12345.678, "0.01 km²"},
		{2500000, "2.5 km²"},
		{math.NaN(), "0 m²"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatArea(tt.in), "area %v", tt.in)
	}
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 0.13, Round(0.125))
	assert.Equal(t, -0.13, Round(-0.125))
	assert.Equal(t, 1.5, Round(1.5))
	assert.Equal(t, 2.0, Round(1.999))
}

func TestMeasureLine(t *testing.T) {
	m := New(nil)

	got := m.Measure(geom.NewGeometry(geom.Line, []orb.Point{{0, 0}, {30, 40}}))
	assert.Equal(t, Measurement{Primary: "50 m"}, got)
	assert.Equal(t, "50 m", got.Text())

	got = m.Measure(geom.NewGeometry(geom.Line, []orb.Point{{0, 0}, {1000, 0}, {1000, 500}}))
	assert.Equal(t, "1.5 km", got.Primary)
	assert.Empty(t, got.Secondary)
}

func TestMeasurePolygon(t *testing.T) {
	m := New(nil)

	square := geom.NewGeometry(geom.Polygon, []orb.Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}})
	got := m.Measure(square)
	assert.Equal(t, Measurement{Primary: "10000 m²", Secondary: "0.4 km"}, got)
	assert.Equal(t, "10000 m²\n0.4 km", got.Text())

	field := geom.NewGeometry(geom.Polygon, []orb.Point{{0, 0}, {2000, 0}, {2000, 1250}, {0, 1250}, {0, 0}})
	got = m.Measure(field)
	assert.Equal(t, "2.5 km²", got.Primary)
	assert.Equal(t, "6.5 km", got.Secondary)

	// clockwise rings measure the same
	cw := geom.NewGeometry(geom.Polygon, []orb.Point{{0, 0}, {0, 100}, {100, 100}, {100, 0}})
	assert.Equal(t, "10000 m²", m.Measure(cw).Primary)
}

func TestMeasureDegenerate(t *testing.T) {
	m := New(nil)

	assert.Equal(t, Measurement{Primary: "0 m"}, m.Measure(geom.NewGeometry(geom.Line, nil)))
	assert.Equal(t, Measurement{Primary: "0 m"}, m.Measure(geom.NewGeometry(geom.Line, []orb.Point{{5, 5}})))
	assert.Equal(t, Measurement{Primary: "0 m²", Secondary: "0 m"}, m.Measure(geom.NewGeometry(geom.Polygon, nil)))
	assert.Equal(t, Measurement{Primary: "0 m²", Secondary: "0 m"}, m.Measure(geom.NewGeometry(geom.Polygon, []orb.Point{{1, 1}})))
}
