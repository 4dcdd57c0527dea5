// Package measure turns sketched geometries into display strings.
package measure

import (
	"math"
	"strconv"

	"github.com/woozymasta/dzmeasure/internal/geo"
	"github.com/woozymasta/dzmeasure/internal/geom"
)

// Unit thresholds: lengths above KilometreThreshold and areas above
// SquareKilometreThreshold switch to the larger unit.
const (
	KilometreThreshold       = 100.0
	SquareKilometreThreshold = 10000.0
)

// Unit suffixes.
const (
	Metres           = " m"
	Kilometres       = " km"
	SquareMetres     = " m²"
	SquareKilometres = " km²"
)

// Measurement is the formatted result for one geometry.
// Secondary is empty for lines and holds the perimeter for polygons.
type Measurement struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary,omitempty"`
}

// Text joins both values with a line break.
func (m Measurement) Text() string {
	if m.Secondary == "" {
		return m.Primary
	}

	return m.Primary + "\n" + m.Secondary
}

// Measurer formats geometries using a math service.
type Measurer struct {
	math geo.Math
}

// New returns a Measurer. A nil service defaults to planar math.
func New(m geo.Math) *Measurer {
	if m == nil {
		m = geo.Planar{}
	}

	return &Measurer{math: m}
}

// Math returns the underlying math service.
func (m *Measurer) Math() geo.Math { return m.math }

// Measure formats the length of a line, or the area and perimeter of a polygon.
func (m *Measurer) Measure(g geom.Geometry) Measurement {
	og := g.Orb()

	switch g.Kind() {
	case geom.Line:
		return Measurement{Primary: FormatLength(m.math.Length(og))}
	case geom.Polygon:
		return Measurement{
			Primary:   FormatArea(m.math.Area(og)),
			Secondary: FormatLength(m.math.Length(og)),
		}
	}

	return Measurement{}
}

// FormatLength renders a length in metres, or kilometres above the threshold.
func FormatLength(length float64) string {
	length = sanitize(length)
	if length > KilometreThreshold {
		return formatNumber(Round(length/1000)) + Kilometres
	}

	return formatNumber(Round(length)) + Metres
}

// FormatArea renders an area in square metres, or square kilometres above the threshold.
func FormatArea(area float64) string {
	area = sanitize(area)
	if area > SquareKilometreThreshold {
		return formatNumber(Round(area/1000000)) + SquareKilometres
	}

	return formatNumber(Round(area)) + SquareMetres
}

// Round rounds to two decimals, halves away from zero.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatNumber(v float64) string {
	if v == 0 {
		// avoid "-0"
		v = 0
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}

	return v
}
