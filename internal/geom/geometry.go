package geom

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Geometry is a line or polygon under construction or committed.
// The kind is fixed at construction; only the coordinates change.
type Geometry struct {
	coords []orb.Point
	kind   Kind
}

// NewGeometry creates a geometry of the given kind.
// Polygon coordinates are closed by repeating the first coordinate when needed.
func NewGeometry(kind Kind, coords []orb.Point) Geometry {
	return Geometry{kind: kind, coords: normalize(kind, coords)}
}

// FromOrb converts a LineString or single-ring Polygon back into a Geometry.
func FromOrb(g orb.Geometry) (Geometry, error) {
	switch v := g.(type) {
	case orb.LineString:
		return NewGeometry(Line, v), nil
	case orb.Polygon:
		if len(v) == 0 {
			return NewGeometry(Polygon, nil), nil
		}
		return NewGeometry(Polygon, v[0]), nil
	}

	if g == nil {
		return Geometry{}, fmt.Errorf("unsupported geometry: nil")
	}
	return Geometry{}, fmt.Errorf("unsupported geometry type %q", g.GeoJSONType())
}

// Kind returns the variant tag.
func (g Geometry) Kind() Kind { return g.kind }

// Coordinates returns a copy of the coordinate sequence.
func (g Geometry) Coordinates() []orb.Point {
	out := make([]orb.Point, len(g.coords))
	copy(out, g.coords)
	return out
}

// Len returns the number of coordinates.
func (g Geometry) Len() int { return len(g.coords) }

// Last returns the most recently added coordinate.
func (g Geometry) Last() (orb.Point, bool) {
	n := len(g.coords)
	if g.kind == Polygon && n > 1 {
		// the ring is closed, the last vertex sits before the repeated first one
		n--
	}
	if n == 0 {
		return orb.Point{}, false
	}

	return g.coords[n-1], true
}

// Orb returns the geometry as an orb.LineString or orb.Polygon.
func (g Geometry) Orb() orb.Geometry {
	switch g.kind {
	case Line:
		return orb.LineString(g.Coordinates())
	case Polygon:
		return orb.Polygon{orb.Ring(g.Coordinates())}
	}

	panic(fmt.Sprintf("geom: invalid kind %d", int(g.kind)))
}

func normalize(kind Kind, coords []orb.Point) []orb.Point {
	out := make([]orb.Point, len(coords), len(coords)+1)
	copy(out, coords)

	if kind == Polygon && len(out) > 0 && !orb.Ring(out).Closed() {
		out = append(out, out[0])
	}

	return out
}
