// Package geo provides the geometry math used to measure sketches:
// lengths, areas and label placement points.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
	sf "github.com/peterstace/simplefeatures/geom"
)

// Projection names accepted in configuration.
const (
	ProjectionPlanar    = "planar"
	ProjectionSpherical = "spherical"
)

// Math measures geometries in a coordinate system's native linear unit.
type Math interface {
	Length(g orb.Geometry) float64
	Area(g orb.Geometry) float64
	InteriorPoint(p orb.Polygon) orb.Point
}

// Planar treats coordinates as metres on a flat map, as game maps are.
type Planar struct{}

// Length returns the euclidean length of a line or the perimeter of a polygon.
func (Planar) Length(g orb.Geometry) float64 {
	return finite(planar.Length(g))
}

// Area returns the unsigned area enclosed by a polygon. Lines have no area.
func (Planar) Area(g orb.Geometry) float64 {
	return finite(math.Abs(planar.Area(g)))
}

// InteriorPoint returns a point inside the polygon's outer ring.
func (Planar) InteriorPoint(p orb.Polygon) orb.Point {
	return InteriorPoint(p)
}

// Spherical treats coordinates as WGS84 [lon, lat] and measures in metres.
type Spherical struct{}

// Length returns the great-circle length of a line or the perimeter of a polygon.
func (Spherical) Length(g orb.Geometry) float64 {
	return finite(orbgeo.Length(g))
}

// Area returns the unsigned area enclosed by a polygon on the sphere.
func (Spherical) Area(g orb.Geometry) float64 {
	return finite(math.Abs(orbgeo.Area(g)))
}

// InteriorPoint returns a point inside the polygon's outer ring.
func (Spherical) InteriorPoint(p orb.Polygon) orb.Point {
	return InteriorPoint(p)
}

// ForProjection returns the math service for a configured projection name.
// Unknown names fall back to planar.
func ForProjection(name string) Math {
	if name == ProjectionSpherical {
		return Spherical{}
	}

	return Planar{}
}

// InteriorPoint finds a point guaranteed to lie inside the outer ring.
// Rings enclosing no area fall back to their bounding box center.
func InteriorPoint(p orb.Polygon) orb.Point {
	if len(p) == 0 || len(p[0]) == 0 {
		return orb.Point{}
	}

	ring := p[0]
	if len(ring) < 3 || planar.Area(ring) == 0 {
		return ring.Bound().Center()
	}

	flat := make([]float64, 0, 2*(len(ring)+1))
	for _, pt := range ring {
		flat = append(flat, pt.X(), pt.Y())
	}
	if !ring.Closed() {
		flat = append(flat, ring[0].X(), ring[0].Y())
	}

	poly := sf.NewPolygon([]sf.LineString{
		sf.NewLineString(sf.NewSequence(flat, sf.DimXY)),
	})

	xy, ok := poly.PointOnSurface().XY()
	if !ok {
		return ring.Bound().Center()
	}

	return orb.Point{xy.X, xy.Y}
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}
