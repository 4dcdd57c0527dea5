package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
)

func TestPlanar(t *testing.T) {
	var m Planar

	line := orb.LineString{{0, 0}, {3, 4}, {3, 10}}
	assert.InDelta(t, 11, m.Length(line), 1e-9)
	assert.Zero(t, m.Area(line))

	square := orb.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}}
	assert.InDelta(t, 40, m.Length(square), 1e-9)
	assert.InDelta(t, 100, m.Area(square), 1e-9)

	cw := orb.Polygon{{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0}}}
	assert.InDelta(t, 100, m.Area(cw), 1e-9)
}

func TestSpherical(t *testing.T) {
	var m Spherical

	// one degree of longitude at the equator
	line := orb.LineString{{0, 0}, {1, 0}}
	assert.InDelta(t, 111319, m.Length(line), 500)

	poly := orb.Polygon{{{0, 0}, {0.01, 0}, {0.01, 0.01}, {0, 0.01}, {0, 0}}}
	assert.InDelta(t, 1.24e6, m.Area(poly), 0.05e6)
}

func TestForProjection(t *testing.T) {
	assert.IsType(t, Planar{}, ForProjection(ProjectionPlanar))
	assert.IsType(t, Spherical{}, ForProjection(ProjectionSpherical))
	assert.IsType(t, Planar{}, ForProjection("mercator"))
}

func TestInteriorPointSquare(t *testing.T) {
	p := orb.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}}
	assert.Equal(t, orb.Point{5, 5}, InteriorPoint(p))
}

func TestInteriorPointConcave(t *testing.T) {
	// U shape: the centroid falls in the notch
	u := orb.Polygon{{
		{0, 0}, {30, 0}, {30, 30}, {20, 30}, {20, 10},
		{10, 10}, {10, 30}, {0, 30}, {0, 0},
	}}

	centroid, _ := planar.CentroidArea(u)
	assert.False(t, planar.PolygonContains(u, centroid))

	pt := InteriorPoint(u)
	assert.True(t, planar.PolygonContains(u, pt), "point %v not inside", pt)
	assert.Equal(t, orb.Point{5, 15}, pt)
}

func TestInteriorPointDegenerate(t *testing.T) {
	assert.Equal(t, orb.Point{}, InteriorPoint(nil))
	assert.Equal(t, orb.Point{}, InteriorPoint(orb.Polygon{{}}))
	assert.Equal(t, orb.Point{2, 3}, InteriorPoint(orb.Polygon{{{2, 3}, {2, 3}}}))
}

func TestInteriorPointMidlineThroughVertex(t *testing.T) {
	// L shape: the bounding box middle runs along the inner corner
	l := orb.Polygon{{
		{0, 0}, {20, 0}, {20, 10}, {10, 10}, {10, 20}, {0, 20}, {0, 0},
	}}

	pt := InteriorPoint(l)
	assert.True(t, planar.PolygonContains(l, pt), "point %v not inside", pt)
	assert.Equal(t, orb.Point{5, 15}, pt)
}

func TestInteriorPointOpenRing(t *testing.T) {
	open := orb.Polygon{{
		{0, 0}, {30, 0}, {30, 30}, {20, 30}, {20, 10}, {10, 10}, {10, 30}, {0, 30},
	}}

	assert.Equal(t, orb.Point{5, 15}, InteriorPoint(open))
}
