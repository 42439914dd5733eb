// Package geom defines the tagged geometry union the pipeline operates on.
//
// orb.Geometry covers point/multipoint/linestring/multilinestring/
// ring/polygon/multipolygon/collection, but has no variant for a bare
// two-point segment, an axis-aligned rectangle, or a triangle. Those three
// are added here so Segment can be clipped and simplified distinctly from
// a LineString, matching the shape of the original geometry enum this
// pipeline was ported from.
package geom

import (
	"math"

	"github.com/paulmach/orb"
)

// Geometry is a closed tagged union: every concrete type below, and no
// others, implements it.
type Geometry interface {
	geometry()
	// Bound returns the axis-aligned bounding box of the geometry.
	Bound() orb.Bound
}

// Point is a single coordinate.
type Point orb.Point

func (Point) geometry()            {}
func (p Point) Bound() orb.Bound   { return orb.Point(p).Bound() }
func (p Point) Orb() orb.Point     { return orb.Point(p) }

// MultiPoint is an unordered set of coordinates.
type MultiPoint orb.MultiPoint

func (MultiPoint) geometry()          {}
func (m MultiPoint) Bound() orb.Bound { return orb.MultiPoint(m).Bound() }
func (m MultiPoint) Orb() orb.MultiPoint { return orb.MultiPoint(m) }

// Segment is a straight two-point line, distinct from a LineString: it is
// the only line-like shape the clip operator accepts directly (4.B), since
// every LineString can be decomposed into segments but not vice versa.
type Segment struct {
	A, B orb.Point
}

func (Segment) geometry() {}
func (s Segment) Bound() orb.Bound {
	return orb.MultiPoint{s.A, s.B}.Bound()
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	dx := s.B[0] - s.A[0]
	dy := s.B[1] - s.A[1]
	return hypot(dx, dy)
}

// LineString is an ordered, possibly open, chain of points.
type LineString orb.LineString

func (LineString) geometry()             {}
func (ls LineString) Bound() orb.Bound   { return orb.LineString(ls).Bound() }
func (ls LineString) Orb() orb.LineString { return orb.LineString(ls) }

// Length returns the cumulative Euclidean length of the chain.
func (ls LineString) Length() float64 {
	var total float64
	for i := 1; i < len(ls); i++ {
		dx := ls[i][0] - ls[i-1][0]
		dy := ls[i][1] - ls[i-1][1]
		total += hypot(dx, dy)
	}
	return total
}

// MultiLineString is a set of independent chains.
type MultiLineString orb.MultiLineString

func (MultiLineString) geometry()              {}
func (m MultiLineString) Bound() orb.Bound      { return orb.MultiLineString(m).Bound() }
func (m MultiLineString) Orb() orb.MultiLineString { return orb.MultiLineString(m) }

// Length returns the sum of the lengths of every chain.
func (m MultiLineString) Length() float64 {
	var total float64
	for _, ls := range m {
		total += LineString(ls).Length()
	}
	return total
}

// Ring is a closed loop, used only as a polygon ring (exterior or hole).
type Ring orb.Ring

func (Ring) geometry()          {}
func (r Ring) Bound() orb.Bound { return orb.Ring(r).Bound() }
func (r Ring) Orb() orb.Ring    { return orb.Ring(r) }

// Polygon is an exterior ring plus zero or more hole rings.
type Polygon orb.Polygon

func (Polygon) geometry()          {}
func (p Polygon) Bound() orb.Bound { return orb.Polygon(p).Bound() }
func (p Polygon) Orb() orb.Polygon { return orb.Polygon(p) }

// Area returns the unsigned area of the exterior ring minus its holes.
func (p Polygon) Area() float64 {
	if len(p) == 0 {
		return 0
	}
	area := math.Abs(ringArea(orb.Ring(p[0])))
	for _, hole := range p[1:] {
		area -= math.Abs(ringArea(orb.Ring(hole)))
	}
	if area < 0 {
		return -area
	}
	return area
}

// MultiPolygon is a set of independent polygons.
type MultiPolygon orb.MultiPolygon

func (MultiPolygon) geometry()          {}
func (m MultiPolygon) Bound() orb.Bound { return orb.MultiPolygon(m).Bound() }
func (m MultiPolygon) Orb() orb.MultiPolygon { return orb.MultiPolygon(m) }

// Area returns the sum of the unsigned areas of every polygon.
func (m MultiPolygon) Area() float64 {
	var total float64
	for _, p := range m {
		total += Polygon(p).Area()
	}
	return total
}

// Rectangle is an axis-aligned box, produced only by diagnostic paths
// (tile bounds when reported as a geometry); the tile encoder never emits
// one as feature data.
type Rectangle struct {
	Min, Max orb.Point
}

func (Rectangle) geometry() {}
func (r Rectangle) Bound() orb.Bound {
	return orb.Bound{Min: r.Min, Max: r.Max}
}

// Triangle is three vertices, present in the union for completeness with
// the source geometry model; no builder in this pipeline produces one.
type Triangle struct {
	A, B, C orb.Point
}

func (Triangle) geometry() {}
func (t Triangle) Bound() orb.Bound {
	return orb.MultiPoint{t.A, t.B, t.C}.Bound()
}

// Collection is a heterogeneous set of geometries.
type Collection []Geometry

func (Collection) geometry() {}
func (c Collection) Bound() orb.Bound {
	if len(c) == 0 {
		return orb.Bound{}
	}
	b := c[0].Bound()
	for _, g := range c[1:] {
		b = b.Union(g.Bound())
	}
	return b
}

func ringArea(r orb.Ring) float64 {
	var sum float64
	n := len(r)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += r[i][0]*r[j][1] - r[j][0]*r[i][1]
	}
	return sum / 2
}

func hypot(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}
