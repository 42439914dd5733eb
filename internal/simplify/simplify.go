// Package simplify implements component C: Douglas-Peucker simplification
// of line-like and polygon-like geometry, plus the remove_empty pass that
// drops degenerate features after clipping and simplification.
package simplify

import (
	"fmt"

	"github.com/paulmach/orb"
	orbsimplify "github.com/paulmach/orb/simplify"

	"github.com/tilecraft/maptiles/internal/geom"
)

// Simplify runs Douglas-Peucker with the given threshold over every
// line-string and polygon-ring nested in g. Points, multi-points, and bare
// segments are returned unchanged: a two-point segment cannot be
// simplified any further, and point data carries no line to thin.
func Simplify(g geom.Geometry, threshold float64) geom.Geometry {
	dp := orbsimplify.DouglasPeucker(threshold)

	switch v := g.(type) {
	case geom.Point, geom.MultiPoint, geom.Segment:
		return v
	case geom.LineString:
		return geom.LineString(dp.Simplify(orb.LineString(v)).(orb.LineString))
	case geom.MultiLineString:
		out := make(geom.MultiLineString, len(v))
		for i, ls := range v {
			out[i] = dp.Simplify(ls).(orb.LineString)
		}
		return out
	case geom.Polygon:
		return simplifyPolygon(v, dp)
	case geom.MultiPolygon:
		out := make(geom.MultiPolygon, len(v))
		for i, p := range v {
			out[i] = orb.Polygon(simplifyPolygon(geom.Polygon(p), dp))
		}
		return out
	case geom.Collection:
		out := make(geom.Collection, len(v))
		for i, child := range v {
			out[i] = Simplify(child, threshold)
		}
		return out
	default:
		return g
	}
}

func simplifyPolygon(p geom.Polygon, dp orbsimplify.Simplifier) geom.Polygon {
	out := make(geom.Polygon, len(p))
	for i, ring := range p {
		simplified := dp.Simplify(orb.LineString(ring)).(orb.LineString)
		out[i] = orb.Ring(simplified)
	}
	return out
}

// RemoveEmpty reports whether g should be dropped: points and multi-points
// are always kept; segments, line strings and multi-line-strings are
// dropped when their Euclidean length is at or below lineLimit; polygons
// and multi-polygons are dropped when their unsigned area is at or below
// areaLimit. Every other variant (bare rings, rectangles, triangles,
// nested collections) has no defined length/area semantics at tile scale,
// so it is reported as an error rather than silently kept or dropped.
func RemoveEmpty(g geom.Geometry, lineLimit, areaLimit float64) (drop bool, err error) {
	switch v := g.(type) {
	case geom.Point, geom.MultiPoint:
		return false, nil
	case geom.Segment:
		return v.Length() <= lineLimit, nil
	case geom.LineString:
		return v.Length() <= lineLimit, nil
	case geom.MultiLineString:
		return v.Length() <= lineLimit, nil
	case geom.Polygon:
		return v.Area() <= areaLimit, nil
	case geom.MultiPolygon:
		return v.Area() <= areaLimit, nil
	default:
		return false, fmt.Errorf("simplify: remove_empty has no defined length/area semantics for %T", g)
	}
}
