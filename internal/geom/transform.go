package geom

import "github.com/paulmach/orb"

// CoordFn maps one coordinate to another; used by Map to apply the LOD
// projector's world->pixel transform and its per-step halving uniformly
// across every geometry variant.
type CoordFn func(orb.Point) orb.Point

// Map returns a deep copy of g with every coordinate passed through fn.
// Geometry is always copied, never mutated in place, so two tiles sharing
// the same source feature never corrupt each other's projected copy.
func Map(g Geometry, fn CoordFn) Geometry {
	switch v := g.(type) {
	case Point:
		return Point(fn(orb.Point(v)))
	case MultiPoint:
		out := make(MultiPoint, len(v))
		for i, p := range v {
			out[i] = fn(p)
		}
		return out
	case Segment:
		return Segment{A: fn(v.A), B: fn(v.B)}
	case LineString:
		out := make(LineString, len(v))
		for i, p := range v {
			out[i] = fn(p)
		}
		return out
	case MultiLineString:
		out := make(MultiLineString, len(v))
		for i, ls := range v {
			out[i] = orb.LineString(mapPoints(ls, fn))
		}
		return out
	case Ring:
		return Ring(mapPoints(orb.LineString(v), fn))
	case Polygon:
		out := make(Polygon, len(v))
		for i, r := range v {
			out[i] = orb.Ring(mapPoints(orb.LineString(r), fn))
		}
		return out
	case MultiPolygon:
		out := make(MultiPolygon, len(v))
		for i, p := range v {
			out[i] = orb.Polygon(Map(Polygon(p), fn).(Polygon))
		}
		return out
	case Rectangle:
		return Rectangle{Min: fn(v.Min), Max: fn(v.Max)}
	case Triangle:
		return Triangle{A: fn(v.A), B: fn(v.B), C: fn(v.C)}
	case Collection:
		out := make(Collection, len(v))
		for i, child := range v {
			out[i] = Map(child, fn)
		}
		return out
	default:
		return g
	}
}

func mapPoints(ls orb.LineString, fn CoordFn) orb.LineString {
	out := make(orb.LineString, len(ls))
	for i, p := range ls {
		out[i] = fn(p)
	}
	return out
}

// Clone returns a deep copy of g, independent of any shared backing array.
func Clone(g Geometry) Geometry {
	return Map(g, func(p orb.Point) orb.Point { return p })
}
