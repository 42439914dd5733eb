// Package clip implements the clip operator (component B): intersect a
// geometry against an axis-aligned rectangle, returning the portion that
// falls inside it.
//
// Only Point, Segment, Polygon, and MultiPolygon are clipped; every other
// variant (LineString, MultiLineString, Ring, Rectangle, Triangle,
// Collection) returns (nil, false) — this mirrors the original clip_feature
// implementation, which defines the operation for the same closed set and
// leaves the rest unhandled rather than guessing a projection for them.
package clip

import (
	"github.com/paulmach/orb"

	"github.com/tilecraft/maptiles/internal/geom"
)

// Rect is an axis-aligned clip window.
type Rect struct {
	Min, Max orb.Point
}

func (r Rect) contains(p orb.Point) bool {
	return p[0] >= r.Min[0] && p[0] <= r.Max[0] && p[1] >= r.Min[1] && p[1] <= r.Max[1]
}

// Clip intersects g against rect. ok is false when g has no part inside
// rect, or when g's variant is not one of the four supported shapes.
func Clip(g geom.Geometry, rect Rect) (out geom.Geometry, ok bool) {
	switch v := g.(type) {
	case geom.Point:
		if rect.contains(orb.Point(v)) {
			return v, true
		}
		return nil, false
	case geom.Segment:
		return clipSegment(v, rect)
	case geom.Polygon:
		return clipPolygon(v, rect)
	case geom.MultiPolygon:
		return clipMultiPolygon(v, rect)
	default:
		return nil, false
	}
}

// clipSegment implements the Liang-Barsky parametric line clip: walk the
// four half-plane constraints of rect, narrowing [tMin, tMax] along A->B;
// a non-empty range after all four constraints means some sub-segment
// survives.
func clipSegment(s geom.Segment, rect Rect) (geom.Geometry, bool) {
	dx := s.B[0] - s.A[0]
	dy := s.B[1] - s.A[1]

	tMin, tMax := 0.0, 1.0

	clipT := func(p, q float64) bool {
		if p == 0 {
			return q >= 0 // parallel to this boundary; outside if q < 0
		}
		t := q / p
		if p < 0 {
			if t > tMax {
				return false
			}
			if t > tMin {
				tMin = t
			}
		} else {
			if t < tMin {
				return false
			}
			if t < tMax {
				tMax = t
			}
		}
		return true
	}

	if !clipT(-dx, s.A[0]-rect.Min[0]) {
		return nil, false
	}
	if !clipT(dx, rect.Max[0]-s.A[0]) {
		return nil, false
	}
	if !clipT(-dy, s.A[1]-rect.Min[1]) {
		return nil, false
	}
	if !clipT(dy, rect.Max[1]-s.A[1]) {
		return nil, false
	}
	if tMin > tMax {
		return nil, false
	}

	a := orb.Point{s.A[0] + tMin*dx, s.A[1] + tMin*dy}
	b := orb.Point{s.A[0] + tMax*dx, s.A[1] + tMax*dy}
	if a == b {
		return geom.Point(a), true
	}
	return geom.Segment{A: a, B: b}, true
}

// clipPolygon runs Sutherland-Hodgman against each ring independently.
// The clip window is always a convex rectangle, so this is exact: no
// self-intersections or spurious edges can appear, unlike clipping a
// polygon against an arbitrary concave window.
func clipPolygon(p geom.Polygon, rect Rect) (geom.Geometry, bool) {
	out := make(geom.Polygon, 0, len(p))
	for i, ring := range p {
		clipped := sutherlandHodgman(orb.Ring(ring), rect)
		if len(clipped) < 3 {
			if i == 0 {
				// exterior entirely clipped away: nothing of the polygon remains
				return nil, false
			}
			continue // hole entirely clipped away: simply drop it
		}
		out = append(out, orb.Ring(clipped))
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

func clipMultiPolygon(mp geom.MultiPolygon, rect Rect) (geom.Geometry, bool) {
	out := make(geom.MultiPolygon, 0, len(mp))
	for _, p := range mp {
		clipped, ok := clipPolygon(geom.Polygon(p), rect)
		if !ok {
			continue
		}
		out = append(out, orb.Polygon(clipped.(geom.Polygon)))
	}
	if len(out) == 0 {
		return nil, false
	}
	if len(out) == 1 {
		return geom.Polygon(out[0]), true
	}
	return out, true
}

// sutherlandHodgman clips a closed ring against rect's four half-planes in
// turn, each pass walking the ring's edges and keeping/inserting vertices
// per the standard inside/outside classification.
func sutherlandHodgman(ring orb.Ring, rect Rect) orb.Ring {
	type edge struct {
		inside func(orb.Point) bool
		isect  func(a, b orb.Point) orb.Point
	}

	edges := []edge{
		{
			inside: func(p orb.Point) bool { return p[0] >= rect.Min[0] },
			isect:  func(a, b orb.Point) orb.Point { return lerpX(a, b, rect.Min[0]) },
		},
		{
			inside: func(p orb.Point) bool { return p[0] <= rect.Max[0] },
			isect:  func(a, b orb.Point) orb.Point { return lerpX(a, b, rect.Max[0]) },
		},
		{
			inside: func(p orb.Point) bool { return p[1] >= rect.Min[1] },
			isect:  func(a, b orb.Point) orb.Point { return lerpY(a, b, rect.Min[1]) },
		},
		{
			inside: func(p orb.Point) bool { return p[1] <= rect.Max[1] },
			isect:  func(a, b orb.Point) orb.Point { return lerpY(a, b, rect.Max[1]) },
		},
	}

	poly := append(orb.Ring{}, ring...)
	// drop an explicit closing duplicate point; it is re-added at the end.
	if len(poly) > 1 && poly[0] == poly[len(poly)-1] {
		poly = poly[:len(poly)-1]
	}

	for _, e := range edges {
		if len(poly) == 0 {
			break
		}
		var output orb.Ring
		n := len(poly)
		for i := 0; i < n; i++ {
			curr := poly[i]
			prev := poly[(i-1+n)%n]
			currIn := e.inside(curr)
			prevIn := e.inside(prev)
			switch {
			case currIn && prevIn:
				output = append(output, curr)
			case currIn && !prevIn:
				output = append(output, e.isect(prev, curr), curr)
			case !currIn && prevIn:
				output = append(output, e.isect(prev, curr))
			}
		}
		poly = output
	}

	if len(poly) < 3 {
		return nil
	}
	poly = append(poly, poly[0])
	return poly
}

func lerpX(a, b orb.Point, x float64) orb.Point {
	t := (x - a[0]) / (b[0] - a[0])
	return orb.Point{x, a[1] + t*(b[1]-a[1])}
}

func lerpY(a, b orb.Point, y float64) orb.Point {
	t := (y - a[1]) / (b[1] - a[1])
	return orb.Point{a[0] + t*(b[0]-a[0]), y}
}
