// Package contour implements component E: marching-squares contour-line
// extraction from a DEM raster.
//
// For every integer elevation from floor(min) through ceil(max) inclusive,
// one Feature is emitted into the "contours" layer (see DESIGN.md for why
// this single base-layer name was chosen over the ambiguous
// "contours/01" naming in the original spec). Its geometry is a
// MultiPolygon: each connected chain of crossing points at that threshold
// is closed into a ring (open chains, produced by a threshold that only
// clips a corner of the grid, are closed by joining their two loose ends
// directly — acceptable for a contour's rendered outline, and the
// simplest resolution that still lets the polygon clip/simplify path
// apply to contour data, the way the per-layer simplification table
// requires). Chains of fewer than three points are dropped, so a level
// whose crossings form no ring still gets its Feature, with an empty
// MultiPolygon.
package contour

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/tilecraft/maptiles/internal/collections"
	"github.com/tilecraft/maptiles/internal/dem"
	"github.com/tilecraft/maptiles/internal/feature"
	"github.com/tilecraft/maptiles/internal/geom"
)

// BaseLayer is the single layer name every contour threshold is stored
// under.
const BaseLayer = "contours"

// subLayers are pre-created empty so that layer-settings references to
// the distinct display granularities (every 5m/10m/50m/100m) always find
// a (possibly empty) collection; the contour builder itself leaves them
// empty, and visibility.FillContourSubLayers (component J) fills them from
// BaseLayer by index stride.
var subLayers = []string{"contours/05", "contours/10", "contours/50", "contours/100"}

// Build extracts one Feature per integer elevation level from r and
// stores them all into col's "contours" layer, pre-creating the empty
// display sub-layers.
func Build(r *dem.Raster, col collections.Collections) {
	for _, name := range subLayers {
		col.Ensure(name)
	}

	min, max := r.MinMax()
	lo := int(math.Floor(min))
	hi := int(math.Ceil(max))

	base := col.Ensure(BaseLayer)
	for level := lo; level <= hi; level++ {
		mp := traceLevel(r, float64(level))
		base.Append(&feature.Feature{
			Geometry: geom.MultiPolygon(mp),
			Properties: feature.Properties{
				"elevation":     feature.NumberValue(float64(level)),
				"dem_elevation": feature.NumberValue(float64(level)),
			},
		})
	}
}

// segment is one marching-squares crossing edge for a single grid cell.
type segment struct{ a, b orb.Point }

// traceLevel runs marching squares over every cell of r at the given
// threshold and chains the resulting edge segments into closed rings.
func traceLevel(r *dem.Raster, level float64) orb.MultiPolygon {
	var segs []segment

	for row := 0; row < r.Rows()-1; row++ {
		for col := 0; col < r.Cols()-1; col++ {
			segs = append(segs, cellSegments(r, col, row, level)...)
		}
	}
	if len(segs) == 0 {
		return nil
	}

	chains := chainSegments(segs)

	mp := make(orb.MultiPolygon, 0, len(chains))
	for _, chain := range chains {
		if len(chain) < 3 {
			continue
		}
		if chain[0] != chain[len(chain)-1] {
			chain = append(chain, chain[0]) // close an open chain directly
		}
		mp = append(mp, orb.Polygon{orb.Ring(chain)})
	}
	return mp
}

// corner indices within a cell, matching the classic marching-squares
// winding: 0=top-left, 1=top-right, 2=bottom-right, 3=bottom-left.
func cellSegments(r *dem.Raster, col, row int, level float64) []segment {
	x0, x1 := r.X(col), r.X(col+1)
	y0, y1 := r.Y(row), r.Y(row+1)

	v := [4]float64{
		r.Z(col, row),
		r.Z(col+1, row),
		r.Z(col+1, row+1),
		r.Z(col, row+1),
	}
	p := [4]orb.Point{
		{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1},
	}

	caseIdx := 0
	for i, val := range v {
		if val >= level {
			caseIdx |= 1 << uint(i)
		}
	}
	if caseIdx == 0 || caseIdx == 15 {
		return nil
	}

	interp := func(i, j int) orb.Point {
		t := (level - v[i]) / (v[j] - v[i])
		return orb.Point{
			p[i][0] + t*(p[j][0]-p[i][0]),
			p[i][1] + t*(p[j][1]-p[i][1]),
		}
	}

	e := [4]orb.Point{
		interp(0, 1), // top edge
		interp(1, 2), // right edge
		interp(2, 3), // bottom edge
		interp(3, 0), // left edge
	}

	// edge table for the 16 marching-squares cases; ambiguous saddle
	// cases (5, 10) are resolved using the cell-average rule.
	switch caseIdx {
	case 1, 14:
		return []segment{{e[3], e[0]}}
	case 2, 13:
		return []segment{{e[0], e[1]}}
	case 3, 12:
		return []segment{{e[3], e[1]}}
	case 4, 11:
		return []segment{{e[1], e[2]}}
	case 6, 9:
		return []segment{{e[0], e[2]}}
	case 7, 8:
		return []segment{{e[3], e[2]}}
	case 5:
		if average(v) >= level {
			return []segment{{e[0], e[1]}, {e[3], e[2]}}
		}
		return []segment{{e[3], e[0]}, {e[1], e[2]}}
	case 10:
		if average(v) >= level {
			return []segment{{e[3], e[0]}, {e[1], e[2]}}
		}
		return []segment{{e[0], e[1]}, {e[3], e[2]}}
	default:
		return nil
	}
}

func average(v [4]float64) float64 {
	return (v[0] + v[1] + v[2] + v[3]) / 4
}

// chainSegments greedily links segments sharing an endpoint into ordered
// point chains; each distinct segment is consumed exactly once.
func chainSegments(segs []segment) [][]orb.Point {
	const eps = 1e-9
	key := func(p orb.Point) orb.Point {
		return orb.Point{math.Round(p[0]/eps) * eps, math.Round(p[1]/eps) * eps}
	}

	index := make(map[orb.Point][]int)
	used := make([]bool, len(segs))
	for i, s := range segs {
		index[key(s.a)] = append(index[key(s.a)], i)
		index[key(s.b)] = append(index[key(s.b)], i)
	}

	var chains [][]orb.Point
	for start := range segs {
		if used[start] {
			continue
		}
		used[start] = true
		chain := []orb.Point{segs[start].a, segs[start].b}

		extend := func(fromEnd bool) {
			for {
				var tail orb.Point
				if fromEnd {
					tail = chain[len(chain)-1]
				} else {
					tail = chain[0]
				}
				candidates := index[key(tail)]
				found := -1
				for _, c := range candidates {
					if !used[c] {
						found = c
						break
					}
				}
				if found == -1 {
					return
				}
				used[found] = true
				s := segs[found]
				next := s.b
				if key(s.b) == key(tail) {
					next = s.a
				}
				if fromEnd {
					chain = append(chain, next)
				} else {
					chain = append([]orb.Point{next}, chain...)
				}
			}
		}
		extend(true)
		extend(false)
		chains = append(chains, chain)
	}
	return chains
}
