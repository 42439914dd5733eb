// Package mounts implements component F: detecting local elevation peaks
// in a DEM raster and thinning them into a "mounts" layer of labeled
// points.
//
// The original mount builder this pipeline was ported from computed a
// peak's world position as (dem.X(col), dem.X(col)) — using the column
// twice instead of the row for Y. That bug is NOT replicated here: every
// peak position below uses dem.X(col) for X and dem.Y(row) for Y.
package mounts

import (
	"fmt"
	"math"
	"sort"

	"github.com/tilecraft/maptiles/internal/collections"
	"github.com/tilecraft/maptiles/internal/dem"
	"github.com/tilecraft/maptiles/internal/feature"
	"github.com/tilecraft/maptiles/internal/geom"
)

// Layer is the name mount point features are stored under.
const Layer = "mounts"

// Peak is a single local-maximum sample.
type Peak struct {
	Col, Row  int
	X, Y      float64
	Elevation float64
}

// FindPeaks scans r for cells whose elevation is strictly greater than
// every one of their (up to 8) grid neighbors, sorted ascending by
// elevation.
func FindPeaks(r *dem.Raster) []Peak {
	var peaks []Peak
	for row := 0; row < r.Rows(); row++ {
		for col := 0; col < r.Cols(); col++ {
			z := r.Z(col, row)
			if !isLocalMax(r, col, row, z) {
				continue
			}
			peaks = append(peaks, Peak{
				Col: col, Row: row,
				X: r.X(col), Y: r.Y(row),
				Elevation: z,
			})
		}
	}
	sort.Slice(peaks, func(i, j int) bool { return peaks[i].Elevation < peaks[j].Elevation })
	return peaks
}

func isLocalMax(r *dem.Raster, col, row int, z float64) bool {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nc, nr := col+dc, row+dr
			if nc < 0 || nc >= r.Cols() || nr < 0 || nr >= r.Rows() {
				continue
			}
			if r.Z(nc, nr) >= z {
				return false
			}
		}
	}
	return true
}

// Thin resolves the "simplify-mounts(d)" open question: candidates are
// visited from highest to lowest elevation (FindPeaks' result reversed),
// and each is kept only if it is farther than d (Euclidean, in world
// units) from every peak already kept. This lets a single dominant summit
// suppress its lower neighbors within its footprint, rather than keeping
// every bump the raster's local-maximum test finds.
func Thin(peaks []Peak, d float64) []Peak {
	var kept []Peak
	for i := len(peaks) - 1; i >= 0; i-- {
		cand := peaks[i]
		far := true
		for _, k := range kept {
			dx := cand.X - k.X
			dy := cand.Y - k.Y
			if math.Hypot(dx, dy) <= d {
				far = false
				break
			}
		}
		if far {
			kept = append(kept, cand)
		}
	}
	return kept
}

// Build finds peaks in r, thins them by minDistance, and stores the
// survivors into the "mounts" layer as labeled points. elevationOffset is
// added to each peak's raw elevation before it is recorded or rounded into
// text, per the input bundle's meta.json.
func Build(r *dem.Raster, col collections.Collections, minDistance, elevationOffset float64) {
	peaks := FindPeaks(r)
	kept := Thin(peaks, minDistance)

	layer := col.Ensure(Layer)
	for _, p := range kept {
		elev := p.Elevation + elevationOffset
		layer.Append(&feature.Feature{
			Geometry: geom.Point{p.X, p.Y},
			Properties: feature.Properties{
				"elevation": feature.NumberValue(elev),
				"text":      feature.StringValue(fmt.Sprintf("%.0f", elev)),
			},
		})
	}
}
