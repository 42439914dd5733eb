// Package visibility implements component J: per-LOD layer visibility,
// plus the contour sub-layer fill rule that distributes the single
// "contours" base layer into the coarser display bands (every 5th/10th/
// 50th/100th feature by index) that the layer-settings file assigns
// minzoom/maxzoom to.
package visibility

import (
	"github.com/sirupsen/logrus"

	"github.com/tilecraft/maptiles/internal/collections"
	"github.com/tilecraft/maptiles/internal/layersettings"
)

// Visible reports whether layer should be included in a tile at lod. A
// layer is visible only when an explicit setting for it exists and lod
// falls within its [minzoom, maxzoom] range; a layer with no matching
// setting is hidden, not shown by default.
func Visible(layer string, lod, maxLOD int, reg *layersettings.Registry) bool {
	s, ok := reg.Get(layer)
	if !ok {
		return false
	}
	min := 0
	if s.MinZoom != nil {
		min = *s.MinZoom
	}
	max := maxLOD
	if s.MaxZoom != nil {
		max = *s.MaxZoom
	}
	return lod >= min && lod <= max
}

// contourStrides maps each display sub-layer to the stride N: the base
// "contours" layer's N-th, 2N-th, ... feature (by index, 0-based) is
// copied into it — coarser bands show fewer, more widely spaced lines.
var contourStrides = map[string]int{
	"contours/05":  5,
	"contours/10":  10,
	"contours/50":  50,
	"contours/100": 100,
}

// FillContourSubLayers copies every stride-th feature (by index) of the
// "contours" base layer into each display sub-layer. It must run once
// after the contour builder and before visibility filtering is applied
// per tile. A registry with no "contours" base layer is logged as a
// warning and left unchanged.
func FillContourSubLayers(col collections.Collections) {
	base, ok := col["contours"]
	if !ok {
		logrus.Warn("visibility: no \"contours\" base layer; contour sub-layers left unfilled")
		return
	}
	for layer, stride := range contourStrides {
		dst := col.Ensure(layer)
		for i, f := range base.Features {
			if i%stride != 0 {
				continue
			}
			dst.Append(f.Clone())
		}
	}
}
