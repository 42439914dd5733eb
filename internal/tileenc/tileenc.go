// Package tileenc implements component K: encoding one (lod, col, row)
// tile from the LOD projector's working registry into a Mapbox Vector
// Tile protobuf.
//
// Each tile's local pixel space runs from 0 to tileSize (not the
// conventional MVT default of 4096 — this pipeline's tile_size is a
// parameter of the LOD projection itself, chosen so the whole world maps
// onto exactly one tile_size x tile_size tile at LOD 0), so Extent is set
// explicitly on every encoded layer rather than left at orb's default.
package tileenc

import (
	"github.com/paulmach/orb"
	orbgeojson "github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/encoding/mvt"

	"github.com/tilecraft/maptiles/internal/clip"
	"github.com/tilecraft/maptiles/internal/collections"
	"github.com/tilecraft/maptiles/internal/feature"
	"github.com/tilecraft/maptiles/internal/geom"
	gsimplify "github.com/tilecraft/maptiles/internal/simplify"
)

// LayerPolicy is the per-layer simplification/remove_empty parameters
// the orchestrator resolves from the simplification policy table (4.L)
// before calling Encode.
type LayerPolicy struct {
	SimplifyEpsilon float64
	LineLimit       float64
	AreaLimit       float64
}

// Encode builds the protobuf bytes for tile (colIdx, row) at the LOD that
// working is projected for. visible maps each layer name that should be
// included at this LOD to its simplify policy; working holds geometry
// already projected into this LOD's pixel space by the projector.
func Encode(working collections.Collections, tileSize float64, colIdx, row int, visible map[string]LayerPolicy) ([]byte, error) {
	rect := clip.Rect{
		Min: orb.Point{float64(colIdx) * tileSize, float64(row) * tileSize},
		Max: orb.Point{float64(colIdx+1) * tileSize, float64(row+1) * tileSize},
	}
	origin := orb.Point{rect.Min[0], rect.Min[1]}

	var layers mvt.Layers
	for name, policy := range visible {
		fc, ok := working[name]
		if !ok {
			continue
		}
		gj := orbgeojson.NewFeatureCollection()
		for _, f := range fc.Features {
			clipped, ok := clip.Clip(f.Geometry, rect)
			if !ok {
				continue
			}
			simplified := gsimplify.Simplify(clipped, policy.SimplifyEpsilon)
			drop, err := gsimplify.RemoveEmpty(simplified, policy.LineLimit, policy.AreaLimit)
			if err != nil {
				return nil, err
			}
			if drop {
				continue
			}
			local := geom.Map(simplified, func(p orb.Point) orb.Point {
				return orb.Point{p[0] - origin[0], p[1] - origin[1]}
			})
			orbGeom, ok := toOrb(local)
			if !ok {
				continue
			}
			gjf := orbgeojson.NewFeature(orbGeom)
			gjf.Properties = toProps(f.Properties)
			gj.Append(gjf)
		}
		if len(gj.Features) == 0 {
			continue
		}
		layer := mvt.NewLayer(name, gj)
		layer.Extent = uint32(tileSize)
		layers = append(layers, layer)
	}

	return mvt.Marshal(layers)
}

func toProps(p feature.Properties) orbgeojson.Properties {
	out := make(orbgeojson.Properties, len(p))
	for k, v := range p {
		out[k] = v.Any()
	}
	return out
}

func toOrb(g geom.Geometry) (orb.Geometry, bool) {
	switch v := g.(type) {
	case geom.Point:
		return orb.Point(v), true
	case geom.MultiPoint:
		return orb.MultiPoint(v), true
	case geom.Segment:
		return orb.LineString{v.A, v.B}, true
	case geom.LineString:
		return orb.LineString(v), true
	case geom.MultiLineString:
		return orb.MultiLineString(v), true
	case geom.Polygon:
		return orb.Polygon(v), true
	case geom.MultiPolygon:
		return orb.MultiPolygon(v), true
	default:
		return nil, false
	}
}
