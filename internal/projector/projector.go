// Package projector implements component I: the LOD (level-of-detail)
// projector. It maps every feature in a layer registry from world space
// into the maximum-detail tile's pixel space once, then repeatedly halves
// every coordinate in place as the pipeline walks from the maximum LOD
// down to zero.
//
// The halving is intentionally destructive: DecreaseLOD mutates the
// projector's working registry rather than returning a new one, mirroring
// the original design's single mutable per-LOD-loop state rather than
// cloning the whole feature set at every level.
package projector

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/tilecraft/maptiles/internal/collections"
	"github.com/tilecraft/maptiles/internal/geom"
)

// Projector holds one world->pixel projected copy of a layer registry and
// the current LOD it has been halved down to.
type Projector struct {
	worldSize  float64
	tileSize   float64
	maxLOD     int
	currentLOD int
	working    collections.Collections
}

// New computes f = tileSize * 2^maxLOD / worldSize and projects every
// feature in src into maximum-detail pixel space:
//
//	x' = x * f
//	y' = (worldSize - y) * f
//
// The y-flip is the only place this pipeline bridges the world coordinate
// system, with Y increasing upward, into tile pixel space, with Y
// increasing downward; everywhere else, Y is treated uniformly.
// src is cloned, not mutated: the registry that other stages hold onto
// remains in world space.
func New(src collections.Collections, worldSize, tileSize float64, maxLOD int) *Projector {
	f := tileSize * math.Pow(2, float64(maxLOD)) / worldSize
	working := src.Clone()
	project := func(p orb.Point) orb.Point {
		return orb.Point{p[0] * f, (worldSize - p[1]) * f}
	}
	for _, fc := range working {
		for _, feat := range fc.Features {
			feat.Geometry = geom.Map(feat.Geometry, project)
		}
	}
	return &Projector{
		worldSize:  worldSize,
		tileSize:   tileSize,
		maxLOD:     maxLOD,
		currentLOD: maxLOD,
		working:    working,
	}
}

// CurrentLOD returns the LOD the working registry is currently projected
// for.
func (p *Projector) CurrentLOD() int { return p.currentLOD }

// Collections returns the registry at the current LOD. Callers must not
// retain geometry across a DecreaseLOD call: it is mutated in place.
func (p *Projector) Collections() collections.Collections { return p.working }

// DecreaseLOD halves every coordinate in the working registry in place
// and decrements the current LOD. It errors once the projector is already
// at LOD 0, since a fourth decrease from max_lod=3 has nothing left to
// halve into.
func (p *Projector) DecreaseLOD() error {
	if p.currentLOD == 0 {
		return fmt.Errorf("projector: already at LOD 0, cannot decrease further")
	}
	halve := func(pt orb.Point) orb.Point {
		return orb.Point{pt[0] / 2, pt[1] / 2}
	}
	for _, fc := range p.working {
		for _, feat := range fc.Features {
			feat.Geometry = geom.Map(feat.Geometry, halve)
		}
	}
	p.currentLOD--
	return nil
}

// TileCountAt returns the number of tiles per axis at the given LOD: a
// quad-tree doubling from a single root tile at LOD 0.
func TileCountAt(lod int) int {
	return 1 << uint(lod)
}
