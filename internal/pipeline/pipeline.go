// Package pipeline implements component L: the orchestrator that wires
// every other component together end to end — load DEM and vector
// sources, build contours and mounts, project to the maximum LOD, and
// walk the LOD ladder down to zero writing one tile file per (lod, col,
// row).
package pipeline

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tilecraft/maptiles/internal/collections"
	"github.com/tilecraft/maptiles/internal/contour"
	"github.com/tilecraft/maptiles/internal/dem"
	"github.com/tilecraft/maptiles/internal/demsource"
	"github.com/tilecraft/maptiles/internal/ingest"
	"github.com/tilecraft/maptiles/internal/layersettings"
	"github.com/tilecraft/maptiles/internal/metajson"
	"github.com/tilecraft/maptiles/internal/mounts"
	"github.com/tilecraft/maptiles/internal/projector"
	"github.com/tilecraft/maptiles/internal/tileenc"
	"github.com/tilecraft/maptiles/internal/tileerr"
	"github.com/tilecraft/maptiles/internal/tilejsonwriter"
	"github.com/tilecraft/maptiles/internal/visibility"
)

// Options configures one pipeline run.
type Options struct {
	InputDir          string
	OutputDir         string
	TileSize          float64
	WorldSize         float64
	LayerSettingsPath string
	MountMinDistance  float64
	Concurrency       int
}

// defaultPolicy is used for any layer the simplification policy table
// (below) has no explicit entry for: a light simplification pass and a
// conservative drop threshold, never aggressive enough to erase small but
// real features.
var defaultPolicy = tileenc.LayerPolicy{SimplifyEpsilon: 1, LineLimit: 0, AreaLimit: 0}

// policyTable is the per-layer simplification/remove_empty policy (4.L):
// contour layers are simplified and pruned more aggressively the coarser
// their band; mounts and locations are left untouched (mounts are already
// thinned by distance when built); house polygons are dropped once their
// pixel area is at or below 1.
var policyTable = map[string]tileenc.LayerPolicy{
	"contours":     {SimplifyEpsilon: 2, LineLimit: 0, AreaLimit: 4},
	"contours/05":  {SimplifyEpsilon: 2, LineLimit: 0, AreaLimit: 4},
	"contours/10":  {SimplifyEpsilon: 3, LineLimit: 0, AreaLimit: 8},
	"contours/50":  {SimplifyEpsilon: 5, LineLimit: 0, AreaLimit: 16},
	"contours/100": {SimplifyEpsilon: 8, LineLimit: 0, AreaLimit: 32},
	"mounts":       {SimplifyEpsilon: 0, LineLimit: 0, AreaLimit: 0},
	"water":        {SimplifyEpsilon: 2, LineLimit: 10, AreaLimit: 16},
	"roads":        {SimplifyEpsilon: 1, LineLimit: 5, AreaLimit: 0},
	"locations":    {SimplifyEpsilon: 0, LineLimit: 0, AreaLimit: 0},
	"house":        {SimplifyEpsilon: 0.5, LineLimit: 0, AreaLimit: 1},
}

func policyFor(layer string) tileenc.LayerPolicy {
	if p, ok := policyTable[layer]; ok {
		return p
	}
	return defaultPolicy
}

// CalcMaxLOD returns ceil(log2(max(1, worldSize*10/tileSize))): the
// smallest LOD at which one tile pixel covers at most a tenth of a world
// unit (LOD 0 when a single tile already does).
func CalcMaxLOD(worldSize, tileSize float64) int {
	ratio := worldSize * 10 / tileSize
	if ratio < 1 {
		ratio = 1
	}
	return int(math.Ceil(math.Log2(ratio)))
}

// Run executes one full pipeline invocation.
func Run(ctx context.Context, opts Options, bus *Bus) error {
	log := logrus.WithField("pipeline", "mvt")

	start := time.Now()
	meta, metaErr := metajson.Load(filepath.Join(opts.InputDir, "meta.json"))
	if opts.WorldSize == 0 {
		if metaErr != nil {
			return &tileerr.Error{Kind: tileerr.KindIngest, Err: fmt.Errorf("pipeline: load meta: %w", metaErr)}
		}
		opts.WorldSize = meta.WorldSize
	}
	bundleName := "tiles"
	var elevationOffset float64
	if metaErr == nil {
		if meta.WorldName != "" {
			bundleName = meta.WorldName
		}
		elevationOffset = meta.ElevationOffset
	}

	bus.Publish(Event{Phase: "dem", Action: "started"})
	var raster *dem.Raster
	raster, err := demsource.Load(filepath.Join(opts.InputDir, "dem.asc.gz"))
	if err != nil {
		if alt, altErr := demsource.Load(filepath.Join(opts.InputDir, "dem.asc")); altErr == nil {
			raster = alt
			err = nil
		}
	}
	if err != nil {
		return &tileerr.Error{Kind: tileerr.KindIngest, Err: fmt.Errorf("pipeline: load dem: %w", err)}
	}
	bus.Publish(Event{Phase: "dem", Action: "finished"})

	col := collections.New()

	bus.Publish(Event{Phase: "contour", Action: "started"})
	contour.Build(raster, col)
	visibility.FillContourSubLayers(col)
	bus.Publish(Event{Phase: "contour", Action: "finished"})

	bus.Publish(Event{Phase: "mount", Action: "started"})
	minDist := opts.MountMinDistance
	if minDist <= 0 {
		minDist = raster.CellSize() * 10
	}
	mounts.Build(raster, col, minDist, elevationOffset)
	bus.Publish(Event{Phase: "mount", Action: "finished"})

	bus.Publish(Event{Phase: "ingest", Action: "started"})
	geojsonDir := filepath.Join(opts.InputDir, "geojson")
	if _, statErr := os.Stat(geojsonDir); statErr == nil {
		if err := ingest.Dir(ctx, geojsonDir, col); err != nil {
			return &tileerr.Error{Kind: tileerr.KindIngest, Err: err}
		}
	}
	bus.Publish(Event{Phase: "ingest", Action: "finished"})

	settingsPath := opts.LayerSettingsPath
	if settingsPath == "" {
		settingsPath = layersettings.DefaultPath
	}
	settings, err := layersettings.Load(settingsPath)
	if err != nil {
		return err
	}

	maxLOD := CalcMaxLOD(opts.WorldSize, opts.TileSize)
	log.WithFields(logrus.Fields{"max_lod": maxLOD, "world_size": opts.WorldSize, "tile_size": opts.TileSize}).Info("computed max lod")

	proj := projector.New(col, opts.WorldSize, opts.TileSize, maxLOD)

	agg := &tileerr.Aggregator{}
	for {
		lod := proj.CurrentLOD()
		bus.Publish(Event{Phase: "encode", Action: "started", Detail: fmt.Sprintf("lod=%d", lod)})
		if err := encodeLOD(ctx, proj, lod, maxLOD, opts, settings, agg); err != nil {
			return err
		}
		bus.Publish(Event{Phase: "encode", Action: "finished", Detail: fmt.Sprintf("lod=%d", lod)})

		if lod == 0 {
			break
		}
		if err := proj.DecreaseLOD(); err != nil {
			return &tileerr.Error{Kind: tileerr.KindProject, Err: err}
		}
	}

	if err := agg.Err(); err != nil {
		return err
	}

	tj := tilejsonwriter.Build(bundleName, "{z}/{x}/{y}.pbf", maxLOD, col.Names())
	if err := tilejsonwriter.Write(filepath.Join(opts.OutputDir, "tile.json"), tj); err != nil {
		return &tileerr.Error{Kind: tileerr.KindEncode, Err: fmt.Errorf("pipeline: write tile.json: %w", err)}
	}

	log.WithField("elapsed", time.Since(start)).Info("pipeline finished")
	return nil
}

func encodeLOD(ctx context.Context, proj *projector.Projector, lod, maxLOD int, opts Options, settings *layersettings.Registry, agg *tileerr.Aggregator) error {
	working := proj.Collections()

	visible := make(map[string]tileenc.LayerPolicy)
	for name := range working {
		if !visibility.Visible(name, lod, maxLOD, settings) {
			continue
		}
		visible[name] = policyFor(name)
	}

	tilesPerAxis := projector.TileCountAt(lod)
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	g, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, concurrency)

	for col := 0; col < tilesPerAxis; col++ {
		for row := 0; row < tilesPerAxis; row++ {
			col, row := col, row
			sem <- struct{}{}
			g.Go(func() error {
				defer func() { <-sem }()
				data, err := tileenc.Encode(working, opts.TileSize, col, row, visible)
				if err != nil {
					agg.Add(&tileerr.Error{Kind: tileerr.KindEncode, LOD: lod, Col: col, Row: row, Err: err})
					return nil // recoverable: keep going, aggregate instead of aborting the run
				}
				return writeTile(opts.OutputDir, lod, col, row, data)
			})
		}
	}
	return g.Wait()
}

func writeTile(outputDir string, lod, col, row int, data []byte) error {
	dir := filepath.Join(outputDir, fmt.Sprint(lod), fmt.Sprint(col))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("pipeline: mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%d.pbf", row))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("pipeline: write %s: %w", path, err)
	}
	return nil
}
