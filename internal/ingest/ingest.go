// Package ingest implements component G: recursively reading every vector
// source file under an input bundle's geojson directory into the layer
// registry, one layer per file. A file's layer name is its path relative
// to the root directory with extensions stripped and path separators
// normalized to "/", so "roads/track.geojson" becomes layer "roads/track".
package ingest

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/paulmach/orb"
	orbgeojson "github.com/paulmach/orb/geojson"
	"golang.org/x/sync/errgroup"

	"github.com/tilecraft/maptiles/internal/collections"
	"github.com/tilecraft/maptiles/internal/feature"
	"github.com/tilecraft/maptiles/internal/geom"
)

// Dir walks every *.geojson and *.geojson.gz file under dir, recursing into
// subdirectories, and merges them into col. Files are decoded concurrently;
// decoding is the only parallel step, since appends into col happen one
// file at a time under a single mutex to keep the registry race-free.
func Dir(ctx context.Context, dir string, col collections.Collections) error {
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	err := filepath.WalkDir(dir, func(path string, e fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if e.IsDir() {
			return nil
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".geojson") && !strings.HasSuffix(name, ".geojson.gz") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return fmt.Errorf("ingest: relative path for %s: %w", path, err)
		}
		layer := layerNameFor(rel)

		g.Go(func() error {
			fc, err := loadFile(path)
			if err != nil {
				return fmt.Errorf("ingest: %s: %w", path, err)
			}
			mu.Lock()
			defer mu.Unlock()
			for _, f := range fc.Features {
				col.Add(layer, f)
			}
			return nil
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("ingest: walk %s: %w", dir, err)
	}
	return g.Wait()
}

func layerNameFor(relPath string) string {
	slash := filepath.ToSlash(relPath)
	name := strings.TrimSuffix(slash, ".gz")
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func loadFile(path string) (*feature.FeatureCollection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	src, err := orbgeojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}

	return convert(src)
}

func convert(src *orbgeojson.FeatureCollection) (*feature.FeatureCollection, error) {
	out := feature.NewFeatureCollection()
	for _, f := range src.Features {
		g, ok := convertGeometry(f.Geometry)
		if !ok {
			continue
		}
		props := make(feature.Properties, len(f.Properties))
		for k, v := range f.Properties {
			props[k] = convertValue(v)
		}
		out.Append(&feature.Feature{Geometry: g, Properties: props})
	}
	return out, nil
}

// convertGeometry maps an orb.Geometry decoded from GeoJSON onto the
// pipeline's tagged union. GeoJSON has no two-point "segment" variant
// distinct from a line string, so a two-point LineString is treated as a
// Segment: that is exactly the shape the clip operator accepts, and the
// ingester is the only place a file's raw line data enters the registry.
func convertGeometry(g orb.Geometry) (geom.Geometry, bool) {
	switch v := g.(type) {
	case orb.Point:
		return geom.Point(v), true
	case orb.MultiPoint:
		return geom.MultiPoint(v), true
	case orb.LineString:
		if len(v) == 2 {
			return geom.Segment{A: v[0], B: v[1]}, true
		}
		return geom.LineString(v), true
	case orb.MultiLineString:
		return geom.MultiLineString(v), true
	case orb.Polygon:
		return geom.Polygon(v), true
	case orb.MultiPolygon:
		return geom.MultiPolygon(v), true
	case orb.Collection:
		out := make(geom.Collection, 0, len(v))
		for _, child := range v {
			if cg, ok := convertGeometry(child); ok {
				out = append(out, cg)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

func convertValue(v any) feature.PropertyValue {
	switch t := v.(type) {
	case nil:
		return feature.NullValue()
	case string:
		return feature.StringValue(t)
	case bool:
		return feature.BoolValue(t)
	case float64:
		return feature.NumberValue(t)
	case []any:
		out := make([]feature.PropertyValue, len(t))
		for i, e := range t {
			out[i] = convertValue(e)
		}
		return feature.ArrayValue(out)
	default:
		return feature.StringValue(fmt.Sprintf("%v", t))
	}
}
