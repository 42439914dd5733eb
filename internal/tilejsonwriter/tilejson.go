// Package tilejsonwriter is an external collaborator: it writes the
// tile.json sidecar describing the generated tile pyramid, carrying
// forward the original implementation's per-layer-name-pattern field
// documentation (tilejson.rs) rather than leaving vector_layers.fields
// empty.
package tilejsonwriter

import (
	"encoding/json"
	"os"
	"strings"
)

// VectorLayer describes one layer's presence and attribute schema in the
// tile pyramid.
type VectorLayer struct {
	ID     string            `json:"id"`
	Fields map[string]string `json:"fields"`
}

// TileJSON is the subset of the TileJSON 3.0 spec this pipeline emits.
type TileJSON struct {
	TileJSON     string        `json:"tilejson"`
	Name         string        `json:"name"`
	Tiles        []string      `json:"tiles"`
	MinZoom      int           `json:"minzoom"`
	MaxZoom      int           `json:"maxzoom"`
	VectorLayers []VectorLayer `json:"vector_layers"`
}

// fieldPatterns maps a layer-name prefix to the attribute schema the
// original's commands/mvt.rs documented for it.
var fieldPatterns = []struct {
	prefix string
	fields map[string]string
}{
	{"house", map[string]string{"color": "String", "height": "Number", "position": "String"}},
	{"mount", map[string]string{"elevation": "Number", "text": "String"}},
	{"contours", map[string]string{"elevation": "Number", "dem_elevation": "Number"}},
	{"locations", map[string]string{"name": "String", "radiusA": "Number", "radiusB": "Number", "angle": "Number"}},
}

func fieldsFor(layer string) map[string]string {
	for _, p := range fieldPatterns {
		if strings.HasPrefix(layer, p.prefix) {
			return p.fields
		}
	}
	return map[string]string{}
}

// Build assembles a TileJSON document for the given bundle name, tile
// URL template, max LOD, and set of layer names present in the pyramid.
func Build(name, tileURLTemplate string, maxLOD int, layers []string) TileJSON {
	tj := TileJSON{
		TileJSON: "3.0.0",
		Name:     name,
		Tiles:    []string{tileURLTemplate},
		MinZoom:  0,
		MaxZoom:  maxLOD,
	}
	for _, l := range layers {
		tj.VectorLayers = append(tj.VectorLayers, VectorLayer{ID: l, Fields: fieldsFor(l)})
	}
	return tj
}

// Write marshals tj as indented JSON to path.
func Write(path string, tj TileJSON) error {
	data, err := json.MarshalIndent(tj, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
