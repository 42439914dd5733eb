// Package metajson is an external collaborator: it loads the input
// bundle's meta.json, which carries the map's world size and the bundle
// name used in tile.json.
package metajson

import (
	"encoding/json"
	"fmt"
	"os"
)

// Meta is the contents of an input bundle's meta.json: an immutable
// record describing the map's authorship, display, and geographic
// placement alongside the world-size figure the LOD projector needs.
type Meta struct {
	Author          string  `json:"author"`
	DisplayName     string  `json:"displayName"`
	ElevationOffset float64 `json:"elevationOffset"`
	GridOffsetX     float64 `json:"gridOffsetX"`
	GridOffsetY     float64 `json:"gridOffsetY"`
	Grids           []string `json:"grids"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	ColorOutside    string  `json:"colorOutside,omitempty"`
	Version         string  `json:"version"`
	WorldName       string  `json:"worldName"`
	WorldSize       float64 `json:"worldSize"`
}

// Load reads and validates meta.json at path.
func Load(path string) (*Meta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("metajson: read %s: %w", path, err)
	}
	var m Meta
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("metajson: parse %s: %w", path, err)
	}
	if m.WorldSize <= 0 {
		return nil, fmt.Errorf("metajson: worldSize must be positive, got %v", m.WorldSize)
	}
	return &m, nil
}
