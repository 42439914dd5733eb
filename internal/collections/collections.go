// Package collections implements the layer registry (component H): a
// named set of feature collections that every later stage (contour/mount
// builders, the ingester, the LOD projector, the tile encoder) reads from
// and writes into by layer name.
package collections

import "github.com/tilecraft/maptiles/internal/feature"

// Collections is the layer registry: layer name -> its feature collection.
type Collections map[string]*feature.FeatureCollection

// New returns an empty registry.
func New() Collections {
	return make(Collections)
}

// Ensure returns the named layer's collection, creating an empty one if it
// does not exist yet. The contour builder uses this to pre-create the
// empty sub-layers (contours/05, contours/10, ...) before any feature has
// been assigned to them.
func (c Collections) Ensure(layer string) *feature.FeatureCollection {
	fc, ok := c[layer]
	if !ok {
		fc = feature.NewFeatureCollection()
		c[layer] = fc
	}
	return fc
}

// Add appends f to the named layer, creating the layer if needed.
func (c Collections) Add(layer string, f *feature.Feature) {
	c.Ensure(layer).Append(f)
}

// Names returns the registered layer names in no particular order.
func (c Collections) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	return names
}

// Clone deep-copies every layer's collection, so the LOD projector's
// per-LOD coordinate mutation never corrupts the shared source registry.
func (c Collections) Clone() Collections {
	out := make(Collections, len(c))
	for name, fc := range c {
		out[name] = fc.Clone()
	}
	return out
}
