package collections

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilecraft/maptiles/internal/feature"
	"github.com/tilecraft/maptiles/internal/geom"
)

func TestEnsureCreatesEmptyLayerOnce(t *testing.T) {
	c := New()
	fc1 := c.Ensure("contours/100")
	fc2 := c.Ensure("contours/100")
	require.Same(t, fc1, fc2)
}

func TestCloneIsDeep(t *testing.T) {
	c := New()
	c.Add("mount", &feature.Feature{Geometry: geom.Point{1, 2}})

	clone := c.Clone()
	clone["mount"].Features[0].Geometry = geom.Point{99, 99}

	require.Equal(t, geom.Point{1, 2}, c["mount"].Features[0].Geometry)
}
