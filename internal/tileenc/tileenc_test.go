package tileenc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilecraft/maptiles/internal/collections"
	"github.com/tilecraft/maptiles/internal/feature"
	"github.com/tilecraft/maptiles/internal/geom"
)

func TestEncodeProducesNonEmptyTileForCoveredFeature(t *testing.T) {
	col := collections.New()
	col.Add("mount", &feature.Feature{
		Geometry:   geom.Point{512, 512},
		Properties: feature.Properties{"elevation": feature.NumberValue(100)},
	})

	visible := map[string]LayerPolicy{"mount": {SimplifyEpsilon: 0, LineLimit: 0, AreaLimit: 0}}
	data, err := Encode(col, 2048, 0, 0, visible)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}

func TestEncodeEmitsEmptyTileWithNoOverlappingFeatures(t *testing.T) {
	col := collections.New()
	col.Add("mount", &feature.Feature{
		Geometry: geom.Point{99999, 99999},
	})

	visible := map[string]LayerPolicy{"mount": {}}
	data, err := Encode(col, 2048, 0, 0, visible)
	require.NoError(t, err)
	// an empty tile is still a valid (zero-layer) MVT payload
	require.NotNil(t, data)
}
