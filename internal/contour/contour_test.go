package contour

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilecraft/maptiles/internal/collections"
	"github.com/tilecraft/maptiles/internal/dem"
)

func TestBuildEmitsOneFeaturePerIntegerThreshold(t *testing.T) {
	r, err := dem.NewRaster(2, 2, 1, 0, 0, []float64{0, 6, 1, 7})
	require.NoError(t, err)

	col := collections.New()
	Build(r, col)

	base := col[BaseLayer]
	require.NotNil(t, base)
	require.Len(t, base.Features, 8) // floor(0)..ceil(7) inclusive
}

func TestSubLayersPreCreated(t *testing.T) {
	r, err := dem.NewRaster(2, 2, 1, 0, 0, []float64{0, 6, 1, 7})
	require.NoError(t, err)

	col := collections.New()
	Build(r, col)

	for _, name := range subLayers {
		require.Contains(t, col, name)
	}
}
