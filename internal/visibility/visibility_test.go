package visibility

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilecraft/maptiles/internal/collections"
	"github.com/tilecraft/maptiles/internal/feature"
	"github.com/tilecraft/maptiles/internal/geom"
	"github.com/tilecraft/maptiles/internal/layersettings"
)

func TestVisibleWithNoSettingIsHidden(t *testing.T) {
	reg, err := layersettings.Load("")
	require.NoError(t, err)
	require.False(t, Visible("anything", 0, 5, reg))
	require.False(t, Visible("anything", 5, 5, reg))
}

func TestFillContourSubLayersStridesByIndex(t *testing.T) {
	col := collections.New()
	base := col.Ensure("contours")
	for i := 0; i < 11; i++ {
		base.Append(&feature.Feature{
			Geometry:   geom.Point{float64(i), 0},
			Properties: feature.Properties{"elevation": feature.NumberValue(float64(i))},
		})
	}

	FillContourSubLayers(col)

	// 11 base features, stride 5 -> indices 0, 5, 10.
	require.Len(t, col["contours/05"].Features, 3)
	require.Len(t, col["contours/10"].Features, 2)
	require.Len(t, col["contours/50"].Features, 1)
	require.Len(t, col["contours/100"].Features, 1)
}
