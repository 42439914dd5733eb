package dem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRasterValidatesDimensions(t *testing.T) {
	_, err := NewRaster(2, 2, 1, 0, 0, []float64{1, 2, 3})
	require.Error(t, err)

	r, err := NewRaster(2, 2, 1, 0, 0, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 2, r.Cols())
	require.Equal(t, 2, r.Rows())
}

func TestXYAccessors(t *testing.T) {
	r, err := NewRaster(3, 3, 10, 100, 200, make([]float64, 9))
	require.NoError(t, err)
	require.InDelta(t, 100, r.X(0), 1e-9)
	require.InDelta(t, 110, r.X(1), 1e-9)
	// row 0 is the top: Y = bottom + (rows-row)*cell_size, decreasing as
	// row increases.
	require.InDelta(t, 230, r.Y(0), 1e-9)
	require.InDelta(t, 220, r.Y(1), 1e-9)
	require.InDelta(t, 210, r.Y(2), 1e-9)
}

func TestMinMax(t *testing.T) {
	r, err := NewRaster(2, 2, 1, 0, 0, []float64{5, -3, 10, 0})
	require.NoError(t, err)
	min, max := r.MinMax()
	require.InDelta(t, -3, min, 1e-9)
	require.InDelta(t, 10, max, 1e-9)
}
