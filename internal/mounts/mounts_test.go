package mounts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilecraft/maptiles/internal/dem"
)

func grid3x3Peak() *dem.Raster {
	// a single peak at the center of a 3x3 grid
	values := []float64{
		1, 1, 1,
		1, 9, 1,
		1, 1, 1,
	}
	r, _ := dem.NewRaster(3, 3, 10, 0, 0, values)
	return r
}

func TestFindPeaksDetectsCenterMaximum(t *testing.T) {
	r := grid3x3Peak()
	peaks := FindPeaks(r)
	require.Len(t, peaks, 1)
	require.Equal(t, 1, peaks[0].Col)
	require.Equal(t, 1, peaks[0].Row)
	require.InDelta(t, 9, peaks[0].Elevation, 1e-9)
}

func TestPeakPositionUsesRowForY(t *testing.T) {
	r := grid3x3Peak()
	peaks := FindPeaks(r)
	require.Len(t, peaks, 1)
	// col=1,row=1 -> X(1) and Y(1) must both be evaluated, not X(1) twice.
	require.InDelta(t, r.X(1), peaks[0].X, 1e-9)
	require.InDelta(t, r.Y(1), peaks[0].Y, 1e-9)
}

func TestThinSuppressesNearbyLowerPeaks(t *testing.T) {
	peaks := []Peak{
		{X: 0, Y: 0, Elevation: 10},
		{X: 1, Y: 0, Elevation: 20}, // close to the first, higher
		{X: 100, Y: 100, Elevation: 5},
	}
	kept := Thin(peaks, 5)
	require.Len(t, kept, 2)

	var elevations []float64
	for _, p := range kept {
		elevations = append(elevations, p.Elevation)
	}
	require.Contains(t, elevations, 20.0)
	require.Contains(t, elevations, 5.0)
	require.NotContains(t, elevations, 10.0)
}
