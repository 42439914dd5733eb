package projector

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/tilecraft/maptiles/internal/collections"
	"github.com/tilecraft/maptiles/internal/feature"
	"github.com/tilecraft/maptiles/internal/geom"
)

func TestProjectorScenario1(t *testing.T) {
	col := collections.New()
	col.Add("points", &feature.Feature{Geometry: geom.Point{1, 2}})

	p := New(col, 1024, 2048, 3)

	pt := p.Collections()["points"].Features[0].Geometry.(geom.Point)
	require.InDelta(t, 16, pt[0], 1e-9)
	require.InDelta(t, 16352, pt[1], 1e-9)

	require.NoError(t, p.DecreaseLOD())
	pt = p.Collections()["points"].Features[0].Geometry.(geom.Point)
	require.InDelta(t, 8, pt[0], 1e-9)
	require.InDelta(t, 8176, pt[1], 1e-9)

	require.NoError(t, p.DecreaseLOD())
	pt = p.Collections()["points"].Features[0].Geometry.(geom.Point)
	require.InDelta(t, 4, pt[0], 1e-9)
	require.InDelta(t, 4088, pt[1], 1e-9)

	require.NoError(t, p.DecreaseLOD())
	pt = p.Collections()["points"].Features[0].Geometry.(geom.Point)
	require.InDelta(t, 2, pt[0], 1e-9)
	require.InDelta(t, 2044, pt[1], 1e-9)

	require.Equal(t, 0, p.CurrentLOD())
	require.Error(t, p.DecreaseLOD())
}

func TestProjectorDoesNotMutateSource(t *testing.T) {
	col := collections.New()
	col.Add("points", &feature.Feature{Geometry: geom.Point{1, 2}})

	_ = New(col, 1024, 2048, 3)

	pt := col["points"].Features[0].Geometry.(geom.Point)
	require.Equal(t, orb.Point{1, 2}, orb.Point(pt))
}
