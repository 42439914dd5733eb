package simplify

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/tilecraft/maptiles/internal/geom"
)

func TestSimplifyPointsUnchanged(t *testing.T) {
	p := geom.Point{1, 2}
	require.Equal(t, p, Simplify(p, 100))

	mp := geom.MultiPoint{{1, 2}, {3, 4}}
	require.Equal(t, mp, Simplify(mp, 100))
}

func TestSimplifySegmentUnchanged(t *testing.T) {
	s := geom.Segment{A: orb.Point{0, 0}, B: orb.Point{10, 10}}
	require.Equal(t, s, Simplify(s, 100))
}

func TestSimplifyLineStringReducesPoints(t *testing.T) {
	ls := geom.LineString{{0, 0}, {1, 0.01}, {2, 0}, {3, 0.01}, {4, 0}}
	out := Simplify(ls, 1).(geom.LineString)
	require.LessOrEqual(t, len(out), len(ls))
	require.Equal(t, ls[0], out[0])
	require.Equal(t, ls[len(ls)-1], out[len(out)-1])
}

func TestRemoveEmptyKeepsPoints(t *testing.T) {
	drop, err := RemoveEmpty(geom.Point{0, 0}, 100, 100)
	require.NoError(t, err)
	require.False(t, drop)
}

func TestRemoveEmptyDropsShortSegment(t *testing.T) {
	s := geom.Segment{A: orb.Point{0, 0}, B: orb.Point{0, 0.001}}
	drop, err := RemoveEmpty(s, 1, 0)
	require.NoError(t, err)
	require.True(t, drop)
}

func TestRemoveEmptyKeepsLongSegment(t *testing.T) {
	s := geom.Segment{A: orb.Point{0, 0}, B: orb.Point{0, 10}}
	drop, err := RemoveEmpty(s, 1, 0)
	require.NoError(t, err)
	require.False(t, drop)
}

func TestRemoveEmptyDropsTinyPolygon(t *testing.T) {
	p := geom.Polygon{orb.Ring{{0, 0}, {0.01, 0}, {0.01, 0.01}, {0, 0.01}, {0, 0}}}
	drop, err := RemoveEmpty(p, 0, 1)
	require.NoError(t, err)
	require.True(t, drop)
}

func TestRemoveEmptyFlagsUnsupportedVariant(t *testing.T) {
	_, err := RemoveEmpty(geom.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 0}}, 1, 1)
	require.Error(t, err)
}
