package clip

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/tilecraft/maptiles/internal/geom"
)

func unitRect() Rect {
	return Rect{Min: orb.Point{0, 0}, Max: orb.Point{10, 10}}
}

func TestClipPointContainment(t *testing.T) {
	rect := unitRect()

	out, ok := Clip(geom.Point{5, 5}, rect)
	require.True(t, ok)
	require.Equal(t, geom.Point{5, 5}, out)

	_, ok = Clip(geom.Point{50, 50}, rect)
	require.False(t, ok)
}

func TestClipSegmentFullyInside(t *testing.T) {
	rect := unitRect()
	s := geom.Segment{A: orb.Point{1, 1}, B: orb.Point{9, 9}}

	out, ok := Clip(s, rect)
	require.True(t, ok)
	require.Equal(t, s, out)
}

func TestClipSegmentPartiallyOutside(t *testing.T) {
	rect := unitRect()
	s := geom.Segment{A: orb.Point{-5, 5}, B: orb.Point{5, 5}}

	out, ok := Clip(s, rect)
	require.True(t, ok)
	clipped := out.(geom.Segment)
	require.InDelta(t, 0, clipped.A[0], 1e-9)
	require.InDelta(t, 5, clipped.B[0], 1e-9)
}

func TestClipSegmentFullyOutside(t *testing.T) {
	rect := unitRect()
	s := geom.Segment{A: orb.Point{20, 20}, B: orb.Point{30, 30}}

	_, ok := Clip(s, rect)
	require.False(t, ok)
}

func TestClipPolygonIdempotent(t *testing.T) {
	rect := unitRect()
	p := geom.Polygon{orb.Ring{{-5, -5}, {15, -5}, {15, 15}, {-5, 15}, {-5, -5}}}

	once, ok := Clip(p, rect)
	require.True(t, ok)

	twice, ok := Clip(once, rect)
	require.True(t, ok)

	require.Equal(t, once.(geom.Polygon).Area(), twice.(geom.Polygon).Area())
}

func TestClipPolygonContainedResultWithinRect(t *testing.T) {
	rect := unitRect()
	p := geom.Polygon{orb.Ring{{-5, -5}, {15, -5}, {15, 15}, {-5, 15}, {-5, -5}}}

	out, ok := Clip(p, rect)
	require.True(t, ok)
	b := out.Bound()
	require.GreaterOrEqual(t, b.Min[0], rect.Min[0]-1e-9)
	require.GreaterOrEqual(t, b.Min[1], rect.Min[1]-1e-9)
	require.LessOrEqual(t, b.Max[0], rect.Max[0]+1e-9)
	require.LessOrEqual(t, b.Max[1], rect.Max[1]+1e-9)
}

func TestClipUnsupportedVariantReturnsNone(t *testing.T) {
	_, ok := Clip(geom.LineString{{0, 0}, {1, 1}, {2, 2}}, unitRect())
	require.False(t, ok)
}

func TestClipDisjointBoundsAlwaysFail(t *testing.T) {
	rect := unitRect()
	far := geom.Polygon{orb.Ring{{100, 100}, {110, 100}, {110, 110}, {100, 110}, {100, 100}}}
	_, ok := Clip(far, rect)
	require.False(t, ok)
}
