package geom

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func TestMapTranslatesEveryVariant(t *testing.T) {
	translate := func(p orb.Point) orb.Point { return orb.Point{p[0] + 1, p[1] + 1} }

	cases := []Geometry{
		Point{0, 0},
		MultiPoint{{0, 0}, {1, 1}},
		Segment{A: orb.Point{0, 0}, B: orb.Point{1, 1}},
		LineString{{0, 0}, {1, 1}},
		Polygon{orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 0}}},
		MultiLineString{{{0, 0}, {1, 1}}},
		Ring{{0, 0}, {1, 0}, {1, 1}, {0, 0}},
		MultiPolygon{{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}},
		Rectangle{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}},
		Triangle{A: orb.Point{0, 0}, B: orb.Point{1, 0}, C: orb.Point{1, 1}},
		Collection{Point{0, 0}},
	}

	for _, g := range cases {
		out := Map(g, translate)
		require.NotEqual(t, g.Bound(), out.Bound(), "%T bound should move after translation", g)
	}
}

func TestCloneIsIndependentOfSource(t *testing.T) {
	ls := LineString{{0, 0}, {1, 1}}
	clone := Clone(ls).(LineString)
	clone[0] = orb.Point{99, 99}
	require.NotEqual(t, ls[0], clone[0])
}

func TestPolygonArea(t *testing.T) {
	square := Polygon{orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}}
	require.InDelta(t, 100, square.Area(), 1e-9)
}

func TestSegmentLength(t *testing.T) {
	s := Segment{A: orb.Point{0, 0}, B: orb.Point{3, 4}}
	require.InDelta(t, 5, s.Length(), 1e-9)
}
