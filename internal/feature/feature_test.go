package feature

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilecraft/maptiles/internal/geom"
)

func TestPropertyValueKinds(t *testing.T) {
	s := StringValue("hello")
	require.True(t, s.IsString())
	v, ok := s.StringValue()
	require.True(t, ok)
	require.Equal(t, "hello", v)

	n := NumberValue(3.5)
	require.True(t, n.IsNumber())

	b := BoolValue(true)
	require.True(t, b.IsBool())
}

func TestFeatureCloneIsIndependent(t *testing.T) {
	f := &Feature{
		Geometry:   geom.Point{1, 2},
		Properties: Properties{"k": StringValue("v")},
	}
	clone := f.Clone()
	clone.Properties["k"] = StringValue("changed")
	require.Equal(t, "v", mustString(t, f.Properties["k"]))
}

func mustString(t *testing.T, v PropertyValue) string {
	t.Helper()
	s, ok := v.StringValue()
	require.True(t, ok)
	return s
}
