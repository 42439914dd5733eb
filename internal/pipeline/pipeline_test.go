package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalcMaxLOD(t *testing.T) {
	// ceil(log2(max(1, 1024*10/2048))) = ceil(log2(5)) = 3
	require.Equal(t, 3, CalcMaxLOD(1024, 2048))

	// a tiny world never goes negative: ratio clamps to 1, log2(1) = 0
	require.Equal(t, 0, CalcMaxLOD(1, 1000))
}

func TestPolicyForFallsBackToDefault(t *testing.T) {
	require.Equal(t, defaultPolicy, policyFor("unregistered-layer"))
	require.NotEqual(t, defaultPolicy, policyFor("contours"))
}
