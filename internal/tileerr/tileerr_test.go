package tileerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregatorKeepsFirstTenVerbatim(t *testing.T) {
	agg := &Aggregator{}
	for i := 0; i < 15; i++ {
		agg.Add(&Error{Kind: KindEncode, LOD: 0, Col: i, Row: 0, Err: errors.New("boom")})
	}
	require.Equal(t, 15, agg.Total())
	require.Len(t, agg.Reported(), 10)
	require.Error(t, agg.Err())
}

func TestAggregatorNoErrorsYieldsNilErr(t *testing.T) {
	agg := &Aggregator{}
	require.NoError(t, agg.Err())
}
