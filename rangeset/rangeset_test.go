package rangeset

import (
	"testing"

	"github.com/hupe1980/connectome/core"
	"github.com/hupe1980/connectome/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange_Len(t *testing.T) {
	assert.Equal(t, uint64(1), Range{First: 5, Last: 5}.Len())
	assert.Equal(t, uint64(20), Range{First: 1, Last: 20}.Len())
}

func TestRange_Contains(t *testing.T) {
	r := Range{First: 10, Last: 20}

	assert.True(t, r.Contains(10))
	assert.True(t, r.Contains(15))
	assert.True(t, r.Contains(20))
	assert.False(t, r.Contains(9))
	assert.False(t, r.Contains(21))
}

func TestRangeSet_Size(t *testing.T) {
	rs := RangeSet{{First: 1, Last: 3}, {First: 7, Last: 7}, {First: 9, Last: 12}}
	assert.Equal(t, uint64(8), rs.Size())
	assert.Equal(t, uint64(0), RangeSet(nil).Size())
}

func TestRangeSet_GIDs(t *testing.T) {
	rs := RangeSet{{First: 1, Last: 3}, {First: 7, Last: 8}}
	assert.Equal(t, []core.GID{1, 2, 3, 7, 8}, rs.GIDs())
}

func TestRangeSet_At(t *testing.T) {
	rs := RangeSet{{First: 1, Last: 3}, {First: 7, Last: 8}}

	for i, want := range []core.GID{1, 2, 3, 7, 8} {
		gid, ok := rs.At(uint64(i))
		require.True(t, ok)
		assert.Equal(t, want, gid)
	}

	_, ok := rs.At(5)
	assert.False(t, ok)
}

func TestRangeSet_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rs      RangeSet
		wantErr bool
	}{
		{"empty", nil, false},
		{"single", RangeSet{{First: 1, Last: 5}}, false},
		{"disjoint non-adjacent", RangeSet{{First: 1, Last: 5}, {First: 7, Last: 9}}, false},
		{"inverted range", RangeSet{{First: 5, Last: 1}}, true},
		{"adjacent ranges", RangeSet{{First: 1, Last: 5}, {First: 6, Last: 9}}, true},
		{"overlapping ranges", RangeSet{{First: 1, Last: 5}, {First: 4, Last: 9}}, true},
		{"out of order", RangeSet{{First: 7, Last: 9}, {First: 1, Last: 5}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rs.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRangeSet_Spans(t *testing.T) {
	rs := RangeSet{{First: 1, Last: 3}, {First: 7, Last: 7}, {First: 9, Last: 12}}

	assert.Equal(t, []Span{
		{Left: 0, Right: 2},
		{Left: 3, Right: 3},
		{Left: 4, Right: 7},
	}, rs.Spans())
}

func TestRangeSet_Spans_Additivity(t *testing.T) {
	rng := testutil.NewRNG(99)

	ids := rng.RandomPopulation(1, 5_000, 0.2, 30)
	rs, err := Extract(ids)
	require.NoError(t, err)

	spans := rs.Spans()
	require.Len(t, spans, len(rs))

	// Span i starts exactly at the sum of lengths of ranges 0..i and the
	// spans tile the dense index space without gaps.
	var cum uint64
	for i, s := range spans {
		assert.Equal(t, cum, s.Left, "span %d", i)
		assert.Equal(t, rs[i].Len(), s.Len(), "span %d", i)
		cum += rs[i].Len()
	}
	assert.Equal(t, rs.Size(), cum)
}
