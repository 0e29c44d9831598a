package rangeset

import (
	"testing"

	"github.com/hupe1980/connectome/core"
	"github.com/hupe1980/connectome/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		ids  []core.GID
		want RangeSet
	}{
		{
			name: "empty",
			ids:  nil,
			want: nil,
		},
		{
			name: "single element",
			ids:  []core.GID{42},
			want: RangeSet{{First: 42, Last: 42}},
		},
		{
			name: "one contiguous run",
			ids:  []core.GID{1, 2, 3, 4, 5},
			want: RangeSet{{First: 1, Last: 5}},
		},
		{
			name: "two runs",
			ids:  []core.GID{1, 2, 3, 7, 8},
			want: RangeSet{{First: 1, Last: 3}, {First: 7, Last: 8}},
		},
		{
			name: "all singletons",
			ids:  []core.GID{2, 4, 6, 8},
			want: RangeSet{{First: 2, Last: 2}, {First: 4, Last: 4}, {First: 6, Last: 6}, {First: 8, Last: 8}},
		},
		{
			name: "break at last position",
			ids:  []core.GID{10, 11, 12, 20},
			want: RangeSet{{First: 10, Last: 12}, {First: 20, Last: 20}},
		},
		{
			name: "break at first position",
			ids:  []core.GID{10, 20, 21, 22},
			want: RangeSet{{First: 10, Last: 10}, {First: 20, Last: 22}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.ids)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, got.Validate())
		})
	}
}

func TestExtract_RoundTrip(t *testing.T) {
	rng := testutil.NewRNG(42)

	for _, size := range []int{1, 2, 3, 17, 256, 10_000} {
		for _, gapProb := range []float64{0, 0.01, 0.3, 1} {
			ids := rng.RandomPopulation(1, size, gapProb, 100)

			rs, err := Extract(ids)
			require.NoError(t, err)

			// Decoding the set reproduces the input exactly.
			assert.Equal(t, ids, rs.GIDs(), "size=%d gapProb=%v", size, gapProb)

			// Minimality: one range per maximal contiguous run.
			assert.Equal(t, testutil.Runs(ids), len(rs), "size=%d gapProb=%v", size, gapProb)
			assert.NoError(t, rs.Validate())
		}
	}
}

func TestFindRightBorder(t *testing.T) {
	tests := []struct {
		name  string
		ids   []core.GID
		left  int
		right int
	}{
		{"left is last position", []core.GID{1, 2, 5}, 2, 2},
		{"full run", []core.GID{3, 4, 5, 6}, 0, 3},
		{"run of one", []core.GID{3, 9, 10, 11}, 0, 0},
		{"break in the middle", []core.GID{3, 4, 5, 9, 10}, 0, 2},
		{"second run to the end", []core.GID{3, 4, 5, 9, 10}, 3, 4},
		{"break right after left", []core.GID{0, 1, 5, 6, 7, 8, 9, 10, 11, 12}, 0, 1},
		{"break right before end", []core.GID{0, 1, 2, 3, 4, 5, 6, 7, 8, 100}, 0, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			right, err := findRightBorder(tt.ids, tt.left)
			require.NoError(t, err)
			assert.Equal(t, tt.right, right)
		})
	}
}

func TestFindRightBorder_Exhaustive(t *testing.T) {
	// Every left position against every gap layout of a small universe.
	rng := testutil.NewRNG(7)

	for trial := 0; trial < 200; trial++ {
		ids := rng.RandomPopulation(core.GID(rng.Intn(10)), 1+rng.Intn(40), 0.35, 5)

		for left := range ids {
			right, err := findRightBorder(ids, left)
			require.NoError(t, err)

			// Linear-scan oracle.
			want := left
			for want < len(ids)-1 && ids[want+1] == ids[want]+1 {
				want++
			}
			assert.Equal(t, want, right, "ids=%v left=%d", ids, left)
		}
	}
}
