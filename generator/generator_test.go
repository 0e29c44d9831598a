package generator

import (
	"testing"

	"github.com/hupe1980/connectome/mask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMasks(t *testing.T, sourceLen, targetLen uint64, processes int) []mask.Mask {
	t.Helper()

	masks := make([]mask.Mask, processes)
	for p := range masks {
		masks[p].Sources = []mask.Interval{{Left: 0, Right: sourceLen - 1, Stride: 1}}
		masks[p].Targets = []mask.Interval{{Left: uint64(p), Right: targetLen - 1, Stride: uint64(processes)}}
	}
	return masks
}

func TestScripted_MaskFiltering(t *testing.T) {
	script := []Triple{
		{Source: 0, Target: 0},
		{Source: 1, Target: 1},
		{Source: 2, Target: 2},
		{Source: 3, Target: 3},
		{Source: 19, Target: 9},
		{Source: 20, Target: 0}, // source outside the dense space
	}

	g := NewScripted(0, script...)
	assert.Equal(t, 0, g.Arity())

	// Rank 1 of 3: targets 1, 4, 7 within 0..9.
	g.SetMask(buildMasks(t, 20, 10, 3), 1)
	require.NoError(t, g.Start())

	var got []Triple
	for {
		tr, ok := g.Next()
		if !ok {
			break
		}
		got = append(got, tr)
	}

	assert.Equal(t, []Triple{{Source: 1, Target: 1}}, got)
}

func TestScripted_NoMaskYieldsNothing(t *testing.T) {
	g := NewScripted(0, Triple{Source: 0, Target: 0})
	require.NoError(t, g.Start())

	_, ok := g.Next()
	assert.False(t, ok)
}

func TestScripted_Rewind(t *testing.T) {
	g := NewScripted(0, Triple{Source: 0, Target: 0})
	g.SetMask(buildMasks(t, 1, 1, 1), 0)

	for run := 0; run < 2; run++ {
		require.NoError(t, g.Start())

		tr, ok := g.Next()
		require.True(t, ok, "run %d", run)
		assert.Equal(t, Triple{Source: 0, Target: 0}, tr)

		_, ok = g.Next()
		assert.False(t, ok, "run %d", run)
	}
}

func TestAllToAll(t *testing.T) {
	g := NewAllToAll()
	assert.Equal(t, 0, g.Arity())

	// Rank 0 of 2 with 3 sources and 4 targets: owns targets 0 and 2.
	g.SetMask(buildMasks(t, 3, 4, 2), 0)
	require.NoError(t, g.Start())

	var got []Triple
	for {
		tr, ok := g.Next()
		if !ok {
			break
		}
		got = append(got, tr)
	}

	assert.Equal(t, []Triple{
		{Source: 0, Target: 0},
		{Source: 1, Target: 0},
		{Source: 2, Target: 0},
		{Source: 0, Target: 2},
		{Source: 1, Target: 2},
		{Source: 2, Target: 2},
	}, got)
}

func TestAllToAll_WithParams(t *testing.T) {
	g := NewAllToAll(0.5, 1.5)
	assert.Equal(t, 2, g.Arity())

	g.SetMask(buildMasks(t, 1, 1, 1), 0)
	require.NoError(t, g.Start())

	tr, ok := g.Next()
	require.True(t, ok)
	assert.Equal(t, []float64{0.5, 1.5}, tr.Params)
}

func TestAllToAll_EmptyShard(t *testing.T) {
	// Rank 3 of 4 owns nothing from a single-element target range.
	masks := make([]mask.Mask, 4)
	masks[0].Targets = []mask.Interval{{Left: 0, Right: 0, Stride: 4}}
	for p := range masks {
		masks[p].Sources = []mask.Interval{{Left: 0, Right: 4, Stride: 1}}
	}

	g := NewAllToAll()
	g.SetMask(masks, 3)
	require.NoError(t, g.Start())

	_, ok := g.Next()
	assert.False(t, ok)
}
