package snapshot

import (
	"bytes"
	"context"
	"testing"

	"github.com/hupe1980/connectome/blobstore"
	"github.com/hupe1980/connectome/codec"
	"github.com/hupe1980/connectome/mask"
	"github.com/hupe1980/connectome/rangeset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot(rank int) *Snapshot {
	return &Snapshot{
		Rank:      rank,
		Processes: 3,
		Sources:   rangeset.RangeSet{{First: 1, Last: 20}},
		Targets:   rangeset.RangeSet{{First: 21, Last: 30}},
		Masks: []mask.Mask{
			{
				Sources: []mask.Interval{{Left: 0, Right: 19, Stride: 1}},
				Targets: []mask.Interval{{Left: 0, Right: 9, Stride: 3}},
			},
			{
				Sources: []mask.Interval{{Left: 0, Right: 19, Stride: 1}},
				Targets: []mask.Interval{{Left: 1, Right: 9, Stride: 3}},
			},
			{
				Sources: []mask.Interval{{Left: 0, Right: 19, Stride: 1}},
				Targets: []mask.Interval{{Left: 2, Right: 9, Stride: 3}},
			},
		},
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	compressions := []Compression{None{}, Zstd{}, LZ4{}}
	codecs := []codec.Codec{codec.JSON{}, codec.GoJSON{}}

	for _, comp := range compressions {
		for _, c := range codecs {
			t.Run(comp.Name()+"/"+c.Name(), func(t *testing.T) {
				in := testSnapshot(1)

				var buf bytes.Buffer
				require.NoError(t, Encode(&buf, in, func(o *Options) {
					o.Codec = c
					o.Compression = comp
				}))

				out, err := Decode(&buf)
				require.NoError(t, err)
				assert.Equal(t, in, out)
			})
		}
	}
}

func TestDecode_BadMagic(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("nota snapshot")))
	assert.Error(t, err)
}

func TestDecode_UnknownCodec(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(magic[:])
	require.NoError(t, writeHeader(&buf, version, "msgpack", "none"))

	_, err := Decode(&buf)
	assert.ErrorContains(t, err, "unknown codec")
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	in := testSnapshot(2)
	name := Name("run-7", 2)
	assert.Equal(t, "run-7/masks-rank0002.snap", name)

	require.NoError(t, Save(ctx, store, name, in))

	out, err := Load(ctx, store, name)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSnapshot_EqualDerived(t *testing.T) {
	a := testSnapshot(0)
	b := testSnapshot(2)

	// Same derivation from different ranks.
	assert.True(t, a.EqualDerived(b))

	// A diverging mask is detected.
	b.Masks[1].Targets[0].Left = 2
	assert.False(t, a.EqualDerived(b))

	// A diverging range set is detected.
	c := testSnapshot(0)
	c.Targets[0].Last = 31
	assert.False(t, a.EqualDerived(c))
}
