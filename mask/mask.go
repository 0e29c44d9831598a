package mask

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Mask describes, for one process, which generator indexes of the source
// and target populations it is responsible for.
//
// Sources is dense (stride 1) and identical on every process: each process
// holds the full source index space so that no communication is needed to
// agree on it. Targets is sharded: each interval carries a stride equal to
// the process count, restricting the process to the indexes whose GID it
// owns under the round-robin rule.
type Mask struct {
	Sources []Interval
	Targets []Interval
}

func union(ivs []Interval) *roaring64.Bitmap {
	bm := roaring64.New()
	for _, iv := range ivs {
		bm.Or(iv.Bitmap())
	}
	return bm
}

// SourceBitmap returns the source index space as a roaring bitmap.
func (m Mask) SourceBitmap() *roaring64.Bitmap {
	return union(m.Sources)
}

// TargetBitmap returns this process's target indexes as a roaring bitmap.
func (m Mask) TargetBitmap() *roaring64.Bitmap {
	return union(m.Targets)
}

// ContainsTarget reports whether the target generator index belongs to this
// process's shard.
func (m Mask) ContainsTarget(index uint64) bool {
	for _, iv := range m.Targets {
		if iv.Contains(index) {
			return true
		}
	}
	return false
}

// ContainsSource reports whether the source generator index is covered.
func (m Mask) ContainsSource(index uint64) bool {
	for _, iv := range m.Sources {
		if iv.Contains(index) {
			return true
		}
	}
	return false
}

// Equal reports whether two masks encode identical interval lists.
// Replicated mask construction must be bit-identical across runs, so the
// comparison is structural, not set-based.
func (m Mask) Equal(other Mask) bool {
	if len(m.Sources) != len(other.Sources) || len(m.Targets) != len(other.Targets) {
		return false
	}
	for i, iv := range m.Sources {
		if iv != other.Sources[i] {
			return false
		}
	}
	for i, iv := range m.Targets {
		if iv != other.Targets[i] {
			return false
		}
	}
	return true
}
