package mask

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Interval encodes the generator-index sequence Left, Left+Stride,
// Left+2*Stride, ... up to and including the largest member <= Right.
// A dense interval has Stride 1.
//
// The stride encoding describes "every Nth index of this block" in O(1)
// space, which is what keeps a per-process mask small no matter how large
// the population is.
type Interval struct {
	Left   uint64
	Right  uint64
	Stride uint64
}

// Count returns the number of indexes the interval encodes.
func (iv Interval) Count() uint64 {
	if iv.Right < iv.Left {
		return 0
	}
	return (iv.Right-iv.Left)/iv.Stride + 1
}

// Contains reports whether index is a member of the encoded sequence.
func (iv Interval) Contains(index uint64) bool {
	return index >= iv.Left && index <= iv.Right && (index-iv.Left)%iv.Stride == 0
}

// All iterates the encoded indexes in ascending order.
func (iv Interval) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for index := iv.Left; index <= iv.Right; index += iv.Stride {
			if !yield(index) {
				return
			}
		}
	}
}

// Expand materializes the encoded indexes in ascending order.
func (iv Interval) Expand() []uint64 {
	indexes := make([]uint64, 0, iv.Count())
	for index := range iv.All() {
		indexes = append(indexes, index)
	}
	return indexes
}

// Bitmap returns the encoded indexes as a roaring bitmap.
func (iv Interval) Bitmap() *roaring64.Bitmap {
	bm := roaring64.New()
	if iv.Stride == 1 {
		bm.AddRange(iv.Left, iv.Right+1)
		return bm
	}
	for index := range iv.All() {
		bm.Add(index)
	}
	return bm
}

// String returns a string representation of the interval.
func (iv Interval) String() string {
	return fmt.Sprintf("{%d..%d/%d}", iv.Left, iv.Right, iv.Stride)
}
