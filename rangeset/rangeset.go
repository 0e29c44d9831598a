package rangeset

import (
	"fmt"
	"iter"

	"github.com/hupe1980/connectome/core"
)

// Range is a closed interval [First, Last] of GIDs that are all present in
// one population and contiguous (each exactly one more than its
// predecessor). Invariant: First <= Last.
type Range struct {
	First core.GID
	Last  core.GID
}

// Len returns the number of GIDs covered by the range.
// The convention is inclusive: Last - First + 1.
func (r Range) Len() uint64 {
	return uint64(r.Last-r.First) + 1
}

// Contains reports whether gid falls inside the range.
func (r Range) Contains(gid core.GID) bool {
	return r.First <= gid && gid <= r.Last
}

// String returns a string representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d..%d]", r.First, r.Last)
}

// RangeSet is an ordered sequence of disjoint, non-adjacent ranges covering
// exactly the GIDs of one population. Consecutive ranges satisfy
// rs[i].Last+1 < rs[i+1].First; adjacent runs are merged during extraction.
type RangeSet []Range

// Size returns the total number of GIDs covered by the set.
func (rs RangeSet) Size() uint64 {
	var n uint64
	for _, r := range rs {
		n += r.Len()
	}
	return n
}

// All iterates the covered GIDs in ascending order.
func (rs RangeSet) All() iter.Seq[core.GID] {
	return func(yield func(core.GID) bool) {
		for _, r := range rs {
			for gid := r.First; ; gid++ {
				if !yield(gid) {
					return
				}
				if gid == r.Last {
					break
				}
			}
		}
	}
}

// GIDs materializes the covered GIDs in ascending order.
func (rs RangeSet) GIDs() []core.GID {
	ids := make([]core.GID, 0, rs.Size())
	for gid := range rs.All() {
		ids = append(ids, gid)
	}
	return ids
}

// At returns the GID at the given generator index, the dense 0-based
// position within the set in ascending GID order.
func (rs RangeSet) At(index uint64) (core.GID, bool) {
	var cum uint64
	for _, r := range rs {
		if index < cum+r.Len() {
			return r.First + core.GID(index-cum), true
		}
		cum += r.Len()
	}
	return 0, false
}

// Validate checks the ordering and non-adjacency invariants.
func (rs RangeSet) Validate() error {
	for i, r := range rs {
		if r.First > r.Last {
			return fmt.Errorf("rangeset: range %d inverted: %s", i, r)
		}
		if i > 0 && (rs[i-1].Last >= r.First || r.First-rs[i-1].Last == 1) {
			return fmt.Errorf("rangeset: ranges %d and %d overlap or are adjacent: %s, %s", i-1, i, rs[i-1], r)
		}
	}
	return nil
}
