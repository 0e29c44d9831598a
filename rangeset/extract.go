package rangeset

import (
	"errors"

	"github.com/hupe1980/connectome/core"
)

// ErrBorderSearch is returned when the contiguity search fails to settle on
// a right border for a well-formed input.
//
// This signals a broken invariant inside the extractor itself, not bad
// data; callers must treat it as fatal and never retry.
var ErrBorderSearch = errors.New("right-border search did not terminate")

// findRightBorder returns the largest position right >= left such that
// ids[left..right] is an arithmetic run with step 1, i.e.
// ids[right]-ids[left] == right-left.
//
// The property is not monotonic over the slice (contiguity can break at any
// position), so instead of a classic binary search the probe starts at the
// last valid position with a step of half the remaining span, moves right
// while the candidate window stays contiguous and left once it breaks,
// halving the step every iteration. It settles when a contiguous window
// reaches the end of the slice, or when the probe revisits the leftmost
// position known to break contiguity; in both cases the last contiguous
// candidate visited is the border. O(log n) probes per run.
func findRightBorder(ids []core.GID, left int) (int, error) {
	last := len(ids) - 1
	if left == last {
		return left, nil
	}

	contiguous := func(i int) bool {
		return ids[i]-ids[left] == core.GID(i-left)
	}

	step := (last - left) / 2
	if step < 1 {
		step = 1
	}

	i := last
	border := -1 // last contiguous candidate visited
	broken := -1 // leftmost position known to break contiguity

	// The probe budget is a guard only; the search settles in O(log n)
	// probes plus a short unit-step walk for any strictly ascending input.
	for probe := 0; probe < 2*(last-left)+64; probe++ {
		if contiguous(i) {
			border = i
			if i == last {
				return i, nil
			}
			i += step
		} else {
			broken = i
			i -= step
		}
		if step > 1 {
			step /= 2
		}
		if i == broken {
			if border < 0 {
				break
			}
			return border, nil
		}
	}

	return 0, ErrBorderSearch
}

// Extract decomposes a strictly ascending, duplicate-free sequence of GIDs
// into its minimal RangeSet: one Range per maximal contiguous run, in
// ascending order. Enumerating the result reproduces ids exactly.
//
// The whole decomposition is O(n) amortized regardless of how many runs the
// input contains.
func Extract(ids []core.GID) (RangeSet, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rs := make(RangeSet, 0, 1)

	left := 0
	for {
		right, err := findRightBorder(ids, left)
		if err != nil {
			return nil, err
		}

		rs = append(rs, Range{First: ids[left], Last: ids[right]})

		if right == len(ids)-1 {
			return rs, nil
		}

		left = right + 1
	}
}
