package mask

import (
	"errors"

	"github.com/hupe1980/connectome/core"
	"github.com/hupe1980/connectome/rangeset"
)

// ErrInvalidProcessCount is returned when the process count is not positive.
var ErrInvalidProcessCount = errors.New("process count must be positive")

// Build constructs one Mask per process from the source and target
// RangeSets of a single connect call.
//
// Every process runs Build on identical inputs and obtains the identical
// full slice of masks, including those of all other ranks; ownership is
// partitioned without any message exchange. The result is read-only and
// recomputed per call.
//
// Source side: every range's generator-index span goes into every mask
// unmodified, stride 1.
//
// Target side: ownership of GID g is g mod processes. Within one contiguous
// range the owned GIDs of a given rank form a constant-stride pattern, so
// each rank's share of the range is a single Interval: it starts at the
// first member of the range that rank owns (local offset k) and strides by
// the process count up to the range's last index. A range shorter than the
// process count populates only its first Len offsets; the remaining ranks
// receive nothing from it.
func Build(sources, targets rangeset.RangeSet, processes int) ([]Mask, error) {
	if processes < 1 {
		return nil, ErrInvalidProcessCount
	}

	masks := make([]Mask, processes)

	for _, span := range sources.Spans() {
		iv := Interval{Left: span.Left, Right: span.Right, Stride: 1}
		for p := range masks {
			masks[p].Sources = append(masks[p].Sources, iv)
		}
	}

	tgtSpans := targets.Spans()
	for i, r := range targets {
		span := tgtSpans[i]

		offsets := uint64(processes)
		if n := r.Len(); n < offsets {
			offsets = n
		}

		for k := uint64(0); k < offsets; k++ {
			rank := core.Owner(r.First+core.GID(k), processes)
			masks[rank].Targets = append(masks[rank].Targets, Interval{
				Left:   span.Left + k,
				Right:  span.Right,
				Stride: uint64(processes),
			})
		}
	}

	return masks, nil
}
