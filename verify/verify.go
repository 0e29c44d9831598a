// Package verify checks a complete per-process mask slice against the
// partition guarantees the connect protocol depends on: target shards are
// pairwise disjoint and cover the whole target index space, shard
// membership matches round-robin GID ownership, and the source mask is
// replicated identically on every process.
//
// The checks are diagnostics for deployments, not part of the connect
// path; they materialize every shard as a bitmap and are priced
// accordingly.
package verify

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/connectome/core"
	"github.com/hupe1980/connectome/mask"
	"github.com/hupe1980/connectome/rangeset"
)

// expandTargets materializes every rank's target shard concurrently.
func expandTargets(masks []mask.Mask) []*roaring64.Bitmap {
	bms := make([]*roaring64.Bitmap, len(masks))

	var g errgroup.Group
	for p := range masks {
		g.Go(func() error {
			bms[p] = masks[p].TargetBitmap()
			return nil
		})
	}
	_ = g.Wait() // expansion cannot fail

	return bms
}

// Partition checks that the target shards tile the dense generator-index
// space of the target population: pairwise disjoint, union complete.
func Partition(masks []mask.Mask, targets rangeset.RangeSet) error {
	bms := expandTargets(masks)

	union := roaring64.New()
	for p, bm := range bms {
		if union.Intersects(bm) {
			return fmt.Errorf("verify: target shard of process %d overlaps another shard", p)
		}
		union.Or(bm)
	}

	size := targets.Size()
	if got := union.GetCardinality(); got != size {
		return fmt.Errorf("verify: target shards cover %d of %d indexes", got, size)
	}
	if size > 0 && union.Maximum() != size-1 {
		return fmt.Errorf("verify: target shards reach index %d, want %d", union.Maximum(), size-1)
	}

	return nil
}

// Ownership checks that every sharded index maps to a GID its process owns
// under the round-robin rule.
func Ownership(masks []mask.Mask, targets rangeset.RangeSet) error {
	processes := len(masks)

	for p, bm := range expandTargets(masks) {
		it := bm.Iterator()
		for it.HasNext() {
			index := it.Next()

			gid, ok := targets.At(index)
			if !ok {
				return fmt.Errorf("verify: process %d holds index %d outside the target population", p, index)
			}
			if owner := core.Owner(gid, processes); owner != core.Rank(p) {
				return fmt.Errorf("verify: process %d holds index %d (gid %d) owned by process %d", p, index, gid, owner)
			}
		}
	}

	return nil
}

// Replication checks that every process carries the identical full dense
// source mask.
func Replication(masks []mask.Mask, sources rangeset.RangeSet) error {
	if len(masks) == 0 {
		return nil
	}

	for p := 1; p < len(masks); p++ {
		if len(masks[p].Sources) != len(masks[0].Sources) {
			return fmt.Errorf("verify: source mask of process %d differs from process 0", p)
		}
		for i, iv := range masks[p].Sources {
			if iv != masks[0].Sources[i] {
				return fmt.Errorf("verify: source mask of process %d differs from process 0 at interval %d", p, i)
			}
		}
	}

	bm := masks[0].SourceBitmap()
	size := sources.Size()
	if got := bm.GetCardinality(); got != size {
		return fmt.Errorf("verify: source mask covers %d of %d indexes", got, size)
	}
	if size > 0 && (bm.Minimum() != 0 || bm.Maximum() != size-1) {
		return fmt.Errorf("verify: source mask is not the dense space [0, %d)", size)
	}

	return nil
}

// All runs every check.
func All(masks []mask.Mask, sources, targets rangeset.RangeSet) error {
	if err := Replication(masks, sources); err != nil {
		return err
	}
	if err := Partition(masks, targets); err != nil {
		return err
	}
	return Ownership(masks, targets)
}
