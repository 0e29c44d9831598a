package generator

import "github.com/hupe1980/connectome/mask"

// AllToAll emits the full cross product of the masked source and target
// index spaces in target-major order: all sources for target 0, then all
// sources for target 1, and so on.
//
// With no parameters the arity is 0. With exactly two parameters the arity
// is 2 and the values are emitted verbatim with every triple; their
// meaning (which position is weight, which is delay) is the consumer's
// parameter-position mapping.
type AllToAll struct {
	params  []float64
	own     mask.Mask
	sources []uint64
	targets []uint64
	si, ti  int
	started bool
}

// NewAllToAll creates an all-to-all generator. params must be empty or
// hold exactly two values.
func NewAllToAll(params ...float64) *AllToAll {
	return &AllToAll{params: params}
}

// Arity returns the number of per-edge parameters.
func (g *AllToAll) Arity() int {
	return len(g.params)
}

// SetMask installs the mask slice and selects the calling rank's mask.
func (g *AllToAll) SetMask(masks []mask.Mask, rank int) {
	if rank >= 0 && rank < len(masks) {
		g.own = masks[rank]
	}
}

// Start materializes the masked index spaces and rewinds iteration.
func (g *AllToAll) Start() error {
	g.sources = g.own.SourceBitmap().ToArray()
	g.targets = g.own.TargetBitmap().ToArray()
	g.si, g.ti = 0, 0
	g.started = true
	return nil
}

// Next yields the next pair of the cross product.
func (g *AllToAll) Next() (Triple, bool) {
	if !g.started || g.ti >= len(g.targets) || len(g.sources) == 0 {
		return Triple{}, false
	}

	tr := Triple{
		Source: g.sources[g.si],
		Target: g.targets[g.ti],
		Params: g.params,
	}

	g.si++
	if g.si == len(g.sources) {
		g.si = 0
		g.ti++
	}

	return tr, true
}
