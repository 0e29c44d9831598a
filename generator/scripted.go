package generator

import "github.com/hupe1980/connectome/mask"

// Scripted plays back a fixed list of triples, restricted to the installed
// mask of the calling rank. Triples whose source or target index falls
// outside the mask are skipped silently, exactly like a real generator
// that only emits locally relevant pairs.
//
// Until SetMask is called, the mask is empty and Next yields nothing.
type Scripted struct {
	arity   int
	script  []Triple
	own     mask.Mask
	pos     int
	started bool
}

// NewScripted creates a scripted generator with the given arity and
// playback list.
func NewScripted(arity int, script ...Triple) *Scripted {
	return &Scripted{
		arity:  arity,
		script: script,
	}
}

// Arity returns the configured arity.
func (g *Scripted) Arity() int {
	return g.arity
}

// SetMask installs the mask slice and selects the calling rank's mask.
func (g *Scripted) SetMask(masks []mask.Mask, rank int) {
	if rank >= 0 && rank < len(masks) {
		g.own = masks[rank]
	}
}

// Start rewinds playback.
func (g *Scripted) Start() error {
	g.pos = 0
	g.started = true
	return nil
}

// Next yields the next scripted triple covered by the installed mask.
func (g *Scripted) Next() (Triple, bool) {
	if !g.started {
		return Triple{}, false
	}

	for g.pos < len(g.script) {
		tr := g.script[g.pos]
		g.pos++

		if g.own.ContainsSource(tr.Source) && g.own.ContainsTarget(tr.Target) {
			return tr, true
		}
	}

	return Triple{}, false
}
