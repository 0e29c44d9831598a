package generator

import "github.com/hupe1980/connectome/mask"

// Triple is one unit of generator output: a source and a target generator
// index plus the per-edge parameter values. len(Params) equals the
// generator's arity.
type Triple struct {
	Source uint64
	Target uint64
	Params []float64
}

// Generator is the connection-generating iterator driving a connect call.
//
// The lifecycle is SetMask, Start, then Next until exhaustion. Arity is
// fixed for the lifetime of one connect call. Any conforming
// implementation can be substituted, including scripted test doubles.
type Generator interface {
	// Arity returns the number of per-edge parameters emitted with every
	// triple.
	Arity() int

	// SetMask installs the full per-process mask slice and the calling
	// process's rank. The generator must restrict its output to the
	// calling rank's own mask.
	SetMask(masks []mask.Mask, rank int)

	// Start begins iteration.
	Start() error

	// Next returns the next triple, or false when the generator is
	// exhausted.
	Next() (Triple, bool)
}
