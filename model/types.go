package model

import (
	"context"
	"fmt"

	"github.com/hupe1980/connectome/core"
)

// Population is the ordered, duplicate-free sequence of GIDs taking part
// in one side of a connect call. Members must be strictly ascending; they
// need not be contiguous.
type Population []core.GID

// Validate checks the strict ascending-order invariant.
func (p Population) Validate() error {
	for i := 1; i < len(p); i++ {
		if p[i] <= p[i-1] {
			return fmt.Errorf("population not strictly ascending at position %d: %d after %d", i, p[i], p[i-1])
		}
	}
	return nil
}

// SynapseTypeID identifies a registered synapse model.
type SynapseTypeID uint32

// Connection is one connection-creation request issued to the Directory.
// Nil Weight or Delay means the synapse model's default applies.
type Connection struct {
	Source      core.GID
	Target      core.GID
	SynapseType SynapseTypeID
	Weight      *float64
	Delay       *float64
}

// Directory is the network's node directory: it owns node storage and
// synapse creation. Implementations decide whether Connect blocks; the
// connect protocol calls it synchronously, one triple at a time.
type Directory interface {
	// Resolve maps a generator index within pop back to its GID.
	Resolve(pop Population, index uint64) (core.GID, error)

	// Connect requests creation of one connection. The caller guarantees
	// the target is locally owned; no locality check is required here.
	Connect(ctx context.Context, conn Connection) error
}

// SynapseRegistry resolves synapse model names to type identifiers.
type SynapseRegistry interface {
	Lookup(model string) (SynapseTypeID, error)
}

// UnknownSynapseTypeError indicates a synapse model name with no
// registered type.
type UnknownSynapseTypeError struct {
	Model string
}

func (e *UnknownSynapseTypeError) Error() string {
	return fmt.Sprintf("unknown synapse type %q", e.Model)
}
