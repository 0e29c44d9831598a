package model

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/connectome/core"
)

// ErrDuplicateConnection is returned by TableDirectory when the same
// source/target/synapse-type triple is created twice.
var ErrDuplicateConnection = errors.New("duplicate connection")

type connKey struct {
	source      uint64
	target      uint64
	synapseType SynapseTypeID
}

// TableDirectory is an in-memory Directory. It resolves generator indexes
// positionally and records every created connection in insertion order.
//
// It serves as the reference implementation of the Directory contract and
// backs tests and examples; a real deployment substitutes the network's
// node storage.
type TableDirectory struct {
	conns []Connection
	seen  map[connKey]struct{}
}

// NewTableDirectory creates an empty TableDirectory.
func NewTableDirectory() *TableDirectory {
	return &TableDirectory{
		seen: make(map[connKey]struct{}),
	}
}

// Resolve maps a generator index to the GID at that position.
func (d *TableDirectory) Resolve(pop Population, index uint64) (core.GID, error) {
	if index >= uint64(len(pop)) {
		return 0, fmt.Errorf("generator index %d out of range for population of size %d", index, len(pop))
	}
	return pop[index], nil
}

// Connect records the connection, rejecting exact duplicates.
func (d *TableDirectory) Connect(_ context.Context, conn Connection) error {
	key := connKey{
		source:      uint64(conn.Source),
		target:      uint64(conn.Target),
		synapseType: conn.SynapseType,
	}
	if _, ok := d.seen[key]; ok {
		return fmt.Errorf("%w: %d -> %d (type %d)", ErrDuplicateConnection, conn.Source, conn.Target, conn.SynapseType)
	}

	d.seen[key] = struct{}{}
	d.conns = append(d.conns, conn)

	return nil
}

// Connections returns the recorded connections in creation order.
func (d *TableDirectory) Connections() []Connection {
	return d.conns
}

// Len returns the number of recorded connections.
func (d *TableDirectory) Len() int {
	return len(d.conns)
}

// StaticRegistry is a fixed name-to-identifier SynapseRegistry.
type StaticRegistry map[string]SynapseTypeID

// Lookup resolves a synapse model name.
func (r StaticRegistry) Lookup(model string) (SynapseTypeID, error) {
	id, ok := r[model]
	if !ok {
		return 0, &UnknownSynapseTypeError{Model: model}
	}
	return id, nil
}
