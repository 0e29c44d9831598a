// Package generator defines the connection-generating iterator contract
// and ships two conforming implementations.
//
// A Generator yields (source index, target index, parameters) triples in
// the dense generator-index space of the two populations. Before
// iteration the connect protocol installs the full per-process mask slice
// and the calling rank; a well-behaved generator then emits only pairs
// whose target the calling process owns.
//
// Scripted plays back a fixed triple list (the test double); AllToAll
// walks the masked cross product.
package generator
