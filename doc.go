// Package connectome builds the connectivity of a large neural network
// across a group of cooperating processes, driven by an externally
// supplied connection generator.
//
// Each process computes, from its own rank, the process-group size and
// the two participant populations, exactly which source/target pairs it
// is responsible for. The computation is replicated rather than
// communicated: every process decomposes both populations into contiguous
// GID ranges, translates them into a dense generator-index space, and
// builds the complete per-process mask slice, all without exchanging a
// single message. Only the calling rank's mask is installed into the
// generator, which then emits just the locally relevant triples.
//
// # Quick Start
//
//	directory := model.NewTableDirectory()
//	registry := model.StaticRegistry{"static_synapse": 1}
//
//	c, _ := connectome.New(directory, registry, processes, rank)
//	res, err := c.Connect(ctx, sources, targets, generator.NewAllToAll(), "static_synapse")
//
// # Weighted Generators
//
// A generator with arity 2 emits a weight and a delay with every triple;
// tell the connector which position is which:
//
//	c, _ := connectome.New(directory, registry, processes, rank,
//	    connectome.WithParamPositions(0, 1))
//
// # Diagnostics
//
// The verify package checks a mask slice against the partition
// guarantees; the snapshot package dumps each rank's mask derivation to a
// blobstore for cross-rank comparison:
//
//	c, _ := connectome.New(directory, registry, processes, rank,
//	    connectome.WithSnapshot(blobstore.NewLocalStore("./artifacts"), "run-1"))
//
// # Error Model
//
// Configuration errors (unsupported arity, missing weight/delay
// positions, unknown synapse model, malformed populations) fail the call
// before any connection is created. Per-triple creation failures abort by
// default and are never rolled back; WithContinueOnError switches to
// best-effort iteration.
package connectome
