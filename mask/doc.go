// Package mask builds the per-process index masks that shard a
// generator-driven connect call across a process group.
//
// A Mask tells one process which generator indexes of the source and target
// populations it is responsible for. Source intervals are dense and
// replicated on every process; target intervals are strided by the process
// count, mirroring the network's round-robin GID ownership inside the dense
// generator-index space. Build derives the complete mask slice for all
// ranks from data every process already holds, so the partition is agreed
// on without communication.
package mask
