// Package rangeset decomposes ordered GID sequences into maximal contiguous
// runs and translates them into the dense generator-index space.
//
// A population is an ascending, duplicate-free sequence of GIDs with gaps.
// Extract turns it into a minimal RangeSet using a variable-step contiguity
// search (O(log n) probes per run); Spans assigns each range its block of
// dense 0-based generator indexes by cumulative length. Both computations
// are pure functions of their inputs, which is what lets every process in
// the group derive identical results without exchanging messages.
package rangeset
