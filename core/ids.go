package core

// GID is the global identifier of a node within the whole network.
// GIDs are unique across all processes; a population is a strictly
// ascending, duplicate-free sequence of GIDs, not necessarily contiguous.
type GID uint64

// MaxGID is the maximum possible value for a GID.
const MaxGID = ^GID(0)

// Rank identifies one process within the cooperating process group.
// Valid ranks are in [0, process count).
type Rank int

// Owner returns the rank responsible for gid under the network's
// round-robin ownership rule.
func Owner(gid GID, processes int) Rank {
	return Rank(gid % GID(processes))
}
