// Package model defines the core types and collaborator contracts used
// throughout connectome.
//
// # Identity Types
//
//   - Population: ordered, duplicate-free GID sequence of one side of a
//     connect call
//   - SynapseTypeID: identifier of a registered synapse model
//   - Connection: one connection-creation request
//
// # Collaborators
//
//   - Directory: the network's node directory (index resolution and
//     synapse creation)
//   - SynapseRegistry: synapse model name resolution
//
// TableDirectory and StaticRegistry are in-memory reference
// implementations used by tests and examples.
package model
