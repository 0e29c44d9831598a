// Package snapshot persists the mask phase of a connect call as an
// immutable artifact.
//
// Every rank derives the same RangeSets and the same full mask slice from
// the same inputs; when connectivity looks wrong in a deployment the first
// question is whether that still holds. Enabling snapshot dumping makes
// each rank write its derivation to a blobstore; loading two ranks'
// artifacts and comparing them with EqualDerived pinpoints the diverging
// rank without attaching a debugger to a running process group.
//
// Artifacts are self-describing: the header records the payload codec and
// compression by name, and both are resolved by name on load.
package snapshot
