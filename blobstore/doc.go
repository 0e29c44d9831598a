// Package blobstore abstracts storage of immutable artifact blobs.
//
// Connectome writes one mask snapshot per rank per connect call when
// snapshot dumping is enabled; comparing the artifacts across ranks is how
// divergent replicated computation is diagnosed. The Store interface keeps
// the snapshot layer independent of where those artifacts live: local
// disk (LocalStore), memory (MemoryStore, for tests), or object storage
// (the s3 and minio subpackages).
package blobstore
