// Package s3 provides an S3-backed blobstore.Store for mask snapshot
// artifacts.
//
// Construct with an existing client:
//
//	store := s3.NewStore(client, "my-bucket", "connectivity/")
//
// or from the default AWS config chain:
//
//	store, err := s3.New(ctx, "my-bucket", "connectivity/")
package s3
