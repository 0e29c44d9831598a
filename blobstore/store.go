package blobstore

import (
	"context"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for persisting immutable artifact blobs, such as
// the per-rank mask snapshots written for partition debugging.
type Store interface {
	// Open opens an existing blob for sequential reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Create creates a blob for sequential writing. The blob becomes
	// visible when the writer is closed without error.
	Create(ctx context.Context, name string) (io.WriteCloser, error)

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all blobs with the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Purge deletes every blob under the given prefix, issuing the deletes
// concurrently.
func Purge(ctx context.Context, s Store, prefix string) error {
	names, err := s.List(ctx, prefix)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for _, name := range names {
		g.Go(func() error {
			return s.Delete(ctx, name)
		})
	}

	return g.Wait()
}
