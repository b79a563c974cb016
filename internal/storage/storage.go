package storage

import (
	"context"
	"io"
)

// Service is the interface for profile photo storage backends. The local
// filesystem implementation covers development and single-node deployments;
// a cloud blob store can slot in behind the same interface.
type Service interface {
	// Save writes the file under the given key, replacing any previous one.
	Save(ctx context.Context, key string, reader io.Reader) error

	// Open returns the stored file for reading. The caller closes it.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists reports whether a file is stored under the key, and its size.
	Exists(ctx context.Context, key string) (bool, int64, error)

	// Delete removes the file. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
