package storage

import (
	"context"
	"errors"
	"io"
)

// Package storage contains object storage abstractions for the poster bucket (S3-compatible).
// Implementations must avoid using local disk and rely on streaming I/O only.

// ErrObjectExists is returned by Put when the key is taken and overwriting was not requested.
var ErrObjectExists = errors.New("object already exists")

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1 and the implementation
// will buffer/chunk as supported by the backend.
// Overwrite=false gives create-if-absent semantics.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
	Overwrite   bool
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
	// URL is the fully-qualified address of the object.
	URL      string
	Metadata map[string]string
}

// Storage is a reusable, S3-compatible object storage client interface.
type Storage interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
}
