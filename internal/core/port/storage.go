package port

import (
	"context"
	"errors"
	"io"
)

// ErrBlobNotFound is returned by Get when no object exists under the key
var ErrBlobNotFound = errors.New("blob not found")

// BlobStorage is an interface to define raw payload storage interactions.
// Keys are opaque and unpredictable; identical payloads get distinct keys.
type BlobStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Exists(ctx context.Context, key string) (bool, error)
}
