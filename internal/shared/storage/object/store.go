package object

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrInvalidKey is returned for keys that escape the store root.
var ErrInvalidKey = errors.New("invalid storage key")

// Object describes a stored file.
type Object struct {
	Key      string // namespace-relative key, stable across restarts
	Path     string // absolute path on disk
	Size     int64
	MimeType string
}

// ObjectStore defines the contract for saving and retrieving binary objects
// grouped under a namespace (one namespace per session).
type ObjectStore interface {
	Put(ctx context.Context, namespace, fileName string, r io.Reader) (Object, error)
	Dir(ctx context.Context, namespace string) (string, error)
	Remove(ctx context.Context, path string) error
	RemoveNamespace(ctx context.Context, namespace string) error
	// RemoveStale deletes namespaces with nothing written since before and
	// reports how many went.
	RemoveStale(ctx context.Context, before time.Time) (int, error)
}
