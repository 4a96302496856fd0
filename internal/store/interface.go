package store

import "context"

// KVStore persists opaque blobs under string keys. Load returns
// ErrRecordNotFound when nothing has been saved under key yet.
type KVStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
	Close() error
}
