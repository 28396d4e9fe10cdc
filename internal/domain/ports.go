package domain

import "context"

// RecipeSource provides catalog recipes. Implementations can be backed by
// an embedded file, a file on disk, or a remote API.
type RecipeSource interface {
	List(ctx context.Context) ([]Recipe, error)
	Get(ctx context.Context, id int64) (*Recipe, error)
}

// KV is an opaque key-value capability. Get returns ErrNotFound for a key
// that was never written. No atomic read-modify-write is promised.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Backend receives a validated draft before it is persisted locally.
// The default implementation only simulates network latency.
type Backend interface {
	Submit(ctx context.Context, draft Draft) error
}

// BackendFunc adapts a plain function to Backend.
type BackendFunc func(ctx context.Context, draft Draft) error

// Submit calls f.
func (f BackendFunc) Submit(ctx context.Context, draft Draft) error { return f(ctx, draft) }

// Navigator moves the presentation layer to a path such as "/" or
// "/recipe/3".
type Navigator interface {
	Navigate(path string)
}
