package storage

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/recipehaven/internal/domain"
	"github.com/hammamikhairi/recipehaven/internal/logger"
)

// Store is a key-value backend that holds resources until closed.
type Store interface {
	domain.KV
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open returns the backend named by backend. path is the directory for
// "file" and the database file for "sqlite"; "memory" ignores it.
func Open(ctx context.Context, backend, path string, log *logger.Logger) (Store, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryKV(log), nil
	case BackendFile:
		return NewFileKV(path, log)
	case BackendSQLite:
		return OpenSQLite(ctx, path, log)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, backend)
	}
}
