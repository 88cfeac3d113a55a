// Package storage provides the durable client storage behind the session and the
// purchases cache. Values are opaque byte slices addressed by a fixed key; callers
// serialize their own state. Backends: a directory of files (default), process
// memory, Redis and PostgreSQL.
package storage

import (
	"context"
	"errors"
	"fmt"

	"game_store/internal/pkg/logger"
)

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("storage: key not found")

// Storage defines the methods required for durable client storage.
//
//go:generate mockgen -destination=mocks/mocks.go -package=mocks game_store/internal/storage Storage
type Storage interface {
	// Close releases the backend connection.
	Close()

	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Options selects and configures a backend for New.
type Options struct {
	Kind          string
	Path          string
	RedisAddr     string
	RedisPassword string
	DatabaseURI   string
}

// New opens the backend named by opts.Kind.
func New(ctx context.Context, opts Options, l *logger.Logger) (Storage, error) {
	switch opts.Kind {
	case "", "file":
		return NewFile(opts.Path, l)
	case "memory":
		return NewMemory(), nil
	case "redis":
		return NewRedis(ctx, opts.RedisAddr, opts.RedisPassword, l)
	case "postgres":
		return NewPostgreSQL(opts.DatabaseURI, l)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", opts.Kind)
	}
}
