// Package kv provides the string key-value port used for persisted game state.
package kv

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store reads and writes string values by key.
type Store interface {
	// Get returns the value for key. A missing key is reported with ok=false
	// and no error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Close releases the backing resources.
	Close() error
}

// Type names a store driver.
type Type string

const (
	TypeMemory Type = "memory"
	TypeSQLite Type = "sqlite"
	TypeRedis  Type = "redis"
)

var (
	ErrInvalidType   = errors.New("kv: unknown store type")
	ErrInvalidConfig = errors.New("kv: invalid store configuration")
)

// Option configures Open.
type Option func(*options)

type options struct {
	path        string
	redisClient *redis.Client
	prefix      string
	timeout     time.Duration
}

// WithPath sets the SQLite database path.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithRedisClient sets the client used by the redis driver.
func WithRedisClient(client *redis.Client) Option {
	return func(o *options) {
		o.redisClient = client
	}
}

// WithPrefix sets the key prefix used by the redis driver.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithTimeout bounds the redis connectivity check performed by Open.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// Open returns a Store of the given type.
func Open(t Type, opts ...Option) (Store, error) {
	cfg := &options{prefix: defaultPrefix, timeout: 2 * time.Second}
	for _, opt := range opts {
		opt(cfg)
	}

	switch t {
	case TypeMemory:
		return NewMemory(), nil
	case TypeSQLite:
		if cfg.path == "" {
			return nil, ErrInvalidConfig
		}
		st, err := OpenSQLite(cfg.path)
		if err != nil {
			return nil, err
		}
		return st, nil
	case TypeRedis:
		if cfg.redisClient == nil {
			return nil, ErrInvalidConfig
		}
		ctx, cancel := context.WithTimeout(context.Background(), cfg.timeout)
		defer cancel()
		if err := cfg.redisClient.Ping(ctx).Err(); err != nil {
			return nil, err
		}
		return NewRedis(cfg.redisClient, cfg.prefix), nil
	default:
		return nil, ErrInvalidType
	}
}
