// Package redis caches encoded fixture documents in Redis, keyed by the
// canonical generator parameters.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"
)

// ErrNotCached is returned when no document is stored under a key.
var ErrNotCached = errors.New("document not cached")

// Cache stores encoded documents. Generation is deterministic, so a
// cache hit is byte-identical to a fresh generation.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached documents.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached documents.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a cache backed by a new Redis client.
func New(address string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr: address,
		DB:   db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: "hyppau:fixture:",
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(cache)
	}
	return cache
}

func (c *Cache) key(id string) string {
	return c.prefix + id
}

func (c *Cache) indexKey() string {
	return c.prefix + "index"
}

// Put stores an encoded document and records the key in the index.
func (c *Cache) Put(ctx context.Context, id string, data []byte) error {
	pipe := c.client.Pipeline()

	pipe.Set(ctx, c.key(id), data, c.ttl)

	// Index score = expiry time; no-expiry entries get a far-future
	// score so lazy pruning never drops them.
	score := float64(time.Now().Add(c.ttl).Unix())
	if c.ttl == 0 {
		score = 4102444800 // 2100-01-01
	}
	pipe.ZAdd(ctx, c.indexKey(), backend.Z{
		Score:  score,
		Member: id,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Get retrieves an encoded document, or ErrNotCached.
func (c *Cache) Get(ctx context.Context, id string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if err == backend.Nil {
			return nil, ErrNotCached
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}
	return val, nil
}

// Delete removes a cached document.
func (c *Cache) Delete(ctx context.Context, id string) error {
	pipe := c.client.Pipeline()
	pipe.Del(ctx, c.key(id))
	pipe.ZRem(ctx, c.indexKey(), id)
	_, err := pipe.Exec(ctx)
	return err
}

// List returns the keys of live cached documents. Expired entries are
// lazily pruned from the index first.
func (c *Cache) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())
	err := c.client.ZRemRangeByScore(ctx, c.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to prune expired documents: %w", err)
	}

	keys, err := c.client.ZRange(ctx, c.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list cached documents: %w", err)
	}
	return keys, nil
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
