package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultRecordTTL bounds how long a record stays cached without being rewritten.
	DefaultRecordTTL = 24 * time.Hour

	// DefaultInvalidationTTL is how long an invalidated key refuses Fill. It
	// must outlast the slowest request that could still be holding a read made
	// before the invalidation.
	DefaultInvalidationTTL = time.Minute

	tombstone = "\x00invalidated"
)

// RecordCache stores JSON-encoded read models of one record type.
// Keys are scoped by user to prevent cross-tenant reads.
// Key format: "<namespace>:{userID}:{recordID}"
//
// Writers call Invalidate after changing a record. Readers call Fill after a
// miss. Fill never overwrites an existing entry or a recent invalidation, so a
// reader holding a row from before the change cannot resurrect it.
type RecordCache[T any] struct {
	client          redis.Cmdable
	namespace       string
	ttl             time.Duration
	invalidationTTL time.Duration
}

// NewRecordCache creates a RecordCache for namespace backed by the given client.
// A non-positive ttl falls back to DefaultRecordTTL.
func NewRecordCache[T any](r *RedisClient, namespace string, ttl time.Duration) *RecordCache[T] {
	if ttl <= 0 {
		ttl = DefaultRecordTTL
	}
	return &RecordCache[T]{
		client:          r.Client(),
		namespace:       namespace,
		ttl:             ttl,
		invalidationTTL: DefaultInvalidationTTL,
	}
}

// Get returns the cached value. Returns redis.Nil when the key does not exist,
// has expired or was recently invalidated.
func (c *RecordCache[T]) Get(ctx context.Context, userID, id uuid.UUID) (*T, error) {
	data, err := c.client.Get(ctx, c.key(userID, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if string(data) == tombstone {
		return nil, redis.Nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("cache decode %s: %w", c.namespace, err)
	}
	return &v, nil
}

// Fill writes v with the cache TTL unless the key already holds a value or an
// invalidation marker. It reports whether v was written.
func (c *RecordCache[T]) Fill(ctx context.Context, userID, id uuid.UUID, v *T) (bool, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return false, fmt.Errorf("cache encode %s: %w", c.namespace, err)
	}
	ok, err := c.client.SetNX(ctx, c.key(userID, id), data, c.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("cache fill: %w", err)
	}
	return ok, nil
}

// Invalidate replaces the cached record with a marker that blocks Fill for the
// invalidation TTL.
func (c *RecordCache[T]) Invalidate(ctx context.Context, userID, id uuid.UUID) error {
	if err := c.client.Set(ctx, c.key(userID, id), tombstone, c.invalidationTTL).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

func (c *RecordCache[T]) key(userID, id uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", c.namespace, userID, id)
}
