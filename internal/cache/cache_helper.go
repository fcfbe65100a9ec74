package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is absent (or caching is disabled).
var ErrCacheMiss = errors.New("cache miss")

// CacheHelper provides common caching operations for repositories.
// A nil redis client disables caching: every Get is a miss and every
// Set/Delete is a no-op, so callers never branch on configuration.
type CacheHelper struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewCacheHelper creates a new cache helper instance.
func NewCacheHelper(client *redis.Client, prefix string, ttl time.Duration) *CacheHelper {
	return &CacheHelper{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// UserCacheTTL is the lifetime of cached identity lookups. Short, so role
// changes propagate within minutes without an explicit invalidation fan-out.
const UserCacheTTL = 5 * time.Minute

func (h *CacheHelper) key(parts ...string) string {
	key := h.prefix
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

// Get unmarshals the cached value for the key into dest.
func (h *CacheHelper) Get(ctx context.Context, dest interface{}, parts ...string) error {
	if h == nil || h.client == nil {
		return ErrCacheMiss
	}

	raw, err := h.client.Get(ctx, h.key(parts...)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("cache decode: %w", err)
	}
	return nil
}

// Set stores the value under the key with the helper's TTL.
func (h *CacheHelper) Set(ctx context.Context, value interface{}, parts ...string) error {
	if h == nil || h.client == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := h.client.Set(ctx, h.key(parts...), raw, h.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes the keys. Missing keys are not an error.
func (h *CacheHelper) Delete(ctx context.Context, keys ...string) error {
	if h == nil || h.client == nil || len(keys) == 0 {
		return nil
	}

	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = h.key(k)
	}
	if err := h.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}
