// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	stdctx "context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by [JSONCache.Get] when the key is absent or expired.
var ErrCacheMiss = errors.New("redis: cache miss")

// JSONCache stores JSON encoded values under string keys with a fixed TTL.
type JSONCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewJSONCache wraps a Redis client. A non-positive ttl stores keys without expiry.
func NewJSONCache(client redis.Cmdable, ttl time.Duration) *JSONCache {
	if ttl < 0 {
		ttl = 0
	}
	return &JSONCache{client: client, ttl: ttl}
}

// Get decodes the value stored at key into target.
func (cache *JSONCache) Get(context stdctx.Context, key string, target any) error {
	raw, err := cache.client.Get(context, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("redis: get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("redis: decode %s: %w", key, err)
	}
	return nil
}

// Set encodes value and stores it at key.
func (cache *JSONCache) Set(context stdctx.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis: encode %s: %w", key, err)
	}

	if err := cache.client.Set(context, key, raw, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Removing a missing key is not an error.
func (cache *JSONCache) Delete(context stdctx.Context, key string) error {
	if err := cache.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis: del %s: %w", key, err)
	}
	return nil
}
