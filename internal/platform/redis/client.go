// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis connects the API to Redis and exposes a JSON cache on top of it.

Only reference data is cached. Categories are read on every course page, so
[JSONCache] keeps the list for CATEGORY_CACHE_TTL. Course and chapter rows
are never cached because authors expect their edits on the next refetch.
*/
package redis

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// The cache sees one small read per page load, so the pool stays small.
const (
	poolSize     = 8
	minIdleConns = 1

	dialTimeout = 3 * time.Second
	ioTimeout   = 1 * time.Second
	pingTimeout = 2 * time.Second
)

// NewClient connects to the Redis instance at redisURL and pings it once.
// The returned client is closed again when the ping fails.
func NewClient(context stdctx.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	options.PoolSize = poolSize
	options.MinIdleConns = minIdleConns
	options.DialTimeout = dialTimeout
	options.ReadTimeout = ioTimeout
	options.WriteTimeout = ioTimeout

	client := redis.NewClient(options)
	if err := Ping(context, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_connected",
		slog.String("addr", options.Addr),
		slog.Int("db", options.DB),
	)

	return client, nil
}

// Ping backs the readiness probe. It is bounded by its own short timeout.
func Ping(context stdctx.Context, client *redis.Client) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}
