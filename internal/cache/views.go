// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// views.go provides a Valkey-backed cache for composed public API views.
// Composing a view fans out into several document queries; caching the
// final JSON lets repeat requests skip all of them. Admin writes flush
// the whole cache, so entries never outlive an edit by more than a
// request in flight.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// viewKeyPrefix is the Valkey key prefix for cached view JSON.
	viewKeyPrefix = "view:"

	// DefaultViewTTL is how long a composed view stays cached.
	DefaultViewTTL = 5 * time.Minute
)

// ViewCache stores rendered public API responses in Valkey.
type ViewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewViewCache creates a view cache backed by the given Valkey client.
func NewViewCache(client *redis.Client, ttl time.Duration) *ViewCache {
	if ttl == 0 {
		ttl = DefaultViewTTL
	}
	return &ViewCache{client: client, ttl: ttl}
}

// Get retrieves a cached response body. The second return is false on miss.
func (vc *ViewCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := vc.client.Get(ctx, viewKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("view cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("view cache hit", "key", key)
	return val, true
}

// Set stores a response body for a key with the configured TTL.
func (vc *ViewCache) Set(ctx context.Context, key string, body []byte) {
	if err := vc.client.Set(ctx, viewKeyPrefix+key, body, vc.ttl).Err(); err != nil {
		slog.Warn("view cache set error", "key", key, "error", err)
	}
}

// InvalidateAll removes every cached view by scanning for the prefix.
// Any admin write can change any composed view, so edits flush everything.
func (vc *ViewCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := vc.client.Scan(ctx, cursor, viewKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("view cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := vc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("view cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("view cache cleared", "deleted", deleted)
	}
}
