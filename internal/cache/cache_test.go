// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cache tests require a running Valkey instance and skip
// otherwise. They use DB 15 to stay clear of development data.
package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:     envOr("VALKEY_HOST", "localhost") + ":" + envOr("VALKEY_PORT", "6379"),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "view:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})
	return client
}

func TestViewCacheRoundTrip(t *testing.T) {
	vc := NewViewCache(testClient(t), time.Minute)
	ctx := context.Background()

	if _, ok := vc.Get(ctx, "/api/home"); ok {
		t.Fatal("unexpected hit on empty cache")
	}

	vc.Set(ctx, "/api/home", []byte(`{"recent_posts":[]}`))
	body, ok := vc.Get(ctx, "/api/home")
	if !ok {
		t.Fatal("miss after Set")
	}
	if string(body) != `{"recent_posts":[]}` {
		t.Errorf("body = %s", body)
	}
}

func TestViewCacheExpiry(t *testing.T) {
	vc := NewViewCache(testClient(t), 50*time.Millisecond)
	ctx := context.Background()

	vc.Set(ctx, "/api/posts", []byte("[]"))
	time.Sleep(100 * time.Millisecond)
	if _, ok := vc.Get(ctx, "/api/posts"); ok {
		t.Error("entry survived past its TTL")
	}
}

func TestViewCacheInvalidateAll(t *testing.T) {
	vc := NewViewCache(testClient(t), time.Minute)
	ctx := context.Background()

	for _, key := range []string{"/api/home", "/api/posts", "/api/uses"} {
		vc.Set(ctx, key, []byte("{}"))
	}
	vc.InvalidateAll(ctx)

	for _, key := range []string{"/api/home", "/api/posts", "/api/uses"} {
		if _, ok := vc.Get(ctx, key); ok {
			t.Errorf("key %s survived InvalidateAll", key)
		}
	}
}
