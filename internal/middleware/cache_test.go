// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"folio/internal/cache"
)

func cacheTestClient(t *testing.T) *redis.Client {
	t.Helper()

	host := os.Getenv("VALKEY_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("VALKEY_PORT")
	if port == "" {
		port = "6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
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

func TestCacheViews(t *testing.T) {
	views := cache.NewViewCache(cacheTestClient(t), time.Minute)

	hits := 0
	handler := CacheViews(views)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"n":` + strconv.Itoa(hits) + `}`))
	}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/home", nil))
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/home", nil))

	if hits != 1 {
		t.Errorf("handler ran %d times, want 1", hits)
	}
	if first.Body.String() != second.Body.String() {
		t.Errorf("cached body %q differs from original %q", second.Body.String(), first.Body.String())
	}
	if second.Header().Get("X-Cache") != "hit" {
		t.Error("second response not marked as cache hit")
	}

	// A different query string is a different entry.
	third := httptest.NewRecorder()
	handler.ServeHTTP(third, httptest.NewRequest(http.MethodGet, "/api/home?page=2", nil))
	if hits != 2 {
		t.Errorf("handler ran %d times after new query, want 2", hits)
	}
}

func TestCacheViewsSkipsErrors(t *testing.T) {
	views := cache.NewViewCache(cacheTestClient(t), time.Minute)

	hits := 0
	handler := CacheViews(views)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusNotFound)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/posts/nope", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/posts/nope", nil))
	if hits != 2 {
		t.Errorf("404 response was cached; handler ran %d times", hits)
	}
}

func TestFlushViewsOnWrite(t *testing.T) {
	views := cache.NewViewCache(cacheTestClient(t), time.Minute)
	ctx := context.Background()
	views.Set(ctx, "/api/home", []byte("{}"))

	write := FlushViewsOnWrite(views)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	write.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/admin/api/posts", nil))

	if _, ok := views.Get(ctx, "/api/home"); ok {
		t.Error("view cache not flushed after successful write")
	}

	// Failed writes leave the cache alone.
	views.Set(ctx, "/api/home", []byte("{}"))
	fail := FlushViewsOnWrite(views)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	fail.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/admin/api/posts", nil))
	if _, ok := views.Get(ctx, "/api/home"); !ok {
		t.Error("view cache flushed after failed write")
	}
}
