// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"bytes"
	"net/http"

	"folio/internal/cache"
)

// cachingWriter buffers a response so a successful body can be stored.
type cachingWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (cw *cachingWriter) WriteHeader(status int) {
	cw.status = status
	cw.ResponseWriter.WriteHeader(status)
}

func (cw *cachingWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.ResponseWriter.Write(b)
}

// CacheViews serves GET responses from the view cache, keyed by path and
// query string. Only 200 responses are stored. A nil cache disables the
// middleware.
func CacheViews(views *cache.ViewCache) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if views == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := r.URL.Path
			if r.URL.RawQuery != "" {
				key += "?" + r.URL.RawQuery
			}
			if body, ok := views.Get(r.Context(), key); ok {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "hit")
				w.WriteHeader(http.StatusOK)
				w.Write(body)
				return
			}

			cw := &cachingWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(cw, r)
			if cw.status == http.StatusOK {
				views.Set(r.Context(), key, cw.buf.Bytes())
			}
		})
	}
}

// FlushViewsOnWrite clears the view cache after a successful mutating
// request. Mounted on the admin API so edits show up immediately.
func FlushViewsOnWrite(views *cache.ViewCache) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if views == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)
			if rw.statusCode < 400 {
				views.InvalidateAll(r.Context())
			}
		})
	}
}
