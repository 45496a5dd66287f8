// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"folio/internal/geo"
	"folio/internal/models"
	"folio/internal/store"
)

// TrackVisitors records one analytics document per public page view,
// decorated with a best-effort geolocation of the client address. The
// write happens off the request path and a failure only logs: analytics
// must never slow down or break a page.
func TrackVisitors(visitors *store.VisitorStore, lookup *geo.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)

			if r.Method != http.MethodGet {
				return
			}

			path := r.URL.Path
			referrer := r.Referer()
			userAgent := r.UserAgent()
			ip := ClientIP(r)

			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				loc, err := lookup.Lookup(ctx, ip)
				if err != nil {
					slog.Debug("geo lookup failed", "error", err)
				}
				err = visitors.Record(ctx, models.Visitor{
					Path:      path,
					Referrer:  referrer,
					UserAgent: userAgent,
					Country:   loc.Country,
					City:      loc.City,
				})
				if err != nil {
					slog.Warn("visitor record failed", "path", path, "error", err)
				}
			}()
		})
	}
}
