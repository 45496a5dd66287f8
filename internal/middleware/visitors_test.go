// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"folio/internal/document"
	"folio/internal/geo"
	"folio/internal/store"
)

func TestTrackVisitorsRecordsPageView(t *testing.T) {
	mem := document.NewMemory()
	visitors := store.NewVisitorStore(mem)
	mw := TrackVisitors(visitors, geo.New(""))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/blog/hello", nil)
	r.Header.Set("User-Agent", "test-agent")
	r.Header.Set("Referer", "https://example.com/")

	mw(okHandler()).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	// The record is written off the request path; poll briefly.
	deadline := time.Now().Add(2 * time.Second)
	for {
		recorded, err := visitors.List(context.Background(), 10)
		if err != nil {
			t.Fatalf("list visitors: %v", err)
		}
		if len(recorded) == 1 {
			v := recorded[0]
			if v.Path != "/blog/hello" || v.UserAgent != "test-agent" || v.Referrer != "https://example.com/" {
				t.Errorf("recorded %+v", v)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("visitor record never arrived")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestTrackVisitorsSkipsNonGET(t *testing.T) {
	mem := document.NewMemory()
	visitors := store.NewVisitorStore(mem)
	mw := TrackVisitors(visitors, geo.New(""))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/contact", nil)
	mw(okHandler()).ServeHTTP(w, r)

	time.Sleep(50 * time.Millisecond)
	recorded, err := visitors.List(context.Background(), 10)
	if err != nil {
		t.Fatalf("list visitors: %v", err)
	}
	if len(recorded) != 0 {
		t.Errorf("recorded %d visits for a POST, want 0", len(recorded))
	}
}
