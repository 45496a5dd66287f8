// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"testing"

	"folio/internal/document"
	"folio/internal/models"
	"folio/internal/store"
)

func TestPostEndpoint(t *testing.T) {
	docs := document.NewMemory()
	seedPublishedPost(t, docs, "Go Generics", "go-generics")
	h := publicRoutes(NewPublic(docs), nil)

	t.Run("published post renders and counts the read", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/posts/go-generics", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
		}
		var view struct {
			Title       string `json:"title"`
			ReadingTime string `json:"reading_time"`
		}
		decodeBody(t, rec, &view)
		if view.Title != "Go Generics" {
			t.Errorf("title = %q", view.Title)
		}
		if view.ReadingTime == "" {
			t.Error("reading time missing from view")
		}

		posts, err := store.NewBlogStore(docs).FindPostBySlug(context.Background(), "go-generics")
		if err != nil || posts == nil {
			t.Fatalf("re-read post: %v", err)
		}
		if posts.ReadCount != 1 {
			t.Errorf("read count = %d, want 1", posts.ReadCount)
		}
	})

	t.Run("unknown slug is 404", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/posts/nope", "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}

func TestLikePost(t *testing.T) {
	docs := document.NewMemory()
	post := seedPublishedPost(t, docs, "Liked", "liked")
	h := publicRoutes(NewPublic(docs), nil)

	rec := doJSON(t, h, http.MethodPost, "/api/posts/"+post.ID+"/like", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/posts/missing/like", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing post status = %d, want 404", rec.Code)
	}
}

func TestAddComment(t *testing.T) {
	docs := document.NewMemory()
	post := seedPublishedPost(t, docs, "Commented", "commented")

	draft, err := store.NewBlogStore(docs).CreatePost(context.Background(), models.BlogPost{
		Title: "Draft", Slug: "draft", Status: models.PostStatusDraft,
	})
	if err != nil {
		t.Fatalf("seed draft: %v", err)
	}

	h := publicRoutes(NewPublic(docs), nil)

	t.Run("valid comment is created", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/posts/"+post.ID+"/comments",
			`{"author_name":"Reader","body":"Great write-up!"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
		}
		var c models.Comment
		decodeBody(t, rec, &c)
		if c.AuthorName != "Reader" || c.ContentID != post.ID {
			t.Errorf("comment = %+v", c)
		}
	})

	t.Run("missing body is rejected", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/posts/"+post.ID+"/comments",
			`{"author_name":"Reader","body":""}`)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422", rec.Code)
		}
	})

	t.Run("draft posts do not take comments", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/posts/"+draft.ID+"/comments",
			`{"author_name":"Reader","body":"hello"}`)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("unknown field is a bad request", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/posts/"+post.ID+"/comments",
			`{"author_name":"Reader","body":"hi","admin":true}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestSubmitContact(t *testing.T) {
	docs := document.NewMemory()
	h := publicRoutes(NewPublic(docs), nil)

	rec := doJSON(t, h, http.MethodPost, "/api/contact",
		`{"name":"Ana","email":"ana@example.com","subject":"Hi","message":"Let's talk."}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	items, err := store.NewContactStore(docs).List(context.Background())
	if err != nil {
		t.Fatalf("list contact: %v", err)
	}
	if len(items) != 1 || items[0].Email != "ana@example.com" || items[0].Read {
		t.Errorf("inbox = %+v", items)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/contact",
		`{"name":"Ana","email":"not-an-email","subject":"Hi","message":"x"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("bad email status = %d, want 422", rec.Code)
	}
}

func TestGuestBookVisibility(t *testing.T) {
	docs := document.NewMemory()
	h := publicRoutes(NewPublic(docs), nil)

	rec := doJSON(t, h, http.MethodPost, "/api/guestbook",
		`{"author_name":"Visitor","message":"Nice site!"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("sign status = %d: %s", rec.Code, rec.Body.String())
	}

	// Unapproved messages stay out of the public listing.
	rec = doJSON(t, h, http.MethodGet, "/api/guestbook", "")
	var messages []models.GuestBookMessage
	decodeBody(t, rec, &messages)
	if len(messages) != 0 {
		t.Fatalf("public listing has %d messages before approval", len(messages))
	}

	guests := store.NewGuestBookStore(docs)
	all, err := guests.List(context.Background())
	if err != nil || len(all) != 1 {
		t.Fatalf("admin listing: %v, %d messages", err, len(all))
	}
	if err := guests.Approve(context.Background(), all[0].ID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/guestbook", "")
	decodeBody(t, rec, &messages)
	if len(messages) != 1 || messages[0].AuthorName != "Visitor" {
		t.Errorf("approved listing = %+v", messages)
	}
}

func TestPublicSettingsHideTOTPSecret(t *testing.T) {
	docs := document.NewMemory()
	settings := store.NewSettingsStore(docs)
	ctx := context.Background()
	if err := settings.Set(ctx, "site_title", "folio", ""); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := settings.Set(ctx, totpSecretKey, "SECRETSECRET", ""); err != nil {
		t.Fatalf("set secret: %v", err)
	}

	h := publicRoutes(NewPublic(docs), nil)
	rec := doJSON(t, h, http.MethodGet, "/api/settings", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var m map[string]string
	decodeBody(t, rec, &m)
	if m["site_title"] != "folio" {
		t.Errorf("site_title = %q", m["site_title"])
	}
	if _, leaked := m[totpSecretKey]; leaked {
		t.Error("TOTP secret leaked through public settings")
	}
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, http.HandlerFunc(Health), http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
