// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// The in-memory document store stands in for PostgreSQL; object storage
// uses a map-backed fake.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"folio/internal/document"
	"folio/internal/models"
	"folio/internal/store"
)

// memBlobs is a map-backed BlobStore fake.
type memBlobs struct {
	objects map[string][]byte
	nextID  int
}

func newMemBlobs() *memBlobs {
	return &memBlobs{objects: map[string][]byte{}}
}

func (b *memBlobs) Upload(_ context.Context, _, ext string, body io.Reader, _ int64) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	b.nextID++
	id := fmt.Sprintf("file-%d%s", b.nextID, ext)
	b.objects[id] = data
	return id, nil
}

func (b *memBlobs) Download(_ context.Context, fileID string) ([]byte, error) {
	data, ok := b.objects[fileID]
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}
	return data, nil
}

func (b *memBlobs) Delete(_ context.Context, fileID string) error {
	delete(b.objects, fileID)
	return nil
}

func (b *memBlobs) ViewURL(fileID string) string {
	return "https://cdn.test/" + fileID
}

func (b *memBlobs) PreviewURL(fileID string, _, _, _ int) string {
	return "/media/preview/" + fileID
}

// publicRoutes mounts the public API the way the server router does,
// giving handlers a real chi routing context for URL params.
func publicRoutes(p *Public, m *Media) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/home", p.Home)
	r.Get("/api/about", p.About)
	r.Get("/api/projects", p.Projects)
	r.Get("/api/posts", p.Posts)
	r.Get("/api/posts/{slug}", p.Post)
	r.Post("/api/posts/{id}/like", p.LikePost)
	r.Get("/api/posts/{id}/comments", p.Comments)
	r.Post("/api/posts/{id}/comments", p.AddComment)
	r.Post("/api/comments/{id}/like", p.LikeComment)
	r.Get("/api/series", p.SeriesList)
	r.Get("/api/series/{slug}", p.Series)
	r.Get("/api/uses", p.Uses)
	r.Post("/api/contact", p.SubmitContact)
	r.Get("/api/guestbook", p.GuestBook)
	r.Post("/api/guestbook", p.SignGuestBook)
	r.Get("/api/settings", p.Settings)
	if m != nil {
		r.Get("/media/preview/*", m.Preview)
	}
	return r
}

// adminRoutes mounts the admin API without the auth middleware chain.
func adminRoutes(a *Admin) http.Handler {
	r := chi.NewRouter()
	r.Route("/admin/api", func(r chi.Router) {
		r.Get("/categories", a.ListCategories)
		r.Post("/categories", a.CreateCategory)
		r.Put("/categories/{id}", a.UpdateCategory)
		r.Delete("/categories/{id}", a.DeleteCategory)
		r.Get("/technologies", a.ListTechnologies)
		r.Post("/technologies", a.CreateTechnology)
		r.Post("/posts", a.CreatePost)
		r.Put("/posts/{id}", a.UpdatePost)
		r.Get("/profile", a.GetProfile)
		r.Put("/profile", a.SaveProfile)
		r.Post("/uses", a.CreateUsesItem)
		r.Get("/contact", a.ListContact)
		r.Put("/contact/{id}/read", a.MarkContactRead)
		r.Get("/guestbook", a.ListGuestBook)
		r.Put("/guestbook/{id}/approve", a.ApproveGuestBook)
		r.Get("/settings", a.ListSettings)
		r.Put("/settings", a.SetSetting)
		r.Delete("/settings/{key}", a.DeleteSetting)
		r.Post("/media", a.UploadMedia)
	})
	return r
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func doForm(t *testing.T, h http.Handler, method, target string, form map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	values := url.Values{}
	for k, v := range form {
		values.Set(k, v)
	}
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

// seedPublishedPost creates a published post directly through the store.
func seedPublishedPost(t *testing.T, docs document.API, title, slug string) *models.BlogPost {
	t.Helper()
	blog := store.NewBlogStore(docs)
	post, err := blog.CreatePost(context.Background(), models.BlogPost{
		Title:   title,
		Slug:    slug,
		Content: "Hello from " + title + ".",
		Status:  models.PostStatusPublished,
	})
	if err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return post
}
