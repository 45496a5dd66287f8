// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"testing"

	"folio/internal/document"
	"folio/internal/models"
)

func TestWriteFailurePropagates(t *testing.T) {
	ctx := context.Background()
	mem := document.NewMemory()

	posts := NewBlogStore(mem)
	seeded, err := posts.CreatePost(ctx, models.BlogPost{Title: "Seed", Slug: "seed"})
	if err != nil {
		t.Fatalf("seed post: %v", err)
	}

	mem.FailWrite = true

	if _, err := posts.CreatePost(ctx, models.BlogPost{Title: "New"}); err == nil {
		t.Error("CreatePost: expected error when the store write fails")
	}
	if _, err := posts.UpdatePost(ctx, *seeded); err == nil {
		t.Error("UpdatePost: expected error when the store write fails")
	}
	if err := posts.DeletePost(ctx, seeded.ID); err == nil {
		t.Error("DeletePost: expected error when the store write fails")
	}
	if _, err := NewCategoryStore(mem).Create(ctx, models.Category{Name: "Go"}); err == nil {
		t.Error("CategoryStore.Create: expected error when the store write fails")
	}
	if err := NewSettingsStore(mem).Set(ctx, "site_title", "x", ""); err == nil {
		t.Error("SettingsStore.Set: expected error when the store write fails")
	}
}

func TestListFailurePropagates(t *testing.T) {
	ctx := context.Background()
	mem := document.NewMemory()
	mem.FailList = true

	if _, err := NewBlogStore(mem).ListPublished(ctx); err == nil {
		t.Error("ListPublished: expected error when the store read fails")
	}
	if _, err := NewCategoryStore(mem).Tree(ctx); err == nil {
		t.Error("Tree: expected error when the store read fails")
	}
	if _, err := NewSettingsStore(mem).Map(ctx); err == nil {
		t.Error("Map: expected error when the store read fails")
	}
}

func TestListBySeriesOrdersByPosition(t *testing.T) {
	ctx := context.Background()
	mem := document.NewMemory()
	posts := NewBlogStore(mem)

	for _, p := range []models.BlogPost{
		{Title: "Part 3", SeriesID: "s1", SeriesPosition: 3},
		{Title: "Part 1", SeriesID: "s1", SeriesPosition: 1},
		{Title: "Part 2", SeriesID: "s1", SeriesPosition: 2},
		{Title: "Other", SeriesID: "s2", SeriesPosition: 1},
	} {
		if _, err := posts.CreatePost(ctx, p); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := posts.ListBySeries(ctx, "s1")
	if err != nil {
		t.Fatalf("ListBySeries: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d posts, want 3", len(got))
	}
	for i, want := range []int{1, 2, 3} {
		if got[i].SeriesPosition != want {
			t.Errorf("position %d: got %d, want %d", i, got[i].SeriesPosition, want)
		}
	}
}

func TestFindPostBySlugIgnoresDrafts(t *testing.T) {
	ctx := context.Background()
	mem := document.NewMemory()
	posts := NewBlogStore(mem)

	if _, err := posts.CreatePost(ctx, models.BlogPost{
		Title: "Draft", Slug: "hello", Status: models.PostStatusDraft,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := posts.FindPostBySlug(ctx, "hello")
	if err != nil {
		t.Fatalf("FindPostBySlug: %v", err)
	}
	if got != nil {
		t.Errorf("draft post leaked through the public slug lookup: %+v", got)
	}

	if _, err := posts.CreatePost(ctx, models.BlogPost{
		Title: "Live", Slug: "hello", Status: models.PostStatusPublished,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err = posts.FindPostBySlug(ctx, "hello")
	if err != nil {
		t.Fatalf("FindPostBySlug: %v", err)
	}
	if got == nil || got.Title != "Live" {
		t.Errorf("got %+v, want the published post", got)
	}
}

func TestCreatePostDerivesReadingTime(t *testing.T) {
	ctx := context.Background()
	posts := NewBlogStore(document.NewMemory())

	p, err := posts.CreatePost(ctx, models.BlogPost{Title: "T", Content: "one two three"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ReadingTime != "1 min read" {
		t.Errorf("ReadingTime = %q, want %q", p.ReadingTime, "1 min read")
	}

	// An explicit value survives the save untouched.
	p2, err := posts.CreatePost(ctx, models.BlogPost{Title: "T2", Content: "words", ReadingTime: "7 min read"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p2.ReadingTime != "7 min read" {
		t.Errorf("ReadingTime = %q, want %q", p2.ReadingTime, "7 min read")
	}
}

func TestIncrementCounters(t *testing.T) {
	ctx := context.Background()
	posts := NewBlogStore(document.NewMemory())

	p, err := posts.CreatePost(ctx, models.BlogPost{Title: "T"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := posts.IncrementReadCount(ctx, p.ID); err != nil {
			t.Fatalf("IncrementReadCount: %v", err)
		}
	}
	if err := posts.IncrementLikes(ctx, p.ID); err != nil {
		t.Fatalf("IncrementLikes: %v", err)
	}

	got, err := posts.FindPostByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.ReadCount != 3 || got.Likes != 1 {
		t.Errorf("counters = (%d, %d), want (3, 1)", got.ReadCount, got.Likes)
	}
}

func TestProfileSingleton(t *testing.T) {
	ctx := context.Background()
	profiles := NewProfileStore(document.NewMemory())

	got, err := profiles.Get(ctx)
	if err != nil {
		t.Fatalf("Get on empty store: %v", err)
	}
	if got != nil {
		t.Fatalf("Get on empty store = %+v, want nil", got)
	}

	if _, err := profiles.Save(ctx, models.Profile{FullName: "Ada"}); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if _, err := profiles.Save(ctx, models.Profile{FullName: "Ada Lovelace"}); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err = profiles.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.FullName != "Ada Lovelace" {
		t.Errorf("got %+v, want the updated singleton", got)
	}
}

func TestCategoryTree(t *testing.T) {
	flat := []models.Category{
		{ID: "backend", Name: "Backend"},
		{ID: "db", Name: "Databases", ParentID: "backend"},
		{ID: "orphan", Name: "Orphan", ParentID: "gone"},
	}

	tree := buildTree(flat)
	if len(tree) != 2 {
		t.Fatalf("got %d top-level nodes, want 2", len(tree))
	}
	if tree[0].ID != "backend" || len(tree[0].Children) != 1 || tree[0].Children[0].ID != "db" {
		t.Errorf("backend subtree wrong: %+v", tree[0])
	}
	if tree[0].Children[0].Depth != 1 {
		t.Errorf("child depth = %d, want 1", tree[0].Children[0].Depth)
	}
	// A parent reference to a deleted category renders at the top level.
	if tree[1].ID != "orphan" || tree[1].Depth != 0 {
		t.Errorf("orphan node wrong: %+v", tree[1])
	}
}

func TestCategoryTreeCycleTerminates(t *testing.T) {
	flat := []models.Category{
		{ID: "a", Name: "A", ParentID: "b"},
		{ID: "b", Name: "B", ParentID: "a"},
	}

	// Must terminate; cycle members have no root so nothing is emitted.
	tree := buildTree(flat)
	if len(tree) != 0 {
		t.Errorf("got %d nodes from a pure cycle, want 0", len(tree))
	}
}

func TestGuestBookApprovalFlow(t *testing.T) {
	ctx := context.Background()
	guests := NewGuestBookStore(document.NewMemory())

	msg, err := guests.Create(ctx, models.GuestBookMessage{AuthorName: "Eve", Message: "Hi"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	approved, err := guests.ListApproved(ctx)
	if err != nil {
		t.Fatalf("ListApproved: %v", err)
	}
	if len(approved) != 0 {
		t.Fatalf("unapproved message visible: %+v", approved)
	}

	if err := guests.Approve(ctx, msg.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	approved, err = guests.ListApproved(ctx)
	if err != nil {
		t.Fatalf("ListApproved: %v", err)
	}
	if len(approved) != 1 || approved[0].AuthorName != "Eve" {
		t.Errorf("got %+v, want the approved message", approved)
	}
}

func TestSettingsMapAndGet(t *testing.T) {
	ctx := context.Background()
	settings := NewSettingsStore(document.NewMemory())

	if err := settings.Set(ctx, "site_title", "Folio", "public site title"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	// Second Set on the same key updates in place.
	if err := settings.Set(ctx, "site_title", "Folio v2", ""); err != nil {
		t.Fatalf("Set update: %v", err)
	}

	got, err := settings.Get(ctx, "site_title", "fallback")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "Folio v2" {
		t.Errorf("Get = %q, want %q", got, "Folio v2")
	}

	got, err = settings.Get(ctx, "missing", "fallback")
	if err != nil {
		t.Fatalf("Get missing: %v", err)
	}
	if got != "fallback" {
		t.Errorf("Get missing = %q, want fallback", got)
	}

	m, err := settings.Map(ctx)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if len(m) != 1 || m["site_title"] != "Folio v2" {
		t.Errorf("Map = %v", m)
	}
}
