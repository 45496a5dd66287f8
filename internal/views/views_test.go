// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package views

import (
	"context"
	"testing"

	"folio/internal/document"
	"folio/internal/models"
)

func TestGroupTechnologiesFallsBackToRawID(t *testing.T) {
	cats := []models.Category{{ID: "backend", Name: "Backend"}}
	techs := []models.Technology{
		{ID: "t1", Name: "Go", CategoryID: "backend"},
		{ID: "t2", Name: "Svelte", CategoryID: "frontend-gone"},
	}

	groups := GroupTechnologies(techs, cats)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].CategoryName != "Backend" || len(groups[0].Technologies) != 1 {
		t.Errorf("resolved group wrong: %+v", groups[0])
	}
	// A deleted category keys its group by the raw id.
	if groups[1].CategoryName != "frontend-gone" || groups[1].CategoryID != "frontend-gone" {
		t.Errorf("fallback group wrong: %+v", groups[1])
	}
}

func TestGroupTechnologiesEmptyCategoriesPassthrough(t *testing.T) {
	techs := []models.Technology{{ID: "t1", Name: "Go", CategoryID: "c1"}}

	groups := GroupTechnologies(techs, nil)
	if len(groups) != 1 || groups[0].CategoryName != "c1" {
		t.Fatalf("got %+v, want a single raw-id group", groups)
	}
}

func TestStackDetailsExcludesUnresolvable(t *testing.T) {
	cats := []models.Category{{ID: "backend", Name: "Backend"}}
	techs := []models.Technology{{ID: "t1", Name: "Go"}}
	stacks := []models.CurrentTechStack{
		{ID: "s1", Name: "Current", CategoryID: "backend", TechnologyIDs: []string{"t1", "gone"}, Priority: 2},
		{ID: "s2", Name: "No category", CategoryID: "deleted", TechnologyIDs: []string{"t1"}},
		{ID: "s3", Name: "No techs", CategoryID: "backend", TechnologyIDs: []string{"gone"}},
		{ID: "s4", Name: "First", CategoryID: "backend", TechnologyIDs: []string{"t1"}, Priority: 1},
	}

	got := StackDetails(stacks, cats, techs)
	if len(got) != 2 {
		t.Fatalf("got %d groups, want 2: %+v", len(got), got)
	}
	// Priority 1 before priority 2.
	if got[0].ID != "s4" || got[1].ID != "s1" {
		t.Errorf("order = [%s %s], want [s4 s1]", got[0].ID, got[1].ID)
	}
	// Dangling technology ids are dropped, not substituted.
	if len(got[1].Technologies) != 1 || got[1].Technologies[0].Name != "Go" {
		t.Errorf("resolved technologies wrong: %+v", got[1].Technologies)
	}
}

func TestVisibleSocialLinks(t *testing.T) {
	links := []models.SocialLink{
		{ID: "a", Platform: "GitHub", Priority: 2, IsVisible: true},
		{ID: "b", Platform: "Secret", Priority: 0, IsVisible: false},
		{ID: "c", Platform: "Mastodon", Priority: 1, IsVisible: true},
	}

	got := VisibleSocialLinks(links)
	if len(got) != 2 {
		t.Fatalf("got %d links, want 2", len(got))
	}
	if got[0].ID != "c" || got[1].ID != "a" {
		t.Errorf("order = [%s %s], want [c a]", got[0].ID, got[1].ID)
	}
}

func TestSeriesViewOrdersAndSumsMinutes(t *testing.T) {
	ctx := context.Background()
	mem := document.NewMemory()
	c := New(mem, nil)

	sr, err := c.Blog.CreateSeries(ctx, models.BlogSeries{Title: "Go from scratch", Slug: "go-from-scratch"})
	if err != nil {
		t.Fatalf("create series: %v", err)
	}
	for _, p := range []models.BlogPost{
		{Title: "Part 2", SeriesID: sr.ID, SeriesPosition: 2, ReadingTime: "4 min read"},
		{Title: "Part 1", SeriesID: sr.ID, SeriesPosition: 1, ReadingTime: "3 min read"},
		{Title: "Part 3", SeriesID: sr.ID, SeriesPosition: 3, ReadingTime: "not a time"},
	} {
		if _, err := c.Blog.CreatePost(ctx, p); err != nil {
			t.Fatalf("create post: %v", err)
		}
	}

	got, err := c.Series(ctx, "go-from-scratch")
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	if got == nil {
		t.Fatal("Series returned nil for an existing slug")
	}
	for i, want := range []string{"Part 1", "Part 2", "Part 3"} {
		if got.Posts[i].Title != want {
			t.Errorf("post %d = %q, want %q", i, got.Posts[i].Title, want)
		}
	}
	// 3 + 4 + 0 for the unparsable one.
	if got.TotalMinutes != 7 {
		t.Errorf("TotalMinutes = %d, want 7", got.TotalMinutes)
	}
}

func TestSeriesViewUnknownSlug(t *testing.T) {
	c := New(document.NewMemory(), nil)
	got, err := c.Series(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Series: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil for an unknown slug", got)
	}
}

func TestPostViewResolvesReferences(t *testing.T) {
	ctx := context.Background()
	mem := document.NewMemory()
	c := New(mem, nil)

	cat, err := c.Categories.Create(ctx, models.Category{Name: "Go"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	related, err := c.Blog.CreatePost(ctx, models.BlogPost{
		Title: "Older Post", Slug: "older", Status: models.PostStatusPublished,
	})
	if err != nil {
		t.Fatalf("create related: %v", err)
	}

	if _, err := c.Blog.CreatePost(ctx, models.BlogPost{
		Title:                 "Hello",
		Slug:                  "hello",
		Content:               "# Heading\n\nBody text.",
		Status:                models.PostStatusPublished,
		CategoryIDs:           []string{cat.ID, "deleted-cat"},
		RelatedPostIDs:        []string{related.ID, "deleted-post"},
		RecommendedNextReadID: related.ID,
	}); err != nil {
		t.Fatalf("create post: %v", err)
	}

	got, err := c.Post(ctx, "hello")
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if got == nil {
		t.Fatal("Post returned nil for a published slug")
	}
	// Name resolution keeps input length; the dangling id passes through.
	if len(got.CategoryNames) != 2 || got.CategoryNames[0] != "Go" || got.CategoryNames[1] != "deleted-cat" {
		t.Errorf("CategoryNames = %v", got.CategoryNames)
	}
	// Object resolution drops the dangling id.
	if len(got.Related) != 1 || got.Related[0].Title != "Older Post" {
		t.Errorf("Related = %+v", got.Related)
	}
	if got.NextRead == nil || got.NextRead.Title != "Older Post" {
		t.Errorf("NextRead = %+v", got.NextRead)
	}
	if got.ContentHTML == "" {
		t.Error("ContentHTML empty, want rendered markdown")
	}
}

func TestPostViewDegradedReferences(t *testing.T) {
	ctx := context.Background()
	mem := document.NewMemory()
	c := New(mem, nil)

	if _, err := c.Blog.CreatePost(ctx, models.BlogPost{
		Title:       "Hello",
		Slug:        "hello",
		Status:      models.PostStatusPublished,
		CategoryIDs: []string{"c1"},
	}); err != nil {
		t.Fatalf("create post: %v", err)
	}

	// The categories and technologies fetches fail; the post still reads
	// with raw ids passed through.
	mem.FailCollections = map[string]bool{
		"categories":   true,
		"technologies": true,
		"comments":     true,
	}
	got, err := c.Post(ctx, "hello")
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if got == nil {
		t.Fatal("Post returned nil despite the primary lookup succeeding")
	}
	if len(got.CategoryNames) != 1 || got.CategoryNames[0] != "c1" {
		t.Errorf("CategoryNames = %v, want raw id passthrough", got.CategoryNames)
	}
	if len(got.Comments) != 0 {
		t.Errorf("Comments = %+v, want empty on degraded fetch", got.Comments)
	}
}

func TestHomeViewFailsJointly(t *testing.T) {
	ctx := context.Background()
	mem := document.NewMemory()
	c := New(mem, nil)

	mem.FailList = true
	if _, err := c.Home(ctx); err == nil {
		t.Error("Home: expected error when a collection read fails")
	}
}

func TestUsesPageGroupsAndFavorites(t *testing.T) {
	ctx := context.Background()
	mem := document.NewMemory()
	c := New(mem, nil)

	cat, err := c.Categories.Create(ctx, models.Category{Name: "Hardware"})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	for _, u := range []models.UsesItem{
		{Name: "Laptop", CategoryID: cat.ID, Priority: 2, IsFavorite: true},
		{Name: "Editor", CategoryID: "software-gone", Priority: 1},
		{Name: "Keyboard", CategoryID: cat.ID, Priority: 1},
	} {
		if _, err := c.Uses.Create(ctx, u); err != nil {
			t.Fatalf("create item: %v", err)
		}
	}

	got, err := c.UsesPage(ctx)
	if err != nil {
		t.Fatalf("UsesPage: %v", err)
	}
	if len(got.Groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(got.Groups))
	}
	var hardware *UsesGroup
	for i := range got.Groups {
		if got.Groups[i].CategoryName == "Hardware" {
			hardware = &got.Groups[i]
		}
	}
	if hardware == nil {
		t.Fatal("hardware group missing")
	}
	if hardware.Items[0].Name != "Keyboard" || hardware.Items[1].Name != "Laptop" {
		t.Errorf("hardware items out of priority order: %+v", hardware.Items)
	}
	if len(got.Favorites) != 1 || got.Favorites[0].Name != "Laptop" {
		t.Errorf("Favorites = %+v", got.Favorites)
	}
}
