package document

import (
	"context"
	"errors"
	"testing"
)

// TestBuildList verifies SQL construction for every option combination.
func TestBuildList(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		wantSQL  string
		wantArgs int
	}{
		{
			name:     "no options",
			opts:     nil,
			wantSQL:  `SELECT id, data, created_at, updated_at FROM documents WHERE collection = $1 ORDER BY created_at DESC`,
			wantArgs: 1,
		},
		{
			name:     "single equality filter",
			opts:     []Option{Equal("status", "published")},
			wantSQL:  `SELECT id, data, created_at, updated_at FROM documents WHERE collection = $1 AND data->>$2 = $3 ORDER BY created_at DESC`,
			wantArgs: 3,
		},
		{
			name:     "filter with order and limit",
			opts:     []Option{Equal("series_id", "s1"), OrderAsc("series_position"), Limit(10)},
			wantSQL:  `SELECT id, data, created_at, updated_at FROM documents WHERE collection = $1 AND data->>$2 = $3 ORDER BY data->>$4, created_at LIMIT $5`,
			wantArgs: 5,
		},
		{
			name:     "descending order",
			opts:     []Option{OrderDesc("date")},
			wantSQL:  `SELECT id, data, created_at, updated_at FROM documents WHERE collection = $1 ORDER BY data->>$2 DESC, created_at`,
			wantArgs: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := buildList("blog_posts", tt.opts)
			if sql != tt.wantSQL {
				t.Errorf("sql:\n got %q\nwant %q", sql, tt.wantSQL)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("args: got %d, want %d", len(args), tt.wantArgs)
			}
		})
	}
}

// TestMemoryCRUD exercises the in-memory implementation the other packages
// test against, checking it keeps the same contract as the SQL client.
func TestMemoryCRUD(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	created, err := m.Create(ctx, "categories", "", map[string]any{"name": "Backend"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	got, err := m.Get(ctx, "categories", created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Data["name"] != "Backend" {
		t.Errorf("name: got %v, want Backend", got.Data["name"])
	}

	// Partial update merges, leaving other fields in place.
	if _, err := m.Update(ctx, "categories", created.ID, map[string]any{"description": "APIs"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err = m.Get(ctx, "categories", created.ID)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if got.Data["name"] != "Backend" || got.Data["description"] != "APIs" {
		t.Errorf("merge: got %v", got.Data)
	}

	if err := m.Delete(ctx, "categories", created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := m.Get(ctx, "categories", created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

// TestMemoryListFilterOrderLimit checks equality filters, ordering, and limit.
func TestMemoryListFilterOrderLimit(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	for _, d := range []map[string]any{
		{"series_id": "s1", "series_position": float64(3)},
		{"series_id": "s1", "series_position": float64(1)},
		{"series_id": "s2", "series_position": float64(2)},
		{"series_id": "s1", "series_position": float64(2)},
	} {
		if _, err := m.Create(ctx, "blog_posts", "", d); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	docs, err := m.List(ctx, "blog_posts", Equal("series_id", "s1"), OrderAsc("series_position"))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("filtered count: got %d, want 3", len(docs))
	}
	for i, want := range []float64{1, 2, 3} {
		if got := docs[i].Data["series_position"].(float64); got != want {
			t.Errorf("position[%d]: got %v, want %v", i, got, want)
		}
	}

	docs, err = m.List(ctx, "blog_posts", Limit(2))
	if err != nil {
		t.Fatalf("List with limit: %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("limit: got %d docs, want 2", len(docs))
	}
}

// TestMemoryGetNotFound verifies the sentinel is wrapped, not replaced.
func TestMemoryGetNotFound(t *testing.T) {
	m := NewMemory()
	_, err := m.Get(context.Background(), "projects", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
