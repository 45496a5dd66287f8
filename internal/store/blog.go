// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"errors"
	"fmt"

	"folio/internal/document"
	"folio/internal/markdown"
	"folio/internal/models"
)

// BlogStore manages blog post, series, and comment documents.
type BlogStore struct {
	docs document.API
}

// NewBlogStore returns a new BlogStore.
func NewBlogStore(docs document.API) *BlogStore {
	return &BlogStore{docs: docs}
}

// ListPosts returns every post, newest first. Used by the admin screens.
func (s *BlogStore) ListPosts(ctx context.Context) ([]models.BlogPost, error) {
	docs, err := s.docs.List(ctx, collPosts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return postsFromDocs(docs), nil
}

// ListPublished returns published posts ordered by date, newest first.
func (s *BlogStore) ListPublished(ctx context.Context) ([]models.BlogPost, error) {
	docs, err := s.docs.List(ctx, collPosts,
		document.Equal("status", string(models.PostStatusPublished)),
		document.OrderDesc("date"))
	if err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	return postsFromDocs(docs), nil
}

// ListBySeries returns the posts of one series ordered ascending by their
// position within it.
func (s *BlogStore) ListBySeries(ctx context.Context, seriesID string) ([]models.BlogPost, error) {
	docs, err := s.docs.List(ctx, collPosts, document.Equal("series_id", seriesID))
	if err != nil {
		return nil, fmt.Errorf("list series posts: %w", err)
	}
	posts := postsFromDocs(docs)
	// Position is numeric; sort in memory rather than relying on the
	// store's text collation.
	for i := 1; i < len(posts); i++ {
		for j := i; j > 0 && posts[j-1].SeriesPosition > posts[j].SeriesPosition; j-- {
			posts[j-1], posts[j] = posts[j], posts[j-1]
		}
	}
	return posts, nil
}

// FindPostByID retrieves a post. Absence surfaces as document.ErrNotFound.
func (s *BlogStore) FindPostByID(ctx context.Context, id string) (*models.BlogPost, error) {
	d, err := s.docs.Get(ctx, collPosts, id)
	if err != nil {
		return nil, err
	}
	p := models.PostFromDoc(*d)
	return &p, nil
}

// FindPostBySlug retrieves a published post by its public slug. Returns
// nil without error when no published post carries the slug.
func (s *BlogStore) FindPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	docs, err := s.docs.List(ctx, collPosts,
		document.Equal("slug", slug),
		document.Equal("status", string(models.PostStatusPublished)),
		document.Limit(1))
	if err != nil {
		return nil, fmt.Errorf("find post by slug: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}
	p := models.PostFromDoc(docs[0])
	return &p, nil
}

// CreatePost inserts a new post. A missing reading time is derived from
// the content before the write.
func (s *BlogStore) CreatePost(ctx context.Context, p models.BlogPost) (*models.BlogPost, error) {
	if p.ReadingTime == "" {
		p.ReadingTime = markdown.ReadingTime(p.Content)
	}
	d, err := s.docs.Create(ctx, collPosts, "", p.Payload())
	if err != nil {
		return nil, err
	}
	out := models.PostFromDoc(*d)
	return &out, nil
}

// UpdatePost modifies a post, recomputing the reading time from the new
// content unless one was supplied explicitly.
func (s *BlogStore) UpdatePost(ctx context.Context, p models.BlogPost) (*models.BlogPost, error) {
	if p.ReadingTime == "" {
		p.ReadingTime = markdown.ReadingTime(p.Content)
	}
	d, err := s.docs.Update(ctx, collPosts, p.ID, p.Payload())
	if err != nil {
		return nil, err
	}
	out := models.PostFromDoc(*d)
	return &out, nil
}

// DeletePost removes a post.
func (s *BlogStore) DeletePost(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, collPosts, id)
}

// IncrementReadCount bumps a post's read counter. Two concurrent readers
// can race with last-write-wins; analytics counters do not warrant more.
func (s *BlogStore) IncrementReadCount(ctx context.Context, id string) error {
	return s.incrementCounter(ctx, id, "read_count")
}

// IncrementLikes bumps a post's like counter.
func (s *BlogStore) IncrementLikes(ctx context.Context, id string) error {
	return s.incrementCounter(ctx, id, "likes")
}

func (s *BlogStore) incrementCounter(ctx context.Context, id, field string) error {
	d, err := s.docs.Get(ctx, collPosts, id)
	if err != nil {
		return err
	}
	p := models.PostFromDoc(*d)
	value := p.ReadCount
	if field == "likes" {
		value = p.Likes
	}
	_, err = s.docs.Update(ctx, collPosts, id, map[string]any{field: value + 1})
	return err
}

// ListSeries returns every blog series, newest first.
func (s *BlogStore) ListSeries(ctx context.Context) ([]models.BlogSeries, error) {
	docs, err := s.docs.List(ctx, collSeries)
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	items := make([]models.BlogSeries, len(docs))
	for i, d := range docs {
		items[i] = models.SeriesFromDoc(d)
	}
	return items, nil
}

// FindSeriesByID retrieves a series. Absence surfaces as document.ErrNotFound.
func (s *BlogStore) FindSeriesByID(ctx context.Context, id string) (*models.BlogSeries, error) {
	d, err := s.docs.Get(ctx, collSeries, id)
	if err != nil {
		return nil, err
	}
	out := models.SeriesFromDoc(*d)
	return &out, nil
}

// FindSeriesBySlug retrieves a series by its public slug. Returns nil
// without error when absent.
func (s *BlogStore) FindSeriesBySlug(ctx context.Context, slug string) (*models.BlogSeries, error) {
	docs, err := s.docs.List(ctx, collSeries,
		document.Equal("slug", slug), document.Limit(1))
	if err != nil {
		return nil, fmt.Errorf("find series by slug: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}
	out := models.SeriesFromDoc(docs[0])
	return &out, nil
}

// CreateSeries inserts a new series and returns it.
func (s *BlogStore) CreateSeries(ctx context.Context, sr models.BlogSeries) (*models.BlogSeries, error) {
	d, err := s.docs.Create(ctx, collSeries, "", sr.Payload())
	if err != nil {
		return nil, err
	}
	out := models.SeriesFromDoc(*d)
	return &out, nil
}

// UpdateSeries modifies a series.
func (s *BlogStore) UpdateSeries(ctx context.Context, sr models.BlogSeries) (*models.BlogSeries, error) {
	d, err := s.docs.Update(ctx, collSeries, sr.ID, sr.Payload())
	if err != nil {
		return nil, err
	}
	out := models.SeriesFromDoc(*d)
	return &out, nil
}

// DeleteSeries removes a series. Posts keep their series_id; the resolver
// simply stops finding the series for them.
func (s *BlogStore) DeleteSeries(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, collSeries, id)
}

// ListComments returns the comments attached to one content item, oldest
// first.
func (s *BlogStore) ListComments(ctx context.Context, contentID string) ([]models.Comment, error) {
	docs, err := s.docs.List(ctx, collComments, document.Equal("content_id", contentID))
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	items := make([]models.Comment, 0, len(docs))
	for i := len(docs) - 1; i >= 0; i-- {
		items = append(items, models.CommentFromDoc(docs[i]))
	}
	return items, nil
}

// AddComment inserts a comment and returns it.
func (s *BlogStore) AddComment(ctx context.Context, c models.Comment) (*models.Comment, error) {
	d, err := s.docs.Create(ctx, collComments, "", c.Payload())
	if err != nil {
		return nil, err
	}
	out := models.CommentFromDoc(*d)
	return &out, nil
}

// DeleteComment removes a comment.
func (s *BlogStore) DeleteComment(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, collComments, id)
}

// LikeComment bumps a comment's like counter.
func (s *BlogStore) LikeComment(ctx context.Context, id string) error {
	d, err := s.docs.Get(ctx, collComments, id)
	if err != nil {
		return err
	}
	c := models.CommentFromDoc(*d)
	_, err = s.docs.Update(ctx, collComments, id, map[string]any{"likes": c.Likes + 1})
	return err
}

func postsFromDocs(docs []document.Document) []models.BlogPost {
	posts := make([]models.BlogPost, len(docs))
	for i, d := range docs {
		posts[i] = models.PostFromDoc(d)
	}
	return posts
}

// IsNotFound reports whether an error from any store method means the
// entity is absent rather than the read having failed.
func IsNotFound(err error) bool {
	return errors.Is(err, document.ErrNotFound)
}
