// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"folio/internal/document"
)

// PostStatus represents the publishing state of a blog post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

// BlogPost is a long-form markdown article. Slug is unique and used for
// public routing. ReadingTime is a display string of the form "N min read";
// when absent it is computed from the content at save time.
type BlogPost struct {
	ID                    string     `json:"id"`
	Title                 string     `json:"title"`
	Slug                  string     `json:"slug"`
	Excerpt               string     `json:"excerpt"`
	Content               string     `json:"content"`
	CoverImage            Attachment `json:"cover_image"`
	Date                  string     `json:"date"`
	ReadingTime           string     `json:"reading_time"`
	CategoryIDs           []string   `json:"category_ids"`
	TagIDs                []string   `json:"tag_ids"`
	TechnologyIDs         []string   `json:"technology_ids"`
	Status                PostStatus `json:"status"`
	Featured              bool       `json:"featured"`
	SeriesID              string     `json:"series_id"`
	SeriesPosition        int        `json:"series_position"`
	RelatedPostIDs        []string   `json:"related_post_ids"`
	RecommendedNextReadID string     `json:"recommended_next_read_id"`
	ReadCount             int        `json:"read_count"`
	Likes                 int        `json:"likes"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// IsPublished returns true if the post is in published status.
func (p *BlogPost) IsPublished() bool {
	return p.Status == PostStatusPublished
}

// PostFromDoc maps a raw document into a BlogPost. A missing status maps
// to draft so unfinished documents never leak onto the public site.
func PostFromDoc(d document.Document) BlogPost {
	return BlogPost{
		ID:                    d.ID,
		Title:                 docString(d.Data, "title"),
		Slug:                  docString(d.Data, "slug"),
		Excerpt:               docString(d.Data, "excerpt"),
		Content:               docString(d.Data, "content"),
		CoverImage:            attachmentFromDoc(d.Data, "cover_image_id", "cover_image"),
		Date:                  docString(d.Data, "date"),
		ReadingTime:           docString(d.Data, "reading_time"),
		CategoryIDs:           docStrings(d.Data, "category_ids"),
		TagIDs:                docStrings(d.Data, "tag_ids"),
		TechnologyIDs:         docStrings(d.Data, "technology_ids"),
		Status:                PostStatus(docStringOr(d.Data, "status", string(PostStatusDraft))),
		Featured:              docBool(d.Data, "featured"),
		SeriesID:              docString(d.Data, "series_id"),
		SeriesPosition:        docInt(d.Data, "series_position"),
		RelatedPostIDs:        docStrings(d.Data, "related_post_ids"),
		RecommendedNextReadID: docString(d.Data, "recommended_next_read_id"),
		ReadCount:             docInt(d.Data, "read_count"),
		Likes:                 docInt(d.Data, "likes"),
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}
}

// Payload returns the editable fields as a write payload. Counters
// (read_count, likes) are excluded; they change through dedicated
// increment operations, never through an edit form.
func (p BlogPost) Payload() map[string]any {
	m := map[string]any{
		"title":                    p.Title,
		"slug":                     p.Slug,
		"excerpt":                  p.Excerpt,
		"content":                  p.Content,
		"date":                     p.Date,
		"reading_time":             p.ReadingTime,
		"category_ids":             p.CategoryIDs,
		"tag_ids":                  p.TagIDs,
		"technology_ids":           p.TechnologyIDs,
		"status":                   string(p.Status),
		"featured":                 p.Featured,
		"series_id":                p.SeriesID,
		"series_position":          p.SeriesPosition,
		"related_post_ids":         p.RelatedPostIDs,
		"recommended_next_read_id": p.RecommendedNextReadID,
	}
	p.CoverImage.payload(m, "cover_image_id", "cover_image")
	return m
}

// SeriesStatus represents whether a blog series is still being written.
type SeriesStatus string

const (
	SeriesOngoing  SeriesStatus = "ongoing"
	SeriesComplete SeriesStatus = "complete"
)

// BlogSeries groups posts into an ordered multi-part series.
type BlogSeries struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Slug        string       `json:"slug"`
	Image       Attachment   `json:"image"`
	Status      SeriesStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// SeriesFromDoc maps a raw document into a BlogSeries.
func SeriesFromDoc(d document.Document) BlogSeries {
	return BlogSeries{
		ID:          d.ID,
		Title:       docString(d.Data, "title"),
		Description: docString(d.Data, "description"),
		Slug:        docString(d.Data, "slug"),
		Image:       attachmentFromDoc(d.Data, "image_id", "image"),
		Status:      SeriesStatus(docStringOr(d.Data, "status", string(SeriesOngoing))),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// Payload returns the editable fields as a write payload.
func (s BlogSeries) Payload() map[string]any {
	m := map[string]any{
		"title":       s.Title,
		"description": s.Description,
		"slug":        s.Slug,
		"status":      string(s.Status),
	}
	s.Image.payload(m, "image_id", "image")
	return m
}

// Comment is a reader comment attached to a content item by id.
type Comment struct {
	ID          string    `json:"id"`
	ContentID   string    `json:"content_id"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	Body        string    `json:"body"`
	Likes       int       `json:"likes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CommentFromDoc maps a raw document into a Comment.
func CommentFromDoc(d document.Document) Comment {
	return Comment{
		ID:          d.ID,
		ContentID:   docString(d.Data, "content_id"),
		AuthorName:  docString(d.Data, "author_name"),
		AuthorEmail: docString(d.Data, "author_email"),
		Body:        docString(d.Data, "body"),
		Likes:       docInt(d.Data, "likes"),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// Payload returns the editable fields as a write payload.
func (c Comment) Payload() map[string]any {
	return map[string]any{
		"content_id":   c.ContentID,
		"author_name":  c.AuthorName,
		"author_email": c.AuthorEmail,
		"body":         c.Body,
		"likes":        c.Likes,
	}
}
