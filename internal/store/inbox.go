// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"

	"folio/internal/document"
	"folio/internal/models"
)

// ContactStore manages contact form submissions.
type ContactStore struct {
	docs document.API
}

// NewContactStore returns a new ContactStore.
func NewContactStore(docs document.API) *ContactStore {
	return &ContactStore{docs: docs}
}

// List returns every submission, newest first.
func (s *ContactStore) List(ctx context.Context) ([]models.ContactSubmission, error) {
	docs, err := s.docs.List(ctx, collContact)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	items := make([]models.ContactSubmission, len(docs))
	for i, d := range docs {
		items[i] = models.ContactFromDoc(d)
	}
	return items, nil
}

// Create records a new submission.
func (s *ContactStore) Create(ctx context.Context, c models.ContactSubmission) (*models.ContactSubmission, error) {
	d, err := s.docs.Create(ctx, collContact, "", c.Payload())
	if err != nil {
		return nil, err
	}
	out := models.ContactFromDoc(*d)
	return &out, nil
}

// MarkRead flags a submission as read.
func (s *ContactStore) MarkRead(ctx context.Context, id string) error {
	_, err := s.docs.Update(ctx, collContact, id, map[string]any{"read": true})
	return err
}

// Delete removes a submission.
func (s *ContactStore) Delete(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, collContact, id)
}

// GuestBookStore manages guest book messages.
type GuestBookStore struct {
	docs document.API
}

// NewGuestBookStore returns a new GuestBookStore.
func NewGuestBookStore(docs document.API) *GuestBookStore {
	return &GuestBookStore{docs: docs}
}

// ListApproved returns publicly visible messages, newest first.
func (s *GuestBookStore) ListApproved(ctx context.Context) ([]models.GuestBookMessage, error) {
	docs, err := s.docs.List(ctx, collGuestBook, document.Equal("approved", true))
	if err != nil {
		return nil, fmt.Errorf("list guest book: %w", err)
	}
	items := make([]models.GuestBookMessage, len(docs))
	for i, d := range docs {
		items[i] = models.GuestBookFromDoc(d)
	}
	return items, nil
}

// List returns every message including unapproved ones, newest first.
func (s *GuestBookStore) List(ctx context.Context) ([]models.GuestBookMessage, error) {
	docs, err := s.docs.List(ctx, collGuestBook)
	if err != nil {
		return nil, fmt.Errorf("list guest book: %w", err)
	}
	items := make([]models.GuestBookMessage, len(docs))
	for i, d := range docs {
		items[i] = models.GuestBookFromDoc(d)
	}
	return items, nil
}

// Create records a new message. Messages await approval before they show
// on the public page.
func (s *GuestBookStore) Create(ctx context.Context, g models.GuestBookMessage) (*models.GuestBookMessage, error) {
	d, err := s.docs.Create(ctx, collGuestBook, "", g.Payload())
	if err != nil {
		return nil, err
	}
	out := models.GuestBookFromDoc(*d)
	return &out, nil
}

// Approve makes a message publicly visible.
func (s *GuestBookStore) Approve(ctx context.Context, id string) error {
	_, err := s.docs.Update(ctx, collGuestBook, id, map[string]any{"approved": true})
	return err
}

// Delete removes a message.
func (s *GuestBookStore) Delete(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, collGuestBook, id)
}

// VisitorStore records public page views.
type VisitorStore struct {
	docs document.API
}

// NewVisitorStore returns a new VisitorStore.
func NewVisitorStore(docs document.API) *VisitorStore {
	return &VisitorStore{docs: docs}
}

// Record stores one page view.
func (s *VisitorStore) Record(ctx context.Context, v models.Visitor) error {
	_, err := s.docs.Create(ctx, collVisitors, "", v.Payload())
	return err
}

// List returns recorded visits, newest first, capped at limit.
func (s *VisitorStore) List(ctx context.Context, limit int) ([]models.Visitor, error) {
	docs, err := s.docs.List(ctx, collVisitors, document.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	items := make([]models.Visitor, len(docs))
	for i, d := range docs {
		items[i] = models.VisitorFromDoc(d)
	}
	return items, nil
}
