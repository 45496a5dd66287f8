// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"errors"
	"fmt"

	"folio/internal/document"
	"folio/internal/models"
)

// profileDocID is the fixed id of the singleton profile document.
const profileDocID = "profile"

// ProfileStore manages the singleton profile document.
type ProfileStore struct {
	docs document.API
}

// NewProfileStore returns a new ProfileStore.
func NewProfileStore(docs document.API) *ProfileStore {
	return &ProfileStore{docs: docs}
}

// Get retrieves the profile. Returns nil without error when no profile
// document has been created yet.
func (s *ProfileStore) Get(ctx context.Context) (*models.Profile, error) {
	d, err := s.docs.Get(ctx, collProfile, profileDocID)
	if errors.Is(err, document.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p := models.ProfileFromDoc(*d)
	return &p, nil
}

// Save creates or updates the profile document.
func (s *ProfileStore) Save(ctx context.Context, p models.Profile) (*models.Profile, error) {
	d, err := s.docs.Update(ctx, collProfile, profileDocID, p.Payload())
	if errors.Is(err, document.ErrNotFound) {
		d, err = s.docs.Create(ctx, collProfile, profileDocID, p.Payload())
	}
	if err != nil {
		return nil, err
	}
	out := models.ProfileFromDoc(*d)
	return &out, nil
}

// SocialLinkStore manages social link documents.
type SocialLinkStore struct {
	docs document.API
}

// NewSocialLinkStore returns a new SocialLinkStore.
func NewSocialLinkStore(docs document.API) *SocialLinkStore {
	return &SocialLinkStore{docs: docs}
}

// List returns every social link in insertion order. Visibility filtering
// and priority ordering are the composer's concern.
func (s *SocialLinkStore) List(ctx context.Context) ([]models.SocialLink, error) {
	docs, err := s.docs.List(ctx, collSocialLinks)
	if err != nil {
		return nil, fmt.Errorf("list social links: %w", err)
	}
	items := make([]models.SocialLink, 0, len(docs))
	for i := len(docs) - 1; i >= 0; i-- {
		items = append(items, models.SocialLinkFromDoc(docs[i]))
	}
	return items, nil
}

// FindByID retrieves a social link. Absence surfaces as document.ErrNotFound.
func (s *SocialLinkStore) FindByID(ctx context.Context, id string) (*models.SocialLink, error) {
	d, err := s.docs.Get(ctx, collSocialLinks, id)
	if err != nil {
		return nil, err
	}
	l := models.SocialLinkFromDoc(*d)
	return &l, nil
}

// Create inserts a new social link and returns it.
func (s *SocialLinkStore) Create(ctx context.Context, l models.SocialLink) (*models.SocialLink, error) {
	d, err := s.docs.Create(ctx, collSocialLinks, "", l.Payload())
	if err != nil {
		return nil, err
	}
	out := models.SocialLinkFromDoc(*d)
	return &out, nil
}

// Update modifies a social link.
func (s *SocialLinkStore) Update(ctx context.Context, l models.SocialLink) (*models.SocialLink, error) {
	d, err := s.docs.Update(ctx, collSocialLinks, l.ID, l.Payload())
	if err != nil {
		return nil, err
	}
	out := models.SocialLinkFromDoc(*d)
	return &out, nil
}

// Delete removes a social link.
func (s *SocialLinkStore) Delete(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, collSocialLinks, id)
}

// UsesStore manages /uses page item documents.
type UsesStore struct {
	docs document.API
}

// NewUsesStore returns a new UsesStore.
func NewUsesStore(docs document.API) *UsesStore {
	return &UsesStore{docs: docs}
}

// List returns every uses item in insertion order.
func (s *UsesStore) List(ctx context.Context) ([]models.UsesItem, error) {
	docs, err := s.docs.List(ctx, collUses)
	if err != nil {
		return nil, fmt.Errorf("list uses items: %w", err)
	}
	items := make([]models.UsesItem, 0, len(docs))
	for i := len(docs) - 1; i >= 0; i-- {
		items = append(items, models.UsesItemFromDoc(docs[i]))
	}
	return items, nil
}

// FindByID retrieves a uses item. Absence surfaces as document.ErrNotFound.
func (s *UsesStore) FindByID(ctx context.Context, id string) (*models.UsesItem, error) {
	d, err := s.docs.Get(ctx, collUses, id)
	if err != nil {
		return nil, err
	}
	u := models.UsesItemFromDoc(*d)
	return &u, nil
}

// Create inserts a new uses item and returns it.
func (s *UsesStore) Create(ctx context.Context, u models.UsesItem) (*models.UsesItem, error) {
	d, err := s.docs.Create(ctx, collUses, "", u.Payload())
	if err != nil {
		return nil, err
	}
	out := models.UsesItemFromDoc(*d)
	return &out, nil
}

// Update modifies a uses item.
func (s *UsesStore) Update(ctx context.Context, u models.UsesItem) (*models.UsesItem, error) {
	d, err := s.docs.Update(ctx, collUses, u.ID, u.Payload())
	if err != nil {
		return nil, err
	}
	out := models.UsesItemFromDoc(*d)
	return &out, nil
}

// Delete removes a uses item.
func (s *UsesStore) Delete(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, collUses, id)
}
