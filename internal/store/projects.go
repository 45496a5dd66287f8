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

// ProjectStore manages project documents.
type ProjectStore struct {
	docs document.API
}

// NewProjectStore returns a new ProjectStore.
func NewProjectStore(docs document.API) *ProjectStore {
	return &ProjectStore{docs: docs}
}

// List returns all projects, newest first.
func (s *ProjectStore) List(ctx context.Context) ([]models.Project, error) {
	docs, err := s.docs.List(ctx, collProjects)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	items := make([]models.Project, len(docs))
	for i, d := range docs {
		items[i] = models.ProjectFromDoc(d)
	}
	return items, nil
}

// ListFeatured returns the projects flagged for the home page.
func (s *ProjectStore) ListFeatured(ctx context.Context) ([]models.Project, error) {
	docs, err := s.docs.List(ctx, collProjects, document.Equal("featured", true))
	if err != nil {
		return nil, fmt.Errorf("list featured projects: %w", err)
	}
	items := make([]models.Project, len(docs))
	for i, d := range docs {
		items[i] = models.ProjectFromDoc(d)
	}
	return items, nil
}

// FindByID retrieves a project. Absence surfaces as document.ErrNotFound.
func (s *ProjectStore) FindByID(ctx context.Context, id string) (*models.Project, error) {
	d, err := s.docs.Get(ctx, collProjects, id)
	if err != nil {
		return nil, err
	}
	p := models.ProjectFromDoc(*d)
	return &p, nil
}

// Create inserts a new project and returns it.
func (s *ProjectStore) Create(ctx context.Context, p models.Project) (*models.Project, error) {
	d, err := s.docs.Create(ctx, collProjects, "", p.Payload())
	if err != nil {
		return nil, err
	}
	out := models.ProjectFromDoc(*d)
	return &out, nil
}

// Update modifies an existing project.
func (s *ProjectStore) Update(ctx context.Context, p models.Project) (*models.Project, error) {
	d, err := s.docs.Update(ctx, collProjects, p.ID, p.Payload())
	if err != nil {
		return nil, err
	}
	out := models.ProjectFromDoc(*d)
	return &out, nil
}

// Delete removes a project.
func (s *ProjectStore) Delete(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, collProjects, id)
}

// TechStackStore manages the "current tech stack" documents.
type TechStackStore struct {
	docs document.API
}

// NewTechStackStore returns a new TechStackStore.
func NewTechStackStore(docs document.API) *TechStackStore {
	return &TechStackStore{docs: docs}
}

// List returns every tech stack record. Display ordering by priority is
// the composer's concern; the store returns insertion order.
func (s *TechStackStore) List(ctx context.Context) ([]models.CurrentTechStack, error) {
	docs, err := s.docs.List(ctx, collTechStack)
	if err != nil {
		return nil, fmt.Errorf("list tech stack: %w", err)
	}
	items := make([]models.CurrentTechStack, 0, len(docs))
	for i := len(docs) - 1; i >= 0; i-- {
		items = append(items, models.TechStackFromDoc(docs[i]))
	}
	return items, nil
}

// FindByID retrieves one record. Absence surfaces as document.ErrNotFound.
func (s *TechStackStore) FindByID(ctx context.Context, id string) (*models.CurrentTechStack, error) {
	d, err := s.docs.Get(ctx, collTechStack, id)
	if err != nil {
		return nil, err
	}
	t := models.TechStackFromDoc(*d)
	return &t, nil
}

// Create inserts a new record and returns it.
func (s *TechStackStore) Create(ctx context.Context, t models.CurrentTechStack) (*models.CurrentTechStack, error) {
	d, err := s.docs.Create(ctx, collTechStack, "", t.Payload())
	if err != nil {
		return nil, err
	}
	out := models.TechStackFromDoc(*d)
	return &out, nil
}

// Update modifies a record.
func (s *TechStackStore) Update(ctx context.Context, t models.CurrentTechStack) (*models.CurrentTechStack, error) {
	d, err := s.docs.Update(ctx, collTechStack, t.ID, t.Payload())
	if err != nil {
		return nil, err
	}
	out := models.TechStackFromDoc(*d)
	return &out, nil
}

// Delete removes a record.
func (s *TechStackStore) Delete(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, collTechStack, id)
}
