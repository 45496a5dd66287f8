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

// TechnologyStore manages technology documents.
type TechnologyStore struct {
	docs document.API
}

// NewTechnologyStore returns a new TechnologyStore.
func NewTechnologyStore(docs document.API) *TechnologyStore {
	return &TechnologyStore{docs: docs}
}

// List returns all technologies ordered by name.
func (s *TechnologyStore) List(ctx context.Context) ([]models.Technology, error) {
	docs, err := s.docs.List(ctx, collTechnologies, document.OrderAsc("name"))
	if err != nil {
		return nil, fmt.Errorf("list technologies: %w", err)
	}
	items := make([]models.Technology, len(docs))
	for i, d := range docs {
		items[i] = models.TechnologyFromDoc(d)
	}
	return items, nil
}

// ListByCategory returns the technologies referencing one category.
func (s *TechnologyStore) ListByCategory(ctx context.Context, categoryID string) ([]models.Technology, error) {
	docs, err := s.docs.List(ctx, collTechnologies,
		document.Equal("category_id", categoryID), document.OrderAsc("name"))
	if err != nil {
		return nil, fmt.Errorf("list technologies by category: %w", err)
	}
	items := make([]models.Technology, len(docs))
	for i, d := range docs {
		items[i] = models.TechnologyFromDoc(d)
	}
	return items, nil
}

// FindByID retrieves a technology. Absence surfaces as document.ErrNotFound.
func (s *TechnologyStore) FindByID(ctx context.Context, id string) (*models.Technology, error) {
	d, err := s.docs.Get(ctx, collTechnologies, id)
	if err != nil {
		return nil, err
	}
	t := models.TechnologyFromDoc(*d)
	return &t, nil
}

// Create inserts a new technology and returns it.
func (s *TechnologyStore) Create(ctx context.Context, t models.Technology) (*models.Technology, error) {
	d, err := s.docs.Create(ctx, collTechnologies, "", t.Payload())
	if err != nil {
		return nil, err
	}
	out := models.TechnologyFromDoc(*d)
	return &out, nil
}

// Update modifies an existing technology.
func (s *TechnologyStore) Update(ctx context.Context, t models.Technology) (*models.Technology, error) {
	d, err := s.docs.Update(ctx, collTechnologies, t.ID, t.Payload())
	if err != nil {
		return nil, err
	}
	out := models.TechnologyFromDoc(*d)
	return &out, nil
}

// Delete removes a technology.
func (s *TechnologyStore) Delete(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, collTechnologies, id)
}

// SkillStore manages skill documents.
type SkillStore struct {
	docs document.API
}

// NewSkillStore returns a new SkillStore.
func NewSkillStore(docs document.API) *SkillStore {
	return &SkillStore{docs: docs}
}

// List returns all skills ordered by name.
func (s *SkillStore) List(ctx context.Context) ([]models.Skill, error) {
	docs, err := s.docs.List(ctx, collSkills, document.OrderAsc("name"))
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	items := make([]models.Skill, len(docs))
	for i, d := range docs {
		items[i] = models.SkillFromDoc(d)
	}
	return items, nil
}

// FindByID retrieves a skill. Absence surfaces as document.ErrNotFound.
func (s *SkillStore) FindByID(ctx context.Context, id string) (*models.Skill, error) {
	d, err := s.docs.Get(ctx, collSkills, id)
	if err != nil {
		return nil, err
	}
	sk := models.SkillFromDoc(*d)
	return &sk, nil
}

// Create inserts a new skill and returns it.
func (s *SkillStore) Create(ctx context.Context, sk models.Skill) (*models.Skill, error) {
	d, err := s.docs.Create(ctx, collSkills, "", sk.Payload())
	if err != nil {
		return nil, err
	}
	out := models.SkillFromDoc(*d)
	return &out, nil
}

// Update modifies an existing skill.
func (s *SkillStore) Update(ctx context.Context, sk models.Skill) (*models.Skill, error) {
	d, err := s.docs.Update(ctx, collSkills, sk.ID, sk.Payload())
	if err != nil {
		return nil, err
	}
	out := models.SkillFromDoc(*d)
	return &out, nil
}

// Delete removes a skill.
func (s *SkillStore) Delete(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, collSkills, id)
}
