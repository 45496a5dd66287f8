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

// ExperienceStore manages experience documents and their accomplishments.
type ExperienceStore struct {
	docs document.API
}

// NewExperienceStore returns a new ExperienceStore.
func NewExperienceStore(docs document.API) *ExperienceStore {
	return &ExperienceStore{docs: docs}
}

// List returns all experiences, most recent start date first.
func (s *ExperienceStore) List(ctx context.Context) ([]models.Experience, error) {
	docs, err := s.docs.List(ctx, collExperiences, document.OrderDesc("start_date"))
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	items := make([]models.Experience, len(docs))
	for i, d := range docs {
		items[i] = models.ExperienceFromDoc(d)
	}
	return items, nil
}

// FindByID retrieves an experience. Absence surfaces as document.ErrNotFound.
func (s *ExperienceStore) FindByID(ctx context.Context, id string) (*models.Experience, error) {
	d, err := s.docs.Get(ctx, collExperiences, id)
	if err != nil {
		return nil, err
	}
	e := models.ExperienceFromDoc(*d)
	return &e, nil
}

// Create inserts a new experience and returns it.
func (s *ExperienceStore) Create(ctx context.Context, e models.Experience) (*models.Experience, error) {
	d, err := s.docs.Create(ctx, collExperiences, "", e.Payload())
	if err != nil {
		return nil, err
	}
	out := models.ExperienceFromDoc(*d)
	return &out, nil
}

// Update modifies an existing experience.
func (s *ExperienceStore) Update(ctx context.Context, e models.Experience) (*models.Experience, error) {
	d, err := s.docs.Update(ctx, collExperiences, e.ID, e.Payload())
	if err != nil {
		return nil, err
	}
	out := models.ExperienceFromDoc(*d)
	return &out, nil
}

// Delete removes an experience and then its accomplishments. A failure
// while removing accomplishments leaves orphans behind; they are invisible
// because reads always go through the parent experience.
func (s *ExperienceStore) Delete(ctx context.Context, id string) error {
	if err := s.docs.Delete(ctx, collExperiences, id); err != nil {
		return err
	}
	docs, err := s.docs.List(ctx, collAccomplishments, document.Equal("experience_id", id))
	if err != nil {
		return fmt.Errorf("list accomplishments for delete: %w", err)
	}
	for _, d := range docs {
		if err := s.docs.Delete(ctx, collAccomplishments, d.ID); err != nil {
			return err
		}
	}
	return nil
}

// Accomplishments returns the bullet points of one experience, oldest first.
func (s *ExperienceStore) Accomplishments(ctx context.Context, experienceID string) ([]models.ExperienceAccomplishment, error) {
	docs, err := s.docs.List(ctx, collAccomplishments,
		document.Equal("experience_id", experienceID))
	if err != nil {
		return nil, fmt.Errorf("list accomplishments: %w", err)
	}
	items := make([]models.ExperienceAccomplishment, 0, len(docs))
	// Default list order is newest first; accomplishments read top-down in
	// the order they were added.
	for i := len(docs) - 1; i >= 0; i-- {
		items = append(items, models.AccomplishmentFromDoc(docs[i]))
	}
	return items, nil
}

// AddAccomplishment inserts a bullet point under an experience.
func (s *ExperienceStore) AddAccomplishment(ctx context.Context, a models.ExperienceAccomplishment) (*models.ExperienceAccomplishment, error) {
	d, err := s.docs.Create(ctx, collAccomplishments, "", a.Payload())
	if err != nil {
		return nil, err
	}
	out := models.AccomplishmentFromDoc(*d)
	return &out, nil
}

// UpdateAccomplishment modifies a bullet point.
func (s *ExperienceStore) UpdateAccomplishment(ctx context.Context, a models.ExperienceAccomplishment) (*models.ExperienceAccomplishment, error) {
	d, err := s.docs.Update(ctx, collAccomplishments, a.ID, a.Payload())
	if err != nil {
		return nil, err
	}
	out := models.AccomplishmentFromDoc(*d)
	return &out, nil
}

// DeleteAccomplishment removes a bullet point.
func (s *ExperienceStore) DeleteAccomplishment(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, collAccomplishments, id)
}

// EducationStore manages education documents.
type EducationStore struct {
	docs document.API
}

// NewEducationStore returns a new EducationStore.
func NewEducationStore(docs document.API) *EducationStore {
	return &EducationStore{docs: docs}
}

// List returns all education entries, most recent start date first.
func (s *EducationStore) List(ctx context.Context) ([]models.Education, error) {
	docs, err := s.docs.List(ctx, collEducation, document.OrderDesc("start_date"))
	if err != nil {
		return nil, fmt.Errorf("list education: %w", err)
	}
	items := make([]models.Education, len(docs))
	for i, d := range docs {
		items[i] = models.EducationFromDoc(d)
	}
	return items, nil
}

// FindByID retrieves an education entry. Absence surfaces as document.ErrNotFound.
func (s *EducationStore) FindByID(ctx context.Context, id string) (*models.Education, error) {
	d, err := s.docs.Get(ctx, collEducation, id)
	if err != nil {
		return nil, err
	}
	e := models.EducationFromDoc(*d)
	return &e, nil
}

// Create inserts a new education entry and returns it.
func (s *EducationStore) Create(ctx context.Context, e models.Education) (*models.Education, error) {
	d, err := s.docs.Create(ctx, collEducation, "", e.Payload())
	if err != nil {
		return nil, err
	}
	out := models.EducationFromDoc(*d)
	return &out, nil
}

// Update modifies an education entry.
func (s *EducationStore) Update(ctx context.Context, e models.Education) (*models.Education, error) {
	d, err := s.docs.Update(ctx, collEducation, e.ID, e.Payload())
	if err != nil {
		return nil, err
	}
	out := models.EducationFromDoc(*d)
	return &out, nil
}

// Delete removes an education entry.
func (s *EducationStore) Delete(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, collEducation, id)
}
