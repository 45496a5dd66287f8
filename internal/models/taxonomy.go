// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"folio/internal/document"
)

// Category is a display grouping for technologies, skills, experience, and
// projects. ParentID allows arbitrary nesting; a category referencing a
// deleted parent simply renders at the top level.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ParentID    string    `json:"parent_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryFromDoc maps a raw document into a Category.
func CategoryFromDoc(d document.Document) Category {
	return Category{
		ID:          d.ID,
		Name:        docString(d.Data, "name"),
		Description: docString(d.Data, "description"),
		ParentID:    docString(d.Data, "parent_id"),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// Payload returns the editable fields as a write payload.
func (c Category) Payload() map[string]any {
	return map[string]any{
		"name":        c.Name,
		"description": c.Description,
		"parent_id":   c.ParentID,
	}
}

// Technology is a single tool or framework, grouped under one category.
type Technology struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CategoryID string    `json:"category_id"`
	Icon       string    `json:"icon"`
	Website    string    `json:"website"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TechnologyFromDoc maps a raw document into a Technology.
func TechnologyFromDoc(d document.Document) Technology {
	return Technology{
		ID:         d.ID,
		Name:       docString(d.Data, "name"),
		CategoryID: docString(d.Data, "category_id"),
		Icon:       docString(d.Data, "icon"),
		Website:    docString(d.Data, "website"),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// Payload returns the editable fields as a write payload.
func (t Technology) Payload() map[string]any {
	return map[string]any{
		"name":        t.Name,
		"category_id": t.CategoryID,
		"icon":        t.Icon,
		"website":     t.Website,
	}
}

// SkillLevel is the fixed proficiency scale for skills.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
	SkillExpert       SkillLevel = "Expert"
)

// Valid reports whether the level is one of the enumerated values.
func (l SkillLevel) Valid() bool {
	switch l {
	case SkillBeginner, SkillIntermediate, SkillAdvanced, SkillExpert:
		return true
	}
	return false
}

// Skill records proficiency in one technology. Years uses half-step
// granularity (0, 0.5, 1, 1.5, ...).
type Skill struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	CategoryID   string     `json:"category_id"`
	TechnologyID string     `json:"technology_id"`
	Level        SkillLevel `json:"level"`
	Years        float64    `json:"years"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// SkillFromDoc maps a raw document into a Skill. A missing level maps to
// Beginner so the entity always carries a value from the fixed scale.
func SkillFromDoc(d document.Document) Skill {
	return Skill{
		ID:           d.ID,
		Name:         docString(d.Data, "name"),
		CategoryID:   docString(d.Data, "category_id"),
		TechnologyID: docString(d.Data, "technology_id"),
		Level:        SkillLevel(docStringOr(d.Data, "level", string(SkillBeginner))),
		Years:        docFloat(d.Data, "years"),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// Payload returns the editable fields as a write payload.
func (s Skill) Payload() map[string]any {
	return map[string]any{
		"name":          s.Name,
		"category_id":   s.CategoryID,
		"technology_id": s.TechnologyID,
		"level":         string(s.Level),
		"years":         s.Years,
	}
}
