// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"folio/internal/document"
)

// Project is a portfolio entry.
type Project struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	LongDescription string     `json:"long_description"`
	Image           Attachment `json:"image"`
	CategoryIDs     []string   `json:"category_ids"`
	TechnologyIDs   []string   `json:"technology_ids"`
	GitHub          string     `json:"github"`
	Live            string     `json:"live"`
	Featured        bool       `json:"featured"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ProjectFromDoc maps a raw document into a Project.
func ProjectFromDoc(d document.Document) Project {
	return Project{
		ID:              d.ID,
		Name:            docString(d.Data, "name"),
		Description:     docString(d.Data, "description"),
		LongDescription: docString(d.Data, "long_description"),
		Image:           attachmentFromDoc(d.Data, "image_id", "image"),
		CategoryIDs:     docStrings(d.Data, "category_ids"),
		TechnologyIDs:   docStrings(d.Data, "technology_ids"),
		GitHub:          docString(d.Data, "github"),
		Live:            docString(d.Data, "live"),
		Featured:        docBool(d.Data, "featured"),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// Payload returns the editable fields as a write payload.
func (p Project) Payload() map[string]any {
	m := map[string]any{
		"name":             p.Name,
		"description":      p.Description,
		"long_description": p.LongDescription,
		"category_ids":     p.CategoryIDs,
		"technology_ids":   p.TechnologyIDs,
		"github":           p.GitHub,
		"live":             p.Live,
		"featured":         p.Featured,
	}
	p.Image.payload(m, "image_id", "image")
	return m
}

// CurrentTechStack is one named group of the "what I work with right now"
// section: a category plus the technologies in active use from it.
type CurrentTechStack struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	CategoryID    string    `json:"category_id"`
	TechnologyIDs []string  `json:"technology_ids"`
	Priority      int       `json:"priority"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TechStackFromDoc maps a raw document into a CurrentTechStack.
func TechStackFromDoc(d document.Document) CurrentTechStack {
	return CurrentTechStack{
		ID:            d.ID,
		Name:          docString(d.Data, "name"),
		CategoryID:    docString(d.Data, "category_id"),
		TechnologyIDs: docStrings(d.Data, "technology_ids"),
		Priority:      docInt(d.Data, "priority"),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// Payload returns the editable fields as a write payload.
func (c CurrentTechStack) Payload() map[string]any {
	return map[string]any{
		"name":           c.Name,
		"category_id":    c.CategoryID,
		"technology_ids": c.TechnologyIDs,
		"priority":       c.Priority,
	}
}
