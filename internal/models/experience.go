// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"folio/internal/document"
)

// Experience is one entry of the work history. An empty EndDate means the
// position is current.
type Experience struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Company       string    `json:"company"`
	Location      string    `json:"location"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	Description   string    `json:"description"`
	CategoryIDs   []string  `json:"category_ids"`
	TechnologyIDs []string  `json:"technology_ids"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsCurrent reports whether this is an ongoing position.
func (e Experience) IsCurrent() bool {
	return e.EndDate == ""
}

// ExperienceFromDoc maps a raw document into an Experience.
func ExperienceFromDoc(d document.Document) Experience {
	return Experience{
		ID:            d.ID,
		Title:         docString(d.Data, "title"),
		Company:       docString(d.Data, "company"),
		Location:      docString(d.Data, "location"),
		StartDate:     docString(d.Data, "start_date"),
		EndDate:       docString(d.Data, "end_date"),
		Description:   docString(d.Data, "description"),
		CategoryIDs:   docStrings(d.Data, "category_ids"),
		TechnologyIDs: docStrings(d.Data, "technology_ids"),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// Payload returns the editable fields as a write payload.
func (e Experience) Payload() map[string]any {
	return map[string]any{
		"title":          e.Title,
		"company":        e.Company,
		"location":       e.Location,
		"start_date":     e.StartDate,
		"end_date":       e.EndDate,
		"description":    e.Description,
		"category_ids":   e.CategoryIDs,
		"technology_ids": e.TechnologyIDs,
	}
}

// ExperienceAccomplishment is a single bullet point under an experience.
type ExperienceAccomplishment struct {
	ID           string    `json:"id"`
	ExperienceID string    `json:"experience_id"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AccomplishmentFromDoc maps a raw document into an ExperienceAccomplishment.
func AccomplishmentFromDoc(d document.Document) ExperienceAccomplishment {
	return ExperienceAccomplishment{
		ID:           d.ID,
		ExperienceID: docString(d.Data, "experience_id"),
		Text:         docString(d.Data, "text"),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// Payload returns the editable fields as a write payload.
func (a ExperienceAccomplishment) Payload() map[string]any {
	return map[string]any{
		"experience_id": a.ExperienceID,
		"text":          a.Text,
	}
}

// Education is one entry of the education history.
type Education struct {
	ID          string    `json:"id"`
	Degree      string    `json:"degree"`
	Institution string    `json:"institution"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	IsCurrent   bool      `json:"is_current"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EducationFromDoc maps a raw document into an Education.
func EducationFromDoc(d document.Document) Education {
	return Education{
		ID:          d.ID,
		Degree:      docString(d.Data, "degree"),
		Institution: docString(d.Data, "institution"),
		StartDate:   docString(d.Data, "start_date"),
		EndDate:     docString(d.Data, "end_date"),
		Location:    docString(d.Data, "location"),
		Description: docString(d.Data, "description"),
		IsCurrent:   docBool(d.Data, "is_current"),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// Payload returns the editable fields as a write payload.
func (e Education) Payload() map[string]any {
	return map[string]any{
		"degree":      e.Degree,
		"institution": e.Institution,
		"start_date":  e.StartDate,
		"end_date":    e.EndDate,
		"location":    e.Location,
		"description": e.Description,
		"is_current":  e.IsCurrent,
	}
}
