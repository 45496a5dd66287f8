// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"folio/internal/document"
)

// ContactSubmission is one message sent through the public contact form.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactFromDoc maps a raw document into a ContactSubmission.
func ContactFromDoc(d document.Document) ContactSubmission {
	return ContactSubmission{
		ID:        d.ID,
		Name:      docString(d.Data, "name"),
		Email:     docString(d.Data, "email"),
		Subject:   docString(d.Data, "subject"),
		Message:   docString(d.Data, "message"),
		Read:      docBool(d.Data, "read"),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// Payload returns the editable fields as a write payload.
func (c ContactSubmission) Payload() map[string]any {
	return map[string]any{
		"name":    c.Name,
		"email":   c.Email,
		"subject": c.Subject,
		"message": c.Message,
		"read":    c.Read,
	}
}

// GuestBookMessage is one public guest book entry.
type GuestBookMessage struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	Message    string    `json:"message"`
	Website    string    `json:"website"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// GuestBookFromDoc maps a raw document into a GuestBookMessage.
func GuestBookFromDoc(d document.Document) GuestBookMessage {
	return GuestBookMessage{
		ID:         d.ID,
		AuthorName: docString(d.Data, "author_name"),
		Message:    docString(d.Data, "message"),
		Website:    docString(d.Data, "website"),
		Approved:   docBool(d.Data, "approved"),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// Payload returns the editable fields as a write payload.
func (g GuestBookMessage) Payload() map[string]any {
	return map[string]any{
		"author_name": g.AuthorName,
		"message":     g.Message,
		"website":     g.Website,
		"approved":    g.Approved,
	}
}

// Visitor is one recorded public page view, enriched with a best-effort
// geolocation of the client address.
type Visitor struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Referrer  string    `json:"referrer"`
	UserAgent string    `json:"user_agent"`
	Country   string    `json:"country"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VisitorFromDoc maps a raw document into a Visitor.
func VisitorFromDoc(d document.Document) Visitor {
	return Visitor{
		ID:        d.ID,
		Path:      docString(d.Data, "path"),
		Referrer:  docString(d.Data, "referrer"),
		UserAgent: docString(d.Data, "user_agent"),
		Country:   docString(d.Data, "country"),
		City:      docString(d.Data, "city"),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// Payload returns the editable fields as a write payload.
func (v Visitor) Payload() map[string]any {
	return map[string]any{
		"path":       v.Path,
		"referrer":   v.Referrer,
		"user_agent": v.UserAgent,
		"country":    v.Country,
		"city":       v.City,
	}
}

// SiteSetting is a single configuration key/value pair with a free-form
// description. The settings collection forms an un-typed config store.
type SiteSetting struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SettingFromDoc maps a raw document into a SiteSetting.
func SettingFromDoc(d document.Document) SiteSetting {
	return SiteSetting{
		ID:          d.ID,
		Key:         docString(d.Data, "key"),
		Value:       docString(d.Data, "value"),
		Description: docString(d.Data, "description"),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// Payload returns the editable fields as a write payload.
func (s SiteSetting) Payload() map[string]any {
	return map[string]any{
		"key":         s.Key,
		"value":       s.Value,
		"description": s.Description,
	}
}

// SiteSettings is a convenience map for accessing settings by key.
type SiteSettings map[string]string

// Get returns the value for a key, or the fallback if the key doesn't exist.
func (s SiteSettings) Get(key, fallback string) string {
	if v, ok := s[key]; ok && v != "" {
		return v
	}
	return fallback
}
