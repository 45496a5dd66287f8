// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"folio/internal/document"
)

// Profile is the site owner's bio. Exactly one profile document exists.
type Profile struct {
	ID              string     `json:"id"`
	FullName        string     `json:"full_name"`
	Nickname        string     `json:"nickname"`
	Title           string     `json:"title"`
	BioShort        string     `json:"bio_short"`
	BioLong         string     `json:"bio_long"`
	Location        string     `json:"location"`
	Avatar          Attachment `json:"avatar"`
	CoverImage      Attachment `json:"cover_image"`
	ResumeURL       string     `json:"resume_url"`
	MetaDescription string     `json:"meta_description"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ProfileFromDoc maps a raw document into a Profile.
func ProfileFromDoc(d document.Document) Profile {
	return Profile{
		ID:              d.ID,
		FullName:        docString(d.Data, "full_name"),
		Nickname:        docString(d.Data, "nickname"),
		Title:           docString(d.Data, "title"),
		BioShort:        docString(d.Data, "bio_short"),
		BioLong:         docString(d.Data, "bio_long"),
		Location:        docString(d.Data, "location"),
		Avatar:          attachmentFromDoc(d.Data, "avatar_id", "avatar"),
		CoverImage:      attachmentFromDoc(d.Data, "cover_image_id", "cover_image"),
		ResumeURL:       docString(d.Data, "resume_url"),
		MetaDescription: docString(d.Data, "meta_description"),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// Payload returns the editable fields as a write payload.
func (p Profile) Payload() map[string]any {
	m := map[string]any{
		"full_name":        p.FullName,
		"nickname":         p.Nickname,
		"title":            p.Title,
		"bio_short":        p.BioShort,
		"bio_long":         p.BioLong,
		"location":         p.Location,
		"resume_url":       p.ResumeURL,
		"meta_description": p.MetaDescription,
	}
	p.Avatar.payload(m, "avatar_id", "avatar")
	p.CoverImage.payload(m, "cover_image_id", "cover_image")
	return m
}

// SocialLink is one entry of the social icon row. Priority sorts ascending;
// IsVisible gates public display and defaults to true for documents written
// before the flag existed.
type SocialLink struct {
	ID        string    `json:"id"`
	Platform  string    `json:"platform"`
	URL       string    `json:"url"`
	Icon      string    `json:"icon"`
	Priority  int       `json:"priority"`
	IsVisible bool      `json:"is_visible"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SocialLinkFromDoc maps a raw document into a SocialLink.
func SocialLinkFromDoc(d document.Document) SocialLink {
	return SocialLink{
		ID:        d.ID,
		Platform:  docString(d.Data, "platform"),
		URL:       docString(d.Data, "url"),
		Icon:      docString(d.Data, "icon"),
		Priority:  docInt(d.Data, "priority"),
		IsVisible: docBoolOr(d.Data, "is_visible", true),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// Payload returns the editable fields as a write payload.
func (s SocialLink) Payload() map[string]any {
	return map[string]any{
		"platform":   s.Platform,
		"url":        s.URL,
		"icon":       s.Icon,
		"priority":   s.Priority,
		"is_visible": s.IsVisible,
	}
}

// UsesItem is one entry of the /uses page (hardware, software, services).
type UsesItem struct {
	ID          string     `json:"id"`
	CategoryID  string     `json:"category_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Link        string     `json:"link"`
	Image       Attachment `json:"image"`
	IsFavorite  bool       `json:"is_favorite"`
	Priority    int        `json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// UsesItemFromDoc maps a raw document into a UsesItem.
func UsesItemFromDoc(d document.Document) UsesItem {
	return UsesItem{
		ID:          d.ID,
		CategoryID:  docString(d.Data, "category_id"),
		Name:        docString(d.Data, "name"),
		Description: docString(d.Data, "description"),
		Link:        docString(d.Data, "link"),
		Image:       attachmentFromDoc(d.Data, "image_id", "image"),
		IsFavorite:  docBool(d.Data, "is_favorite"),
		Priority:    docInt(d.Data, "priority"),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// Payload returns the editable fields as a write payload.
func (u UsesItem) Payload() map[string]any {
	m := map[string]any{
		"category_id": u.CategoryID,
		"name":        u.Name,
		"description": u.Description,
		"link":        u.Link,
		"is_favorite": u.IsFavorite,
		"priority":    u.Priority,
	}
	u.Image.payload(m, "image_id", "image")
	return m
}
