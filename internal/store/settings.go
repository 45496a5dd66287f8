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

// SettingsStore manages site settings. Settings use their key as the
// document id so lookups and upserts never need a scan.
type SettingsStore struct {
	docs document.API
}

// NewSettingsStore returns a new SettingsStore.
func NewSettingsStore(docs document.API) *SettingsStore {
	return &SettingsStore{docs: docs}
}

// List returns every setting.
func (s *SettingsStore) List(ctx context.Context) ([]models.SiteSetting, error) {
	docs, err := s.docs.List(ctx, collSettings)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	items := make([]models.SiteSetting, len(docs))
	for i, d := range docs {
		items[i] = models.SettingFromDoc(d)
	}
	return items, nil
}

// Map returns all settings as a key→value lookup.
func (s *SettingsStore) Map(ctx context.Context) (models.SiteSettings, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	m := make(models.SiteSettings, len(items))
	for _, it := range items {
		m[it.Key] = it.Value
	}
	return m, nil
}

// Get returns the value for a key, or the fallback when the key is absent.
func (s *SettingsStore) Get(ctx context.Context, key, fallback string) (string, error) {
	d, err := s.docs.Get(ctx, collSettings, key)
	if err != nil {
		if IsNotFound(err) {
			return fallback, nil
		}
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	set := models.SettingFromDoc(*d)
	if set.Value == "" {
		return fallback, nil
	}
	return set.Value, nil
}

// Set creates or updates a setting.
func (s *SettingsStore) Set(ctx context.Context, key, value, description string) error {
	payload := models.SiteSetting{Key: key, Value: value, Description: description}.Payload()
	_, err := s.docs.Update(ctx, collSettings, key, payload)
	if err == nil {
		return nil
	}
	if !IsNotFound(err) {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	if _, err := s.docs.Create(ctx, collSettings, key, payload); err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

// Delete removes a setting.
func (s *SettingsStore) Delete(ctx context.Context, key string) error {
	return s.docs.Delete(ctx, collSettings, key)
}
