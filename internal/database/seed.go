// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"folio/internal/document"
	"folio/internal/models"
	"folio/internal/store"
)

// defaultSettings are created on first boot so the frontend always has a
// complete settings map to read. Values are meant to be replaced through
// the admin API.
var defaultSettings = []struct {
	key, value, description string
}{
	{"site_title", "My Portfolio", "Site title shown in the header and page titles"},
	{"site_description", "Personal portfolio and blog", "Meta description for the home page"},
	{"posts_per_page", "10", "Blog posts per listing page"},
	{"guestbook_enabled", "true", "Whether the guest book accepts new messages"},
}

// Seed creates the initial profile and site settings when the database is
// empty. Safe to run on every boot.
func Seed(db *sql.DB) error {
	ctx := context.Background()
	docs := document.NewClient(db)

	profiles := store.NewProfileStore(docs)
	existing, err := profiles.Get(ctx)
	if err != nil {
		return fmt.Errorf("seed profile check: %w", err)
	}
	if existing == nil {
		if _, err := profiles.Save(ctx, models.Profile{
			FullName: "Your Name",
			Title:    "Software Developer",
			BioShort: "Edit your profile in the admin panel.",
		}); err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}
		slog.Info("seeded default profile")
	}

	settings := store.NewSettingsStore(docs)
	current, err := settings.Map(ctx)
	if err != nil {
		return fmt.Errorf("seed settings check: %w", err)
	}
	for _, s := range defaultSettings {
		if _, ok := current[s.key]; ok {
			continue
		}
		if err := settings.Set(ctx, s.key, s.value, s.description); err != nil {
			return fmt.Errorf("seed setting %s: %w", s.key, err)
		}
	}

	slog.Info("database seeded")
	return nil
}
