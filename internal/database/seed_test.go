// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"testing"

	"folio/internal/document"
	"folio/internal/store"
)

func TestSeedIdempotent(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// Seed twice; the second run must leave existing data alone.
	if err := Seed(db); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	ctx := context.Background()
	docs := document.NewClient(db)

	profile, err := store.NewProfileStore(docs).Get(ctx)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile == nil {
		t.Fatal("no profile after seeding")
	}

	settings, err := store.NewSettingsStore(docs).Map(ctx)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if settings.Get("site_title", "") == "" {
		t.Error("site_title missing after seeding")
	}
}
