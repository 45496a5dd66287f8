// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"folio/internal/models"
)

// Upload carries a new binary payload for an entity's attachment.
type Upload struct {
	Data        []byte
	ContentType string
	// Ext is the file extension including the dot, e.g. ".png".
	Ext string
}

// SyncAttachment keeps an entity's attachment in step with its stored
// object across a save:
//
//   - with a new payload: upload it, derive the view URL, and best-effort
//     delete the superseded object (a failed delete is logged, never fatal);
//   - without one: leave the existing pair untouched, falling back to the
//     placeholder when no object was ever attached.
//
// Upload failures propagate — the caller must abort the save.
func SyncAttachment(ctx context.Context, blobs BlobStore, upload *Upload, current models.Attachment) (models.Attachment, error) {
	if upload == nil {
		return models.NewAttachment(current.FileID, current.URL), nil
	}

	if blobs == nil {
		return current, fmt.Errorf("sync attachment: storage not configured")
	}

	fileID, err := blobs.Upload(ctx, upload.ContentType, upload.Ext, bytes.NewReader(upload.Data), int64(len(upload.Data)))
	if err != nil {
		return current, fmt.Errorf("sync attachment: %w", err)
	}

	if current.IsCustom() {
		if err := blobs.Delete(ctx, current.FileID); err != nil {
			slog.Warn("superseded file delete failed", "file_id", current.FileID, "error", err)
		}
	}

	return models.NewAttachment(fileID, blobs.ViewURL(fileID)), nil
}
