// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"folio/internal/imaging"
	"folio/internal/storage"
)

// Media serves resized previews of stored images. Resizing happens on
// demand; the endpoint sets long-lived cache headers so a CDN or the
// browser absorbs repeat requests.
type Media struct {
	blobs storage.BlobStore
}

func NewMedia(blobs storage.BlobStore) *Media {
	return &Media{blobs: blobs}
}

// Preview returns a JPEG preview of the stored image, scaled down to the
// w/h query bounds at quality q. Missing or zero bounds fall back to the
// configured maximums; images are never upscaled.
func (m *Media) Preview(w http.ResponseWriter, r *http.Request) {
	if m.blobs == nil {
		respondError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}
	fileID := chi.URLParam(r, "*")
	if fileID == "" {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	width := queryInt(r, "w", imaging.MaxDimension)
	height := queryInt(r, "h", imaging.MaxDimension)
	quality := queryInt(r, "q", imaging.DefaultQuality)

	data, err := m.blobs.Download(r.Context(), fileID)
	if err != nil {
		if storage.IsNotFound(err) {
			respondError(w, http.StatusNotFound, "not found")
			return
		}
		serverError(w, "media download failed", err)
		return
	}

	resized, err := imaging.Resize(bytes.NewReader(data), width, height, quality)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "not a resizable image")
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", strconv.Itoa(len(resized)))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.Write(resized)
}

// queryInt reads a bounded positive integer query parameter.
func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	if n > imaging.MaxDimension && (key == "w" || key == "h") {
		return imaging.MaxDimension
	}
	if key == "q" && n > 100 {
		return imaging.DefaultQuality
	}
	return n
}
