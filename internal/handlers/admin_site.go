// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"folio/internal/models"
)

// --- Profile ---

func (a *Admin) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := a.profile.Get(r.Context())
	if err != nil {
		serverError(w, "profile read failed", err)
		return
	}
	if profile == nil {
		respondError(w, http.StatusNotFound, "profile not created yet")
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// SaveProfile creates or replaces the singleton profile. Avatar and cover
// image ride along as optional multipart file parts.
func (a *Admin) SaveProfile(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	if msg := validateName(r.FormValue("full_name")); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	current, err := a.profile.Get(r.Context())
	if err != nil {
		serverError(w, "profile read failed", err)
		return
	}
	avatar := models.NewAttachment("", "")
	cover := models.NewAttachment("", "")
	if current != nil {
		avatar = current.Avatar
		cover = current.CoverImage
	}
	if avatar, err = a.syncImage(r, "avatar", avatar); err != nil {
		serverError(w, "avatar upload failed", err)
		return
	}
	if cover, err = a.syncImage(r, "cover_image", cover); err != nil {
		serverError(w, "cover image upload failed", err)
		return
	}

	saved, err := a.profile.Save(r.Context(), models.Profile{
		FullName:        r.FormValue("full_name"),
		Nickname:        r.FormValue("nickname"),
		Title:           r.FormValue("title"),
		BioShort:        r.FormValue("bio_short"),
		BioLong:         r.FormValue("bio_long"),
		Location:        r.FormValue("location"),
		Avatar:          avatar,
		CoverImage:      cover,
		ResumeURL:       r.FormValue("resume_url"),
		MetaDescription: r.FormValue("meta_description"),
	})
	if err != nil {
		serverError(w, "profile save failed", err)
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

// --- Social links ---

func (a *Admin) ListSocialLinks(w http.ResponseWriter, r *http.Request) {
	links, err := a.social.List(r.Context())
	if err != nil {
		serverError(w, "social link list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, links)
}

func (a *Admin) socialLinkFromForm(r *http.Request, id string) models.SocialLink {
	visible := true
	if r.Form.Has("is_visible") {
		visible = formBool(r, "is_visible")
	}
	return models.SocialLink{
		ID:        id,
		Platform:  r.FormValue("platform"),
		URL:       r.FormValue("url"),
		Icon:      r.FormValue("icon"),
		Priority:  formInt(r, "priority"),
		IsVisible: visible,
	}
}

func (a *Admin) CreateSocialLink(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	if msg := validateName(r.FormValue("platform")); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	created, err := a.social.Create(r.Context(), a.socialLinkFromForm(r, ""))
	if err != nil {
		serverError(w, "social link create failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *Admin) UpdateSocialLink(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	updated, err := a.social.Update(r.Context(), a.socialLinkFromForm(r, chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, "social link update failed", err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (a *Admin) DeleteSocialLink(w http.ResponseWriter, r *http.Request) {
	if err := a.social.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		serverError(w, "social link delete failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// --- Uses items ---

func (a *Admin) ListUses(w http.ResponseWriter, r *http.Request) {
	items, err := a.uses.List(r.Context())
	if err != nil {
		serverError(w, "uses list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (a *Admin) usesFromForm(r *http.Request, id string, image models.Attachment) models.UsesItem {
	return models.UsesItem{
		ID:          id,
		CategoryID:  r.FormValue("category_id"),
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Link:        r.FormValue("link"),
		Image:       image,
		IsFavorite:  formBool(r, "is_favorite"),
		Priority:    formInt(r, "priority"),
	}
}

func (a *Admin) CreateUsesItem(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	if msg := validateName(r.FormValue("name")); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	image, err := a.syncImage(r, "image", models.NewAttachment("", ""))
	if err != nil {
		serverError(w, "uses image upload failed", err)
		return
	}
	created, err := a.uses.Create(r.Context(), a.usesFromForm(r, "", image))
	if err != nil {
		serverError(w, "uses create failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *Admin) UpdateUsesItem(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	id := chi.URLParam(r, "id")
	current, err := a.uses.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, "uses lookup failed", err)
		return
	}
	image, err := a.syncImage(r, "image", current.Image)
	if err != nil {
		serverError(w, "uses image upload failed", err)
		return
	}
	updated, err := a.uses.Update(r.Context(), a.usesFromForm(r, id, image))
	if err != nil {
		writeError(w, "uses update failed", err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (a *Admin) DeleteUsesItem(w http.ResponseWriter, r *http.Request) {
	if err := a.uses.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		serverError(w, "uses delete failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// --- Contact inbox ---

func (a *Admin) ListContact(w http.ResponseWriter, r *http.Request) {
	items, err := a.contact.List(r.Context())
	if err != nil {
		serverError(w, "contact list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (a *Admin) MarkContactRead(w http.ResponseWriter, r *http.Request) {
	if err := a.contact.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, "contact mark read failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (a *Admin) DeleteContact(w http.ResponseWriter, r *http.Request) {
	if err := a.contact.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		serverError(w, "contact delete failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// --- Guest book moderation ---

func (a *Admin) ListGuestBook(w http.ResponseWriter, r *http.Request) {
	items, err := a.guests.List(r.Context())
	if err != nil {
		serverError(w, "guest book list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (a *Admin) ApproveGuestBook(w http.ResponseWriter, r *http.Request) {
	if err := a.guests.Approve(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, "guest book approve failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (a *Admin) DeleteGuestBook(w http.ResponseWriter, r *http.Request) {
	if err := a.guests.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		serverError(w, "guest book delete failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// --- Visitor analytics ---

const defaultVisitorLimit = 200

func (a *Admin) ListVisitors(w http.ResponseWriter, r *http.Request) {
	limit := defaultVisitorLimit
	if n := formInt(r, "limit"); n > 0 {
		limit = n
	}
	items, err := a.visitors.List(r.Context(), limit)
	if err != nil {
		serverError(w, "visitor list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// --- Site settings ---

func (a *Admin) ListSettings(w http.ResponseWriter, r *http.Request) {
	items, err := a.settings.List(r.Context())
	if err != nil {
		serverError(w, "settings list failed", err)
		return
	}
	// The TOTP secrets live here too; strip them from the listing.
	filtered := items[:0]
	for _, s := range items {
		if s.Key == totpSecretKey || s.Key == totpPendingKey {
			continue
		}
		filtered = append(filtered, s)
	}
	respondJSON(w, http.StatusOK, filtered)
}

func (a *Admin) SetSetting(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	key := r.FormValue("key")
	if key == "" {
		respondError(w, http.StatusUnprocessableEntity, "Key is required.")
		return
	}
	if key == totpSecretKey || key == totpPendingKey {
		respondError(w, http.StatusForbidden, "reserved key")
		return
	}
	if err := a.settings.Set(r.Context(), key, r.FormValue("value"), r.FormValue("description")); err != nil {
		serverError(w, "setting save failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (a *Admin) DeleteSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == totpSecretKey || key == totpPendingKey {
		respondError(w, http.StatusForbidden, "reserved key")
		return
	}
	if err := a.settings.Delete(r.Context(), key); err != nil {
		serverError(w, "setting delete failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// --- Media ---

// UploadMedia stores a standalone file and returns its id and view URL.
// Content that embeds images (markdown bodies) uploads through here.
func (a *Admin) UploadMedia(w http.ResponseWriter, r *http.Request) {
	if a.blobs == nil {
		respondError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	upload, err := formUpload(r, "file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid file part")
		return
	}
	if upload == nil {
		respondError(w, http.StatusUnprocessableEntity, "file part is required")
		return
	}

	fileID, err := a.blobs.Upload(r.Context(), upload.ContentType, upload.Ext,
		bytes.NewReader(upload.Data), int64(len(upload.Data)))
	if err != nil {
		serverError(w, "media upload failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"file_id": fileID,
		"url":     a.blobs.ViewURL(fileID),
	})
}

// DeleteMedia removes a stored file.
func (a *Admin) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	if a.blobs == nil {
		respondError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}
	fileID := chi.URLParam(r, "*")
	if fileID == "" || fileID == models.DefaultFileID {
		respondError(w, http.StatusUnprocessableEntity, "invalid file id")
		return
	}
	if err := a.blobs.Delete(r.Context(), fileID); err != nil {
		serverError(w, "media delete failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
