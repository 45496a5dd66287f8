// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"folio/internal/document"
	"folio/internal/models"
	"folio/internal/storage"
	"folio/internal/store"
)

// maxUploadMemory bounds the in-memory part of multipart form parsing.
const maxUploadMemory = 32 << 20

// Admin groups the admin API handlers. Writes arrive as form data
// (urlencoded or multipart when an image rides along); responses are JSON.
type Admin struct {
	blobs storage.BlobStore // nil when object storage is not configured

	categories  *store.CategoryStore
	techs       *store.TechnologyStore
	skills      *store.SkillStore
	experiences *store.ExperienceStore
	education   *store.EducationStore
	projects    *store.ProjectStore
	stack       *store.TechStackStore
	blog        *store.BlogStore
	profile     *store.ProfileStore
	social      *store.SocialLinkStore
	uses        *store.UsesStore
	contact     *store.ContactStore
	guests      *store.GuestBookStore
	visitors    *store.VisitorStore
	settings    *store.SettingsStore
}

// NewAdmin creates the admin handler group.
func NewAdmin(docs document.API, blobs storage.BlobStore) *Admin {
	return &Admin{
		blobs:       blobs,
		categories:  store.NewCategoryStore(docs),
		techs:       store.NewTechnologyStore(docs),
		skills:      store.NewSkillStore(docs),
		experiences: store.NewExperienceStore(docs),
		education:   store.NewEducationStore(docs),
		projects:    store.NewProjectStore(docs),
		stack:       store.NewTechStackStore(docs),
		blog:        store.NewBlogStore(docs),
		profile:     store.NewProfileStore(docs),
		social:      store.NewSocialLinkStore(docs),
		uses:        store.NewUsesStore(docs),
		contact:     store.NewContactStore(docs),
		guests:      store.NewGuestBookStore(docs),
		visitors:    store.NewVisitorStore(docs),
		settings:    store.NewSettingsStore(docs),
	}
}

// parseForm parses either form encoding, tolerating plain urlencoded
// bodies on endpoints that also accept multipart.
func parseForm(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(maxUploadMemory)
	}
	return r.ParseForm()
}

// formBool reads a checkbox-style form value.
func formBool(r *http.Request, key string) bool {
	switch r.FormValue(key) {
	case "true", "on", "1":
		return true
	}
	return false
}

// formInt reads an integer form value, zero on absence or garbage.
func formInt(r *http.Request, key string) int {
	n, _ := strconv.Atoi(r.FormValue(key))
	return n
}

// formFloat reads a float form value, zero on absence or garbage.
func formFloat(r *http.Request, key string) float64 {
	f, _ := strconv.ParseFloat(r.FormValue(key), 64)
	return f
}

// formList reads a comma-separated form value into a slice. The result is
// never nil so reference arrays always write as arrays.
func formList(r *http.Request, key string) []string {
	raw := strings.TrimSpace(r.FormValue(key))
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// formUpload extracts an optional file part from a multipart form.
// Returns nil when the field is absent.
func formUpload(r *http.Request, field string) (*storage.Upload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &storage.Upload{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		Ext:         storage.ExtFromName(header.Filename),
	}, nil
}

// syncImage applies an optional uploaded image over the current
// attachment. Without object storage configured the attachment keeps its
// current value.
func (a *Admin) syncImage(r *http.Request, field string, current models.Attachment) (models.Attachment, error) {
	if a.blobs == nil {
		return current, nil
	}
	upload, err := formUpload(r, field)
	if err != nil {
		return current, err
	}
	return storage.SyncAttachment(r.Context(), a.blobs, upload, current)
}

// writeError maps a store error to a JSON response.
func writeError(w http.ResponseWriter, what string, err error) {
	if store.IsNotFound(err) {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	serverError(w, what, err)
}

// --- Categories ---

func (a *Admin) ListCategories(w http.ResponseWriter, r *http.Request) {
	tree, err := a.categories.Tree(r.Context())
	if err != nil {
		serverError(w, "category tree failed", err)
		return
	}
	respondJSON(w, http.StatusOK, tree)
}

func (a *Admin) categoryFromForm(r *http.Request, id string) models.Category {
	return models.Category{
		ID:          id,
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		ParentID:    r.FormValue("parent_id"),
	}
}

func (a *Admin) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	if msg := validateName(r.FormValue("name")); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	created, err := a.categories.Create(r.Context(), a.categoryFromForm(r, ""))
	if err != nil {
		serverError(w, "category create failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *Admin) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	if msg := validateName(r.FormValue("name")); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	updated, err := a.categories.Update(r.Context(), a.categoryFromForm(r, chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, "category update failed", err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (a *Admin) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	// Deletion never cascades: technologies and skills keep the dangling
	// id and fall back at read time.
	if err := a.categories.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		serverError(w, "category delete failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// --- Technologies ---

func (a *Admin) ListTechnologies(w http.ResponseWriter, r *http.Request) {
	techs, err := a.techs.List(r.Context())
	if err != nil {
		serverError(w, "technology list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, techs)
}

func (a *Admin) technologyFromForm(r *http.Request, id string) models.Technology {
	return models.Technology{
		ID:         id,
		Name:       r.FormValue("name"),
		CategoryID: r.FormValue("category_id"),
		Icon:       r.FormValue("icon"),
		Website:    r.FormValue("website"),
	}
}

func (a *Admin) CreateTechnology(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	if msg := validateName(r.FormValue("name")); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	created, err := a.techs.Create(r.Context(), a.technologyFromForm(r, ""))
	if err != nil {
		serverError(w, "technology create failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *Admin) UpdateTechnology(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	updated, err := a.techs.Update(r.Context(), a.technologyFromForm(r, chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, "technology update failed", err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (a *Admin) DeleteTechnology(w http.ResponseWriter, r *http.Request) {
	if err := a.techs.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		serverError(w, "technology delete failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// --- Skills ---

func (a *Admin) ListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := a.skills.List(r.Context())
	if err != nil {
		serverError(w, "skill list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, skills)
}

func (a *Admin) skillFromForm(r *http.Request, id string) models.Skill {
	level := models.SkillLevel(r.FormValue("level"))
	if !level.Valid() {
		level = models.SkillBeginner
	}
	return models.Skill{
		ID:           id,
		Name:         r.FormValue("name"),
		CategoryID:   r.FormValue("category_id"),
		TechnologyID: r.FormValue("technology_id"),
		Level:        level,
		Years:        formFloat(r, "years"),
	}
}

func (a *Admin) CreateSkill(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	if msg := validateName(r.FormValue("name")); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	created, err := a.skills.Create(r.Context(), a.skillFromForm(r, ""))
	if err != nil {
		serverError(w, "skill create failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *Admin) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	updated, err := a.skills.Update(r.Context(), a.skillFromForm(r, chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, "skill update failed", err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (a *Admin) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	if err := a.skills.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		serverError(w, "skill delete failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// --- Experiences ---

func (a *Admin) ListExperiences(w http.ResponseWriter, r *http.Request) {
	exps, err := a.experiences.List(r.Context())
	if err != nil {
		serverError(w, "experience list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, exps)
}

func (a *Admin) experienceFromForm(r *http.Request, id string) models.Experience {
	return models.Experience{
		ID:            id,
		Title:         r.FormValue("title"),
		Company:       r.FormValue("company"),
		Location:      r.FormValue("location"),
		StartDate:     r.FormValue("start_date"),
		EndDate:       r.FormValue("end_date"),
		Description:   r.FormValue("description"),
		CategoryIDs:   formList(r, "category_ids"),
		TechnologyIDs: formList(r, "technology_ids"),
	}
}

func (a *Admin) CreateExperience(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	if msg := validateName(r.FormValue("company")); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	created, err := a.experiences.Create(r.Context(), a.experienceFromForm(r, ""))
	if err != nil {
		serverError(w, "experience create failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *Admin) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	updated, err := a.experiences.Update(r.Context(), a.experienceFromForm(r, chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, "experience update failed", err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (a *Admin) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	if err := a.experiences.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		serverError(w, "experience delete failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (a *Admin) ListAccomplishments(w http.ResponseWriter, r *http.Request) {
	accs, err := a.experiences.Accomplishments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		serverError(w, "accomplishment list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, accs)
}

func (a *Admin) AddAccomplishment(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	created, err := a.experiences.AddAccomplishment(r.Context(), models.ExperienceAccomplishment{
		ExperienceID: chi.URLParam(r, "id"),
		Text:         r.FormValue("text"),
	})
	if err != nil {
		serverError(w, "accomplishment create failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *Admin) DeleteAccomplishment(w http.ResponseWriter, r *http.Request) {
	if err := a.experiences.DeleteAccomplishment(r.Context(), chi.URLParam(r, "accID")); err != nil {
		serverError(w, "accomplishment delete failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// --- Education ---

func (a *Admin) ListEducation(w http.ResponseWriter, r *http.Request) {
	items, err := a.education.List(r.Context())
	if err != nil {
		serverError(w, "education list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (a *Admin) educationFromForm(r *http.Request, id string) models.Education {
	return models.Education{
		ID:          id,
		Degree:      r.FormValue("degree"),
		Institution: r.FormValue("institution"),
		StartDate:   r.FormValue("start_date"),
		EndDate:     r.FormValue("end_date"),
		Location:    r.FormValue("location"),
		Description: r.FormValue("description"),
		IsCurrent:   formBool(r, "is_current"),
	}
}

func (a *Admin) CreateEducation(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	if msg := validateName(r.FormValue("institution")); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	created, err := a.education.Create(r.Context(), a.educationFromForm(r, ""))
	if err != nil {
		serverError(w, "education create failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *Admin) UpdateEducation(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	updated, err := a.education.Update(r.Context(), a.educationFromForm(r, chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, "education update failed", err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (a *Admin) DeleteEducation(w http.ResponseWriter, r *http.Request) {
	if err := a.education.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		serverError(w, "education delete failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
