// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"folio/internal/models"
	"folio/internal/slug"
)

// --- Projects ---

func (a *Admin) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := a.projects.List(r.Context())
	if err != nil {
		serverError(w, "project list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

func (a *Admin) projectFromForm(r *http.Request, id string, image models.Attachment) models.Project {
	return models.Project{
		ID:              id,
		Name:            r.FormValue("name"),
		Description:     r.FormValue("description"),
		LongDescription: r.FormValue("long_description"),
		Image:           image,
		CategoryIDs:     formList(r, "category_ids"),
		TechnologyIDs:   formList(r, "technology_ids"),
		GitHub:          r.FormValue("github"),
		Live:            r.FormValue("live"),
		Featured:        formBool(r, "featured"),
	}
}

func (a *Admin) CreateProject(w http.ResponseWriter, r *http.Request) {
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
		serverError(w, "project image upload failed", err)
		return
	}
	created, err := a.projects.Create(r.Context(), a.projectFromForm(r, "", image))
	if err != nil {
		serverError(w, "project create failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *Admin) UpdateProject(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	id := chi.URLParam(r, "id")
	current, err := a.projects.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, "project lookup failed", err)
		return
	}
	image, err := a.syncImage(r, "image", current.Image)
	if err != nil {
		serverError(w, "project image upload failed", err)
		return
	}
	updated, err := a.projects.Update(r.Context(), a.projectFromForm(r, id, image))
	if err != nil {
		writeError(w, "project update failed", err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (a *Admin) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := a.projects.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		serverError(w, "project delete failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// --- Current tech stack ---

func (a *Admin) ListStack(w http.ResponseWriter, r *http.Request) {
	items, err := a.stack.List(r.Context())
	if err != nil {
		serverError(w, "stack list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (a *Admin) stackFromForm(r *http.Request, id string) models.CurrentTechStack {
	return models.CurrentTechStack{
		ID:            id,
		Name:          r.FormValue("name"),
		CategoryID:    r.FormValue("category_id"),
		TechnologyIDs: formList(r, "technology_ids"),
		Priority:      formInt(r, "priority"),
	}
}

func (a *Admin) CreateStack(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	if msg := validateName(r.FormValue("name")); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	created, err := a.stack.Create(r.Context(), a.stackFromForm(r, ""))
	if err != nil {
		serverError(w, "stack create failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *Admin) UpdateStack(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	updated, err := a.stack.Update(r.Context(), a.stackFromForm(r, chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, "stack update failed", err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (a *Admin) DeleteStack(w http.ResponseWriter, r *http.Request) {
	if err := a.stack.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		serverError(w, "stack delete failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// --- Blog posts ---

func (a *Admin) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := a.blog.ListPosts(r.Context())
	if err != nil {
		serverError(w, "post list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

func (a *Admin) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := a.blog.FindPostByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, "post lookup failed", err)
		return
	}
	respondJSON(w, http.StatusOK, post)
}

func (a *Admin) postFromForm(r *http.Request, id string, cover models.Attachment) models.BlogPost {
	status := models.PostStatus(r.FormValue("status"))
	if status != models.PostStatusPublished {
		status = models.PostStatusDraft
	}
	title := r.FormValue("title")
	return models.BlogPost{
		ID:                    id,
		Title:                 title,
		Slug:                  slug.WithFallback(r.FormValue("slug"), slug.Generate(title)),
		Excerpt:               r.FormValue("excerpt"),
		Content:               r.FormValue("content"),
		CoverImage:            cover,
		Date:                  r.FormValue("date"),
		ReadingTime:           r.FormValue("reading_time"),
		CategoryIDs:           formList(r, "category_ids"),
		TagIDs:                formList(r, "tag_ids"),
		TechnologyIDs:         formList(r, "technology_ids"),
		Status:                status,
		Featured:              formBool(r, "featured"),
		SeriesID:              r.FormValue("series_id"),
		SeriesPosition:        formInt(r, "series_position"),
		RelatedPostIDs:        formList(r, "related_post_ids"),
		RecommendedNextReadID: r.FormValue("recommended_next_read_id"),
	}
}

func (a *Admin) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	if msg := validateContent(r.FormValue("title"), r.FormValue("slug"), r.FormValue("content")); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	cover, err := a.syncImage(r, "cover_image", models.NewAttachment("", ""))
	if err != nil {
		serverError(w, "cover image upload failed", err)
		return
	}
	created, err := a.blog.CreatePost(r.Context(), a.postFromForm(r, "", cover))
	if err != nil {
		serverError(w, "post create failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *Admin) UpdatePost(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	if msg := validateContent(r.FormValue("title"), r.FormValue("slug"), r.FormValue("content")); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	id := chi.URLParam(r, "id")
	current, err := a.blog.FindPostByID(r.Context(), id)
	if err != nil {
		writeError(w, "post lookup failed", err)
		return
	}
	cover, err := a.syncImage(r, "cover_image", current.CoverImage)
	if err != nil {
		serverError(w, "cover image upload failed", err)
		return
	}
	updated, err := a.blog.UpdatePost(r.Context(), a.postFromForm(r, id, cover))
	if err != nil {
		writeError(w, "post update failed", err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (a *Admin) DeletePost(w http.ResponseWriter, r *http.Request) {
	// Comments stay behind with a dangling content id; they disappear
	// from every view since nothing lists them anymore.
	if err := a.blog.DeletePost(r.Context(), chi.URLParam(r, "id")); err != nil {
		serverError(w, "post delete failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// --- Blog series ---

func (a *Admin) ListSeries(w http.ResponseWriter, r *http.Request) {
	series, err := a.blog.ListSeries(r.Context())
	if err != nil {
		serverError(w, "series list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, series)
}

func (a *Admin) seriesFromForm(r *http.Request, id string, image models.Attachment) models.BlogSeries {
	status := models.SeriesStatus(r.FormValue("status"))
	if status != models.SeriesComplete {
		status = models.SeriesOngoing
	}
	title := r.FormValue("title")
	return models.BlogSeries{
		ID:          id,
		Title:       title,
		Description: r.FormValue("description"),
		Slug:        slug.WithFallback(r.FormValue("slug"), slug.Generate(title)),
		Image:       image,
		Status:      status,
	}
}

func (a *Admin) CreateSeries(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	if msg := validateContent(r.FormValue("title"), r.FormValue("slug"), r.FormValue("description")); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	image, err := a.syncImage(r, "image", models.NewAttachment("", ""))
	if err != nil {
		serverError(w, "series image upload failed", err)
		return
	}
	created, err := a.blog.CreateSeries(r.Context(), a.seriesFromForm(r, "", image))
	if err != nil {
		serverError(w, "series create failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (a *Admin) UpdateSeries(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	id := chi.URLParam(r, "id")
	current, err := a.blog.FindSeriesByID(r.Context(), id)
	if err != nil {
		writeError(w, "series lookup failed", err)
		return
	}
	image, err := a.syncImage(r, "image", current.Image)
	if err != nil {
		serverError(w, "series image upload failed", err)
		return
	}
	updated, err := a.blog.UpdateSeries(r.Context(), a.seriesFromForm(r, id, image))
	if err != nil {
		writeError(w, "series update failed", err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (a *Admin) DeleteSeries(w http.ResponseWriter, r *http.Request) {
	if err := a.blog.DeleteSeries(r.Context(), chi.URLParam(r, "id")); err != nil {
		serverError(w, "series delete failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// --- Comments ---

func (a *Admin) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := a.blog.ListComments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		serverError(w, "comment list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, comments)
}

func (a *Admin) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if err := a.blog.DeleteComment(r.Context(), chi.URLParam(r, "id")); err != nil {
		serverError(w, "comment delete failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
