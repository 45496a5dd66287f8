// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"folio/internal/document"
	"folio/internal/models"
	"folio/internal/store"
	"folio/internal/views"
)

// Public groups the handlers of the public JSON API.
type Public struct {
	composer *views.Composer
	blog     *store.BlogStore
	contact  *store.ContactStore
	guests   *store.GuestBookStore
	settings *store.SettingsStore
}

// NewPublic creates the public handler group over one document store.
func NewPublic(docs document.API) *Public {
	return &Public{
		composer: views.New(docs, slog.Default()),
		blog:     store.NewBlogStore(docs),
		contact:  store.NewContactStore(docs),
		guests:   store.NewGuestBookStore(docs),
		settings: store.NewSettingsStore(docs),
	}
}

// Home serves the landing page view.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	view, err := p.composer.Home(r.Context())
	if err != nil {
		serverError(w, "home view failed", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// About serves the about page view.
func (p *Public) About(w http.ResponseWriter, r *http.Request) {
	view, err := p.composer.About(r.Context())
	if err != nil {
		serverError(w, "about view failed", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// Projects serves the portfolio with resolved reference names.
func (p *Public) Projects(w http.ResponseWriter, r *http.Request) {
	projects, err := p.composer.ProjectList(r.Context())
	if err != nil {
		serverError(w, "project list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

// Posts serves the published posts, newest first.
func (p *Public) Posts(w http.ResponseWriter, r *http.Request) {
	posts, err := p.blog.ListPublished(r.Context())
	if err != nil {
		serverError(w, "post list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

// Post serves a single published post by slug and counts the read.
func (p *Public) Post(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	view, err := p.composer.Post(r.Context(), slug)
	if err != nil {
		serverError(w, "post view failed", err)
		return
	}
	if view == nil {
		respondError(w, http.StatusNotFound, "post not found")
		return
	}
	if err := p.blog.IncrementReadCount(r.Context(), view.ID); err != nil {
		// The page still renders; only the counter is lost.
		slog.Warn("read count increment failed", "post_id", view.ID, "error", err)
	}
	respondJSON(w, http.StatusOK, view)
}

// LikePost bumps the like counter of a published post.
func (p *Public) LikePost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := p.blog.IncrementLikes(r.Context(), id); err != nil {
		if store.IsNotFound(err) {
			respondError(w, http.StatusNotFound, "post not found")
			return
		}
		serverError(w, "like failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// SeriesList serves every series with its posts.
func (p *Public) SeriesList(w http.ResponseWriter, r *http.Request) {
	series, err := p.composer.SeriesList(r.Context())
	if err != nil {
		serverError(w, "series list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, series)
}

// Series serves one series by slug with its posts in reading order.
func (p *Public) Series(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	view, err := p.composer.Series(r.Context(), slug)
	if err != nil {
		serverError(w, "series view failed", err)
		return
	}
	if view == nil {
		respondError(w, http.StatusNotFound, "series not found")
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// Uses serves the /uses page view.
func (p *Public) Uses(w http.ResponseWriter, r *http.Request) {
	view, err := p.composer.UsesPage(r.Context())
	if err != nil {
		serverError(w, "uses view failed", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// Comments serves the comments of one post, oldest first.
func (p *Public) Comments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	comments, err := p.blog.ListComments(r.Context(), id)
	if err != nil {
		serverError(w, "comment list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, comments)
}

type commentRequest struct {
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
	Body        string `json:"body"`
}

// AddComment attaches a reader comment to a published post.
func (p *Public) AddComment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := validateComment(req.AuthorName, req.Body); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	post, err := p.blog.FindPostByID(r.Context(), id)
	if err != nil {
		if store.IsNotFound(err) {
			respondError(w, http.StatusNotFound, "post not found")
			return
		}
		serverError(w, "post lookup failed", err)
		return
	}
	if !post.IsPublished() {
		respondError(w, http.StatusNotFound, "post not found")
		return
	}

	comment, err := p.blog.AddComment(r.Context(), models.Comment{
		ContentID:   id,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Body:        req.Body,
	})
	if err != nil {
		serverError(w, "comment create failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, comment)
}

// LikeComment bumps a comment's like counter.
func (p *Public) LikeComment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := p.blog.LikeComment(r.Context(), id); err != nil {
		if store.IsNotFound(err) {
			respondError(w, http.StatusNotFound, "comment not found")
			return
		}
		serverError(w, "comment like failed", err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContact records a contact form submission.
func (p *Public) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := validateContact(req.Name, req.Email, req.Subject, req.Message); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	_, err := p.contact.Create(r.Context(), models.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		serverError(w, "contact create failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"status": "received"})
}

// GuestBook serves the approved guest book messages.
func (p *Public) GuestBook(w http.ResponseWriter, r *http.Request) {
	messages, err := p.guests.ListApproved(r.Context())
	if err != nil {
		serverError(w, "guest book list failed", err)
		return
	}
	respondJSON(w, http.StatusOK, messages)
}

type guestBookRequest struct {
	AuthorName string `json:"author_name"`
	Message    string `json:"message"`
	Website    string `json:"website"`
}

// SignGuestBook records a guest book message, pending approval.
func (p *Public) SignGuestBook(w http.ResponseWriter, r *http.Request) {
	var req guestBookRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := validateGuestBook(req.AuthorName, req.Message, req.Website); msg != "" {
		respondError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	_, err := p.guests.Create(r.Context(), models.GuestBookMessage{
		AuthorName: req.AuthorName,
		Message:    req.Message,
		Website:    req.Website,
	})
	if err != nil {
		serverError(w, "guest book create failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"status": "pending approval"})
}

// Settings serves the public site settings map.
func (p *Public) Settings(w http.ResponseWriter, r *http.Request) {
	m, err := p.settings.Map(r.Context())
	if err != nil {
		serverError(w, "settings read failed", err)
		return
	}
	// The TOTP secret lives in settings; never expose it.
	delete(m, totpSecretKey)
	respondJSON(w, http.StatusOK, m)
}

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
