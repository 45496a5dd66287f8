// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// folio server. Public content routes, the auth flow and the admin API
// each get their own middleware stack.
package router

import (
	"time"

	"github.com/go-chi/chi/v5"

	"folio/internal/cache"
	"folio/internal/geo"
	"folio/internal/handlers"
	"folio/internal/middleware"
	"folio/internal/session"
	"folio/internal/store"
)

// Deps carries everything the router wires together.
type Deps struct {
	Sessions *session.Store
	Visitors *store.VisitorStore
	Geo      *geo.Client
	Views    *cache.ViewCache // nil disables response caching
	Public   *handlers.Public
	Auth     *handlers.Auth
	Admin    *handlers.Admin
	Media    *handlers.Media
}

// New creates the configured chi router with all middleware and route
// groups wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check. No session, no tracking.
	r.Get("/health", handlers.Health)

	// Public API. Reads are tracked for visitor analytics; write
	// endpoints carry a per-IP rate limit against drive-by spam.
	writeLimit := middleware.NewRateLimiter(10, time.Minute)
	r.Group(func(r chi.Router) {
		r.Use(middleware.TrackVisitors(d.Visitors, d.Geo))
		r.Use(middleware.CacheViews(d.Views))

		r.Get("/api/home", d.Public.Home)
		r.Get("/api/about", d.Public.About)
		r.Get("/api/projects", d.Public.Projects)
		r.Get("/api/posts", d.Public.Posts)
		r.Get("/api/posts/{slug}", d.Public.Post)
		r.Get("/api/posts/{id}/comments", d.Public.Comments)
		r.Get("/api/series", d.Public.SeriesList)
		r.Get("/api/series/{slug}", d.Public.Series)
		r.Get("/api/uses", d.Public.Uses)
		r.Get("/api/guestbook", d.Public.GuestBook)
		r.Get("/api/settings", d.Public.Settings)

		r.Group(func(r chi.Router) {
			r.Use(writeLimit.Middleware)
			r.Use(middleware.FlushViewsOnWrite(d.Views))
			r.Post("/api/posts/{id}/like", d.Public.LikePost)
			r.Post("/api/posts/{id}/comments", d.Public.AddComment)
			r.Post("/api/comments/{id}/like", d.Public.LikeComment)
			r.Post("/api/contact", d.Public.SubmitContact)
			r.Post("/api/guestbook", d.Public.SignGuestBook)
		})
	})

	// Media previews are public but untracked; long-lived caching makes
	// per-request analytics meaningless.
	r.Get("/media/preview/*", d.Media.Preview)

	// Auth flow. Login gets a tighter rate limit than content writes.
	loginLimit := middleware.NewRateLimiter(5, time.Minute)
	r.Route("/auth", func(r chi.Router) {
		r.With(loginLimit.Middleware).Post("/login", d.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.LoadSession(d.Sessions))
			r.Use(middleware.RequireAuth)
			r.Post("/2fa/setup", d.Auth.TwoFASetup)
			r.Post("/2fa/verify", d.Auth.TwoFAVerify)
			r.Get("/me", d.Auth.Me)
			r.Post("/logout", d.Auth.Logout)
		})
	})

	// Admin API. Session + completed 2FA + CSRF double-submit.
	r.Route("/admin/api", func(r chi.Router) {
		r.Use(middleware.LoadSession(d.Sessions))
		r.Use(middleware.RequireAuth)
		r.Use(middleware.Require2FA)
		r.Use(middleware.CSRF)
		r.Use(middleware.FlushViewsOnWrite(d.Views))

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", d.Admin.ListCategories)
			r.Post("/", d.Admin.CreateCategory)
			r.Put("/{id}", d.Admin.UpdateCategory)
			r.Delete("/{id}", d.Admin.DeleteCategory)
		})

		r.Route("/technologies", func(r chi.Router) {
			r.Get("/", d.Admin.ListTechnologies)
			r.Post("/", d.Admin.CreateTechnology)
			r.Put("/{id}", d.Admin.UpdateTechnology)
			r.Delete("/{id}", d.Admin.DeleteTechnology)
		})

		r.Route("/skills", func(r chi.Router) {
			r.Get("/", d.Admin.ListSkills)
			r.Post("/", d.Admin.CreateSkill)
			r.Put("/{id}", d.Admin.UpdateSkill)
			r.Delete("/{id}", d.Admin.DeleteSkill)
		})

		r.Route("/experiences", func(r chi.Router) {
			r.Get("/", d.Admin.ListExperiences)
			r.Post("/", d.Admin.CreateExperience)
			r.Put("/{id}", d.Admin.UpdateExperience)
			r.Delete("/{id}", d.Admin.DeleteExperience)
			r.Get("/{id}/accomplishments", d.Admin.ListAccomplishments)
			r.Post("/{id}/accomplishments", d.Admin.AddAccomplishment)
			r.Delete("/{id}/accomplishments/{accID}", d.Admin.DeleteAccomplishment)
		})

		r.Route("/education", func(r chi.Router) {
			r.Get("/", d.Admin.ListEducation)
			r.Post("/", d.Admin.CreateEducation)
			r.Put("/{id}", d.Admin.UpdateEducation)
			r.Delete("/{id}", d.Admin.DeleteEducation)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", d.Admin.ListProjects)
			r.Post("/", d.Admin.CreateProject)
			r.Put("/{id}", d.Admin.UpdateProject)
			r.Delete("/{id}", d.Admin.DeleteProject)
		})

		r.Route("/stack", func(r chi.Router) {
			r.Get("/", d.Admin.ListStack)
			r.Post("/", d.Admin.CreateStack)
			r.Put("/{id}", d.Admin.UpdateStack)
			r.Delete("/{id}", d.Admin.DeleteStack)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", d.Admin.ListPosts)
			r.Post("/", d.Admin.CreatePost)
			r.Get("/{id}", d.Admin.GetPost)
			r.Put("/{id}", d.Admin.UpdatePost)
			r.Delete("/{id}", d.Admin.DeletePost)
			r.Get("/{id}/comments", d.Admin.ListComments)
		})
		r.Delete("/comments/{id}", d.Admin.DeleteComment)

		r.Route("/series", func(r chi.Router) {
			r.Get("/", d.Admin.ListSeries)
			r.Post("/", d.Admin.CreateSeries)
			r.Put("/{id}", d.Admin.UpdateSeries)
			r.Delete("/{id}", d.Admin.DeleteSeries)
		})

		r.Get("/profile", d.Admin.GetProfile)
		r.Put("/profile", d.Admin.SaveProfile)

		r.Route("/social-links", func(r chi.Router) {
			r.Get("/", d.Admin.ListSocialLinks)
			r.Post("/", d.Admin.CreateSocialLink)
			r.Put("/{id}", d.Admin.UpdateSocialLink)
			r.Delete("/{id}", d.Admin.DeleteSocialLink)
		})

		r.Route("/uses", func(r chi.Router) {
			r.Get("/", d.Admin.ListUses)
			r.Post("/", d.Admin.CreateUsesItem)
			r.Put("/{id}", d.Admin.UpdateUsesItem)
			r.Delete("/{id}", d.Admin.DeleteUsesItem)
		})

		r.Route("/contact", func(r chi.Router) {
			r.Get("/", d.Admin.ListContact)
			r.Put("/{id}/read", d.Admin.MarkContactRead)
			r.Delete("/{id}", d.Admin.DeleteContact)
		})

		r.Route("/guestbook", func(r chi.Router) {
			r.Get("/", d.Admin.ListGuestBook)
			r.Put("/{id}/approve", d.Admin.ApproveGuestBook)
			r.Delete("/{id}", d.Admin.DeleteGuestBook)
		})

		r.Get("/visitors", d.Admin.ListVisitors)

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", d.Admin.ListSettings)
			r.Put("/", d.Admin.SetSetting)
			r.Delete("/{key}", d.Admin.DeleteSetting)
		})

		r.Post("/media", d.Admin.UploadMedia)
		r.Delete("/media/*", d.Admin.DeleteMedia)
	})

	return r
}
