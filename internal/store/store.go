// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides typed services over the document store, one per
// entity collection. Reads surface absence as document.ErrNotFound so
// each call site can decide between "missing" and "failed"; writes never
// swallow an error and are never retried.
package store

// Collection names in the document store.
const (
	collCategories      = "categories"
	collTechnologies    = "technologies"
	collSkills          = "skills"
	collExperiences     = "experiences"
	collAccomplishments = "experience_accomplishments"
	collEducation       = "education"
	collProjects        = "projects"
	collTechStack       = "current_tech_stack"
	collPosts           = "blog_posts"
	collSeries          = "blog_series"
	collComments        = "comments"
	collProfile         = "profile"
	collSocialLinks     = "social_links"
	collUses            = "uses_items"
	collContact         = "contact_submissions"
	collGuestBook       = "guest_book"
	collVisitors        = "visitors"
	collSettings        = "site_settings"
)
