package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for content and inbox fields.
const (
	maxTitleLen    = 300
	maxSlugLen     = 300
	maxBodyLen     = 100_000
	maxExcerptLen  = 1_000
	maxNameLen     = 200
	maxEmailLen    = 320
	maxSubjectLen  = 300
	maxMessageLen  = 5_000
	maxURLFieldLen = 2_000
)

// validateContent checks post and series form inputs and returns the first
// error found.
func validateContent(title, slug, body string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(slug) > maxSlugLen {
		return "Slug is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(body) > maxBodyLen {
		return "Body is too long (max 100,000 characters)."
	}
	return ""
}

// validateName checks a required display-name field.
func validateName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	return ""
}

// validateContact checks a public contact form submission.
func validateContact(name, email, subject, message string) string {
	if msg := validateName(name); msg != "" {
		return msg
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return "Email is required."
	}
	if utf8.RuneCountInString(email) > maxEmailLen || !strings.Contains(email, "@") {
		return "Email address looks invalid."
	}
	if utf8.RuneCountInString(subject) > maxSubjectLen {
		return "Subject is too long (max 300 characters)."
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return "Message is required."
	}
	if utf8.RuneCountInString(message) > maxMessageLen {
		return "Message is too long (max 5,000 characters)."
	}
	return ""
}

// validateGuestBook checks a public guest book submission.
func validateGuestBook(author, message, website string) string {
	if msg := validateName(author); msg != "" {
		return msg
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return "Message is required."
	}
	if utf8.RuneCountInString(message) > maxMessageLen {
		return "Message is too long (max 5,000 characters)."
	}
	if utf8.RuneCountInString(website) > maxURLFieldLen {
		return "Website is too long."
	}
	return ""
}

// validateComment checks a public comment submission.
func validateComment(author, body string) string {
	if msg := validateName(author); msg != "" {
		return msg
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return "Comment is required."
	}
	if utf8.RuneCountInString(body) > maxMessageLen {
		return "Comment is too long (max 5,000 characters)."
	}
	return ""
}
