// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

const (
	// DefaultFileID is the sentinel object id meaning "no custom file
	// attached". It is distinct from the empty string so documents written
	// by earlier versions of the site keep their meaning.
	DefaultFileID = "default"

	// PlaceholderPath is served when an entity has no custom image.
	PlaceholderPath = "/static/placeholder.svg"
)

// Attachment pairs a stored binary object's id with the URL it is viewable
// at. The id is the source of truth for storage operations; the URL is
// always derived from it. Keeping the two in one value type prevents the
// fields drifting apart when the underlying file changes.
type Attachment struct {
	FileID string `json:"file_id"`
	URL    string `json:"url"`
}

// NewAttachment builds an Attachment, enforcing the derivation invariant:
// without a custom file id the URL is the static placeholder, regardless
// of what was passed in.
func NewAttachment(fileID, url string) Attachment {
	a := Attachment{FileID: fileID, URL: url}
	if !a.IsCustom() {
		a.URL = PlaceholderPath
	}
	return a
}

// IsCustom reports whether a real stored object backs this attachment.
func (a Attachment) IsCustom() bool {
	return a.FileID != "" && a.FileID != DefaultFileID
}

// attachmentFromDoc reads the id/url field pair of a raw document.
func attachmentFromDoc(m map[string]any, idKey, urlKey string) Attachment {
	return NewAttachment(docString(m, idKey), docString(m, urlKey))
}

// payload writes the pair back into a document payload.
func (a Attachment) payload(m map[string]any, idKey, urlKey string) {
	m[idKey] = a.FileID
	m[urlKey] = a.URL
}
