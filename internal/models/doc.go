// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the typed domain entities and the mapping between
// them and raw store documents. Mapping applies each field's documented
// default when the document omits it; a mapped entity never carries a nil
// where a default is defined. No validation happens here — bad values fail
// at the write boundary.
package models

// docString reads a string field, defaulting to "".
func docString(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// docStringOr reads a string field with an explicit fallback.
func docStringOr(m map[string]any, key, fallback string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// docBool reads a boolean field, defaulting to false.
func docBool(m map[string]any, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

// docBoolOr reads a boolean field with an explicit fallback. Used for
// fields like is_visible that default to true when absent.
func docBoolOr(m map[string]any, key string, fallback bool) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return fallback
}

// docInt reads a numeric field as an int, defaulting to 0. JSON decoding
// yields float64 for every number, so that is the primary case.
func docInt(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

// docFloat reads a numeric field as a float64, defaulting to 0.
func docFloat(m map[string]any, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// docStrings reads a string-array field, defaulting to an empty slice.
// Non-string elements are skipped rather than failing the whole document.
func docStrings(m map[string]any, key string) []string {
	switch v := m[key].(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return []string{}
}
