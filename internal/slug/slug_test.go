package slug

import "testing"

// TestGenerate covers typical titles and awkward input.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Hello World", want: "hello-world"},
		{name: "punctuation", in: "Hello, World! 2026", want: "hello-world-2026"},
		{name: "extra spaces", in: "  Go   Generics  ", want: "go-generics"},
		{name: "already slug", in: "my-post", want: "my-post"},
		{name: "unicode stripped", in: "Café ☕ Stories", want: "caf-stories"},
		{name: "only punctuation", in: "!!!", want: ""},
		{name: "consecutive hyphens collapsed", in: "a -- b", want: "a-b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.in); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestWithFallback verifies empty results fall back.
func TestWithFallback(t *testing.T) {
	if got := WithFallback("!!!", "post-1"); got != "post-1" {
		t.Errorf("got %q, want fallback", got)
	}
	if got := WithFallback("A Title", "post-1"); got != "a-title" {
		t.Errorf("got %q, want %q", got, "a-title")
	}
}
