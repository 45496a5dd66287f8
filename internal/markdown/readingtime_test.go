package markdown

import (
	"strings"
	"testing"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

// TestReadingTimeCeiling checks the boundary at exactly one rate's worth
// of words: 225 words is one minute, 226 rounds up to two.
func TestReadingTimeCeiling(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "empty", content: "", want: "0 min read"},
		{name: "single word", content: "hi", want: "1 min read"},
		{name: "exactly one minute", content: words(225), want: "1 min read"},
		{name: "one word over", content: words(226), want: "2 min read"},
		{name: "two minutes", content: words(450), want: "2 min read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReadingTime(tt.content); got != tt.want {
				t.Errorf("ReadingTime(%d words) = %q, want %q",
					len(strings.Fields(tt.content)), got, tt.want)
			}
		})
	}
}

// TestReadingTimeMonotonic verifies more words never read faster.
func TestReadingTimeMonotonic(t *testing.T) {
	prev := 0
	for _, n := range []int{1, 100, 225, 226, 500, 1000, 5000} {
		cur := ParseMinutes(ReadingTime(words(n)))
		if cur < prev {
			t.Errorf("reading time decreased: %d words -> %d min (previous %d)", n, cur, prev)
		}
		if cur < 1 {
			t.Errorf("non-empty content must read for at least a minute, got %d", cur)
		}
		prev = cur
	}
}

// TestStripSyntax verifies Markdown decoration does not count as words.
func TestStripSyntax(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "code fences dropped",
			source: "before\n```go\nfunc main() {}\n```\nafter",
			want:   []string{"before", "after"},
		},
		{
			name:   "inline code dropped",
			source: "run `go test` now",
			want:   []string{"run", "now"},
		},
		{
			name:   "links keep their text",
			source: "see [the docs](https://example.com) here",
			want:   []string{"see", "the", "docs", "here"},
		},
		{
			name:   "images keep alt text",
			source: "![diagram](https://example.com/d.png)",
			want:   []string{"diagram"},
		},
		{
			name:   "heading and emphasis markers removed",
			source: "## Title\n**bold** and _italic_",
			want:   []string{"Title", "bold", "and", "italic"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Fields(StripSyntax(tt.source))
			if len(got) != len(tt.want) {
				t.Fatalf("words: got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("word[%d]: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestParseMinutes covers well-formed and malformed reading-time strings.
func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{in: "5 min read", want: 5},
		{in: "12 min read", want: 12},
		{in: " 3 min read", want: 3},
		{in: "quick read", want: 0},
		{in: "", want: 0},
	}

	for _, tt := range tests {
		if got := ParseMinutes(tt.in); got != tt.want {
			t.Errorf("ParseMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// TestToHTML sanity-checks the goldmark pipeline.
func TestToHTML(t *testing.T) {
	out, err := ToHTML("# Hello\n\nSome *emphasis*.")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "<em>emphasis</em>") {
		t.Errorf("unexpected html: %q", out)
	}
}
