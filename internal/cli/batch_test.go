package cli

import (
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"materials/total30-brochure.md", "total30-brochure"},
		{"panoptix page.html", "panoptix-page"},
		{"weird:name?.txt", "weird_name_"},
		{"plain", "plain"},
		{"", "report"},
	}

	for _, tt := range tests {
		if got := sanitizeFilename(tt.path); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestSanitizeFilename_Length(t *testing.T) {
	got := sanitizeFilename(strings.Repeat("a", 200) + ".md")
	if len(got) != 100 {
		t.Errorf("Expected 100-char cap, got %d chars", len(got))
	}
}
