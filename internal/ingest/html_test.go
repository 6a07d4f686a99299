package ingest

import (
	"strings"
	"testing"
)

func TestExtractText_VisibleTextOnly(t *testing.T) {
	html := `
	<html>
	<head><style>body { color: red; }</style><script>alert(1)</script></head>
	<body>
		<p>Comfort that lasts all month.</p>
		<p>Results may vary.</p>
		<noscript>enable javascript</noscript>
	</body>
	</html>
	`

	text, err := ExtractText(html)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}

	if !strings.Contains(text, "Comfort that lasts all month.") {
		t.Errorf("Expected paragraph text, got %q", text)
	}
	if strings.Contains(text, "alert") || strings.Contains(text, "color: red") {
		t.Errorf("Script/style content leaked: %q", text)
	}
	if strings.Contains(text, "enable javascript") {
		t.Errorf("Noscript content leaked: %q", text)
	}
}

func TestExtractText_BlockElementsBecomeLines(t *testing.T) {
	html := `<div><p>First block.</p><p>Second block.</p></div>`

	text, err := ExtractText(html)
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}

	first := strings.Index(text, "First block.")
	newline := strings.Index(text[first:], "\n")
	if newline == -1 || !strings.Contains(text[first+newline:], "Second block.") {
		t.Errorf("Expected blocks on separate lines, got %q", text)
	}
}

func TestExtractText_MalformedHTMLStillParses(t *testing.T) {
	// The parser is forgiving; unclosed tags are not an error
	text, err := ExtractText("<p>Unclosed paragraph with comfort claims")
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if !strings.Contains(text, "Unclosed paragraph") {
		t.Errorf("Expected text recovered, got %q", text)
	}
}
