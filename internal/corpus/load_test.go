package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleCorpusYAML = `
products:
  - name: Example Lens
    description: A daily disposable lens.
    approved_claims:
      - Provides all-day comfort. Based on a wearer survey.
      - Blocks UV light.
aliases:
  - term: ExLens
    product: Example Lens
`

func TestParse_ValidCorpus(t *testing.T) {
	c, err := Parse([]byte(sampleCorpusYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if claims := c.ApprovedClaims("Example Lens"); len(claims) != 2 {
		t.Errorf("Expected 2 claims, got %d", len(claims))
	}

	// Alias terms are lowered on load and matched case-insensitively
	if got := c.DetectProduct("try exlens today"); got != "Example Lens" {
		t.Errorf("Expected alias match, got %q", got)
	}
}

func TestParse_NoProducts(t *testing.T) {
	if _, err := Parse([]byte("products: []\n")); err == nil {
		t.Error("Expected error for empty corpus")
	}
}

func TestParse_UnnamedProduct(t *testing.T) {
	data := `
products:
  - name: ""
    approved_claims: [foo]
`
	if _, err := Parse([]byte(data)); err == nil {
		t.Error("Expected error for unnamed product")
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("products: [unclosed")); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	if err := os.WriteFile(path, []byte(sampleCorpusYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(c.Names()) != 1 {
		t.Errorf("Expected 1 product, got %d", len(c.Names()))
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
