package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/eyeqlabs/prescreen/internal/model"
)

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	p, err := NewPipeline(model.DefaultConfig())
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	return p
}

func TestPipeline_AnalyzeText(t *testing.T) {
	p := newTestPipeline(t)

	review, err := p.AnalyzeText(context.Background(), "GUARANTEES perfect vision always for everyone.", "")
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}

	if review.Verdict != "Needs Revision" {
		t.Errorf("Expected Needs Revision, got %q", review.Verdict)
	}
	if review.Result.CriticalCount() == 0 {
		t.Error("Expected critical issues")
	}
	if !strings.Contains(review.Report, "[NEEDS REVISION]") {
		t.Errorf("Expected status line in report:\n%s", review.Report)
	}
	if !strings.Contains(review.Summary, "## Next Steps") {
		t.Errorf("Expected next steps in summary:\n%s", review.Summary)
	}
	if review.LLMSummary != "" {
		t.Error("LLM summary should be empty when disabled")
	}
}

func TestPipeline_AnalyzeTextCached(t *testing.T) {
	p := newTestPipeline(t)

	text := "Consult your eye care professional. Results may vary. Based on clinical studies[1]."

	first, err := p.AnalyzeText(context.Background(), text, "")
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}
	second, err := p.AnalyzeText(context.Background(), text, "")
	if err != nil {
		t.Fatalf("AnalyzeText (cached): %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Cached review differs from original")
	}
}

func TestPipeline_CacheDisabled(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false

	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	if p.cache != nil {
		t.Error("Expected no cache when disabled")
	}

	if _, err := p.AnalyzeText(context.Background(), "Plain text material here.", ""); err != nil {
		t.Errorf("AnalyzeText without cache: %v", err)
	}
}

func TestPipeline_AnalyzeFile(t *testing.T) {
	p := newTestPipeline(t)

	path := filepath.Join(t.TempDir(), "brochure.md")
	content := "Total 30 Contact Lens improves comfort. Results may vary. Based on clinical studies."
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	review, err := p.AnalyzeFile(context.Background(), path, "")
	if err != nil {
		t.Fatalf("AnalyzeFile: %v", err)
	}
	if review.Product != "Total 30 Contact Lens" {
		t.Errorf("Expected product detected, got %q", review.Product)
	}
}

func TestPipeline_AnalyzeFileMissing(t *testing.T) {
	p := newTestPipeline(t)

	if _, err := p.AnalyzeFile(context.Background(), filepath.Join(t.TempDir(), "nope.md"), ""); err == nil {
		t.Error("Expected error for missing material")
	}
}

func TestPipeline_CustomCorpus(t *testing.T) {
	corpusPath := filepath.Join(t.TempDir(), "corpus.yaml")
	corpusYAML := `
products:
  - name: Example Lens
    approved_claims:
      - Provides all-day comfort for wearers.
`
	if err := os.WriteFile(corpusPath, []byte(corpusYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := model.DefaultConfig()
	cfg.Corpus.Path = corpusPath

	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	products := p.Products()
	if len(products) != 1 || products[0] != "Example Lens" {
		t.Errorf("Expected custom corpus loaded, got %v", products)
	}
}

func TestPipeline_BadCorpusPath(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Corpus.Path = filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := NewPipeline(cfg); err == nil {
		t.Error("Expected error for missing corpus file")
	}
}

func TestPipeline_WriteReport(t *testing.T) {
	p := newTestPipeline(t)

	review, err := p.AnalyzeText(context.Background(), "GUARANTEES perfect comfort always.", "")
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "report.json")
	mdPath := filepath.Join(dir, "report.md")

	if err := p.WriteReport(review, jsonPath, mdPath, false); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("read JSON report: %v", err)
	}
	var decoded Review
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode JSON report: %v", err)
	}
	if decoded.Verdict != review.Verdict {
		t.Errorf("JSON verdict %q, want %q", decoded.Verdict, review.Verdict)
	}

	md, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("read markdown report: %v", err)
	}
	if !strings.Contains(string(md), "[NEEDS REVISION]") {
		t.Errorf("Expected status in markdown:\n%s", md)
	}
}
