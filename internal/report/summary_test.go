package report

import (
	"strings"
	"testing"

	"github.com/eyeqlabs/prescreen/internal/model"
)

func TestRenderSummary_Recommendations(t *testing.T) {
	result := &model.AnalysisResult{
		Issues: []model.Issue{
			{Type: model.IssueOverpromising, Severity: model.SeverityCritical},
			{Type: model.IssueAbsoluteStatement, Severity: model.SeverityCritical},
			{Type: model.IssueMissingDisclaimer, Severity: model.SeverityCritical},
			{Type: model.IssueMisplacedDisclaimer, Severity: model.SeverityWarning},
		},
	}

	out := RenderSummary(result, false)

	if !strings.Contains(out, "## Next Steps") {
		t.Fatal("Expected next-steps section")
	}
	// Overpromising and absolute statements share one canonical sentence
	if strings.Count(out, "Use conditional language ('may', 'can', 'designed to')") != 1 {
		t.Errorf("Expected shared recommendation deduplicated:\n%s", out)
	}
	if !strings.Contains(out, "Add required disclaimers") {
		t.Errorf("Expected disclaimer recommendation:\n%s", out)
	}
	if !strings.Contains(out, "Move disclaimers closer to relevant claims") {
		t.Errorf("Expected warning recommendation:\n%s", out)
	}
	if strings.Contains(out, "**Product:**") {
		t.Error("Footer should be suppressed")
	}
}

func TestRenderSummary_SortedAndNumbered(t *testing.T) {
	result := &model.AnalysisResult{
		Issues: []model.Issue{
			{Type: model.IssueMissingDisclaimer, Severity: model.SeverityCritical},
			{Type: model.IssueUnsupportedClaim, Severity: model.SeverityCritical},
		},
	}

	out := RenderSummary(result, false)

	// Alphabetical: "Add required disclaimers" before "Add supporting data..."
	if !strings.Contains(out, "1. Add required disclaimers") {
		t.Errorf("Expected sorted numbered list:\n%s", out)
	}
	if !strings.Contains(out, "2. Add supporting data or clinical references to all unsupported claims") {
		t.Errorf("Expected second recommendation:\n%s", out)
	}
}

func TestRenderSummary_Footer(t *testing.T) {
	result := &model.AnalysisResult{
		ProductDetected: "Total 30 Contact Lens",
		AudienceType:    model.AudiencePatient,
	}

	out := RenderSummary(result, true)

	if !strings.Contains(out, "**Product:** Total 30 Contact Lens") {
		t.Errorf("Expected product in footer:\n%s", out)
	}
	if !strings.Contains(out, "**Audience:** Patient") {
		t.Errorf("Expected title-cased audience:\n%s", out)
	}
	if !strings.Contains(out, "*Review by qualified regulatory professionals recommended.*") {
		t.Errorf("Expected review note:\n%s", out)
	}
}

func TestRenderSummary_NoProductDetected(t *testing.T) {
	result := &model.AnalysisResult{AudienceType: model.AudienceUnknown}

	out := RenderSummary(result, true)
	if !strings.Contains(out, "**Product:** Not detected") {
		t.Errorf("Expected placeholder product:\n%s", out)
	}
	if strings.Contains(out, "## Next Steps") {
		t.Error("No recommendations expected for a clean result")
	}
}

func TestCollectRecommendations_UnmappedTypesIgnored(t *testing.T) {
	result := &model.AnalysisResult{
		Issues: []model.Issue{
			// contradictory_statement has no canonical sentence
			{Type: model.IssueContradictoryStatement, Severity: model.SeverityWarning},
		},
	}
	if recs := collectRecommendations(result); len(recs) != 0 {
		t.Errorf("Expected no recommendations, got %v", recs)
	}
}
