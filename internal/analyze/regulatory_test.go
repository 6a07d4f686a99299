package analyze

import (
	"strings"
	"testing"

	"github.com/eyeqlabs/prescreen/internal/corpus"
	"github.com/eyeqlabs/prescreen/internal/model"
)

func newRegulatoryDetector() *RegulatoryDetector {
	return NewRegulatoryDetector(corpus.DefaultReferences())
}

func countByType(issues []model.Issue, issueType model.IssueType) int {
	n := 0
	for _, issue := range issues {
		if issue.Type == issueType {
			n++
		}
	}
	return n
}

func TestRegulatory_OverpromisingPerMatch(t *testing.T) {
	d := newRegulatoryDetector()

	// Two absolute words on one line yield two issues
	issues := d.Detect("This lens guarantees perfect vision forever for wearers.")

	if got := countByType(issues, model.IssueOverpromising); got != 2 {
		t.Errorf("Expected 2 overpromising issues (perfect, forever), got %d", got)
	}
}

func TestRegulatory_SuperlativeDetection(t *testing.T) {
	d := newRegulatoryDetector()

	issues := d.Detect("The best lens available today.")
	if got := countByType(issues, model.IssueUnsubstantiatedSuperlative); got != 1 {
		t.Errorf("Expected 1 superlative issue, got %d", got)
	}
}

func TestRegulatory_VagueTestimonial(t *testing.T) {
	d := newRegulatoryDetector()

	issues := d.Detect("An amazing product that changed my life completely.")
	if got := countByType(issues, model.IssueVagueTestimonial); got != 2 {
		t.Errorf("Expected 2 testimonial issues (amazing, changed my life), got %d", got)
	}
	// "completely" also fires the overpromising lexicon on the same line
	if got := countByType(issues, model.IssueOverpromising); got != 1 {
		t.Errorf("Expected 1 overpromising issue, got %d", got)
	}
}

func TestRegulatory_ComparativeDocumentWithoutProof(t *testing.T) {
	d := newRegulatoryDetector()

	issues := d.Detect("Our lens performs better than competing products.")
	if got := countByType(issues, model.IssueUnsupportedComparative); got < 1 {
		t.Error("Expected comparative issue without supporting evidence")
	}
}

func TestRegulatory_ComparativeDocumentWithProof(t *testing.T) {
	d := newRegulatoryDetector()

	text := "Our lens performs better than competitors in a clinical trial with 120 subjects."
	issues := d.Detect(text)

	// The document-level comparative check is satisfied by the
	// evidentiary keyword; the per-line check also sees "clinical".
	for _, issue := range issues {
		if issue.Type == model.IssueUnsupportedComparative && issue.Location == "Document contains comparisons" {
			t.Error("Document-level comparative issue should not fire with proof keywords present")
		}
	}
}

func TestRegulatory_AbsoluteNegations(t *testing.T) {
	d := newRegulatoryDetector()

	issues := d.Detect("Wearers no longer worry about dry eyes.")
	if got := countByType(issues, model.IssueAbsoluteStatement); got != 1 {
		t.Errorf("Expected 1 absolute_statement issue, got %d", got)
	}

	// A reference mark on the line suppresses the negation flag
	issues = d.Detect("Wearers no longer worry about dry eyes[2].")
	if got := countByType(issues, model.IssueAbsoluteStatement); got != 0 {
		t.Errorf("Expected cited negation to pass, got %d issues", got)
	}
}

func TestRegulatory_ComparativeLineWithoutClinicalRef(t *testing.T) {
	d := newRegulatoryDetector()

	issues := d.Detect("Superior comfort compared to the leading brand.")
	if got := countByType(issues, model.IssueUnsupportedComparative); got < 1 {
		t.Error("Expected per-line comparative issue without clinical support")
	}

	// Footnote-shaped lines are exempt
	issues = d.Detect("1. Internal data: better performance versus prior model.")
	for _, issue := range issues {
		if issue.Type == model.IssueUnsupportedComparative && strings.HasPrefix(issue.Location, "Line") {
			t.Error("Footnote line should be exempt from the per-line comparative check")
		}
	}
}

func TestRegulatory_WeakRefOnComparativeLine(t *testing.T) {
	d := newRegulatoryDetector()

	// Clinical keyword present, but the support is Internal Estimates
	// with a reference mark: still flagged.
	issues := d.Detect("Better clinical outcomes per Internal Estimates[3].")
	if got := countByType(issues, model.IssueUnsupportedComparative); got != 1 {
		t.Errorf("Expected weak-ref comparative flagged, got %d", got)
	}
}

func TestRegulatory_UnqualifiedPercentage(t *testing.T) {
	d := newRegulatoryDetector()

	issues := d.Detect("Delivers 95% improvement in comfort scores.")
	if got := countByType(issues, model.IssueUnqualifiedPercentage); got != 1 {
		t.Errorf("Expected 1 percentage issue, got %d", got)
	}

	// A methodology qualifier on the line suppresses the flag
	issues = d.Detect("Delivers 95% improvement in comfort scores in a clinical study.")
	if got := countByType(issues, model.IssueUnqualifiedPercentage); got != 0 {
		t.Errorf("Expected qualified percentage to pass, got %d", got)
	}

	// So does a reference mark
	issues = d.Detect("Delivers 95% improvement in comfort scores[7].")
	if got := countByType(issues, model.IssueUnqualifiedPercentage); got != 0 {
		t.Errorf("Expected cited percentage to pass, got %d", got)
	}
}

func TestRegulatory_WeakReferencesRequireInternalEstimates(t *testing.T) {
	d := newRegulatoryDetector()

	marketLine := "80% of contact lens wearers choose monthly replacement."

	// Without "Internal Estimates" anywhere the detector stays off
	issues := d.Detect(marketLine)
	if got := countByType(issues, model.IssueWeakReference); got != 0 {
		t.Errorf("Expected weak-reference detector inactive, got %d", got)
	}

	text := marketLine + "\nSource: Internal Estimates."
	issues = d.Detect(text)
	if got := countByType(issues, model.IssueWeakReference); got != 1 {
		t.Errorf("Expected 1 weak-reference issue, got %d", got)
	}
}

func TestRegulatory_ReferenceURLs(t *testing.T) {
	d := newRegulatoryDetector()

	// The lexicon detectors cite keys absent from the reference table,
	// so their issues carry an empty URL; the comparative detectors cite
	// the substantiation reference.
	issues := d.Detect("The best lens, superior to others compared to the market.")
	for _, issue := range issues {
		switch issue.Type {
		case model.IssueUnsubstantiatedSuperlative:
			if issue.ReferenceURL != "" {
				t.Errorf("Expected empty URL for superlative, got %q", issue.ReferenceURL)
			}
		case model.IssueUnsupportedComparative:
			if issue.ReferenceURL == "" {
				t.Error("Expected substantiation URL for comparative issue")
			}
		}
	}
}
