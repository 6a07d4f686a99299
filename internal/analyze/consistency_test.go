package analyze

import (
	"strings"
	"testing"

	"github.com/eyeqlabs/prescreen/internal/corpus"
	"github.com/eyeqlabs/prescreen/internal/model"
)

func newConsistencyChecker() *ConsistencyChecker {
	return NewConsistencyChecker(corpus.Default())
}

func TestConsistency_InconsistentTrademark(t *testing.T) {
	c := newConsistencyChecker()

	text := "Total 30 Contact Lens® delivers comfort. Total 30 Contact Lens is monthly."
	issues := c.Check(text)

	found := false
	for _, issue := range issues {
		if issue.Type == model.IssueInconsistentTrademark {
			found = true
			if issue.Severity != model.SeverityWarning {
				t.Errorf("Expected warning, got %s", issue.Severity)
			}
			if !strings.Contains(issue.Suggestion, "Total 30 Contact Lens®") {
				t.Errorf("Expected product name in suggestion, got %q", issue.Suggestion)
			}
		}
	}
	if !found {
		t.Error("Expected inconsistent_trademark warning")
	}
}

func TestConsistency_ConsistentTrademarkNoIssue(t *testing.T) {
	c := newConsistencyChecker()

	// Unmarked form only: the marked form never appears, so there is no
	// inconsistency to flag.
	text := "Total 30 Contact Lens delivers monthly comfort for wearers."
	for _, issue := range c.Check(text) {
		if issue.Type == model.IssueInconsistentTrademark {
			t.Error("Unmarked-only usage should not be flagged")
		}
	}
}

func TestConsistency_Contradiction(t *testing.T) {
	c := newConsistencyChecker()

	text := "The lens improves comfort but cannot prevent dryness entirely."
	issues := c.Check(text)

	found := false
	for _, issue := range issues {
		if issue.Type == model.IssueContradictoryStatement {
			found = true
			if issue.Location != "Line 1" {
				t.Errorf("Expected Line 1, got %s", issue.Location)
			}
		}
	}
	if !found {
		t.Error("Expected contradictory_statement warning")
	}
}

func TestConsistency_LeadingNotExempt(t *testing.T) {
	c := newConsistencyChecker()

	text := "Not every wearer finds the lens improves comfort right away."
	for _, issue := range c.Check(text) {
		if issue.Type == model.IssueContradictoryStatement {
			t.Error("Line opening with 'not' should be exempt")
		}
	}
}

func TestConsistency_SafetyLanguageExempt(t *testing.T) {
	c := newConsistencyChecker()

	text := "This product improves comfort and is not intended for overnight wear."
	for _, issue := range c.Check(text) {
		if issue.Type == model.IssueContradictoryStatement {
			t.Error("Safety disclaimer should be exempt")
		}
	}
}

func TestLeadRunes(t *testing.T) {
	if got := leadRunes("hello world", 5); got != "hello" {
		t.Errorf("Expected first 5 runes, got %q", got)
	}
	if got := leadRunes("hi", 5); got != "hi" {
		t.Errorf("Expected unchanged, got %q", got)
	}
}
