package analyze

import (
	"fmt"
	"regexp"

	"github.com/eyeqlabs/prescreen/internal/corpus"
	"github.com/eyeqlabs/prescreen/internal/model"
)

// disclaimerWindow is how far from the end of the document a disclaimer
// may sit and still count as properly placed.
const disclaimerWindow = 500

type disclaimerPattern struct {
	re   *regexp.Regexp
	name string
}

// The five disclaimer families required around benefit claims
var disclaimerPatterns = []disclaimerPattern{
	{regexp.MustCompile(`(?i)results?\s+may\s+vary`), "Results may vary"},
	{regexp.MustCompile(`(?i)consult.*(?:eye care|physician|doctor|professional)`), "Consult healthcare professional"},
	{regexp.MustCompile(`(?i)(?:based on|in vitro|clinical study|data on file)`), "Data source"},
	{regexp.MustCompile(`(?i)(?:individual\s+)?results.*may\s+vary`), "Individual variability"},
	{regexp.MustCompile(`(?i)not.*all.*patients`), "Patient suitability"},
}

// Benefit vocabulary that makes a disclaimer mandatory
var benefitKeywords = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bimproves\b`),
	regexp.MustCompile(`(?i)\beliminates\b`),
	regexp.MustCompile(`(?i)\bcorrects\b`),
	regexp.MustCompile(`(?i)\bsolves\b`),
	regexp.MustCompile(`(?i)\breduces\b`),
	regexp.MustCompile(`(?i)\bfreedom\b`),
}

// DisclaimerValidator checks presence and placement of required
// qualifying language.
type DisclaimerValidator struct {
	refs corpus.References
}

// NewDisclaimerValidator creates a disclaimer validator
func NewDisclaimerValidator(refs corpus.References) *DisclaimerValidator {
	return &DisclaimerValidator{refs: refs}
}

// Validate emits one document-wide critical issue when benefit claims
// appear with no disclaimer at all, and a warning per disclaimer family
// that exists somewhere but not in the closing window of the document.
func (v *DisclaimerValidator) Validate(text string) []model.Issue {
	var issues []model.Issue

	var found []string
	for _, p := range disclaimerPatterns {
		if p.re.MatchString(text) {
			found = append(found, p.name)
		}
	}

	hasBenefit := false
	for _, re := range benefitKeywords {
		if re.MatchString(text) {
			hasBenefit = true
			break
		}
	}

	if hasBenefit && len(found) == 0 {
		issues = append(issues, model.Issue{
			Category:     model.CategoryDisclaimers,
			Type:         model.IssueMissingDisclaimer,
			Description:  "Material contains benefit claims but is missing required disclaimers such as 'Results may vary'",
			Location:     "Overall document",
			Suggestion:   "Add disclaimers: 'Results may vary', 'Consult your eye care professional', or similar appropriate statements",
			Severity:     model.SeverityCritical,
			ReferenceURL: v.refs.URL("fda_labeling_requirements"),
		})
	}

	if len(found) > 0 {
		tail := tailRunes(text, disclaimerWindow)
		for _, p := range disclaimerPatterns {
			if p.re.MatchString(text) && !p.re.MatchString(tail) {
				issues = append(issues, model.Issue{
					Category:    model.CategoryDisclaimers,
					Type:        model.IssueMisplacedDisclaimer,
					Description: fmt.Sprintf("Disclaimer '%s' appears far from related claims", p.name),
					Location:    "See placement in document",
					Snippet:     p.name,
					Suggestion:  "Move disclaimers closer to related claims for clarity",
					Severity:    model.SeverityWarning,
				})
			}
		}
	}

	return issues
}

// tailRunes returns the final n runes of s
func tailRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
