package analyze

import (
	"fmt"
	"regexp"

	"github.com/eyeqlabs/prescreen/internal/corpus"
	"github.com/eyeqlabs/prescreen/internal/model"
)

// Shared reference-mark patterns: bracket citations and superscript digits
var (
	bracketRefRe    = regexp.MustCompile(`\[(\d+)\]`)
	superscriptRe   = regexp.MustCompile(`[¹²³⁴⁵⁶⁷⁸⁹⁰]`)
	anyRefMarkRe    = regexp.MustCompile(`[¹²³⁴⁵⁶⁷⁸⁹⁰]|\[\d+\]`)
	refSectionRe    = regexp.MustCompile(`(?i)(?:references|citations|sources):\s*\n`)
	dataSourceRe    = regexp.MustCompile(`(?i)(?:alcon data on file|clinical study|in a clinical|based on|data from|study showed)`)
	inlineSourceRe  = regexp.MustCompile(`(?i)(?:clinical|study|data|evidence|proven|research)`)
	descArticleRe   = regexp.MustCompile(`(?i)^(?:the|this|these|it|product)`)
	descQualifiedRe = regexp.MustCompile(`(?i)(?:may|can|might|could|designed to)`)
)

// High-risk vocabulary: absolute promises and superlatives
var highRiskRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:guaranteed|perfect|100%|always|never|eliminates|cures)\b`),
	regexp.MustCompile(`(?i)\b(?:best|only|first|superior|leading)\b`),
}

// ReferenceValidator classifies a document as referenced or not and
// flags claims that lack support accordingly.
type ReferenceValidator struct {
	refs corpus.References
}

// NewReferenceValidator creates a reference validator
func NewReferenceValidator(refs corpus.References) *ReferenceValidator {
	return &ReferenceValidator{refs: refs}
}

// IsReferenced reports whether the document carries a working reference
// system: three or more bracket citations, three or more superscript
// marks, a references section, or inline data-source phrasing.
func (v *ReferenceValidator) IsReferenced(text string) bool {
	return len(bracketRefRe.FindAllString(text, -1)) >= 3 ||
		len(superscriptRe.FindAllString(text, -1)) >= 3 ||
		refSectionRe.MatchString(text) ||
		dataSourceRe.MatchString(text)
}

// Validate checks extracted claims against the document's referencing.
// In a referenced document only high-risk claims without their own
// reference mark or inline evidentiary keyword are flagged; this avoids
// flooding well-referenced materials. In an unreferenced document every
// substantive, non-descriptive claim is flagged.
func (v *ReferenceValidator) Validate(text string, claims []Claim) []model.Issue {
	var issues []model.Issue
	substantiationURL := v.refs.URL("ftc_advertising_substantiation")

	if v.IsReferenced(text) {
		for _, claim := range claims {
			if !isHighRisk(claim.Text) {
				continue
			}
			if anyRefMarkRe.MatchString(claim.Text) || inlineSourceRe.MatchString(claim.Text) {
				continue
			}
			issues = append(issues, model.Issue{
				Category:     model.CategoryClaims,
				Type:         model.IssueUnsupportedClaim,
				Description:  "High-risk claim (absolute/superlative language) lacks reference",
				Location:     fmt.Sprintf("Line %d", claim.Line),
				Snippet:      truncateSnippet(claim.Text, 200),
				Suggestion:   "Add reference [#] or clinical study citation to support this strong claim",
				Severity:     model.SeverityCritical,
				ReferenceURL: substantiationURL,
			})
		}
		return issues
	}

	for _, claim := range claims {
		if len(claim.Text) < 30 {
			continue
		}
		// Descriptive or already-hedged sentences are not assertions
		if descArticleRe.MatchString(claim.Text) || descQualifiedRe.MatchString(claim.Text) {
			continue
		}
		issues = append(issues, model.Issue{
			Category:     model.CategoryClaims,
			Type:         model.IssueUnsupportedClaim,
			Description:  "Claim appears in material with no reference system",
			Location:     fmt.Sprintf("Line %d", claim.Line),
			Snippet:      truncateSnippet(claim.Text, 200),
			Suggestion:   "Add supporting references or clinical data sources throughout material",
			Severity:     model.SeverityCritical,
			ReferenceURL: substantiationURL,
		})
	}
	return issues
}

func isHighRisk(s string) bool {
	for _, re := range highRiskRes {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// truncateSnippet caps a snippet length without worrying about word
// boundaries; the report layer applies the display truncation rule.
func truncateSnippet(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
