package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/eyeqlabs/prescreen/internal/model"
)

// Canonical next-step sentences for critical issue types
var criticalRecommendations = map[model.IssueType]string{
	model.IssueUnsupportedClaim:           "Add supporting data or clinical references to all unsupported claims",
	model.IssueUnsubstantiatedSuperlative: "Remove superlatives or add clinical evidence",
	model.IssueOverpromising:              "Use conditional language ('may', 'can', 'designed to')",
	model.IssueAbsoluteStatement:          "Use conditional language ('may', 'can', 'designed to')",
	model.IssueMissingDisclaimer:          "Add required disclaimers",
	model.IssueUnqualifiedPercentage:      "Qualify percentage claims with 'in vitro', 'clinical', or reference study data",
	model.IssueWeakReference:              "Support market claims with published industry data or clinical studies instead of internal estimates",
}

// Canonical next-step sentences for warning issue types
var warningRecommendations = map[model.IssueType]string{
	model.IssueMisplacedDisclaimer:   "Move disclaimers closer to relevant claims",
	model.IssueOverlyTechnical:       "Simplify technical terminology for patient audience",
	model.IssueInconsistentTrademark: "Ensure consistent product naming and terminology",
}

// RenderSummary renders the deduplicated next-steps list and the
// metadata footer. The footer can be suppressed for embedding the
// summary in another document.
func RenderSummary(result *model.AnalysisResult, includeFooter bool) string {
	var out strings.Builder

	recommendations := collectRecommendations(result)
	if len(recommendations) > 0 {
		out.WriteString("## Next Steps\n\n")
		for i, rec := range recommendations {
			fmt.Fprintf(&out, "%d. %s\n", i+1, rec)
		}
		out.WriteString("\n")
	}

	if includeFooter {
		out.WriteString("---\n\n")
		product := result.ProductDetected
		if product == "" {
			product = "Not detected"
		}
		fmt.Fprintf(&out, "**Product:** %s\n", product)
		fmt.Fprintf(&out, "**Audience:** %s\n\n", titleWord(string(result.AudienceType)))
		out.WriteString("*Review by qualified regulatory professionals recommended.*\n")
	}

	return out.String()
}

// collectRecommendations maps each distinct issue type present to its
// canonical sentence, deduplicates, and sorts for stable output.
func collectRecommendations(result *model.AnalysisResult) []string {
	seen := make(map[string]bool)
	for _, issue := range result.Issues {
		var rec string
		switch issue.Severity {
		case model.SeverityCritical:
			rec = criticalRecommendations[issue.Type]
		case model.SeverityWarning:
			rec = warningRecommendations[issue.Type]
		}
		if rec != "" {
			seen[rec] = true
		}
	}

	recommendations := make([]string, 0, len(seen))
	for rec := range seen {
		recommendations = append(recommendations, rec)
	}
	sort.Strings(recommendations)
	return recommendations
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
