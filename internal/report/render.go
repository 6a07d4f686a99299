// Package report renders an AnalysisResult as the two reviewer-facing
// markdown documents: the tiered issues table and the
// recommendations-and-metadata summary.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/eyeqlabs/prescreen/internal/model"
)

// snippetLimit is the display length cap for issue examples. Truncation
// backs up to the previous word boundary when one exists past half the
// limit, so snippets never end mid-word.
const snippetLimit = 150

// Verdict strings derived from the issue counts
const (
	VerdictCompliant      = "Compliant"
	VerdictNeedsRevision  = "Needs Revision"
	VerdictMinorRevisions = "Minor Revisions"
)

// Reference-text openers used when stripping substantiation footnotes
// from approved claims for display. Broader than the matcher's delimiter
// set: display also strips named-author and numbered-reference tails.
var referenceKeywords = []string{
	". 1. In",
	". 1. Shi",
	". 2. ",
	". 3. ",
	". In a clinical study",
	". In a clinical",
	". Based on",
	". Surface property",
	". In vitro",
	". Alcon data",
	". Shi X",
	". Schnider",
	". Ishihara",
	". Laboratory",
	". Lehmann",
	" 1. In a clinical",
	" 1. Based on",
	" 1. Surface property",
}

// Display names for issue types; unknown types fall back to a
// title-cased form of the tag.
var typeNames = map[model.IssueType]string{
	model.IssueUnsupportedClaim:           "Missing Data Sources",
	model.IssueUnsubstantiatedSuperlative: "Unsupported Superlatives",
	model.IssueOverpromising:              "Overpromising Language",
	model.IssueAbsoluteStatement:          "Absolute Language",
	model.IssueUnsupportedComparative:     "Unsupported Claims",
	model.IssueMissingDisclaimer:          "Missing Disclaimers",
	model.IssueVagueTestimonial:           "Vague Language",
	model.IssueUnqualifiedPercentage:      "Percentage Claims",
	model.IssueWeakReference:              "Weak References",
}

// Verdict maps issue counts to the review verdict
func Verdict(result *model.AnalysisResult) string {
	critical := result.CriticalCount()
	warnings := result.WarningCount()
	switch {
	case critical == 0 && warnings == 0:
		return VerdictCompliant
	case critical > 0:
		return VerdictNeedsRevision
	default:
		return VerdictMinorRevisions
	}
}

// RenderIssues renders the status line, approved-claims list, grouped
// critical issues, and compact warnings as markdown.
func RenderIssues(result *model.AnalysisResult) string {
	var out strings.Builder

	critical := result.CriticalCount()
	warnings := result.WarningCount()

	switch {
	case critical == 0 && warnings == 0:
		out.WriteString("**Status:** [OK] Compliant\n\n")
	case critical > 0:
		fmt.Fprintf(&out, "**Status:** [NEEDS REVISION] %d critical, %d warning\n\n", critical, warnings)
	default:
		fmt.Fprintf(&out, "**Status:** [MINOR REVISIONS] %d warning\n\n", warnings)
	}

	fmt.Fprintf(&out, "**Summary:** %d approved | %d critical | %d warnings\n\n", len(result.CompliantClaims), critical, warnings)
	out.WriteString("---\n\n")

	if len(result.CompliantClaims) > 0 {
		out.WriteString("## Approved Claims\n\n")
		for i, claim := range result.CompliantClaims {
			fmt.Fprintf(&out, "%d. %s\n\n", i+1, stripReferences(claim))
		}
	}

	if critical > 0 {
		out.WriteString("## Issues Found\n\n")
		renderCriticalGroups(&out, result.BySeverity(model.SeverityCritical))
	}

	if warnings > 0 {
		out.WriteString("## Warnings\n\n")
		renderWarningGroups(&out, result.BySeverity(model.SeverityWarning))
		out.WriteString("\n")
	}

	return out.String()
}

// renderCriticalGroups shows each critical issue type once, sorted by
// tag, with an occurrence count and one representative example.
func renderCriticalGroups(out *strings.Builder, issues []model.Issue) {
	byType := make(map[model.IssueType][]model.Issue)
	var types []model.IssueType
	for _, issue := range issues {
		if _, seen := byType[issue.Type]; !seen {
			types = append(types, issue.Type)
		}
		byType[issue.Type] = append(byType[issue.Type], issue)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	for _, issueType := range types {
		group := byType[issueType]
		countSuffix := ""
		if len(group) > 1 {
			countSuffix = fmt.Sprintf(" (%d)", len(group))
		}
		fmt.Fprintf(out, "**%s%s**\n", displayName(issueType), countSuffix)

		first := group[0]
		fmt.Fprintf(out, "- Example: %q\n", truncateAtWord(strings.TrimSpace(first.Snippet)))
		fmt.Fprintf(out, "- Fix: %s\n\n", first.Suggestion)
	}
}

// renderWarningGroups shows one compact bullet per warning type, in
// first-seen order, with the suggestion of the first occurrence.
func renderWarningGroups(out *strings.Builder, issues []model.Issue) {
	counts := make(map[model.IssueType]int)
	suggestions := make(map[model.IssueType]string)
	var types []model.IssueType
	for _, issue := range issues {
		if counts[issue.Type] == 0 {
			types = append(types, issue.Type)
			suggestions[issue.Type] = issue.Suggestion
		}
		counts[issue.Type]++
	}

	for _, issueType := range types {
		countSuffix := ""
		if counts[issueType] > 1 {
			countSuffix = fmt.Sprintf(" (%d)", counts[issueType])
		}
		fmt.Fprintf(out, "- **%s%s**: %s\n", titleCaseTag(issueType), countSuffix, suggestions[issueType])
	}
}

// stripReferences truncates an approved claim before its earliest
// reference-text opener and trims the trailing period.
func stripReferences(claim string) string {
	lower := strings.ToLower(claim)
	cut := len(claim)
	for _, keyword := range referenceKeywords {
		if idx := strings.Index(lower, strings.ToLower(keyword)); idx != -1 && idx < cut {
			cut = idx
		}
	}
	return strings.TrimRight(strings.TrimSpace(claim[:cut]), ".")
}

// truncateAtWord caps a snippet at snippetLimit runes, backing up to the
// last space when that still leaves at least half the limit, and
// appending an ellipsis.
func truncateAtWord(snippet string) string {
	runes := []rune(snippet)
	if len(runes) <= snippetLimit {
		return snippet
	}
	truncated := string(runes[:snippetLimit])
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > snippetLimit/2 {
		return truncated[:lastSpace] + "..."
	}
	return truncated + "..."
}

func displayName(t model.IssueType) string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return titleCaseTag(t)
}

// titleCaseTag turns "misplaced_disclaimer" into "Misplaced Disclaimer"
func titleCaseTag(t model.IssueType) string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
