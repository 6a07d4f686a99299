package analyze

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eyeqlabs/prescreen/internal/corpus"
	"github.com/eyeqlabs/prescreen/internal/model"
)

// lexiconDetector is a per-line prohibited-vocabulary detector: every
// match on every line becomes one critical issue.
type lexiconDetector struct {
	issueType   model.IssueType
	re          *regexp.Regexp
	description string
	suggestion  string
	refKey      string
}

var lexiconDetectors = []lexiconDetector{
	{
		issueType:   model.IssueOverpromising,
		re:          regexp.MustCompile(`(?i)\b(?:perfect|completely|totally|100%|guaranteed|always|never|forever|eliminates?|cures?)\b`),
		description: "This claim uses absolute language that may not be substantiated",
		suggestion:  "Use conditional language: 'may improve', 'can help', 'may reduce', 'designed to'",
		refKey:      "overpromising_outcomes",
	},
	{
		issueType:   model.IssueUnsubstantiatedSuperlative,
		re:          regexp.MustCompile(`(?i)\b(?:best|superior|top|leading|unmatched|ultimate|most effective|only)\b`),
		description: "This claim uses a superlative (e.g., 'only', 'best', 'first') without supporting data",
		suggestion:  "Replace superlative wording or provide supporting clinical data",
		refKey:      "unsubstantiated_superlatives",
	},
	{
		issueType:   model.IssueVagueTestimonial,
		re:          regexp.MustCompile(`(?i)\b(?:amazing|wonderful|fantastic|incredible|changed my life|revolutionary)\b`),
		description: "Vague testimonial language",
		suggestion:  "Use specific, evidence-based claims instead of emotional language",
		refKey:      "vague_testimonial",
	},
}

// Document-level comparative check
var (
	comparativeDocRe     = regexp.MustCompile(`(?i)\b(?:vs\.?|versus|better than|superior to|more effective than)\b`)
	comparativeProofRe   = regexp.MustCompile(`(?i)(?:clinical trial|study|data|evidence|proven)`)
	comparativeSnippetRe = regexp.MustCompile(`(?i).{0,50}(?:vs|versus|better than).{0,50}`)
)

// Absolute negation shapes
type negationPattern struct {
	re          *regexp.Regexp
	description string
}

var negationPatterns = []negationPattern{
	{regexp.MustCompile(`(?i)\bno longer\s+\w+`), `Absolute negation claim: "no longer" suggests permanent elimination`},
	{regexp.MustCompile(`(?i)\bno\s+\w+\s+compromise`), "Absolute claim about eliminating compromise"},
	{regexp.MustCompile(`(?i)\bno risk\b`), "Absolute claim about zero risk"},
	{regexp.MustCompile(`(?i)\bcompletely\s+(?:safe|effective|eliminat)`), `Absolute claim using "completely"`},
}

// Per-line comparative detector
const comparativeLinePattern = `(?:better|superior|vs|versus|compared to|lagged|leading)`

var (
	comparativeLineRe = regexp.MustCompile(`(?i)` + comparativeLinePattern)
	footnoteLineRe    = regexp.MustCompile(`(?i)^\s*(?:\d+\.|References?:|Internal|Based on)`)
	clinicalRefRe     = regexp.MustCompile(`(?i)(?:clinical|study|trial|data on file|evidence)`)
	weakRefRe         = regexp.MustCompile(`(?i)Internal (?:Estimates|data)`)
)

// Percentage-claim shapes
type percentagePattern struct {
	re          *regexp.Regexp
	description string
}

var percentagePatterns = []percentagePattern{
	{regexp.MustCompile(`(?i)(?:approaches?|up to|nearly)?\s*100%`), "Absolute percentage claim"},
	{regexp.MustCompile(`(?i)\d{2,3}%\s+(?:effective|improvement|reduction|success|water)`), "Unqualified percentage claim"},
}

var (
	percentageSkipRe     = regexp.MustCompile(`(?i)^\s*(?:\d+\.|References?:|In vitro|Surface)`)
	methodologyRe        = regexp.MustCompile(`(?i)(?:in vitro|clinical|study|studies|trial|data on file|analysis|test)`)
	internalEstimatesRe  = regexp.MustCompile(`(?i)Internal\s+Estimates`)
	referenceSectionLine = regexp.MustCompile(`^\s*(?:References?:|$)`)
)

var marketClaimRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:reusable|contact)\s+lens.*(?:market|segment|percentage|%)`),
	regexp.MustCompile(`(?i)(?:contact\s+)?lens\s+wearers.*(?:choose|prefer|percentage)`),
	regexp.MustCompile(`(?i)\d+%\s+of.*(?:market|wearers)`),
}

// RegulatoryDetector runs the seven independent prohibited-language
// detectors. Detectors never see each other's output; one phrase can
// legitimately trigger several of them on the same line, and the raw
// issue list keeps that duplication. The report layer dedups by type
// for display.
type RegulatoryDetector struct {
	refs corpus.References
}

// NewRegulatoryDetector creates a regulatory language detector
func NewRegulatoryDetector(refs corpus.References) *RegulatoryDetector {
	return &RegulatoryDetector{refs: refs}
}

// Detect runs every detector over the text and concatenates their issues
func (d *RegulatoryDetector) Detect(text string) []model.Issue {
	lines := strings.Split(text, "\n")

	var issues []model.Issue
	issues = append(issues, d.detectLexicons(lines)...)
	issues = append(issues, d.detectComparativeDocument(text)...)
	issues = append(issues, d.detectAbsoluteNegations(lines)...)
	issues = append(issues, d.detectComparativeWeakRefs(lines)...)
	issues = append(issues, d.detectUnqualifiedPercentages(lines)...)
	issues = append(issues, d.detectWeakReferences(text, lines)...)
	return issues
}

// detectLexicons runs the overpromising, superlative, and testimonial
// vocabularies per line, one issue per match.
func (d *RegulatoryDetector) detectLexicons(lines []string) []model.Issue {
	var issues []model.Issue
	for lineNum, line := range lines {
		for _, det := range lexiconDetectors {
			for range det.re.FindAllString(line, -1) {
				issues = append(issues, model.Issue{
					Category:     model.CategoryRegulatory,
					Type:         det.issueType,
					Description:  det.description,
					Location:     fmt.Sprintf("Line %d", lineNum+1),
					Snippet:      truncateSnippet(strings.TrimSpace(line), 200),
					Suggestion:   det.suggestion,
					Severity:     model.SeverityCritical,
					ReferenceURL: d.refs.URL(det.refKey),
				})
			}
		}
	}
	return issues
}

// detectComparativeDocument emits at most one issue: a comparative
// marker anywhere with no evidentiary keyword anywhere.
func (d *RegulatoryDetector) detectComparativeDocument(text string) []model.Issue {
	if !comparativeDocRe.MatchString(text) || comparativeProofRe.MatchString(text) {
		return nil
	}
	snippet := comparativeSnippetRe.FindString(text)
	return []model.Issue{{
		Category:     model.CategoryRegulatory,
		Type:         model.IssueUnsupportedComparative,
		Description:  "This comparative claim (e.g., 'better than', 'superior to') is made without supporting clinical data",
		Location:     "Document contains comparisons",
		Snippet:      snippet,
		Suggestion:   "Support comparative claims with head-to-head clinical trial data or remove the comparison",
		Severity:     model.SeverityCritical,
		ReferenceURL: d.refs.URL("ftc_advertising_substantiation"),
	}}
}

// detectAbsoluteNegations flags "no longer X" / "no X compromise" shapes
// on lines that carry no reference mark.
func (d *RegulatoryDetector) detectAbsoluteNegations(lines []string) []model.Issue {
	var issues []model.Issue
	for lineNum, line := range lines {
		for _, p := range negationPatterns {
			if !p.re.MatchString(line) {
				continue
			}
			if anyRefMarkRe.MatchString(line) {
				continue
			}
			issues = append(issues, model.Issue{
				Category:     model.CategoryRegulatory,
				Type:         model.IssueAbsoluteStatement,
				Description:  fmt.Sprintf("Absolute statement: %s", p.description),
				Location:     fmt.Sprintf("Line %d", lineNum+1),
				Snippet:      truncateSnippet(strings.TrimSpace(line), 200),
				Suggestion:   "Use qualified language: 'may help', 'designed to', 'can reduce', 'for many patients'",
				Severity:     model.SeverityCritical,
				ReferenceURL: d.refs.URL("fda_labeling_requirements"),
			})
		}
	}
	return issues
}

// detectComparativeWeakRefs requires a clinical-grade evidentiary cue on
// every comparative line outside footnote-shaped lines; a low-grade cue
// such as "Internal Estimates" does not count.
func (d *RegulatoryDetector) detectComparativeWeakRefs(lines []string) []model.Issue {
	var issues []model.Issue
	for lineNum, line := range lines {
		if !comparativeLineRe.MatchString(line) {
			continue
		}
		if footnoteLineRe.MatchString(line) {
			continue
		}

		hasClinicalRef := clinicalRefRe.MatchString(line)
		hasAnyRef := anyRefMarkRe.MatchString(line)
		hasWeakRef := weakRefRe.MatchString(line)

		if !hasClinicalRef || (hasWeakRef && hasAnyRef) {
			issues = append(issues, model.Issue{
				Category:     model.CategoryRegulatory,
				Type:         model.IssueUnsupportedComparative,
				Description:  fmt.Sprintf("Comparative claim without adequate clinical support: '%s'", comparativeLinePattern),
				Location:     fmt.Sprintf("Line %d", lineNum+1),
				Snippet:      truncateSnippet(strings.TrimSpace(line), 200),
				Suggestion:   "Support with head-to-head clinical trial data or remove the comparison",
				Severity:     model.SeverityCritical,
				ReferenceURL: d.refs.URL("ftc_advertising_substantiation"),
			})
		}
	}
	return issues
}

// detectUnqualifiedPercentages flags percentage claims lacking both a
// methodology qualifier and a reference mark on the same line.
func (d *RegulatoryDetector) detectUnqualifiedPercentages(lines []string) []model.Issue {
	var issues []model.Issue
	for lineNum, line := range lines {
		for _, p := range percentagePatterns {
			if !p.re.MatchString(line) {
				continue
			}
			if percentageSkipRe.MatchString(line) {
				continue
			}
			if methodologyRe.MatchString(line) || anyRefMarkRe.MatchString(line) {
				continue
			}
			issues = append(issues, model.Issue{
				Category:     model.CategoryRegulatory,
				Type:         model.IssueUnqualifiedPercentage,
				Description:  fmt.Sprintf("Percentage claim without qualifying context: '%s'", p.description),
				Location:     fmt.Sprintf("Line %d", lineNum+1),
				Snippet:      truncateSnippet(strings.TrimSpace(line), 200),
				Suggestion:   "Qualify with 'in vitro', 'clinical', or reference study data (e.g., 'approaches 100% water at the surface [7]')",
				Severity:     model.SeverityCritical,
				ReferenceURL: d.refs.URL("ftc_advertising_substantiation"),
			})
		}
	}
	return issues
}

// detectWeakReferences activates only when the document cites "Internal
// Estimates"; it then flags market-share and preference claim shapes.
func (d *RegulatoryDetector) detectWeakReferences(text string, lines []string) []model.Issue {
	if !internalEstimatesRe.MatchString(text) {
		return nil
	}

	var issues []model.Issue
	for lineNum, line := range lines {
		if referenceSectionLine.MatchString(line) {
			continue
		}
		for _, re := range marketClaimRes {
			if re.MatchString(line) {
				issues = append(issues, model.Issue{
					Category:     model.CategoryClaims,
					Type:         model.IssueWeakReference,
					Description:  "Market/product claim may be supported by weak reference (Internal Estimates instead of clinical data)",
					Location:     fmt.Sprintf("Line %d", lineNum+1),
					Snippet:      truncateSnippet(strings.TrimSpace(line), 200),
					Suggestion:   "Verify claim is supported by published industry data or clinical studies, not just internal estimates",
					Severity:     model.SeverityCritical,
					ReferenceURL: d.refs.URL("ftc_advertising_substantiation"),
				})
				break
			}
		}
	}
	return issues
}
