package analyze

import (
	"regexp"
	"strings"

	"github.com/eyeqlabs/prescreen/internal/model"
)

// Weighted vocabularies for audience scoring. Each pattern's match count
// contributes to its audience bucket.
var patientIndicators = compileAll(
	`(?:patient|you|your|yourself|people|anyone|everyone)`,
	`(?:feel|experience|enjoy|benefit|results)`,
	`(?:daily life|everyday|activities|freedom|independence)`,
	`(?:doctor|eye care professional|surgeon|consult)`,
	`(?:simple|easy|convenient|comfortable)`,
)

var professionalIndicators = compileAll(
	`(?:clinical|study|trial|evidence|data|analysis)`,
	`(?:efficacy|safety|performance|outcomes)`,
	`(?:FDA approved|510\(k\)|cleared|indications)`,
	`(?:ophthalmologist|surgeon|physician|healthcare provider)`,
	`(?:methodology|parameters|specifications|technical)`,
	`(?:comparison|versus|demonstrated)`,
)

var emotionalIndicators = compileAll(
	`(?:amazing|wonderful|fantastic|incredible|revolutionary)`,
	`(?:love|best|perfect|greatest)`,
)

// Misleading-language families checked document-wide, at most one issue
// each. The first is handled separately because "miracle/cure/eliminate"
// must not count past-tense or gerund forms.
var misleadingRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:works?|results?).*(?:guaranteed|always|never fails)`),
	regexp.MustCompile(`(?i)(?:all|everyone|100%).*(?:patients?|people)`),
}

var miracleCureRe = regexp.MustCompile(`(?i)(?:miracle|cure|eliminate)`)

func compileAll(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(`(?i)` + p)
	}
	return res
}

// AudienceClassifier scores the document for patient, professional, and
// emotional vocabulary, classifies the audience, and runs the
// tone-mismatch and misleading-language checks.
type AudienceClassifier struct{}

// NewAudienceClassifier creates an audience classifier
func NewAudienceClassifier() *AudienceClassifier {
	return &AudienceClassifier{}
}

// Classify returns the audience, a confidence in [0,1], and any tone or
// misleading-language issues. A total score of zero is a valid
// low-confidence "unknown", not a failure.
func (a *AudienceClassifier) Classify(text string) (model.Audience, float64, []model.Issue) {
	patientScore := countMatches(text, patientIndicators)
	professionalScore := countMatches(text, professionalIndicators)
	emotionalScore := countMatches(text, emotionalIndicators)

	total := patientScore + professionalScore + emotionalScore

	audience := model.AudienceUnknown
	confidence := 0.0

	if total > 0 {
		patientRatio := float64(patientScore) / float64(total)
		professionalRatio := float64(professionalScore) / float64(total)

		switch {
		case patientRatio > 0.5:
			audience = model.AudiencePatient
			confidence = patientRatio
		case professionalRatio > 0.5:
			audience = model.AudienceProfessional
			confidence = professionalRatio
		default:
			audience = model.AudienceMixed
			confidence = patientRatio
			if professionalRatio > confidence {
				confidence = professionalRatio
			}
		}
	}

	var issues []model.Issue

	if audience == model.AudienceProfessional && emotionalScore > 3 {
		issues = append(issues, model.Issue{
			Category:    model.CategoryTone,
			Type:        model.IssueInappropriateTone,
			Description: "Emotional language found in professional/clinical material",
			Location:    "Multiple locations",
			Suggestion:  "Replace emotional language with objective, evidence-based terminology",
			Severity:    model.SeverityWarning,
		})
	}

	if audience == model.AudiencePatient && emotionalScore == 0 && professionalScore > 5 {
		issues = append(issues, model.Issue{
			Category:    model.CategoryTone,
			Type:        model.IssueOverlyTechnical,
			Description: "This material appears aimed at patients but uses overly technical or medical terminology",
			Location:    "Throughout document",
			Suggestion:  "Simplify technical terminology for patient audience or clarify this is for professionals",
			Severity:    model.SeverityWarning,
		})
	}

	issues = append(issues, a.detectMisleading(text)...)

	return audience, confidence, issues
}

// detectMisleading emits at most one critical issue per misleading
// family, citing the first line the family matches.
func (a *AudienceClassifier) detectMisleading(text string) []model.Issue {
	lines := strings.Split(text, "\n")
	var issues []model.Issue

	emit := func(matchLine func(string) bool) {
		snippet := ""
		for _, line := range lines {
			if matchLine(line) {
				snippet = truncateSnippet(strings.TrimSpace(line), 200)
				break
			}
		}
		issues = append(issues, model.Issue{
			Category:    model.CategoryTone,
			Type:        model.IssueMisleadingLanguage,
			Description: "Potentially misleading language detected",
			Location:    "See text for context",
			Snippet:     snippet,
			Suggestion:  "Use more measured language with appropriate qualifiers and disclaimers",
			Severity:    model.SeverityCritical,
		})
	}

	if hasBareMiracleCure(text) {
		emit(hasBareMiracleCure)
	}
	for _, re := range misleadingRes {
		if re.MatchString(text) {
			emit(re.MatchString)
		}
	}

	return issues
}

// hasBareMiracleCure reports a miracle/cure/eliminate mention that is
// not immediately followed by "d" or "ing" ("cured", "eliminating" are
// allowed forms).
func hasBareMiracleCure(s string) bool {
	for _, loc := range miracleCureRe.FindAllStringIndex(s, -1) {
		rest := strings.ToLower(s[loc[1]:])
		if strings.HasPrefix(rest, "d") || strings.HasPrefix(rest, "ing") {
			continue
		}
		return true
	}
	return false
}

func countMatches(text string, res []*regexp.Regexp) int {
	total := 0
	for _, re := range res {
		total += len(re.FindAllString(text, -1))
	}
	return total
}
