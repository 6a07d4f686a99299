package analyze

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eyeqlabs/prescreen/internal/corpus"
	"github.com/eyeqlabs/prescreen/internal/model"
)

var (
	trademarkGlyphRe = regexp.MustCompile(`[®™]`)
	negativeWordsRe  = regexp.MustCompile(`(?i)\b(?:not|no|never|cannot|lack|without|absent|missing|fails?)\b`)
	positiveWordsRe  = regexp.MustCompile(`(?i)\b(?:improves?|reduces?|eliminates?|enhances?|provides?|delivers?)\b`)
	safetyLanguageRe = regexp.MustCompile(`(?i)\bnot\s+(?:for|intended|recommended)\b`)
)

// ConsistencyChecker verifies trademark usage and catches lines mixing
// negative and positive claim vocabulary.
type ConsistencyChecker struct {
	corpus *corpus.Corpus
}

// NewConsistencyChecker creates a consistency checker
func NewConsistencyChecker(c *corpus.Corpus) *ConsistencyChecker {
	return &ConsistencyChecker{corpus: c}
}

// Check runs both the trademark and contradiction heuristics
func (c *ConsistencyChecker) Check(text string) []model.Issue {
	var issues []model.Issue
	issues = append(issues, c.checkTrademarks(text)...)
	issues = append(issues, c.checkContradictions(text)...)
	return issues
}

// checkTrademarks counts the name variants of each known product and,
// for the most-mentioned product, warns when the marked and unmarked
// forms both occur.
func (c *ConsistencyChecker) checkTrademarks(text string) []model.Issue {
	var topProduct string
	topCount := 0

	for _, name := range c.corpus.Names() {
		variants := []string{
			name,
			strings.ReplaceAll(name, "®", ""),
			strings.ToLower(name),
			trademarkGlyphRe.ReplaceAllString(name, ""),
		}
		count := 0
		for _, variant := range variants {
			re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(variant))
			count += len(re.FindAllString(text, -1))
		}
		if count > topCount {
			topCount = count
			topProduct = name
		}
	}

	if topProduct == "" {
		return nil
	}
	if !strings.Contains(text, topProduct+"®") || !strings.Contains(text, topProduct) {
		return nil
	}

	return []model.Issue{{
		Category:    model.CategoryConsistency,
		Type:        model.IssueInconsistentTrademark,
		Description: "Product name trademarked inconsistently throughout document",
		Location:    "Multiple locations",
		Snippet:     "Product name formatting varies",
		Suggestion:  fmt.Sprintf("Use '%s®' consistently throughout (or without ® if preferred, but be consistent)", topProduct),
		Severity:    model.SeverityWarning,
	}}
}

// checkContradictions flags lines that pair negation vocabulary with
// positive-claim vocabulary, unless the line opens with "not" or is a
// recognizable safety disclaimer ("not for/intended/recommended").
func (c *ConsistencyChecker) checkContradictions(text string) []model.Issue {
	var issues []model.Issue
	for lineNum, line := range strings.Split(text, "\n") {
		if !negativeWordsRe.MatchString(line) || !positiveWordsRe.MatchString(line) {
			continue
		}
		if strings.Contains(strings.ToLower(leadRunes(line, 20)), "not") {
			continue
		}
		if safetyLanguageRe.MatchString(line) {
			continue
		}
		issues = append(issues, model.Issue{
			Category:    model.CategoryConsistency,
			Type:        model.IssueContradictoryStatement,
			Description: "Line contains both positive and negative claims that may contradict",
			Location:    fmt.Sprintf("Line %d", lineNum+1),
			Snippet:     truncateSnippet(strings.TrimSpace(line), 200),
			Suggestion:  "Clarify the statement - ensure positive and negative elements are not contradictory",
			Severity:    model.SeverityWarning,
		})
	}
	return issues
}

// leadRunes returns the first n runes of s
func leadRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
