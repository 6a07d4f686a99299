// Package analyze implements the rule-based compliance engine: claim
// extraction, approved-claim matching, reference and disclaimer
// validation, regulatory language detection, consistency checks, and
// audience classification. Every component is pure and stateless after
// construction; identical input always produces an identical result.
package analyze

import (
	"regexp"
	"strings"
)

// Claim is a candidate promotional assertion: a sentence tagged with the
// 1-based line it came from and the raw line for context.
type Claim struct {
	Text    string
	Line    int
	Context string
}

// Vocabulary groups that mark a sentence as making a claim. Comparative,
// absolute, negation, and superlative groups are the high-risk ones.
var claimIndicators = []string{
	`provides|delivers|improves|reduces|enhances|offers|shows|demonstrates`,
	`clinically|proven|helps|enables|allows|supports|promotes|maintains|achieves`,
	`results|effective|capable|designed|made|formulated|treatment|solution|benefit|advantage|feature`,
	`better|superior|vs\.|versus|compared to|leading|breakthrough|innovation`,
	`\b(?:perfect|guaranteed|always|never|100%|completely|totally|eliminates|cures|solves)\b`,
	`comfort|ease|gentle|soft|smooth|quality|premium|ultimate|exceptional|luxury`,
	`\d+%|\d+\s*(?:years?|months?|days?)|n=\d+`,
	`\bno longer\b|\bno need\b|\bwithout\b|\bovercome\b|\bno compromise\b|\bno risk\b`,
	`\bfirst\b|\bonly\b|\bfirst-and-only\b|\bunique\b|\blast\b`,
}

// Lines that are headers, footnotes, or reference-list entries carry no
// promotional claims and are skipped wholesale.
var skipLineRe = regexp.MustCompile(`^#+\s|^References?:|^Footnotes?:|^\*{1,2}|^[0-9]+\.\s*(?:https?://|In a clinical|Internal|Surface)`)

// ClaimExtractor finds candidate promotional sentences in raw text
type ClaimExtractor struct {
	claimRe *regexp.Regexp
}

// NewClaimExtractor compiles the claim vocabulary
func NewClaimExtractor() *ClaimExtractor {
	return &ClaimExtractor{
		claimRe: regexp.MustCompile(`(?i)(?:` + strings.Join(claimIndicators, `|`) + `)`),
	}
}

// Extract returns every claim candidate in document order. No
// deduplication: downstream validators weigh repeated claims separately.
func (e *ClaimExtractor) Extract(text string) []Claim {
	var claims []Claim

	for lineNum, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)

		if len(stripped) < 15 {
			continue
		}
		if skipLineRe.MatchString(stripped) {
			continue
		}

		for _, sentence := range splitSentences(stripped) {
			sentence = strings.TrimSpace(sentence)
			if len(sentence) > 15 && e.claimRe.MatchString(sentence) {
				claims = append(claims, Claim{
					Text:    sentence,
					Line:    lineNum + 1,
					Context: stripped,
				})
			}
		}
	}

	return claims
}

// splitSentences splits on sentence-ending punctuation followed by
// whitespace, keeping the punctuation with the sentence.
func splitSentences(s string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		current.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(runes) && isSpace(runes[i+1]) {
			sentences = append(sentences, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		sentences = append(sentences, current.String())
	}

	return sentences
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
