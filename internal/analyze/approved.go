package analyze

import (
	"strings"

	"github.com/eyeqlabs/prescreen/internal/corpus"
)

// Substantiation delimiters: an approved-claim string switches from the
// core marketing sentence to its footnote text at the first of these.
// Order matters; the first delimiter present wins.
var claimDelimiters = []string{
	". In a clinical",
	". Based on",
	". 1.",
	". Surface property",
	". In vitro",
}

// ApprovedClaimMatcher fuzzy-matches whole-document text against the
// approved-claim corpus of the detected product.
type ApprovedClaimMatcher struct {
	corpus *corpus.Corpus
}

// NewApprovedClaimMatcher creates a matcher over the given corpus
func NewApprovedClaimMatcher(c *corpus.Corpus) *ApprovedClaimMatcher {
	return &ApprovedClaimMatcher{corpus: c}
}

// CoreClaim truncates an approved claim at its substantiation delimiter,
// isolating the reusable marketing sentence.
func CoreClaim(claim string) string {
	lower := strings.ToLower(claim)
	for _, delim := range claimDelimiters {
		if idx := strings.Index(lower, strings.ToLower(delim)); idx != -1 {
			return claim[:idx]
		}
	}
	return claim
}

// Match returns the approved claims of the product that appear in the
// material. The match is order-insensitive: the core claim is tokenized
// into words longer than three characters and counts as present when at
// least 70% of the tokens occur anywhere in the document, or when the
// normalized core text appears verbatim. An unknown or empty product
// matches nothing.
func (m *ApprovedClaimMatcher) Match(text, product string) []string {
	approved := m.corpus.ApprovedClaims(product)
	if len(approved) == 0 {
		return nil
	}

	textLower := strings.ToLower(text)
	var compliant []string

	for _, claim := range approved {
		normalized := strings.ToLower(strings.TrimSpace(CoreClaim(claim)))

		var words []string
		for _, w := range strings.Fields(normalized) {
			if len(w) > 3 {
				words = append(words, w)
			}
		}
		if len(words) == 0 {
			continue
		}

		matched := 0
		for _, w := range words {
			if strings.Contains(textLower, w) {
				matched++
			}
		}
		ratio := float64(matched) / float64(len(words))

		if ratio >= 0.7 || strings.Contains(textLower, normalized) {
			compliant = append(compliant, claim)
		}
	}

	return compliant
}
