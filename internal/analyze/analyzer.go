package analyze

import (
	"github.com/eyeqlabs/prescreen/internal/corpus"
	"github.com/eyeqlabs/prescreen/internal/model"
)

// Analyzer sequences the engine components over one document. It holds
// only compiled patterns and borrowed read-only tables, so a single
// Analyzer serves concurrent callers without locking.
type Analyzer struct {
	corpus      *corpus.Corpus
	extractor   *ClaimExtractor
	matcher     *ApprovedClaimMatcher
	references  *ReferenceValidator
	disclaimers *DisclaimerValidator
	regulatory  *RegulatoryDetector
	consistency *ConsistencyChecker
	audience    *AudienceClassifier
}

// New creates an analyzer over the given corpus and reference table
func New(c *corpus.Corpus, refs corpus.References) *Analyzer {
	return &Analyzer{
		corpus:      c,
		extractor:   NewClaimExtractor(),
		matcher:     NewApprovedClaimMatcher(c),
		references:  NewReferenceValidator(refs),
		disclaimers: NewDisclaimerValidator(refs),
		regulatory:  NewRegulatoryDetector(refs),
		consistency: NewConsistencyChecker(c),
		audience:    NewAudienceClassifier(),
	}
}

// Analyze runs the full pipeline over one material. The product is
// auto-detected when not supplied; an unknown product yields an empty
// compliant-claims list, never an error. Severities are fixed by the
// detectors that emit them and are never re-classified here.
func (a *Analyzer) Analyze(text, product string) *model.AnalysisResult {
	result := &model.AnalysisResult{
		AudienceType: model.AudienceUnknown,
	}

	if product == "" {
		product = a.corpus.DetectProduct(text)
	}
	result.ProductDetected = product

	// 1. Claim extraction and reference validation
	claims := a.extractor.Extract(text)
	result.Issues = append(result.Issues, a.references.Validate(text, claims)...)

	// 2. Approved-claim matching
	result.CompliantClaims = a.matcher.Match(text, product)

	// 3. Disclaimer presence and placement
	result.Issues = append(result.Issues, a.disclaimers.Validate(text)...)

	// 4. Regulatory language detectors
	result.Issues = append(result.Issues, a.regulatory.Detect(text)...)

	// 5. Trademark and contradiction consistency
	result.Issues = append(result.Issues, a.consistency.Check(text)...)

	// 6. Audience, tone, and misleading language
	audience, confidence, toneIssues := a.audience.Classify(text)
	result.AudienceType = audience
	result.AudienceConfidence = confidence
	result.Issues = append(result.Issues, toneIssues...)

	return result
}
