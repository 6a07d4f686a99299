package model

// Severity tiers an issue and drives the report verdict
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Category groups issues into the five review categories
type Category string

const (
	CategoryClaims      Category = "Claim Validation"
	CategoryDisclaimers Category = "Disclaimers & Legal Text"
	CategoryRegulatory  Category = "Regulatory & Compliance Language"
	CategoryConsistency Category = "Consistency & Accuracy"
	CategoryTone        Category = "Tone, Clarity & Audience Appropriateness"
)

// IssueType is the closed set of issue tags emitted by the detectors.
// The report layer maps these to display names; keeping the set closed
// prevents a typo from silently creating an unrecognized bucket.
type IssueType string

const (
	IssueUnsupportedClaim           IssueType = "unsupported_claim"
	IssueMissingDisclaimer          IssueType = "missing_disclaimer"
	IssueMisplacedDisclaimer        IssueType = "misplaced_disclaimer"
	IssueOverpromising              IssueType = "overpromising"
	IssueUnsubstantiatedSuperlative IssueType = "unsubstantiated_superlatives"
	IssueVagueTestimonial           IssueType = "vague_testimonial"
	IssueUnsupportedComparative     IssueType = "unsupported_comparative"
	IssueAbsoluteStatement          IssueType = "absolute_statement"
	IssueUnqualifiedPercentage      IssueType = "unqualified_percentage"
	IssueWeakReference              IssueType = "weak_reference"
	IssueInconsistentTrademark      IssueType = "inconsistent_trademark"
	IssueContradictoryStatement     IssueType = "contradictory_statement"
	IssueInappropriateTone          IssueType = "inappropriate_tone"
	IssueOverlyTechnical            IssueType = "overly_technical"
	IssueMisleadingLanguage         IssueType = "misleading_language"
)

// Issue is a single compliance finding. Issues are value objects and are
// never mutated after a detector emits them; severity is fixed by the
// originating detector and the orchestrator never re-classifies it.
type Issue struct {
	Category     Category  `json:"category"`
	Type         IssueType `json:"issue_type"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Snippet      string    `json:"snippet,omitempty"`
	Suggestion   string    `json:"suggestion"`
	Severity     Severity  `json:"severity"`
	ReferenceURL string    `json:"reference_url,omitempty"`
}
