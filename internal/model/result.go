package model

// Audience classifies who the material is written for
type Audience string

const (
	AudiencePatient      Audience = "patient"
	AudienceProfessional Audience = "professional"
	AudienceMixed        Audience = "mixed"
	AudienceUnknown      Audience = "unknown"
)

// AnalysisResult is the complete outcome of one analysis run. A fresh
// result is allocated per invocation; the engine holds no state across
// calls, so concurrent analyses never share mutable data.
type AnalysisResult struct {
	CompliantClaims    []string `json:"compliant_claims"`
	Issues             []Issue  `json:"issues"`
	AudienceType       Audience `json:"audience_type"`
	AudienceConfidence float64  `json:"audience_confidence"`
	ProductDetected    string   `json:"product_detected,omitempty"`
}

// CriticalCount returns the number of critical issues
func (r *AnalysisResult) CriticalCount() int {
	return r.countSeverity(SeverityCritical)
}

// WarningCount returns the number of warning issues
func (r *AnalysisResult) WarningCount() int {
	return r.countSeverity(SeverityWarning)
}

func (r *AnalysisResult) countSeverity(s Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == s {
			n++
		}
	}
	return n
}

// BySeverity returns the issues carrying the given severity, in emission order
func (r *AnalysisResult) BySeverity(s Severity) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == s {
			out = append(out, issue)
		}
	}
	return out
}
