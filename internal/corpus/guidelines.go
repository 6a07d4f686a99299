package corpus

// Reference is one regulatory guidance document
type Reference struct {
	Title         string `yaml:"title"`
	URL           string `yaml:"url"`
	ShortCitation string `yaml:"short_citation"`
}

// Guideline describes one compliance rule family: what it prohibits, how
// to fix it, and the detection vocabulary associated with it.
type Guideline struct {
	Description string   `yaml:"description"`
	Suggestion  string   `yaml:"suggestion"`
	Reference   string   `yaml:"reference"`
	Patterns    []string `yaml:"patterns"`
}

// References is an immutable guideline-key → regulatory-reference table.
// Missing keys degrade to an empty URL rather than an error.
type References struct {
	entries map[string]Reference
}

// NewReferences builds a reference table
func NewReferences(entries map[string]Reference) References {
	return References{entries: entries}
}

// URL returns the guidance URL for a key, or "" when the key is unknown
func (r References) URL(key string) string {
	return r.entries[key].URL
}

// Lookup returns the full reference entry for a key
func (r References) Lookup(key string) (Reference, bool) {
	ref, ok := r.entries[key]
	return ref, ok
}

// DefaultReferences returns the built-in FDA/FTC guidance table
func DefaultReferences() References {
	return NewReferences(map[string]Reference{
		"fda_medical_device_promotion": {
			Title:         "Medical Device Advertising and Promotion - FDA",
			URL:           "https://www.fda.gov/medical-devices/device-advice-comprehensive-regulatory-assistance/medical-device-promotion-advertising",
			ShortCitation: "FDA Medical Device Promotion",
		},
		"fda_misbranding_guidance": {
			Title:         "FDA Guidance on Medical Device Misbranding",
			URL:           "https://www.fda.gov/regulatory-information/search-fda-guidance-documents/guidance-industry-and-fda-staff-medical-device-label-requirements",
			ShortCitation: "FDA Misbranding Guidance",
		},
		"fda_intended_use_guidance": {
			Title:         "FDA Guidance on Intended Use in Device Labeling",
			URL:           "https://www.fda.gov/regulatory-information/search-fda-guidance-documents/how-study-and-market-your-medical-device",
			ShortCitation: "FDA Intended Use Guidance",
		},
		"ftc_health_claims": {
			Title:         "FTC Health Products Compliance Guidance",
			URL:           "https://www.ftc.gov/business-guidance/resources/health-products-compliance-guidance",
			ShortCitation: "FTC Health Products Compliance",
		},
		"ftc_advertising_substantiation": {
			Title:         "FTC Policy Statement on Advertising Substantiation",
			URL:           "https://www.ftc.gov/legal-library/browse/federal-register-notices/advertising-substantiation-policy-statement",
			ShortCitation: "FTC Substantiation Policy",
		},
		"ftc_substantiation_guide": {
			Title:         "Advertising Substantiation: What Advertisers Should Know",
			URL:           "https://www.ftc.gov/business-guidance/resources/advertising-faqs-guide-small-business",
			ShortCitation: "FTC Substantiation Guide",
		},
		"fda_labeling_requirements": {
			Title:         "FDA Device Labeling Guidance",
			URL:           "https://www.fda.gov/medical-devices/overview-device-regulation/device-labeling",
			ShortCitation: "FDA Labeling Requirements",
		},
		"fda_label_requirements_detailed": {
			Title:         "Medical Device Labeling Regulations (21 CFR Part 801)",
			URL:           "https://www.accessdata.fda.gov/scripts/cdrh/cfdocs/cfcfr/CFRSearch.cfm?CFRPart=801",
			ShortCitation: "21 CFR Part 801",
		},
		"fda_510k_premarket": {
			Title:         "FDA Premarket Notification 510(k) Guidance",
			URL:           "https://www.fda.gov/medical-devices/premarket-submissions-selecting-and-preparing-correct-submission/premarket-notification-510k",
			ShortCitation: "FDA 510(k) Guidance",
		},
		"ftc_deceptive_advertising": {
			Title:         "FTC Policy Statement on Deception (Appended to Cliffdale Associates)",
			URL:           "https://www.ftc.gov/legal-library/browse/ftc-policy-statement-deception",
			ShortCitation: "FTC Deception Policy Statement",
		},
		"ftc_endorsement_guides": {
			Title:         "FTC Endorsement Guides (16 CFR Part 255)",
			URL:           "https://www.ecfr.gov/current/title-16/chapter-I/subchapter-B/part-255",
			ShortCitation: "FTC Endorsement Guides",
		},
		"fda_clinical_trials": {
			Title:         "Clinical Trials and Medical Devices - FDA",
			URL:           "https://www.fda.gov/medical-devices/device-advice-comprehensive-regulatory-assistance/clinical-trials-medical-devices",
			ShortCitation: "FDA Clinical Trials Guidance",
		},
		"fda_promotional_materials": {
			Title:         "Promotional Materials Submitted to FDA (Draft Guidance)",
			URL:           "https://www.fda.gov/media/72379/download",
			ShortCitation: "FDA Promotional Materials Guidance",
		},
	})
}
