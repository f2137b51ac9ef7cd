package domain

// Screening thresholds from the DSM-5 criteria set. Symptoms rated 3 (Often)
// or 4 (Very Often) count toward the per-domain threshold of six.
const (
	MinRating        = 0
	MaxRating        = 4
	HighRatingCutoff = 3
	SymptomThreshold = 6
	MinMonthsPresent = 6
	MinSettingsCount = 2
	MinScreeningAge  = 1.0
	MaxScreeningAge  = 12.0
)

// RatingSet maps each criterion of one domain to its 0-4 frequency rating.
type RatingSet map[SymptomKey]int

// Validate checks every rating against the 0-4 scale and verifies the set
// covers the full catalog. Completeness is checked in catalog order so the
// first missing criterion is reported deterministically.
func (rs RatingSet) Validate(catalog Catalog) error {
	for key, rating := range rs {
		if rating < MinRating || rating > MaxRating {
			return &InvalidRatingError{Key: key, Rating: rating}
		}
	}

	for _, key := range catalog.Keys() {
		if _, ok := rs[key]; !ok {
			return &IncompleteInputError{Domain: catalog.Domain, Missing: key}
		}
	}

	return nil
}

// AdditionalCriteria holds the non-symptom DSM-5 criteria: duration,
// pervasiveness across settings, functional impact, and differential
// diagnosis.
type AdditionalCriteria struct {
	MonthsPresent          int         `json:"months_present"`
	SettingsCount          int         `json:"settings_count"`
	AcademicImpact         ImpactLevel `json:"academic_impact"`
	SocialImpact           ImpactLevel `json:"social_impact"`
	ImpairmentPresent      bool        `json:"impairment_present"`
	OtherConditionsPresent bool        `json:"other_conditions_present"`
}

// Validate ensures the additional criteria values are well-formed.
func (ac AdditionalCriteria) Validate() error {
	if ac.MonthsPresent < 0 {
		return &MalformedInputError{Detail: "months_present must be non-negative"}
	}
	if ac.SettingsCount < 0 {
		return &MalformedInputError{Detail: "settings_count must be non-negative"}
	}
	if !ac.AcademicImpact.IsValid() {
		return &MalformedInputError{Detail: "academic_impact must be one of none/mild/moderate/severe"}
	}
	if !ac.SocialImpact.IsValid() {
		return &MalformedInputError{Detail: "social_impact must be one of none/mild/moderate/severe"}
	}
	return nil
}

// DurationMet reports whether symptoms have persisted for at least six months.
func (ac AdditionalCriteria) DurationMet() bool {
	return ac.MonthsPresent >= MinMonthsPresent
}

// SettingsMet reports whether symptoms are present in at least two settings.
func (ac AdditionalCriteria) SettingsMet() bool {
	return ac.SettingsCount >= MinSettingsCount
}

// ImpairmentMet reports whether functional impairment is evidenced, either by
// the explicit yes/no answer collected interactively or by a non-none impact
// rating in either setting.
func (ac AdditionalCriteria) ImpairmentMet() bool {
	return ac.ImpairmentPresent ||
		ac.AcademicImpact != IMPACT_NONE ||
		ac.SocialImpact != IMPACT_NONE
}

// DiagnosticInput is the validated input record consumed by the scoring
// engine. It is a value object: built once per evaluation, never mutated.
type DiagnosticInput struct {
	Age                  float64            `json:"age"`
	InattentionRatings   RatingSet          `json:"inattention_ratings"`
	HyperactivityRatings RatingSet          `json:"hyperactivity_ratings"`
	Additional           AdditionalCriteria `json:"additional_criteria"`
}

// CriteriaMet is the per-criterion breakdown reported alongside the result.
type CriteriaMet struct {
	SymptomThreshold bool `json:"symptom_threshold"`
	Duration         bool `json:"duration"`
	Settings         bool `json:"settings"`
	Impairment       bool `json:"impairment"`
	OtherConditions  bool `json:"other_conditions"`
}

// DomainScore holds the high-symptom count and percentage for one domain.
type DomainScore struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// DiagnosticResult is the complete screening outcome. For an ineligible age
// only Eligible, Reason, and Age are populated.
type DiagnosticResult struct {
	Eligible bool    `json:"eligible"`
	Reason   string  `json:"reason,omitempty"`
	Age      float64 `json:"age"`

	InattentionSymptoms     int     `json:"inattention_symptoms"`
	HyperactivitySymptoms   int     `json:"hyperactivity_symptoms"`
	InattentionPercentage   float64 `json:"inattention_percentage"`
	HyperactivityPercentage float64 `json:"hyperactivity_percentage"`

	Probability  float64       `json:"adhd_probability"`
	Likelihood   Likelihood    `json:"likelihood"`
	Presentation Presentation  `json:"presentation"`
	Severity     SeverityLevel `json:"severity,omitempty"`

	MeetsCriteria bool        `json:"meets_criteria"`
	CriteriaMet   CriteriaMet `json:"criteria_met"`

	DetailedInattention   RatingSet `json:"detailed_inattention,omitempty"`
	DetailedHyperactivity RatingSet `json:"detailed_hyperactivity,omitempty"`
}
