// Package domain contains core business entities and types for DSM-5 style
// ADHD screening.
//
// Reference: American Psychiatric Association (2013) Diagnostic and
// Statistical Manual of Mental Disorders, 5th Edition, ADHD diagnostic criteria.
package domain

// Presentation represents the ADHD presentation sub-classification.
// These follow the DSM-5 presentation specifiers and are determined from the
// per-domain high-symptom counts.
type Presentation string

const (
	COMBINED    Presentation = "Combined Presentation"
	INATTENTIVE Presentation = "Predominantly Inattentive Presentation"
	HYPERACTIVE Presentation = "Predominantly Hyperactive-Impulsive Presentation"
	NO_CRITERIA Presentation = "Does not meet criteria for any presentation"
)

// SeverityLevel represents the ordinal severity attached to a screening result.
type SeverityLevel string

const (
	MILD     SeverityLevel = "Mild"
	MODERATE SeverityLevel = "Moderate"
	SEVERE   SeverityLevel = "Severe"
)

// Likelihood represents the interpretation label for the heuristic
// probability score.
type Likelihood string

const (
	LOW_LIKELIHOOD      Likelihood = "Low"
	MODERATE_LIKELIHOOD Likelihood = "Moderate"
	HIGH_LIKELIHOOD     Likelihood = "High"
)

// ImpactLevel represents the ordinal functional-impact rating collected for
// the academic and social settings.
type ImpactLevel string

const (
	IMPACT_NONE     ImpactLevel = "none"
	IMPACT_MILD     ImpactLevel = "mild"
	IMPACT_MODERATE ImpactLevel = "moderate"
	IMPACT_SEVERE   ImpactLevel = "severe"
)

// IsValid validates that the presentation is one of the DSM-5 specifiers.
func (p Presentation) IsValid() bool {
	switch p {
	case COMBINED, INATTENTIVE, HYPERACTIVE, NO_CRITERIA:
		return true
	default:
		return false
	}
}

// String returns the string representation of the presentation.
func (p Presentation) String() string {
	return string(p)
}

// IsValid validates the severity level.
func (s SeverityLevel) IsValid() bool {
	switch s {
	case MILD, MODERATE, SEVERE:
		return true
	default:
		return false
	}
}

// String returns the string representation of the severity level.
func (s SeverityLevel) String() string {
	return string(s)
}

// IsValid validates the likelihood label.
func (l Likelihood) IsValid() bool {
	switch l {
	case LOW_LIKELIHOOD, MODERATE_LIKELIHOOD, HIGH_LIKELIHOOD:
		return true
	default:
		return false
	}
}

// String returns the string representation of the likelihood label.
func (l Likelihood) String() string {
	return string(l)
}

// IsValid validates the impact level against the closed none..severe set.
func (il ImpactLevel) IsValid() bool {
	switch il {
	case IMPACT_NONE, IMPACT_MILD, IMPACT_MODERATE, IMPACT_SEVERE:
		return true
	default:
		return false
	}
}

// String returns the string representation of the impact level.
func (il ImpactLevel) String() string {
	return string(il)
}

// Rank returns the ordinal position of the impact level, none lowest.
// Unknown values rank below none so they never win a Max comparison.
func (il ImpactLevel) Rank() int {
	switch il {
	case IMPACT_NONE:
		return 0
	case IMPACT_MILD:
		return 1
	case IMPACT_MODERATE:
		return 2
	case IMPACT_SEVERE:
		return 3
	default:
		return -1
	}
}

// MaxImpact returns the higher of two impact levels by ordinal rank.
func MaxImpact(a, b ImpactLevel) ImpactLevel {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// LogFields returns structured logging fields for audit trails.
func (p Presentation) LogFields() map[string]any {
	return map[string]any{
		"presentation":  string(p),
		"is_valid":      p.IsValid(),
		"meets_pattern": p != NO_CRITERIA,
	}
}
