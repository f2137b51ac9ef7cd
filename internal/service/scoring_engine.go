package service

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/dsm5-adhd-screener/internal/domain"
)

// ScoringEngine evaluates DSM-5 ADHD screening criteria.
// Every operation is pure and deterministic: the engine holds no mutable
// state between invocations, so concurrent evaluations need no locking.
type ScoringEngine struct {
	logger *logrus.Logger
}

// NewScoringEngine creates a new scoring engine
func NewScoringEngine(logger *logrus.Logger) *ScoringEngine {
	return &ScoringEngine{logger: logger}
}

// ValidateAge checks the hard age gate for the childhood criteria set.
// A non-nil result means the patient is ineligible, not that the request
// failed: the reason is rendered to the caller as a normal outcome.
func (e *ScoringEngine) ValidateAge(age float64) *domain.AgeOutOfRangeError {
	if age < domain.MinScreeningAge {
		return &domain.AgeOutOfRangeError{Age: age, Reason: "Patient too young for standard ADHD diagnosis"}
	}
	if age > domain.MaxScreeningAge {
		return &domain.AgeOutOfRangeError{Age: age, Reason: "Consider adult ADHD criteria"}
	}
	return nil
}

// CountHighRatings validates the rating set against its catalog and returns
// the number of symptoms rated Often or Very Often (>=3) together with the
// percentage of the catalog those represent, rounded to two decimals.
func (e *ScoringEngine) CountHighRatings(ratings domain.RatingSet, catalog domain.Catalog) (domain.DomainScore, error) {
	if err := ratings.Validate(catalog); err != nil {
		return domain.DomainScore{}, err
	}

	count := 0
	for _, key := range catalog.Keys() {
		if ratings[key] >= domain.HighRatingCutoff {
			count++
		}
	}

	pct := round2(float64(count) / float64(catalog.Len()) * 100)
	return domain.DomainScore{Count: count, Percentage: pct}, nil
}

// DeterminePresentation applies the DSM-5 presentation decision table.
// First match wins; a count of exactly six meets the threshold.
func (e *ScoringEngine) DeterminePresentation(inattentionCount, hyperactivityCount int) domain.Presentation {
	switch {
	case inattentionCount >= domain.SymptomThreshold && hyperactivityCount >= domain.SymptomThreshold:
		return domain.COMBINED
	case inattentionCount >= domain.SymptomThreshold:
		return domain.INATTENTIVE
	case hyperactivityCount >= domain.SymptomThreshold:
		return domain.HYPERACTIVE
	default:
		return domain.NO_CRITERIA
	}
}

// MeetsCriteria combines the symptom threshold with the duration, setting,
// impairment, and differential-diagnosis criteria.
func (e *ScoringEngine) MeetsCriteria(inattentionCount, hyperactivityCount int, additional domain.AdditionalCriteria) bool {
	return (inattentionCount >= domain.SymptomThreshold || hyperactivityCount >= domain.SymptomThreshold) &&
		additional.DurationMet() &&
		additional.SettingsMet() &&
		additional.ImpairmentMet() &&
		!additional.OtherConditionsPresent
}

// DetermineSeverity derives severity as the maximum ordinal of the academic
// and social impact ratings. A maximum of none or mild reports Mild.
func (e *ScoringEngine) DetermineSeverity(additional domain.AdditionalCriteria) domain.SeverityLevel {
	switch domain.MaxImpact(additional.AcademicImpact, additional.SocialImpact) {
	case domain.IMPACT_SEVERE:
		return domain.SEVERE
	case domain.IMPACT_MODERATE:
		return domain.MODERATE
	default:
		return domain.MILD
	}
}

// CalculateProbability computes the heuristic likelihood score: the mean of
// the two domain percentages plus fixed weights for each additional
// criterion, clamped to [0,100]. This is a screening heuristic, not a
// calibrated clinical probability.
func (e *ScoringEngine) CalculateProbability(inattentionPct, hyperactivityPct float64, additional domain.AdditionalCriteria) float64 {
	symptomWeight := (inattentionPct + hyperactivityPct) / 2

	additionalScore := 0.0
	if additional.DurationMet() {
		additionalScore += 6
	}
	if additional.SettingsMet() {
		additionalScore += 4
	}
	if additional.ImpairmentMet() {
		additionalScore += 5
	}
	if additional.OtherConditionsPresent {
		additionalScore -= 10
	}

	probability := math.Min(math.Max(symptomWeight+additionalScore, 0), 100)
	return round2(probability)
}

// InterpretProbability maps the probability score to its likelihood label.
func (e *ScoringEngine) InterpretProbability(probability float64) domain.Likelihood {
	switch {
	case probability < 34:
		return domain.LOW_LIKELIHOOD
	case probability < 67:
		return domain.MODERATE_LIKELIHOOD
	default:
		return domain.HIGH_LIKELIHOOD
	}
}

// Evaluate performs the complete screening workflow over a validated input
// record. Validation failures of the rating sets surface as errors for the
// adapter to recover; an out-of-range age returns an ineligible result.
func (e *ScoringEngine) Evaluate(ctx context.Context, input domain.DiagnosticInput) (*domain.DiagnosticResult, error) {
	if ageErr := e.ValidateAge(input.Age); ageErr != nil {
		e.logger.WithFields(logrus.Fields{
			"age":    input.Age,
			"reason": ageErr.Reason,
		}).Info("Screening ineligible by age criteria")

		return &domain.DiagnosticResult{
			Eligible: false,
			Reason:   ageErr.Reason,
			Age:      input.Age,
		}, nil
	}

	if err := input.Additional.Validate(); err != nil {
		return nil, err
	}

	inattention, err := e.CountHighRatings(input.InattentionRatings, domain.InattentionCatalog())
	if err != nil {
		return nil, err
	}

	hyperactivity, err := e.CountHighRatings(input.HyperactivityRatings, domain.HyperactivityCatalog())
	if err != nil {
		return nil, err
	}

	presentation := e.DeterminePresentation(inattention.Count, hyperactivity.Count)
	meetsCriteria := e.MeetsCriteria(inattention.Count, hyperactivity.Count, input.Additional)
	severity := e.DetermineSeverity(input.Additional)
	probability := e.CalculateProbability(inattention.Percentage, hyperactivity.Percentage, input.Additional)
	likelihood := e.InterpretProbability(probability)

	result := &domain.DiagnosticResult{
		Eligible:                true,
		Age:                     input.Age,
		InattentionSymptoms:     inattention.Count,
		HyperactivitySymptoms:   hyperactivity.Count,
		InattentionPercentage:   inattention.Percentage,
		HyperactivityPercentage: hyperactivity.Percentage,
		Probability:             probability,
		Likelihood:              likelihood,
		Presentation:            presentation,
		Severity:                severity,
		MeetsCriteria:           meetsCriteria,
		CriteriaMet: domain.CriteriaMet{
			SymptomThreshold: inattention.Count >= domain.SymptomThreshold || hyperactivity.Count >= domain.SymptomThreshold,
			Duration:         input.Additional.DurationMet(),
			Settings:         input.Additional.SettingsMet(),
			Impairment:       input.Additional.ImpairmentMet(),
			OtherConditions:  input.Additional.OtherConditionsPresent,
		},
		DetailedInattention:   input.InattentionRatings,
		DetailedHyperactivity: input.HyperactivityRatings,
	}

	e.logger.WithFields(logrus.Fields{
		"age":                    input.Age,
		"inattention_symptoms":   result.InattentionSymptoms,
		"hyperactivity_symptoms": result.HyperactivitySymptoms,
		"presentation":           result.Presentation.String(),
		"severity":               result.Severity.String(),
		"probability":            result.Probability,
		"likelihood":             result.Likelihood.String(),
		"meets_criteria":         result.MeetsCriteria,
	}).Info("Completed ADHD screening evaluation")

	return result, nil
}

// round2 rounds to two decimal places for reporting.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
