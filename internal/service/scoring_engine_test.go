package service

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsm5-adhd-screener/internal/domain"
)

func newTestEngine() *ScoringEngine {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel) // Reduce noise in tests
	return NewScoringEngine(logger)
}

func ratingsOf(catalog domain.Catalog, value int) domain.RatingSet {
	rs := make(domain.RatingSet, catalog.Len())
	for _, key := range catalog.Keys() {
		rs[key] = value
	}
	return rs
}

func TestValidateAge(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name       string
		age        float64
		ineligible bool
		reason     string
	}{
		{"Infant", 0.5, true, "Patient too young for standard ADHD diagnosis"},
		{"Teenager", 13, true, "Consider adult ADHD criteria"},
		{"School age", 6, false, ""},
		{"Lower bound", 1, false, ""},
		{"Upper bound", 12, false, ""},
		{"Just above upper bound", 12.1, true, "Consider adult ADHD criteria"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := engine.ValidateAge(tt.age)
			if tt.ineligible {
				require.NotNil(t, err)
				assert.Equal(t, tt.reason, err.Reason)
				assert.Equal(t, tt.age, err.Age)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestCountHighRatings(t *testing.T) {
	engine := newTestEngine()
	catalog := domain.InattentionCatalog()

	t.Run("All rated very often", func(t *testing.T) {
		score, err := engine.CountHighRatings(ratingsOf(catalog, 4), catalog)
		require.NoError(t, err)
		assert.Equal(t, 9, score.Count)
		assert.Equal(t, 100.00, score.Percentage)
	})

	t.Run("All below cutoff", func(t *testing.T) {
		score, err := engine.CountHighRatings(ratingsOf(catalog, 2), catalog)
		require.NoError(t, err)
		assert.Equal(t, 0, score.Count)
		assert.Equal(t, 0.00, score.Percentage)
	})

	t.Run("Cutoff of three counts as high", func(t *testing.T) {
		score, err := engine.CountHighRatings(ratingsOf(catalog, 3), catalog)
		require.NoError(t, err)
		assert.Equal(t, 9, score.Count)
	})

	t.Run("Mixed ratings round to two decimals", func(t *testing.T) {
		rs := ratingsOf(catalog, 0)
		rs[domain.FailsAttention] = 4
		rs[domain.Forgetful] = 3

		score, err := engine.CountHighRatings(rs, catalog)
		require.NoError(t, err)
		assert.Equal(t, 2, score.Count)
		assert.Equal(t, 22.22, score.Percentage)
	})

	t.Run("Out of range rating rejected", func(t *testing.T) {
		rs := ratingsOf(catalog, 1)
		rs[domain.LosesThings] = 5

		_, err := engine.CountHighRatings(rs, catalog)
		var invalidErr *domain.InvalidRatingError
		require.ErrorAs(t, err, &invalidErr)
		assert.Equal(t, domain.LosesThings, invalidErr.Key)
	})

	t.Run("Missing criterion rejected", func(t *testing.T) {
		rs := ratingsOf(catalog, 1)
		delete(rs, domain.NotFollowing)

		_, err := engine.CountHighRatings(rs, catalog)
		var incompleteErr *domain.IncompleteInputError
		require.ErrorAs(t, err, &incompleteErr)
		assert.Equal(t, domain.NotFollowing, incompleteErr.Missing)
	})
}

func TestDeterminePresentation(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name          string
		inattention   int
		hyperactivity int
		expected      domain.Presentation
	}{
		{"Both at threshold", 6, 6, domain.COMBINED},
		{"Both above threshold", 9, 9, domain.COMBINED},
		{"Inattention only at threshold", 6, 5, domain.INATTENTIVE},
		{"Inattention only high", 9, 0, domain.INATTENTIVE},
		{"Hyperactivity only at threshold", 5, 6, domain.HYPERACTIVE},
		{"Hyperactivity only high", 0, 9, domain.HYPERACTIVE},
		{"Both below threshold", 5, 5, domain.NO_CRITERIA},
		{"Both zero", 0, 0, domain.NO_CRITERIA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, engine.DeterminePresentation(tt.inattention, tt.hyperactivity))
		})
	}
}

func TestMeetsCriteria(t *testing.T) {
	engine := newTestEngine()

	met := domain.AdditionalCriteria{
		MonthsPresent:  8,
		SettingsCount:  3,
		AcademicImpact: domain.IMPACT_MODERATE,
		SocialImpact:   domain.IMPACT_NONE,
	}

	tests := []struct {
		name          string
		inattention   int
		hyperactivity int
		additional    domain.AdditionalCriteria
		expected      bool
	}{
		{"All conditions met", 6, 0, met, true},
		{"Symptom threshold not met", 5, 5, met, false},
		{
			"Duration too short", 9, 9,
			domain.AdditionalCriteria{MonthsPresent: 5, SettingsCount: 3, AcademicImpact: domain.IMPACT_MODERATE, SocialImpact: domain.IMPACT_NONE},
			false,
		},
		{
			"Single setting", 9, 9,
			domain.AdditionalCriteria{MonthsPresent: 8, SettingsCount: 1, AcademicImpact: domain.IMPACT_MODERATE, SocialImpact: domain.IMPACT_NONE},
			false,
		},
		{
			"No impairment evidence", 9, 9,
			domain.AdditionalCriteria{MonthsPresent: 8, SettingsCount: 3, AcademicImpact: domain.IMPACT_NONE, SocialImpact: domain.IMPACT_NONE},
			false,
		},
		{
			"Explicit impairment answer suffices", 9, 9,
			domain.AdditionalCriteria{MonthsPresent: 8, SettingsCount: 3, AcademicImpact: domain.IMPACT_NONE, SocialImpact: domain.IMPACT_NONE, ImpairmentPresent: true},
			true,
		},
		{
			"Better explained by other condition", 9, 9,
			domain.AdditionalCriteria{MonthsPresent: 8, SettingsCount: 3, AcademicImpact: domain.IMPACT_MODERATE, SocialImpact: domain.IMPACT_NONE, OtherConditionsPresent: true},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, engine.MeetsCriteria(tt.inattention, tt.hyperactivity, tt.additional))
		})
	}
}

func TestDetermineSeverity(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name     string
		academic domain.ImpactLevel
		social   domain.ImpactLevel
		expected domain.SeverityLevel
	}{
		{"No impact floors at mild", domain.IMPACT_NONE, domain.IMPACT_NONE, domain.MILD},
		{"Mild impact", domain.IMPACT_MILD, domain.IMPACT_NONE, domain.MILD},
		{"Moderate academic", domain.IMPACT_MODERATE, domain.IMPACT_MILD, domain.MODERATE},
		{"Severe social dominates", domain.IMPACT_NONE, domain.IMPACT_SEVERE, domain.SEVERE},
		{"Severe both", domain.IMPACT_SEVERE, domain.IMPACT_SEVERE, domain.SEVERE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			additional := domain.AdditionalCriteria{AcademicImpact: tt.academic, SocialImpact: tt.social}
			assert.Equal(t, tt.expected, engine.DetermineSeverity(additional))
		})
	}
}

func TestCalculateProbability(t *testing.T) {
	engine := newTestEngine()

	t.Run("Worked example scores 65", func(t *testing.T) {
		additional := domain.AdditionalCriteria{
			MonthsPresent:  8,
			SettingsCount:  3,
			AcademicImpact: domain.IMPACT_MODERATE,
			SocialImpact:   domain.IMPACT_NONE,
		}
		assert.Equal(t, 65.00, engine.CalculateProbability(100, 0, additional))
	})

	t.Run("Floors at zero", func(t *testing.T) {
		additional := domain.AdditionalCriteria{
			AcademicImpact:         domain.IMPACT_NONE,
			SocialImpact:           domain.IMPACT_NONE,
			OtherConditionsPresent: true,
		}
		assert.Equal(t, 0.00, engine.CalculateProbability(0, 0, additional))
	})

	t.Run("Caps at one hundred", func(t *testing.T) {
		additional := domain.AdditionalCriteria{
			MonthsPresent:  12,
			SettingsCount:  3,
			AcademicImpact: domain.IMPACT_SEVERE,
			SocialImpact:   domain.IMPACT_SEVERE,
		}
		assert.Equal(t, 100.00, engine.CalculateProbability(100, 100, additional))
	})
}

func TestInterpretProbability(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		probability float64
		expected    domain.Likelihood
	}{
		{0, domain.LOW_LIKELIHOOD},
		{33.99, domain.LOW_LIKELIHOOD},
		{34, domain.MODERATE_LIKELIHOOD},
		{66.99, domain.MODERATE_LIKELIHOOD},
		{67, domain.HIGH_LIKELIHOOD},
		{100, domain.HIGH_LIKELIHOOD},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, engine.InterpretProbability(tt.probability), "probability %.2f", tt.probability)
	}
}

func TestEvaluate(t *testing.T) {
	engine := newTestEngine()
	ctx := context.Background()

	t.Run("Ineligible ages return a reason, not an error", func(t *testing.T) {
		for _, tc := range []struct {
			age      float64
			contains string
		}{
			{0.5, "too young"},
			{13, "adult"},
		} {
			result, err := engine.Evaluate(ctx, domain.DiagnosticInput{Age: tc.age})
			require.NoError(t, err)
			assert.False(t, result.Eligible)
			assert.Contains(t, result.Reason, tc.contains)
			assert.Equal(t, tc.age, result.Age)
		}
	})

	t.Run("Spec worked example", func(t *testing.T) {
		input := domain.DiagnosticInput{
			Age:                  6,
			InattentionRatings:   ratingsOf(domain.InattentionCatalog(), 4),
			HyperactivityRatings: ratingsOf(domain.HyperactivityCatalog(), 0),
			Additional: domain.AdditionalCriteria{
				MonthsPresent:  8,
				SettingsCount:  3,
				AcademicImpact: domain.IMPACT_MODERATE,
				SocialImpact:   domain.IMPACT_NONE,
			},
		}

		result, err := engine.Evaluate(ctx, input)
		require.NoError(t, err)

		assert.True(t, result.Eligible)
		assert.Equal(t, 9, result.InattentionSymptoms)
		assert.Equal(t, 0, result.HyperactivitySymptoms)
		assert.Equal(t, 100.00, result.InattentionPercentage)
		assert.Equal(t, 0.00, result.HyperactivityPercentage)
		assert.Equal(t, domain.INATTENTIVE, result.Presentation)
		assert.True(t, result.MeetsCriteria)
		assert.Equal(t, 65.00, result.Probability)
		assert.Equal(t, domain.MODERATE_LIKELIHOOD, result.Likelihood)
		assert.Equal(t, domain.MODERATE, result.Severity)
	})

	t.Run("Invalid rating surfaces as validation error", func(t *testing.T) {
		rs := ratingsOf(domain.InattentionCatalog(), 2)
		rs[domain.Forgetful] = 9

		input := domain.DiagnosticInput{
			Age:                  6,
			InattentionRatings:   rs,
			HyperactivityRatings: ratingsOf(domain.HyperactivityCatalog(), 0),
			Additional:           domain.AdditionalCriteria{AcademicImpact: domain.IMPACT_NONE, SocialImpact: domain.IMPACT_NONE},
		}

		_, err := engine.Evaluate(ctx, input)
		var invalidErr *domain.InvalidRatingError
		require.ErrorAs(t, err, &invalidErr)
	})

	t.Run("Rescoring the result detail is idempotent", func(t *testing.T) {
		input := domain.DiagnosticInput{
			Age:                  10,
			InattentionRatings:   ratingsOf(domain.InattentionCatalog(), 3),
			HyperactivityRatings: ratingsOf(domain.HyperactivityCatalog(), 1),
			Additional: domain.AdditionalCriteria{
				MonthsPresent:  7,
				SettingsCount:  2,
				AcademicImpact: domain.IMPACT_MILD,
				SocialImpact:   domain.IMPACT_MILD,
			},
		}

		result, err := engine.Evaluate(ctx, input)
		require.NoError(t, err)

		rescored, err := engine.CountHighRatings(result.DetailedInattention, domain.InattentionCatalog())
		require.NoError(t, err)
		assert.Equal(t, result.InattentionSymptoms, rescored.Count)
		assert.Equal(t, result.InattentionPercentage, rescored.Percentage)

		rescored, err = engine.CountHighRatings(result.DetailedHyperactivity, domain.HyperactivityCatalog())
		require.NoError(t, err)
		assert.Equal(t, result.HyperactivitySymptoms, rescored.Count)
		assert.Equal(t, result.HyperactivityPercentage, rescored.Percentage)
	})
}
