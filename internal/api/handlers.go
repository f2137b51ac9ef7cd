package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dsm5-adhd-screener/internal/domain"
)

// DiagnosticRequest is the JSON body accepted by POST /api/v1/diagnose.
// Age is a pointer so that a missing field is distinguishable from zero.
type DiagnosticRequest struct {
	Age                  *float64                  `json:"age" binding:"required"`
	InattentionRatings   map[string]int            `json:"inattention_ratings" binding:"required"`
	HyperactivityRatings map[string]int            `json:"hyperactivity_ratings" binding:"required"`
	AdditionalCriteria   AdditionalCriteriaRequest `json:"additional_criteria" binding:"required"`
}

// AdditionalCriteriaRequest mirrors domain.AdditionalCriteria at the wire
// boundary with enumerated severity strings.
type AdditionalCriteriaRequest struct {
	MonthsPresent          int    `json:"months_present" binding:"min=0"`
	SettingsCount          int    `json:"settings_count" binding:"min=0"`
	AcademicImpact         string `json:"academic_impact" binding:"required"`
	SocialImpact           string `json:"social_impact" binding:"required"`
	ImpairmentPresent      bool   `json:"impairment_present"`
	OtherConditionsPresent bool   `json:"other_conditions_present"`
}

// toDomain converts the wire request into the engine's input record.
func (r *DiagnosticRequest) toDomain() domain.DiagnosticInput {
	return domain.DiagnosticInput{
		Age:                  *r.Age,
		InattentionRatings:   toRatingSet(r.InattentionRatings),
		HyperactivityRatings: toRatingSet(r.HyperactivityRatings),
		Additional: domain.AdditionalCriteria{
			MonthsPresent:          r.AdditionalCriteria.MonthsPresent,
			SettingsCount:          r.AdditionalCriteria.SettingsCount,
			AcademicImpact:         domain.ImpactLevel(r.AdditionalCriteria.AcademicImpact),
			SocialImpact:           domain.ImpactLevel(r.AdditionalCriteria.SocialImpact),
			ImpairmentPresent:      r.AdditionalCriteria.ImpairmentPresent,
			OtherConditionsPresent: r.AdditionalCriteria.OtherConditionsPresent,
		},
	}
}

func toRatingSet(m map[string]int) domain.RatingSet {
	rs := make(domain.RatingSet, len(m))
	for k, v := range m {
		rs[domain.SymptomKey(k)] = v
	}
	return rs
}

// CriteriaResponse is the payload of GET /api/v1/criteria. The catalogs are
// returned as ordered arrays to preserve the published criterion order.
type CriteriaResponse struct {
	Inattention   []domain.Criterion `json:"inattention"`
	Hyperactivity []domain.Criterion `json:"hyperactivity"`
}

// handleGetCriteria returns the fixed criterion catalogs
func (s *Server) handleGetCriteria(c *gin.Context) {
	c.JSON(http.StatusOK, CriteriaResponse{
		Inattention:   domain.InattentionCatalog().Entries(),
		Hyperactivity: domain.HyperactivityCatalog().Entries(),
	})
}

// handleDiagnose runs a screening evaluation for a submitted input record
func (s *Server) handleDiagnose(c *gin.Context) {
	requestID := c.GetString("correlation_id")

	var req DiagnosticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.WithError(err).WithField("correlation_id", requestID).Warn("Rejected malformed diagnose request")
		c.JSON(http.StatusBadRequest, domain.NewAPIError(
			domain.ErrInvalidInput,
			"Malformed diagnostic request",
			err.Error(),
			requestID,
		))
		return
	}

	result, err := s.engine.Evaluate(c.Request.Context(), req.toDomain())
	if err != nil {
		s.writeEvaluationError(c, requestID, err)
		return
	}

	s.logger.WithFields(logrus.Fields{
		"correlation_id": requestID,
		"eligible":       result.Eligible,
		"meets_criteria": result.MeetsCriteria,
	}).Info("Diagnose request completed")

	c.JSON(http.StatusOK, result)
}

// writeEvaluationError maps engine validation failures to client errors and
// everything else to a server error.
func (s *Server) writeEvaluationError(c *gin.Context, requestID string, err error) {
	var invalidRating *domain.InvalidRatingError
	var incomplete *domain.IncompleteInputError
	var malformed *domain.MalformedInputError

	switch {
	case errors.As(err, &invalidRating), errors.As(err, &incomplete), errors.As(err, &malformed):
		s.logger.WithError(err).WithField("correlation_id", requestID).Warn("Rejected invalid diagnostic input")
		c.JSON(http.StatusBadRequest, domain.NewAPIError(
			domain.ErrValidation,
			"Invalid diagnostic input",
			err.Error(),
			requestID,
		))
	default:
		s.logger.WithError(err).WithField("correlation_id", requestID).Error("Screening evaluation failed")
		c.JSON(http.StatusInternalServerError, domain.NewAPIError(
			domain.ErrInternalServer,
			"Screening evaluation failed",
			err.Error(),
			requestID,
		))
	}
}
