// Package interview implements the interactive console adapter around the
// scoring engine: a fixed question sequence with retry-until-valid prompts
// and a human-readable report.
package interview

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dsm5-adhd-screener/internal/domain"
	"github.com/dsm5-adhd-screener/internal/service"
)

// Interviewer drives the question-and-answer screening session.
type Interviewer struct {
	in     *bufio.Reader
	out    io.Writer
	engine *service.ScoringEngine
	logger *logrus.Logger
}

// NewInterviewer creates a new interviewer reading answers from in and
// writing prompts and the report to out.
func NewInterviewer(in io.Reader, out io.Writer, engine *service.ScoringEngine, logger *logrus.Logger) *Interviewer {
	return &Interviewer{
		in:     bufio.NewReader(in),
		out:    out,
		engine: engine,
		logger: logger,
	}
}

// Run executes the complete screening session. An out-of-range age ends the
// session with an ineligibility message; input validation failures re-prompt
// indefinitely. The only error conditions are a closed input stream and
// engine failures.
func (iv *Interviewer) Run(ctx context.Context) error {
	age, err := iv.promptAge()
	if err != nil {
		return err
	}

	if ageErr := iv.engine.ValidateAge(age); ageErr != nil {
		fmt.Fprintf(iv.out, "\nDiagnostic Result: %s\n", ageErr.Reason)
		iv.logger.WithFields(logrus.Fields{"age": age, "reason": ageErr.Reason}).Info("Session ended: age ineligible")
		return nil
	}

	inattention, err := iv.promptRatings(domain.InattentionCatalog(), "inattention")
	if err != nil {
		return err
	}

	hyperactivity, err := iv.promptRatings(domain.HyperactivityCatalog(), "hyperactivity/impulsivity")
	if err != nil {
		return err
	}

	additional, err := iv.promptAdditionalCriteria()
	if err != nil {
		return err
	}

	input := domain.DiagnosticInput{
		Age:                  age,
		InattentionRatings:   inattention,
		HyperactivityRatings: hyperactivity,
		Additional:           additional,
	}

	result, err := iv.engine.Evaluate(ctx, input)
	if err != nil {
		return fmt.Errorf("screening evaluation failed: %w", err)
	}

	iv.renderReport(result)
	return nil
}

// promptAge reads the patient age, retrying on non-numeric input.
func (iv *Interviewer) promptAge() (float64, error) {
	for {
		line, err := iv.readLine("Enter patient's age when you notice the symptoms: ")
		if err != nil {
			return 0, err
		}
		age, parseErr := strconv.ParseFloat(line, 64)
		if parseErr != nil {
			fmt.Fprintln(iv.out, "Please enter a valid age")
			continue
		}
		return age, nil
	}
}

// promptRatings collects a 0-4 rating for every criterion in the catalog,
// in catalog order.
func (iv *Interviewer) promptRatings(catalog domain.Catalog, domainName string) (domain.RatingSet, error) {
	fmt.Fprintf(iv.out, "\nEvaluating %s symptoms:\n", domainName)
	fmt.Fprintln(iv.out, "Rate each symptom: 0=Never, 1=Rarely, 2=Sometimes, 3=Often, 4=Very Often")

	ratings := make(domain.RatingSet, catalog.Len())
	for _, criterion := range catalog.Entries() {
		rating, err := iv.promptRating(criterion.Description)
		if err != nil {
			return nil, err
		}
		ratings[criterion.Key] = rating
	}

	return ratings, nil
}

func (iv *Interviewer) promptRating(description string) (int, error) {
	for {
		line, err := iv.readLine(fmt.Sprintf("%s (0-4): ", description))
		if err != nil {
			return 0, err
		}
		rating, parseErr := strconv.Atoi(line)
		if parseErr != nil {
			fmt.Fprintln(iv.out, "Please enter a valid number")
			continue
		}
		if rating < domain.MinRating || rating > domain.MaxRating {
			fmt.Fprintln(iv.out, "Please enter a value between 0 and 4")
			continue
		}
		return rating, nil
	}
}

// promptAdditionalCriteria collects duration, settings, impact levels, and
// the two yes/no questions.
func (iv *Interviewer) promptAdditionalCriteria() (domain.AdditionalCriteria, error) {
	var ac domain.AdditionalCriteria
	var err error

	ac.MonthsPresent, err = iv.promptNonNegativeInt("\nHow many months have symptoms been present? ", "Please enter a valid number of months")
	if err != nil {
		return ac, err
	}

	ac.SettingsCount, err = iv.promptNonNegativeInt("In how many settings are symptoms present? (e.g., home=1, school=1): ", "Please enter a valid number")
	if err != nil {
		return ac, err
	}

	ac.AcademicImpact, err = iv.promptImpact("How much do symptoms affect academic performance? (none/mild/moderate/severe): ")
	if err != nil {
		return ac, err
	}

	ac.SocialImpact, err = iv.promptImpact("How much do symptoms affect social interactions? (none/mild/moderate/severe): ")
	if err != nil {
		return ac, err
	}

	ac.ImpairmentPresent, err = iv.promptYesNo("Is there clear evidence of functional impairment? (yes/no): ")
	if err != nil {
		return ac, err
	}

	ac.OtherConditionsPresent, err = iv.promptYesNo("Are symptoms better explained by another condition? (yes/no): ")
	if err != nil {
		return ac, err
	}

	return ac, nil
}

func (iv *Interviewer) promptNonNegativeInt(prompt, retryMsg string) (int, error) {
	for {
		line, err := iv.readLine(prompt)
		if err != nil {
			return 0, err
		}
		value, parseErr := strconv.Atoi(line)
		if parseErr != nil || value < 0 {
			fmt.Fprintln(iv.out, retryMsg)
			continue
		}
		return value, nil
	}
}

func (iv *Interviewer) promptImpact(prompt string) (domain.ImpactLevel, error) {
	for {
		line, err := iv.readLine(prompt)
		if err != nil {
			return "", err
		}
		level := domain.ImpactLevel(strings.ToLower(line))
		if !level.IsValid() {
			fmt.Fprintln(iv.out, "Please enter one of: none, mild, moderate, severe")
			continue
		}
		return level, nil
	}
}

func (iv *Interviewer) promptYesNo(prompt string) (bool, error) {
	for {
		line, err := iv.readLine(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		default:
			fmt.Fprintln(iv.out, "Please answer yes or no")
		}
	}
}

// readLine prints the prompt and reads one trimmed answer line. A closed
// input stream aborts the session instead of looping forever.
func (iv *Interviewer) readLine(prompt string) (string, error) {
	fmt.Fprint(iv.out, prompt)
	line, err := iv.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("input stream closed: %w", err)
	}
	return strings.TrimSpace(line), nil
}
