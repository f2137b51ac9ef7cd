package interview

import (
	"fmt"

	"github.com/dsm5-adhd-screener/internal/domain"
)

// renderReport writes the human-readable screening report.
func (iv *Interviewer) renderReport(result *domain.DiagnosticResult) {
	if !result.Eligible {
		fmt.Fprintf(iv.out, "\nDiagnostic Result: %s\n", result.Reason)
		return
	}

	fmt.Fprintln(iv.out, "\n=== ADHD Diagnostic Report ===")
	fmt.Fprintf(iv.out, "\nAge: %g\n", result.Age)
	fmt.Fprintf(iv.out, "Inattention Symptoms: %d/9\n", result.InattentionSymptoms)
	fmt.Fprintf(iv.out, "Inattention Symptom Percentage: %.2f%%\n", result.InattentionPercentage)
	fmt.Fprintf(iv.out, "Hyperactivity/Impulsivity Symptoms: %d/9\n", result.HyperactivitySymptoms)
	fmt.Fprintf(iv.out, "Hyperactivity Symptom Percentage: %.2f%%\n", result.HyperactivityPercentage)

	fmt.Fprintf(iv.out, "ADHD Probability: %.2f%%\n", result.Probability)
	fmt.Fprintf(iv.out, "Interpretation: %s ADHD Likelihood\n", result.Likelihood)

	fmt.Fprintf(iv.out, "Presentation: %s\n", result.Presentation)
	fmt.Fprintf(iv.out, "Severity: %s\n", result.Severity)

	fmt.Fprintln(iv.out, "\nAdditional Criteria Met:")
	fmt.Fprintf(iv.out, "- Duration (>= 6 months): %s\n", yesNo(result.CriteriaMet.Duration))
	fmt.Fprintf(iv.out, "- Settings (>= 2): %s\n", yesNo(result.CriteriaMet.Settings))
	fmt.Fprintf(iv.out, "- Functional Impairment: %s\n", yesNo(result.CriteriaMet.Impairment))
	fmt.Fprintf(iv.out, "- Better Explained By Other Condition: %s\n", yesNo(result.CriteriaMet.OtherConditions))

	fmt.Fprintln(iv.out, "\nOverall Diagnosis:")
	if result.MeetsCriteria {
		fmt.Fprintln(iv.out, "Meets DSM-5 criteria for ADHD")
	} else {
		fmt.Fprintln(iv.out, "Does not meet full DSM-5 criteria for ADHD")
	}

	fmt.Fprintln(iv.out, "\nIMPORTANT NOTE:")
	fmt.Fprintln(iv.out, "This is a screening tool based on DSM-5 criteria.")
	fmt.Fprintln(iv.out, "The probability figure is a heuristic score, not a calibrated clinical probability.")
	fmt.Fprintln(iv.out, "Final diagnosis must be made by a qualified healthcare professional.")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
