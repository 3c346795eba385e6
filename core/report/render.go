package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	headerColor  = color.New(color.FgHiMagenta, color.Bold)
	sectionColor = color.New(color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	failColor    = color.New(color.FgRed)
	passColor    = color.New(color.FgGreen, color.Bold)
	failBold     = color.New(color.FgRed, color.Bold)
	detailColor  = color.New(color.Bold)
)

const rule = "================================================================================"

// Render writes the full human-readable report: successes, then
// warnings, then errors, then the pass/fail banner. It does not mutate
// the report; rendering twice prints identical output.
func (r *Report) Render(w io.Writer) {
	successes := r.Successes()
	warnings := r.Warnings()
	errors := r.Errors()

	fmt.Fprintln(w, "\n"+rule)
	headerColor.Fprintln(w, "BRICK METADATA VALIDATION REPORT")
	fmt.Fprintf(w, "%s\n\n", rule)

	if len(successes) > 0 {
		sectionColor.Fprintln(w, "Successful Checks:")
		for _, e := range successes {
			fmt.Fprintf(w, "  %s %s\n", successColor.Sprint("✓"), e.Message)
		}
		fmt.Fprintln(w)
	}

	if len(warnings) > 0 {
		sectionColor.Fprintln(w, "Warnings:")
		for _, e := range warnings {
			fmt.Fprintf(w, "  %s %s\n", warnColor.Sprint("⚠ WARNING:"), indentContinuation(e.Message))
		}
		fmt.Fprintln(w)
	}

	if len(errors) > 0 {
		sectionColor.Fprintln(w, "Errors:")
		for _, e := range errors {
			fmt.Fprintf(w, "  %s %s\n", failColor.Sprint("✗ ERROR:"), indentContinuation(e.Message))
			if e.Expected != "" && e.Actual != "" {
				fmt.Fprintf(w, "    %s %s\n", detailColor.Sprint("Expected:"), indentContinuation(e.Expected))
				fmt.Fprintf(w, "    %s %s\n", detailColor.Sprint("Actual:"), indentContinuation(e.Actual))
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, rule)
	if len(errors) > 0 {
		failBold.Fprintln(w, "VALIDATION FAILED")
		failColor.Fprintln(w, "Please fix the errors above and try again.")
	} else {
		passColor.Fprintln(w, "VALIDATION PASSED")
		successColor.Fprintln(w, "All metadata checks completed successfully!")
	}
	fmt.Fprintf(w, "%s\n\n", rule)
}

// indentContinuation keeps multi-line messages aligned under their
// severity marker.
func indentContinuation(s string) string {
	return strings.ReplaceAll(s, "\n", "\n    ")
}
