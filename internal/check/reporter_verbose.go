package check

import (
	"fmt"
	"io"
	"strings"
)

// VerboseReporter prints run statistics.
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter.
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{w: w, useColors: useColors}
}

// PrintStatistics writes the counters of a run.
func (r *VerboseReporter) PrintStatistics(result *Result) {
	errs, warnings := result.Counts()

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, paint(r.useColors, accentStyle, "Variant Check Statistics"))
	fmt.Fprintln(r.w, "------------------------")

	fmt.Fprintf(r.w, "Schemas Checked:   %d\n", result.SchemasChecked)
	fmt.Fprintf(r.w, "Fragments:         %d (%d clean)\n", result.FragmentsTotal, result.FragmentsClean)
	fmt.Fprintf(r.w, "Source Files:      %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Class Literals:    %d\n", result.LiteralsChecked)
	fmt.Fprintf(r.w, "Errors:            %d\n", errs)
	fmt.Fprintf(r.w, "Warnings:          %d\n", warnings)
}

// PrintCleanliness shows the share of fragments without dead classes.
func (r *VerboseReporter) PrintCleanliness(result *Result) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, paint(r.useColors, accentStyle, "Clean Fragments"))
	fmt.Fprintln(r.w, "---------------")
	printProgressBar(r.w, result.CleanPercentage())
}

// PrintVerdict writes one line saying whether the run passes.
func (r *VerboseReporter) PrintVerdict(result *Result, strict bool) {
	fmt.Fprintln(r.w, "")
	if result.Failed(strict) {
		fmt.Fprintln(r.w, paint(r.useColors, failStyle, "✗ check failed"))
		return
	}
	fmt.Fprintln(r.w, paint(r.useColors, passStyle, "✓ check passed"))
}

func printProgressBar(w io.Writer, percentage float64) {
	const barWidth = 20
	filled := int(percentage / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	fmt.Fprintf(w, "[%s%s] %.1f%%\n",
		strings.Repeat("█", filled),
		strings.Repeat("░", barWidth-filled),
		percentage)
}
