package check

import (
	"fmt"
	"io"
)

// OutputFormat selects how a result is written.
type OutputFormat string

// Output formats.
const (
	OutputIssues  OutputFormat = "issues"
	OutputSummary OutputFormat = "summary"
	OutputFull    OutputFormat = "full"
	OutputJSON    OutputFormat = "json"
)

// DetermineOutputFormat maps a flag value to a format. Unknown values fall
// back to issues.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch OutputFormat(formatFlag) {
	case OutputSummary:
		return OutputSummary
	case OutputFull:
		return OutputFull
	case OutputJSON:
		return OutputJSON
	default:
		return OutputIssues
	}
}

// WriteOutput writes result in format.
func WriteOutput(w io.Writer, result *Result, format OutputFormat, config ReportConfig, strict bool) error {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}

	case OutputSummary:
		verbose := NewVerboseReporter(w, shouldUseColors(config))
		verbose.PrintStatistics(result)
		verbose.PrintCleanliness(result)
		verbose.PrintVerdict(result, strict)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result)

		verbose := NewVerboseReporter(w, reporter.UseColors())
		verbose.PrintStatistics(result)
		verbose.PrintCleanliness(result)
		verbose.PrintVerdict(result, strict)

	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result)
	}
	return nil
}
