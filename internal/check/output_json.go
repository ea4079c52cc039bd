package check

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the structured export.
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary holds the counters.
type JSONSummary struct {
	TotalIssues     int     `json:"total_issues"`
	Errors          int     `json:"errors"`
	Warnings        int     `json:"warnings"`
	Truncated       int     `json:"truncated"`
	SchemasChecked  int     `json:"schemas_checked"`
	FilesScanned    int     `json:"files_scanned"`
	LiteralsChecked int     `json:"literals_checked"`
	CleanPercentage float64 `json:"clean_percentage"`
}

// JSONIssue is one exported issue.
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// now is replaced in tests.
var now = time.Now

// WriteJSON writes result as indented JSON.
func WriteJSON(w io.Writer, result *Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result))
}

func buildJSONOutput(result *Result) JSONOutput {
	errs, warnings := result.Counts()

	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:     len(result.Issues),
			Errors:          errs,
			Warnings:        warnings,
			Truncated:       result.TruncatedCount,
			SchemasChecked:  result.SchemasChecked,
			FilesScanned:    result.FilesScanned,
			LiteralsChecked: result.LiteralsChecked,
			CleanPercentage: result.CleanPercentage(),
		},
		Issues: issues,
	}
}
