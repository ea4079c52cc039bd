package check

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  <div class=\"btn\">",
			column:     15,
			want:       "              ^",
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\t<button class=\"icon\">",
			column:     17,
			want:       "\t\t              ^",
		},
		{
			name:       "start of line",
			sourceLine: "base: \"flex\"",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, reporter.buildCaretIndicator(tt.sourceLine, tt.column))
		})
	}
}

func TestPrintIssues(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	reporter := NewReporter(&buf, ReportConfig{PrintIssuedLines: true, PrintLinterName: true})
	reporter.PrintIssues([]Issue{
		{
			FromLinter:  LinterOverride,
			Text:        `class "p-2" is overridden by "p-4"`,
			Severity:    SeverityWarning,
			SourceLines: []string{`<div class="p-2 p-4">`},
			Pos:         IssuePos{Filename: "page.templ", Line: 3, Column: 13},
		},
	})

	want := "page.templ:3:13: class \"p-2\" is overridden by \"p-4\" (override)\n" +
		"\t<div class=\"p-2 p-4\">\n" +
		"\t            ^\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintSummary(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name   string
		result *Result
		want   string
	}{
		{
			name:   "clean",
			result: &Result{},
			want:   "\n0 issues:\n",
		},
		{
			name: "errors and warnings",
			result: &Result{Issues: []Issue{
				{FromLinter: LinterSchema, Severity: SeverityError},
				{FromLinter: LinterDeadCode, Severity: SeverityWarning},
				{FromLinter: LinterDeadCode, Severity: SeverityWarning},
			}},
			want: "\n3 issues (1 error, 2 warnings):\n" +
				"* deadclass: 2\n" +
				"* schema: 1\n" +
				"\nHint: Run with --output-format full to see statistics\n",
		},
		{
			name: "truncated",
			result: &Result{
				Issues:         []Issue{{FromLinter: LinterOverride, Severity: SeverityWarning}},
				TruncatedCount: 4,
			},
			want: "\n1 issue (4 issues truncated):\n" +
				"* override: 1\n" +
				"\nHint: Run with --output-format full to see statistics\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewReporter(&buf, ReportConfig{}).PrintSummary(tt.result)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintProgressBar(t *testing.T) {
	var buf bytes.Buffer
	printProgressBar(&buf, 50)
	assert.Equal(t, "[██████████░░░░░░░░░░] 50.0%\n", buf.String())
}

func TestPaint(t *testing.T) {
	assert.Equal(t, "file.yaml:2:3:", paint(false, accentStyle, "file.yaml:2:3:"))
	assert.Contains(t, paint(true, failStyle, "✗ check failed"), "✗ check failed")
}
