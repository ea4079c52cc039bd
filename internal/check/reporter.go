package check

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal styles by role. Lipgloss degrades colors to what the terminal
// supports.
var (
	accentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	caretStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	passStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func paint(colors bool, style lipgloss.Style, text string) string {
	if !colors {
		return text
	}
	return style.Render(text)
}

// ReportConfig controls terminal output.
type ReportConfig struct {
	UseColors        bool
	PrintIssuedLines bool
	PrintLinterName  bool
}

// Reporter prints issues in golangci-lint format.
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, config ReportConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(config),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// shouldUseColors honors the flag, then FORCE_COLOR and GitHub Actions,
// then whether stdout is a terminal.
func shouldUseColors(config ReportConfig) bool {
	if config.UseColors {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// PrintIssues writes each issue, sorted by position.
func (r *Reporter) PrintIssues(issues []Issue) {
	sorted := append([]Issue(nil), issues...)
	sortIssues(sorted)
	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue writes "file:line:col: message (linter)" and the source line
// with a caret under the column.
func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		paint(r.useColors, accentStyle, location),
		issue.Text,
		paint(r.useColors, mutedStyle, linterSuffix))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := r.buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", paint(r.useColors, caretStyle, caret))
	}
}

// buildCaretIndicator pads to column, copying tabs from the source line
// so the caret lines up.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}
	return padding.String() + "^"
}

// PrintSummary writes the issue counts by severity and linter.
func (r *Reporter) PrintSummary(result *Result) {
	total := len(result.Issues)
	truncated := result.TruncatedCount
	errs, warnings := result.Counts()

	fmt.Fprintln(r.w, "")

	switch {
	case errs > 0 && warnings > 0 && truncated > 0:
		fmt.Fprintf(r.w, "%s (%s, %s; %s truncated):\n",
			pluralizeCount(total, "issue", "issues"),
			pluralizeCount(errs, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"),
			pluralizeCount(truncated, "issue", "issues"))
	case errs > 0 && warnings > 0:
		fmt.Fprintf(r.w, "%s (%s, %s):\n",
			pluralizeCount(total, "issue", "issues"),
			pluralizeCount(errs, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"))
	case truncated > 0:
		fmt.Fprintf(r.w, "%s (%s truncated):\n",
			pluralizeCount(total, "issue", "issues"),
			pluralizeCount(truncated, "issue", "issues"))
	default:
		fmt.Fprintf(r.w, "%s:\n", pluralizeCount(total, "issue", "issues"))
	}

	linterCounts := make(map[string]int)
	for _, issue := range result.Issues {
		linterCounts[issue.FromLinter]++
	}
	linters := make([]string, 0, len(linterCounts))
	for linter := range linterCounts {
		linters = append(linters, linter)
	}
	sort.Strings(linters)
	for _, linter := range linters {
		fmt.Fprintf(r.w, "* %s: %d\n", linter, linterCounts[linter])
	}

	if total > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, paint(r.useColors, mutedStyle, "Hint: Run with --output-format full to see statistics"))
	}
}

func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors reports whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}
