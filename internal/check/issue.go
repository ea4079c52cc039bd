package check

// Issue is one finding in golangci-lint format.
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "schema", "deadclass", "override"
	Text        string   `json:"Text"`        // `class "px-2" is overridden by "px-4"`
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of the file at Pos
	Pos         IssuePos `json:"Pos"`
}

// IssuePos is the file location of an issue.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based
}

// Severities. Info issues never fail a run.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Linter names.
const (
	LinterSchema   = "schema"
	LinterDeadCode = "deadclass"
	LinterOverride = "override"
)

// Issue messages.
const (
	IssueOverridden  = "class %q is overridden by %q"
	IssueDuplicate   = "duplicate class %q"
	IssueEmptyOption = "option %q of group %q adds no classes"
)
