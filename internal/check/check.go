// Package check lints variant schemas and inline class strings.
package check

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yacobolo/cssvariant"
	"github.com/yacobolo/cssvariant/internal/scan"
	"github.com/yacobolo/cssvariant/internal/schemafile"
)

// Config controls a run.
type Config struct {
	Classifier         *cssvariant.Classifier
	Strict             bool // warnings fail the run
	MaxIssuesPerLinter int  // 0 means unlimited
	MaxSameIssues      int  // 0 means unlimited
	Logger             zerolog.Logger

	// LoadError holds schema files that failed to load. Each failure is
	// reported as a schema issue.
	LoadError error
}

// Result collects the issues and counters of a run.
type Result struct {
	Issues          []Issue
	TruncatedCount  int
	SchemasChecked  int
	FragmentsClean  int
	FragmentsTotal  int
	FilesScanned    int
	LiteralsChecked int
}

// Counts returns the number of errors and warnings.
func (r *Result) Counts() (errs, warnings int) {
	for _, issue := range r.Issues {
		switch issue.Severity {
		case SeverityError:
			errs++
		case SeverityWarning:
			warnings++
		}
	}
	return errs, warnings
}

// Failed reports whether the run should exit non-zero.
func (r *Result) Failed(strict bool) bool {
	errs, warnings := r.Counts()
	return errs > 0 || (strict && warnings > 0)
}

// CleanPercentage is the share of fragments without dead classes.
func (r *Result) CleanPercentage() float64 {
	if r.FragmentsTotal == 0 {
		return 100
	}
	return float64(r.FragmentsClean) / float64(r.FragmentsTotal) * 100
}

// Run checks every definition and literal.
func Run(defs []*schemafile.Definition, literals []scan.Literal, cfg Config) *Result {
	cl := cfg.Classifier
	if cl == nil {
		cl = cssvariant.DefaultClassifier()
	}

	r := &Result{}
	c := &checker{classifier: cl, sources: newSourceCache(), result: r}

	if cfg.LoadError != nil {
		for _, e := range flatten(cfg.LoadError) {
			c.add(Issue{
				FromLinter: LinterSchema,
				Text:       e.Msg,
				Severity:   SeverityError,
				Pos:        issuePos(e.File, e.Pos),
			})
		}
	}

	for _, def := range defs {
		c.definition(def)
		r.SchemasChecked++
		cfg.Logger.Debug().Str("schema", def.Name).Str("file", def.File).Msg("checked schema")
	}

	files := make(map[string]bool)
	for _, lit := range literals {
		files[lit.File] = true
		c.literal(lit)
		r.LiteralsChecked++
	}
	r.FilesScanned = len(files)

	sortIssues(r.Issues)
	r.Issues, r.TruncatedCount = limitIssues(r.Issues, cfg.MaxIssuesPerLinter, cfg.MaxSameIssues)
	return r
}

type checker struct {
	classifier *cssvariant.Classifier
	sources    *sourceCache
	result     *Result
}

func (c *checker) add(issue Issue) {
	if issue.Pos.Line > 0 {
		if line, ok := c.sources.line(issue.Pos.Filename, issue.Pos.Line); ok {
			issue.SourceLines = []string{line}
		}
	}
	c.result.Issues = append(c.result.Issues, issue)
}

func (c *checker) definition(def *schemafile.Definition) {
	if err := schemafile.Validate(def); err != nil {
		for _, e := range flatten(err) {
			c.add(Issue{
				FromLinter: LinterSchema,
				Text:       e.Msg,
				Severity:   SeverityError,
				Pos:        issuePos(def.File, e.Pos),
			})
		}
		return
	}

	if _, err := cssvariant.NewSchema(def.Options(c.classifier)...); err != nil {
		var schemaErr *cssvariant.SchemaError
		if errors.As(err, &schemaErr) {
			for _, si := range schemaErr.Issues {
				c.add(Issue{
					FromLinter: LinterSchema,
					Text:       si.String(),
					Severity:   SeverityError,
					Pos:        issuePos(def.File, def.PositionOf(si)),
				})
			}
		}
	}

	c.fragment(def.File, def.Base)
	for _, g := range def.Groups {
		empty := 0
		for _, o := range g.Options {
			if o.Fragment.Empty() {
				empty++
			}
		}
		for _, o := range g.Options {
			c.fragment(def.File, o.Fragment)
			// groups of empty options only mirror into data attributes
			if !g.Flag && o.Fragment.Empty() && empty < len(g.Options) {
				c.add(Issue{
					FromLinter: LinterDeadCode,
					Text:       fmt.Sprintf(IssueEmptyOption, o.Name, g.Name),
					Severity:   SeverityInfo,
					Pos:        issuePos(def.File, o.Pos),
				})
			}
		}
	}
	for _, comp := range def.Compounds {
		c.fragment(def.File, comp.Class)
	}
}

func (c *checker) fragment(file string, f schemafile.Fragment) {
	if f.Empty() {
		return
	}
	c.result.FragmentsTotal++

	dead := DeadClasses(c.classifier.Parse(f.Classes))
	if len(dead) == 0 {
		c.result.FragmentsClean++
		return
	}
	for _, d := range dead {
		pos := issuePos(file, f.Pos)
		if line, ok := c.sources.line(file, pos.Line); ok {
			pos.Column = refineColumn(line, pos.Column, d.Dead.Raw())
		}
		c.add(Issue{
			FromLinter: LinterDeadCode,
			Text:       d.Message(),
			Severity:   SeverityWarning,
			Pos:        pos,
		})
	}
}

func (c *checker) literal(lit scan.Literal) {
	for _, d := range DeadClasses(c.classifier.Parse(lit.Value)) {
		c.result.Issues = append(c.result.Issues, Issue{
			FromLinter:  LinterOverride,
			Text:        d.Message(),
			Severity:    SeverityWarning,
			SourceLines: []string{lit.Text},
			Pos: IssuePos{
				Filename: scan.RelativePath(lit.File),
				Line:     lit.Line,
				Column:   refineColumn(lit.Text, lit.Column, d.Dead.Raw()),
			},
		})
	}
}

// Dead is a token that merging drops, with the token that wins its key.
type Dead struct {
	Dead cssvariant.Token
	By   cssvariant.Token
}

// Message renders the issue text.
func (d Dead) Message() string {
	if d.Dead.Raw() == d.By.Raw() {
		return fmt.Sprintf(IssueDuplicate, d.Dead.Raw())
	}
	return fmt.Sprintf(IssueOverridden, d.Dead.Raw(), d.By.Raw())
}

// DeadClasses lists the tokens of seq that merging drops, in order.
func DeadClasses(seq cssvariant.Sequence) []Dead {
	merged := cssvariant.MergeSequence(seq)
	if len(merged) == len(seq) {
		return nil
	}

	winners := make(map[string]cssvariant.Token, len(merged))
	for _, tok := range merged {
		winners[tok.Key()] = tok
	}

	var dead []Dead
	kept := 0
	for _, tok := range seq {
		// merged is an order-preserving subsequence of seq
		if kept < len(merged) && sameToken(merged[kept], tok) {
			kept++
			continue
		}
		dead = append(dead, Dead{Dead: tok, By: winners[tok.Key()]})
	}
	return dead
}

func sameToken(a, b cssvariant.Token) bool {
	return a.Raw() == b.Raw() && a.Key() == b.Key()
}

// refineColumn moves col to the first occurrence of raw at or after it.
func refineColumn(line string, col int, raw string) int {
	start := col - 1
	if start < 0 || start > len(line) {
		start = 0
	}
	idx := indexField(line[start:], raw)
	if idx < 0 {
		return col
	}
	return start + idx + 1
}

// indexField finds raw as a whole class, not as part of a longer one.
func indexField(s, raw string) int {
	offset := 0
	for {
		i := strings.Index(s[offset:], raw)
		if i < 0 {
			return -1
		}
		at := offset + i
		end := at + len(raw)
		if (at == 0 || isClassBoundary(s[at-1])) && (end == len(s) || isClassBoundary(s[end])) {
			return at
		}
		offset = at + 1
	}
}

func isClassBoundary(c byte) bool {
	switch c {
	case ' ', '\t', '"', '\'', '[', ',', '{', '`':
		return true
	}
	return false
}

func issuePos(file string, p schemafile.Position) IssuePos {
	return IssuePos{Filename: scan.RelativePath(file), Line: p.Line, Column: p.Column}
}

// flatten unpacks a joined error into its *schemafile.Error parts.
func flatten(err error) []*schemafile.Error {
	var out []*schemafile.Error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}
	var fe *schemafile.Error
	if errors.As(err, &fe) {
		return []*schemafile.Error{fe}
	}
	return []*schemafile.Error{{Msg: err.Error()}}
}

func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i].Pos, issues[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

// sourceCache reads each file at most once.
type sourceCache struct {
	files map[string][]string
}

func newSourceCache() *sourceCache {
	return &sourceCache{files: make(map[string][]string)}
}

func (s *sourceCache) line(file string, n int) (string, bool) {
	lines, ok := s.files[file]
	if !ok {
		// #nosec G304 - files come from the schema globs
		data, err := os.ReadFile(file)
		if err == nil {
			lines = strings.Split(string(data), "\n")
		}
		s.files[file] = lines
	}
	if n < 1 || n > len(lines) {
		return "", false
	}
	return strings.TrimRight(lines[n-1], "\r"), true
}
