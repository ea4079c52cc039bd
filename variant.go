package cssvariant

import (
	"fmt"
	"sort"
	"strings"
)

// Selection maps a variant group to a chosen option. It may be partial.
type Selection map[string]string

// Clone returns a copy of s. A nil selection clones to nil.
func (s Selection) Clone() Selection {
	if s == nil {
		return nil
	}
	out := make(Selection, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Equal reports whether both selections hold the same pairs.
func (s Selection) Equal(other Selection) bool {
	if len(s) != len(other) {
		return false
	}
	for k, v := range s {
		if ov, ok := other[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Bool renders a flag value for a Selection.
func Bool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// Options maps option names to fragments. A fragment is anything Parse
// accepts.
type Options map[string]any

// When is a compound rule predicate: every listed group must resolve to one
// of the listed options.
type When map[string][]string

// SchemaOption configures NewSchema.
type SchemaOption func(*schemaConfig)

type schemaConfig struct {
	name       string
	base       []any
	groups     []groupConfig
	defaults   map[string]string
	compounds  []compoundConfig
	classifier *Classifier
}

type groupConfig struct {
	name    string
	options Options
}

type compoundConfig struct {
	when     When
	fragment []any
}

// Named sets the schema name used in diagnostics and generated code.
func Named(name string) SchemaOption {
	return func(c *schemaConfig) { c.name = name }
}

// Base adds classes emitted before every group fragment.
func Base(fragment ...any) SchemaOption {
	return func(c *schemaConfig) { c.base = append(c.base, fragment...) }
}

// Group declares a variant group. Groups resolve in declaration order.
func Group(name string, options Options) SchemaOption {
	return func(c *schemaConfig) {
		c.groups = append(c.groups, groupConfig{name: name, options: options})
	}
}

// Flag declares a boolean group with options "true" and "false".
// It defaults to "false".
func Flag(name string, whenTrue ...any) SchemaOption {
	return func(c *schemaConfig) {
		c.groups = append(c.groups, groupConfig{
			name:    name,
			options: Options{"true": whenTrue, "false": nil},
		})
		if _, ok := c.defaults[name]; !ok {
			c.defaults[name] = "false"
		}
	}
}

// Default sets the default option of a group.
func Default(group, option string) SchemaOption {
	return func(c *schemaConfig) { c.defaults[group] = option }
}

// Compound appends a fragment applied when the resolved selection matches
// when. Rules apply in declaration order after all group fragments.
func Compound(when When, fragment ...any) SchemaOption {
	return func(c *schemaConfig) {
		c.compounds = append(c.compounds, compoundConfig{when: when, fragment: fragment})
	}
}

// WithClassifier parses the schema fragments and caller overrides with cl
// instead of the default classifier.
func WithClassifier(cl *Classifier) SchemaOption {
	return func(c *schemaConfig) {
		if cl != nil {
			c.classifier = cl
		}
	}
}

// Schema is an immutable variant schema.
type Schema struct {
	name       string
	base       Sequence
	groups     []variantGroup
	index      map[string]int
	defaults   Selection
	compounds  []compoundRule
	classifier *Classifier
}

type variantGroup struct {
	name      string
	options   map[string]Sequence
	optionIDs []string
}

type compoundRule struct {
	when     When
	fragment Sequence
}

// SchemaIssue is one construction defect. Compound is the 1-based number
// of the compound rule at fault, or 0.
type SchemaIssue struct {
	Group    string
	Option   string
	Compound int
	Message  string
}

func (i SchemaIssue) String() string {
	switch {
	case i.Group != "" && i.Option != "":
		return fmt.Sprintf("%s=%s: %s", i.Group, i.Option, i.Message)
	case i.Group != "":
		return fmt.Sprintf("%s: %s", i.Group, i.Message)
	default:
		return i.Message
	}
}

// SchemaError lists every defect found by NewSchema.
type SchemaError struct {
	Schema string
	Issues []SchemaIssue
}

func (e *SchemaError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	name := e.Schema
	if name == "" {
		name = "schema"
	}
	return fmt.Sprintf("invalid %s: %s", name, strings.Join(parts, "; "))
}

// NewSchema builds a schema. Every group needs a default, and defaults and
// compound predicates must name declared groups and options.
func NewSchema(opts ...SchemaOption) (*Schema, error) {
	cfg := &schemaConfig{defaults: make(map[string]string)}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.classifier == nil {
		cfg.classifier = DefaultClassifier()
	}

	var issues []SchemaIssue
	s := &Schema{
		name:       cfg.name,
		base:       cfg.classifier.Parse(cfg.base...),
		index:      make(map[string]int, len(cfg.groups)),
		defaults:   make(Selection, len(cfg.groups)),
		classifier: cfg.classifier,
	}

	for _, gc := range cfg.groups {
		if gc.name == "" {
			issues = append(issues, SchemaIssue{Message: "group name is empty"})
			continue
		}
		if _, dup := s.index[gc.name]; dup {
			issues = append(issues, SchemaIssue{Group: gc.name, Message: "group declared twice"})
			continue
		}
		if len(gc.options) == 0 {
			issues = append(issues, SchemaIssue{Group: gc.name, Message: "group has no options"})
			continue
		}

		g := variantGroup{
			name:      gc.name,
			options:   make(map[string]Sequence, len(gc.options)),
			optionIDs: make([]string, 0, len(gc.options)),
		}
		for option, fragment := range gc.options {
			if option == "" {
				issues = append(issues, SchemaIssue{Group: gc.name, Message: "option name is empty"})
				continue
			}
			g.options[option] = cfg.classifier.Parse(fragment)
			g.optionIDs = append(g.optionIDs, option)
		}
		sort.Strings(g.optionIDs)

		s.index[gc.name] = len(s.groups)
		s.groups = append(s.groups, g)
	}

	for _, g := range s.groups {
		def, ok := cfg.defaults[g.name]
		if !ok {
			issues = append(issues, SchemaIssue{Group: g.name, Message: "no default option"})
			continue
		}
		if _, ok := g.options[def]; !ok {
			issues = append(issues, SchemaIssue{Group: g.name, Option: def, Message: "default is not an option of the group"})
			continue
		}
		s.defaults[g.name] = def
	}
	for _, group := range sortedKeys(cfg.defaults) {
		if _, ok := s.index[group]; !ok {
			issues = append(issues, SchemaIssue{Group: group, Message: "default for undeclared group"})
		}
	}

	for n, cc := range cfg.compounds {
		for _, group := range sortedWhenKeys(cc.when) {
			gi, ok := s.index[group]
			if !ok {
				issues = append(issues, SchemaIssue{
					Group:    group,
					Compound: n + 1,
					Message:  fmt.Sprintf("compound rule %d names an undeclared group", n+1),
				})
				continue
			}
			options := cc.when[group]
			if len(options) == 0 {
				issues = append(issues, SchemaIssue{
					Group:    group,
					Compound: n + 1,
					Message:  fmt.Sprintf("compound rule %d lists no options", n+1),
				})
			}
			for _, option := range options {
				if _, ok := s.groups[gi].options[option]; !ok {
					issues = append(issues, SchemaIssue{
						Group:    group,
						Option:   option,
						Compound: n + 1,
						Message:  fmt.Sprintf("compound rule %d names an unknown option", n+1),
					})
				}
			}
		}
		s.compounds = append(s.compounds, compoundRule{
			when:     cloneWhen(cc.when),
			fragment: cfg.classifier.Parse(cc.fragment...),
		})
	}

	if len(issues) > 0 {
		return nil, &SchemaError{Schema: cfg.name, Issues: issues}
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on error. It simplifies
// package-level schema variables.
func MustSchema(opts ...SchemaOption) *Schema {
	s, err := NewSchema(opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schema name, possibly empty.
func (s *Schema) Name() string { return s.name }

// Classifier returns the classifier fragments and overrides are parsed with.
func (s *Schema) Classifier() *Classifier { return s.classifier }

// Groups returns the group names in declaration order.
func (s *Schema) Groups() []string {
	out := make([]string, len(s.groups))
	for i, g := range s.groups {
		out[i] = g.name
	}
	return out
}

// Options returns the sorted option names of group, or nil for an
// undeclared group.
func (s *Schema) Options(group string) []string {
	gi, ok := s.index[group]
	if !ok {
		return nil
	}
	return append([]string(nil), s.groups[gi].optionIDs...)
}

// Defaults returns a copy of the default selection.
func (s *Schema) Defaults() Selection {
	return s.defaults.Clone()
}

// Fragment returns the parsed fragment of one option.
func (s *Schema) Fragment(group, option string) (Sequence, bool) {
	gi, ok := s.index[group]
	if !ok {
		return nil, false
	}
	frag, ok := s.groups[gi].options[option]
	return frag, ok
}

// Resolved fills sel from the defaults. Values that are not options of
// their group fall back to the default. Keys outside the schema are dropped.
func (s *Schema) Resolved(sel Selection) Selection {
	out := make(Selection, len(s.groups))
	for _, g := range s.groups {
		def := s.defaults[g.name]
		v, ok := sel[g.name]
		if !ok || v == "" {
			out[g.name] = def
			continue
		}
		if _, valid := g.options[v]; !valid {
			logger().Debug().
				Str("schema", s.name).
				Str("group", g.name).
				Str("option", v).
				Str("default", def).
				Msg("unknown variant option, using default")
			assertf("schema %q: %q is not an option of group %q", s.name, v, g.name)
			out[g.name] = def
			continue
		}
		out[g.name] = v
	}
	return out
}

// Resolve returns the base fragment, then each group's fragment in
// declaration order, then the fragments of every matching compound rule.
// The result is not merged.
func (s *Schema) Resolve(sel Selection) Sequence {
	resolved := s.Resolved(sel)

	n := len(s.base)
	for _, g := range s.groups {
		n += len(g.options[resolved[g.name]])
	}
	out := make(Sequence, 0, n)
	out = append(out, s.base...)
	for _, g := range s.groups {
		out = append(out, g.options[resolved[g.name]]...)
	}
	for _, c := range s.compounds {
		if c.matches(resolved) {
			out = append(out, c.fragment...)
		}
	}
	return out
}

// Class resolves sel and merges the caller overrides on top.
func (s *Schema) Class(sel Selection, overrides ...any) string {
	return Merge(s.Resolve(sel), s.classifier.Parse(overrides...))
}

func (c compoundRule) matches(resolved Selection) bool {
	for group, options := range c.when {
		v := resolved[group]
		found := false
		for _, o := range options {
			if o == v {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func cloneWhen(w When) When {
	out := make(When, len(w))
	for k, v := range w {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedWhenKeys(w When) []string {
	keys := make([]string, 0, len(w))
	for k := range w {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
