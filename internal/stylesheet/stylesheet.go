// Package stylesheet reads compiled CSS and derives a property group for
// every plain class rule, so project classes conflict like the built-in
// utilities do.
package stylesheet

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/yacobolo/cssvariant"
)

// Class is one class selector together with the properties its plain
// rules declare. Rules with pseudo-classes, combinators or compound
// selectors don't contribute properties.
type Class struct {
	Name       string
	Layer      string
	Properties map[string]string
	SourceFile string
	Utility    bool // declared with @utility
}

// PropertyNames returns the declared property names, sorted.
func (c *Class) PropertyNames() []string {
	names := make([]string, 0, len(c.Properties))
	for name := range c.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Group returns the property group of the class, or "" when it declares
// nothing that decides one.
func (c *Class) Group() string {
	return cssvariant.GroupForProperties(c.PropertyNames())
}

type parserState struct {
	filename   string
	layer      string
	layerDepth int
	depth      int
	classes    map[string]*Class
}

// Parse lexes content and returns its classes sorted by name.
func Parse(content, filename string) []*Class {
	s := &parserState{
		filename:   filename,
		layerDepth: -1,
		classes:    make(map[string]*Class),
	}

	lexer := css.NewLexer(parse.NewInputString(content))
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// io.EOF
			break
		}

		switch {
		case tt == css.AtKeywordToken && string(text) == "@layer":
			s.handleLayer(lexer)
		case tt == css.AtKeywordToken && string(text) == "@utility":
			s.handleUtility(lexer)
		case tt == css.DelimToken && len(text) > 0 && text[0] == '.':
			s.handleClassRule(lexer)
		case tt == css.LeftBraceToken:
			s.depth++
		case tt == css.RightBraceToken:
			s.depth--
			if s.depth == s.layerDepth {
				s.layer = ""
				s.layerDepth = -1
			}
		}
	}

	out := make([]*Class, 0, len(s.classes))
	for _, c := range s.classes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ParseFile reads and parses one stylesheet.
func ParseFile(path string) ([]*Class, error) {
	// #nosec G304 - path comes from configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	return Parse(string(content), path), nil
}

// handleLayer reads "@layer name {" or "@layer a, b;".
func (s *parserState) handleLayer(lexer *css.Lexer) {
	var name string
	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken, css.SemicolonToken:
			return
		case css.IdentToken:
			name = string(text)
		case css.LeftBraceToken:
			if name != "" {
				s.layer = name
				s.layerDepth = s.depth
			}
			s.depth++
			return
		}
	}
}

// handleUtility reads a Tailwind "@utility name { ... }" block.
func (s *parserState) handleUtility(lexer *css.Lexer) {
	var name string
	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken, css.SemicolonToken:
			return
		case css.IdentToken, css.DelimToken, css.NumberToken, css.DimensionToken:
			name += string(text)
		case css.LeftBraceToken:
			props := s.extractDeclarations(lexer)
			if name = strings.TrimSuffix(name, "-*"); name != "" {
				c := s.class(unescape(name))
				c.Utility = true
				for k, v := range props {
					c.Properties[k] = v
				}
			}
			return
		}
	}
}

type selector struct {
	name  string
	plain bool
}

// handleClassRule runs after a '.' delimiter and reads the selector list
// up to the declaration block.
func (s *parserState) handleClassRule(lexer *css.Lexer) {
	tt, text := lexer.Next()
	if tt != css.IdentToken {
		return
	}

	selectors := []selector{{name: unescape(string(text)), plain: true}}
	current := 0

	for {
		tt, _ := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return
		case css.WhitespaceToken:
			// a descendant combinator shows up as the token after it
		case css.LeftBraceToken:
			s.applyRule(selectors, s.extractDeclarations(lexer))
			return
		case css.CommaToken:
			sel, ok, done := s.nextSelector(lexer)
			if done {
				s.applyRule(selectors, s.extractDeclarations(lexer))
				return
			}
			current = -1
			if ok {
				selectors = append(selectors, sel)
				current = len(selectors) - 1
			}
		case css.FunctionToken, css.LeftParenthesisToken:
			// :not(.a), :is(.b): classes inside never own the declarations
			if current >= 0 {
				selectors[current].plain = false
			}
			skipParens(lexer)
		default:
			if current >= 0 {
				selectors[current].plain = false
			}
		}
	}
}

// nextSelector reads the selector after a comma. It reports done when the
// declaration block opened before any class was found.
func (s *parserState) nextSelector(lexer *css.Lexer) (sel selector, ok, done bool) {
	plain := true
	for {
		tt, text := lexer.Next()
		switch {
		case tt == css.ErrorToken:
			return selector{}, false, false
		case tt == css.LeftBraceToken:
			return selector{}, false, true
		case tt == css.WhitespaceToken:
		case tt == css.DelimToken && len(text) > 0 && text[0] == '.':
			tt2, name := lexer.Next()
			if tt2 != css.IdentToken {
				return selector{}, false, false
			}
			return selector{name: unescape(string(name)), plain: plain}, true, false
		default:
			plain = false
		}
	}
}

func (s *parserState) applyRule(selectors []selector, props map[string]string) {
	for _, sel := range selectors {
		c := s.class(sel.name)
		if !sel.plain {
			continue
		}
		for k, v := range props {
			c.Properties[k] = v
		}
	}
}

func (s *parserState) class(name string) *Class {
	c, ok := s.classes[name]
	if !ok {
		c = &Class{
			Name:       name,
			Layer:      s.layer,
			Properties: make(map[string]string),
			SourceFile: s.filename,
		}
		s.classes[name] = c
	}
	return c
}

// extractDeclarations reads property: value pairs up to the closing brace.
// Nested blocks are skipped.
func (s *parserState) extractDeclarations(lexer *css.Lexer) map[string]string {
	props := make(map[string]string)

	var prop string
	var value []string
	flush := func() {
		if prop != "" && len(value) > 0 {
			props[strings.ToLower(prop)] = strings.TrimSpace(strings.Join(value, ""))
		}
		prop, value = "", nil
	}

	for {
		tt, text := lexer.Next()
		switch {
		case tt == css.ErrorToken || tt == css.RightBraceToken:
			flush()
			return props
		case tt == css.LeftBraceToken:
			// nested rule such as "&:hover { ... }"
			prop, value = "", nil
			skipBlock(lexer)
		case tt == css.IdentToken && prop == "":
			prop = string(text)
		case tt == css.ColonToken && prop != "" && value == nil:
			value = []string{}
		case tt == css.SemicolonToken:
			flush()
		case prop != "" && value != nil:
			value = append(value, string(text))
		}
	}
}

func skipParens(lexer *css.Lexer) {
	depth := 1
	for depth > 0 {
		tt, _ := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return
		case css.LeftParenthesisToken, css.FunctionToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		}
	}
}

func skipBlock(lexer *css.Lexer) {
	depth := 1
	for depth > 0 {
		tt, _ := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
		}
	}
}

// unescape drops CSS escapes ("hover\:p-2" → "hover:p-2").
func unescape(name string) string {
	if !strings.Contains(name, `\`) {
		return name
	}
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		if name[i] == '\\' && i+1 < len(name) {
			i++
		}
		b.WriteByte(name[i])
	}
	return b.String()
}

// Table maps bare class names to property groups.
type Table struct {
	classes map[string]*Class
	groups  map[string]string
}

// NewTable indexes classes. Later classes add properties to earlier ones
// of the same name. Names carrying variant prefixes are left out.
func NewTable(classes []*Class) *Table {
	t := &Table{
		classes: make(map[string]*Class),
		groups:  make(map[string]string),
	}
	for _, c := range classes {
		if strings.Contains(c.Name, ":") {
			continue
		}
		if existing, ok := t.classes[c.Name]; ok {
			for k, v := range c.Properties {
				existing.Properties[k] = v
			}
			existing.Utility = existing.Utility || c.Utility
			continue
		}
		copied := *c
		copied.Properties = make(map[string]string, len(c.Properties))
		for k, v := range c.Properties {
			copied.Properties[k] = v
		}
		t.classes[c.Name] = &copied
	}
	for name, c := range t.classes {
		if group := c.Group(); group != "" {
			t.groups[name] = group
		}
	}
	return t
}

// Load parses every path into one table.
func Load(paths []string, log zerolog.Logger) (*Table, error) {
	var all []*Class
	for _, path := range paths {
		classes, err := ParseFile(path)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("file", path).Int("classes", len(classes)).Msg("parsed stylesheet")
		all = append(all, classes...)
	}
	return NewTable(all), nil
}

// Len returns the number of classes with a group.
func (t *Table) Len() int { return len(t.groups) }

// Group returns the group of a bare class name.
func (t *Table) Group(name string) (string, bool) {
	g, ok := t.groups[name]
	return g, ok
}

// Class returns the parsed class.
func (t *Table) Class(name string) (*Class, bool) {
	c, ok := t.classes[name]
	return c, ok
}

// Groups returns a copy of the class → group map.
func (t *Table) Groups() map[string]string {
	out := make(map[string]string, len(t.groups))
	for k, v := range t.groups {
		out[k] = v
	}
	return out
}

// Classifier returns a classifier consulting the table before the built-in
// utility table.
func (t *Table) Classifier() *cssvariant.Classifier {
	return cssvariant.NewClassifier(cssvariant.WithExact(t.groups))
}
