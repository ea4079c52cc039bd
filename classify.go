package cssvariant

import (
	"strings"
	"sync"
)

// Classifier maps raw classes to tokens using the built-in utility table
// plus optional exact entries.
type Classifier struct {
	exact map[string]string
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithExact adds exact class → group entries, checked before the built-in
// table. Keys are bare classes without modifiers ("btn-primary").
func WithExact(groups map[string]string) ClassifierOption {
	return func(c *Classifier) {
		for class, group := range groups {
			if class == "" || group == "" {
				continue
			}
			c.exact[class] = group
		}
	}
}

// NewClassifier returns a classifier over the built-in table extended by opts.
func NewClassifier(opts ...ClassifierOption) *Classifier {
	c := &Classifier{exact: make(map[string]string)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	defaultClassifier     *Classifier
	defaultClassifierOnce sync.Once

	prefixTable = sync.OnceValue(buildUtilityPrefixes)
)

// DefaultClassifier returns the shared classifier with only the built-in table.
func DefaultClassifier() *Classifier {
	defaultClassifierOnce.Do(func() {
		defaultClassifier = NewClassifier()
	})
	return defaultClassifier
}

// Classify classifies one raw class with the default classifier.
func Classify(raw string) Token {
	return DefaultClassifier().Classify(raw)
}

// Classify splits raw into modifiers and base, reads the important markers,
// and looks the base up in the table. It never fails: unrecognized bases get
// an "unknown:<head>" group.
func (c *Classifier) Classify(raw string) Token {
	tok := Token{raw: raw}

	rest := raw
	if strings.HasPrefix(rest, "!") {
		tok.important = true
		rest = rest[1:]
	}

	mods, base := splitModifiers(rest)
	tok.modifiers = mods

	if strings.HasPrefix(base, "!") {
		tok.important = true
		base = base[1:]
	}
	if len(base) > 1 && strings.HasSuffix(base, "!") && !strings.HasSuffix(base, "\\!") {
		tok.important = true
		base = base[:len(base)-1]
	}

	if prop, ok := arbitraryProperty(base); ok {
		tok.group = "arbitrary:" + prop
		return tok
	}

	if group, ok := c.groupOf(base); ok {
		tok.group = group
		return tok
	}

	tok.unknown = true
	tok.group = "unknown:" + unknownHead(base)
	return tok
}

// groupOf resolves the property group of a base with the negative prefix
// and any top-level "/modifier" postfix ignored.
func (c *Classifier) groupOf(base string) (string, bool) {
	if group, ok := c.exact[base]; ok {
		return group, true
	}

	b := base
	if len(b) > 1 && b[0] == '-' {
		b = b[1:]
	}

	if i := postfixIndex(b); i > 0 {
		if group, ok := c.lookup(b[:i]); ok {
			return group, true
		}
	}
	return c.lookup(b)
}

func (c *Classifier) lookup(base string) (string, bool) {
	if group, ok := c.exact[base]; ok {
		return group, true
	}
	if group, ok := utilityKeywords[base]; ok {
		return group, true
	}

	table := prefixTable()

	// "w-[calc(100%-2rem)]": the bracket marks the value boundary
	if i := strings.Index(base, "-["); i > 0 {
		if group, ok := matchRules(table[base[:i]], base[i+1:]); ok {
			return group, true
		}
	}

	// Bare prefixes ("border", "rounded") only match rules that accept
	// an empty value.
	for _, r := range table[base] {
		if r.accept != nil && r.accept("") {
			return r.group, true
		}
	}

	for i := len(base) - 1; i > 0; i-- {
		if base[i] != '-' {
			continue
		}
		rules, ok := table[base[:i]]
		if !ok {
			continue
		}
		if group, ok := matchRules(rules, base[i+1:]); ok {
			return group, true
		}
	}
	return "", false
}

func matchRules(rules []rule, value string) (string, bool) {
	for _, r := range rules {
		if r.matches(value) {
			return r.group, true
		}
	}
	return "", false
}

// splitModifiers splits on ':' outside brackets and parentheses. A
// backslash escapes the next byte.
func splitModifiers(raw string) ([]string, string) {
	var mods []string
	depth := 0
	start := 0
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			i++
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				mods = append(mods, raw[start:i])
				start = i + 1
			}
		}
	}
	return mods, raw[start:]
}

// postfixIndex returns the index of a top-level '/' or -1.
func postfixIndex(base string) int {
	depth := 0
	for i := 0; i < len(base); i++ {
		switch base[i] {
		case '\\':
			i++
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case '/':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// arbitraryProperty recognizes "[mask-type:luminance]".
func arbitraryProperty(base string) (string, bool) {
	if !isBracketed(base) {
		return "", false
	}
	inner := base[1 : len(base)-1]
	i := strings.IndexByte(inner, ':')
	if i <= 0 || i == len(inner)-1 {
		return "", false
	}
	prop := inner[:i]
	if strings.ContainsAny(prop, "[]() ") {
		return "", false
	}
	return prop, true
}

func unknownHead(base string) string {
	b := base
	if len(b) > 1 && b[0] == '-' {
		b = b[1:]
	}
	if i := strings.IndexByte(b, '-'); i > 0 {
		return b[:i]
	}
	return b
}
