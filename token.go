package cssvariant

import (
	"fmt"
	"sort"
	"strings"
)

// Token is one utility class after modifier and property classification.
// Tokens are values; the raw text is never rewritten.
type Token struct {
	raw       string
	modifiers []string
	group     string
	important bool
	unknown   bool
}

// Raw returns the class exactly as authored ("hover:!px-4").
func (t Token) Raw() string { return t.raw }

// Modifiers returns a copy of the conditional prefixes in authoring order.
func (t Token) Modifiers() []string {
	if len(t.modifiers) == 0 {
		return nil
	}
	out := make([]string, len(t.modifiers))
	copy(out, t.modifiers)
	return out
}

// Group returns the property group ("padding-x", "text-color", "unknown:my").
func (t Token) Group() string { return t.group }

// Important reports whether the token carries a force marker.
func (t Token) Important() bool { return t.important }

// Unknown reports whether no table entry recognized the token.
func (t Token) Unknown() bool { return t.unknown }

// Key is the conflict key. Recognized tokens conflict when modifiers and
// group match; unknown tokens only collide with the identical raw text.
func (t Token) Key() string {
	mods := strings.Join(t.modifiers, ":")
	if t.unknown {
		return mods + "|=" + t.raw
	}
	return mods + "|" + t.group
}

// String returns the raw text.
func (t Token) String() string { return t.raw }

// Sequence is an ordered list of tokens. Later entries win ties.
type Sequence []Token

// String joins the raw token texts with single spaces.
func (s Sequence) String() string {
	if len(s) == 0 {
		return ""
	}
	var b strings.Builder
	for i, tok := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.raw)
	}
	return b.String()
}

// Raw returns the raw texts in order.
func (s Sequence) Raw() []string {
	out := make([]string, len(s))
	for i, tok := range s {
		out[i] = tok.raw
	}
	return out
}

// If returns v if cond holds and nil otherwise, so conditional fragments
// can sit inline in a Parse or CN call.
func If(cond bool, v any) any {
	if cond {
		return v
	}
	return nil
}

// Parse flattens style inputs into a Sequence using the default classifier.
// See (*Classifier).Parse for the accepted input shapes.
func Parse(inputs ...any) Sequence {
	return DefaultClassifier().Parse(inputs...)
}

// Parse flattens style inputs into a Sequence. Accepted inputs are strings,
// string slices, nested []any, Sequence, Token, map[string]bool (true keys,
// sorted), fmt.Stringer, and nil or bool entries which are skipped. It never
// fails: anything else is ignored.
func (c *Classifier) Parse(inputs ...any) Sequence {
	var out Sequence
	for _, in := range inputs {
		out = c.appendInput(out, in)
	}
	return out
}

func (c *Classifier) appendInput(out Sequence, in any) Sequence {
	switch v := in.(type) {
	case nil, bool:
		return out
	case string:
		for _, field := range strings.Fields(v) {
			out = append(out, c.Classify(field))
		}
	case []string:
		for _, s := range v {
			out = c.appendInput(out, s)
		}
	case []any:
		for _, item := range v {
			out = c.appendInput(out, item)
		}
	case Sequence:
		out = append(out, v...)
	case Token:
		out = append(out, v)
	case map[string]bool:
		keys := make([]string, 0, len(v))
		for k, on := range v {
			if on {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = c.appendInput(out, k)
		}
	case fmt.Stringer:
		out = c.appendInput(out, v.String())
	}
	return out
}
