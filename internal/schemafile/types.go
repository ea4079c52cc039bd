// Package schemafile reads variant schemas from YAML files.
//
// A file holds one schema per YAML document:
//
//	name: button
//	base: ["inline-flex items-center", "rounded-xl"]
//	variants:
//	  variant:
//	    primary: "bg-brand text-brand-on-emphasis"
//	    outline: ["bg-transparent", "border-2 border-border-default"]
//	  size:
//	    sm: "h-8 px-3"
//	flags:
//	  block: "w-full"
//	defaults: {variant: primary, size: sm}
//	compounds:
//	  - when: {variant: outline, size: [sm]}
//	    class: "px-2"
//
// Groups and options keep their file order, and every element records its
// position so diagnostics can point at it.
package schemafile

import "fmt"

// Position is a 1-based line and column in a schema file.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Fragment is a list of class strings as written.
type Fragment struct {
	Classes []string
	Pos     Position
}

// Empty reports whether the fragment holds no classes.
func (f Fragment) Empty() bool {
	for _, c := range f.Classes {
		for i := 0; i < len(c); i++ {
			if c[i] != ' ' && c[i] != '\t' && c[i] != '\n' {
				return false
			}
		}
	}
	return true
}

// Option is one option of a variant group.
type Option struct {
	Name     string `validate:"required,option_name"`
	Fragment Fragment
	Pos      Position
}

// Group is a variant group. Flags are groups with options "true" and
// "false".
type Group struct {
	Name    string   `validate:"required,identifier"`
	Options []Option `validate:"min=1"`
	Flag    bool
	Pos     Position
}

// Option returns the option named name.
func (g *Group) Option(name string) (*Option, bool) {
	for i := range g.Options {
		if g.Options[i].Name == name {
			return &g.Options[i], true
		}
	}
	return nil, false
}

// Default is one entry of the defaults mapping.
type Default struct {
	Group  string `validate:"required"`
	Option string `validate:"required"`
	Pos    Position
}

// Condition is one group predicate of a compound rule.
type Condition struct {
	Group   string   `validate:"required"`
	Options []string `validate:"min=1,dive,required"`
	Pos     Position
}

// Compound is a rule applied when every condition holds. A rule without
// conditions always applies.
type Compound struct {
	When  []Condition
	Class Fragment
	Pos   Position
}

// Definition is one schema document.
type Definition struct {
	Name      string
	Base      Fragment
	Groups    []Group
	Defaults  []Default
	Compounds []Compound
	File      string
	Pos       Position
}

// Group returns the group named name.
func (d *Definition) Group(name string) (*Group, bool) {
	for i := range d.Groups {
		if d.Groups[i].Name == name {
			return &d.Groups[i], true
		}
	}
	return nil, false
}

// Default returns the default entry for group.
func (d *Definition) Default(group string) (*Default, bool) {
	for i := range d.Defaults {
		if d.Defaults[i].Group == group {
			return &d.Defaults[i], true
		}
	}
	return nil, false
}

// Error is a decoding or validation failure at a position in a file.
type Error struct {
	File string
	Pos  Position
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Pos.Line == 0 {
		return fmt.Sprintf("%s: %s", e.File, e.Msg)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Pos.Line, e.Pos.Column, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }
