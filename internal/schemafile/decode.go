package schemafile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes every schema document in data. Parse checks shape only;
// see Validate for the field rules.
func Parse(data []byte, file string) ([]*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var defs []*Definition
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &Error{File: file, Msg: "invalid YAML", Err: err}
		}
		if len(doc.Content) == 0 {
			continue
		}

		d := &decoder{file: file}
		def := d.definition(doc.Content[0])
		if d.err != nil {
			return nil, d.err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// decoder keeps the first error so the node walkers stay linear.
type decoder struct {
	file string
	err  error
}

func (d *decoder) fail(n *yaml.Node, format string, args ...any) {
	if d.err != nil {
		return
	}
	d.err = &Error{File: d.file, Pos: pos(n), Msg: fmt.Sprintf(format, args...)}
}

func pos(n *yaml.Node) Position {
	return Position{Line: n.Line, Column: n.Column}
}

// pairs walks a mapping node in order, rejecting duplicate keys.
func (d *decoder) pairs(n *yaml.Node, what string, fn func(key, value *yaml.Node)) {
	if n.Kind != yaml.MappingNode {
		d.fail(n, "%s must be a mapping", what)
		return
	}
	seen := make(map[string]bool, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content) && d.err == nil; i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			d.fail(key, "%s keys must be scalars", what)
			return
		}
		if seen[key.Value] {
			d.fail(key, "%s %q declared twice", what, key.Value)
			return
		}
		seen[key.Value] = true
		fn(key, value)
	}
}

func (d *decoder) definition(n *yaml.Node) *Definition {
	def := &Definition{File: d.file, Pos: pos(n)}
	d.pairs(n, "schema key", func(key, value *yaml.Node) {
		switch key.Value {
		case "name":
			def.Name = d.scalar(value, "name")
		case "base":
			def.Base = d.fragment(value)
		case "variants":
			d.pairs(value, "variant group", func(gk, gv *yaml.Node) {
				if _, dup := def.Group(gk.Value); dup {
					d.fail(gk, "variant group %q declared twice", gk.Value)
					return
				}
				def.Groups = append(def.Groups, d.group(gk, gv))
			})
		case "flags":
			d.pairs(value, "flag", func(fk, fv *yaml.Node) {
				if _, dup := def.Group(fk.Value); dup {
					d.fail(fk, "variant group %q declared twice", fk.Value)
					return
				}
				def.Groups = append(def.Groups, Group{
					Name: fk.Value,
					Flag: true,
					Pos:  pos(fk),
					Options: []Option{
						{Name: "true", Fragment: d.fragment(fv), Pos: pos(fv)},
						{Name: "false", Fragment: Fragment{Pos: pos(fv)}, Pos: pos(fv)},
					},
				})
			})
		case "defaults":
			d.pairs(value, "default", func(dk, dv *yaml.Node) {
				def.Defaults = append(def.Defaults, Default{
					Group:  dk.Value,
					Option: d.scalar(dv, "default"),
					Pos:    pos(dv),
				})
			})
		case "compounds":
			if value.Kind != yaml.SequenceNode {
				d.fail(value, "compounds must be a list")
				return
			}
			for _, item := range value.Content {
				def.Compounds = append(def.Compounds, d.compound(item))
			}
		default:
			d.fail(key, "unknown schema key %q", key.Value)
		}
	})
	return def
}

func (d *decoder) group(key, value *yaml.Node) Group {
	g := Group{Name: key.Value, Pos: pos(key)}
	d.pairs(value, "option", func(ok, ov *yaml.Node) {
		g.Options = append(g.Options, Option{
			Name:     ok.Value,
			Fragment: d.fragment(ov),
			Pos:      pos(ok),
		})
	})
	return g
}

func (d *decoder) compound(n *yaml.Node) Compound {
	c := Compound{Pos: pos(n)}
	d.pairs(n, "compound key", func(key, value *yaml.Node) {
		switch key.Value {
		case "when":
			d.pairs(value, "condition", func(ck, cv *yaml.Node) {
				c.When = append(c.When, Condition{
					Group:   ck.Value,
					Options: d.optionList(cv),
					Pos:     pos(ck),
				})
			})
		case "class":
			c.Class = d.fragment(value)
		default:
			d.fail(key, "unknown compound key %q", key.Value)
		}
	})
	return c
}

// fragment accepts a string, a list of strings, or null.
func (d *decoder) fragment(n *yaml.Node) Fragment {
	f := Fragment{Pos: pos(n)}
	switch {
	case n.Kind == yaml.ScalarNode && n.Tag == "!!null":
	case n.Kind == yaml.ScalarNode:
		f.Classes = []string{strings.TrimSpace(n.Value)}
	case n.Kind == yaml.SequenceNode:
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				d.fail(item, "class lists hold strings only")
				return f
			}
			f.Classes = append(f.Classes, strings.TrimSpace(item.Value))
		}
	default:
		d.fail(n, "classes must be a string or a list of strings")
	}
	return f
}

// optionList accepts a scalar or a list of scalars.
func (d *decoder) optionList(n *yaml.Node) []string {
	switch n.Kind {
	case yaml.ScalarNode:
		return []string{n.Value}
	case yaml.SequenceNode:
		out := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				d.fail(item, "option lists hold scalars only")
				return nil
			}
			out = append(out, item.Value)
		}
		return out
	}
	d.fail(n, "expected an option or a list of options")
	return nil
}

func (d *decoder) scalar(n *yaml.Node, what string) string {
	if n.Kind != yaml.ScalarNode {
		d.fail(n, "%s must be a scalar", what)
		return ""
	}
	return n.Value
}
