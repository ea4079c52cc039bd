package schemafile

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/yacobolo/cssvariant"
	"github.com/yacobolo/cssvariant/internal/scan"
)

// Options turns the definition into schema options. cl may be nil for the
// default classifier.
func (d *Definition) Options(cl *cssvariant.Classifier) []cssvariant.SchemaOption {
	opts := []cssvariant.SchemaOption{
		cssvariant.Named(d.Name),
		cssvariant.WithClassifier(cl),
		cssvariant.Base(d.Base.Classes),
	}
	for _, g := range d.Groups {
		if g.Flag {
			var whenTrue []string
			if o, ok := g.Option("true"); ok {
				whenTrue = o.Fragment.Classes
			}
			opts = append(opts, cssvariant.Flag(g.Name, whenTrue))
			continue
		}
		options := make(cssvariant.Options, len(g.Options))
		for _, o := range g.Options {
			options[o.Name] = o.Fragment.Classes
		}
		opts = append(opts, cssvariant.Group(g.Name, options))
	}
	for _, def := range d.Defaults {
		opts = append(opts, cssvariant.Default(def.Group, def.Option))
	}
	for _, c := range d.Compounds {
		when := make(cssvariant.When, len(c.When))
		for _, cond := range c.When {
			when[cond.Group] = append(when[cond.Group], cond.Options...)
		}
		opts = append(opts, cssvariant.Compound(when, c.Class.Classes))
	}
	return opts
}

// Build validates the definition and constructs its schema.
func (d *Definition) Build(cl *cssvariant.Classifier) (*cssvariant.Schema, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}
	s, err := cssvariant.NewSchema(d.Options(cl)...)
	if err != nil {
		return nil, &Error{File: d.File, Pos: d.Pos, Msg: err.Error(), Err: err}
	}
	return s, nil
}

// PositionOf locates the element a schema issue is about: the condition of
// a compound rule, the option, the group, or the schema itself.
func (d *Definition) PositionOf(issue cssvariant.SchemaIssue) Position {
	if n := issue.Compound; n > 0 && n <= len(d.Compounds) {
		c := d.Compounds[n-1]
		for _, cond := range c.When {
			if cond.Group == issue.Group {
				return cond.Pos
			}
		}
		return c.Pos
	}

	g, ok := d.Group(issue.Group)
	if !ok {
		if def, ok := d.Default(issue.Group); ok {
			return def.Pos
		}
		return d.Pos
	}
	if issue.Option != "" {
		if def, ok := d.Default(issue.Group); ok && def.Option == issue.Option {
			return def.Pos
		}
		if o, ok := g.Option(issue.Option); ok {
			return o.Pos
		}
	}
	return g.Pos
}

// Load reads every schema in one file.
func Load(path string) ([]*Definition, error) {
	// #nosec G304 - path comes from configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	return Parse(data, path)
}

// Set is the result of loading many files.
type Set struct {
	Definitions []*Definition
	Stats       scan.Stats
}

// Discover expands patterns with w and loads every matched file.
// Files that fail to parse are reported together; the rest still load.
func Discover(w *scan.Walker, patterns []string, log zerolog.Logger) (*Set, error) {
	files, stats, err := w.Expand(patterns)
	if err != nil {
		return nil, fmt.Errorf("expand schema globs: %w", err)
	}

	set := &Set{Stats: stats}
	var errs []error
	names := make(map[string]string)
	for _, file := range files {
		defs, err := Load(file)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, def := range defs {
			if prev, dup := names[def.Name]; dup && def.Name != "" {
				errs = append(errs, &Error{
					File: file,
					Pos:  def.Pos,
					Msg:  fmt.Sprintf("schema %q already defined in %s", def.Name, prev),
				})
				continue
			}
			names[def.Name] = file
			set.Definitions = append(set.Definitions, def)
		}
		log.Debug().Str("file", file).Int("schemas", len(defs)).Msg("loaded schema file")
	}
	return set, errors.Join(errs...)
}
