// Package codegen writes Go declarations for schema files: one typed
// constant per variant option and one package-level schema variable per
// definition.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/yacobolo/cssvariant/internal/schemafile"
)

// Config controls generation.
type Config struct {
	Package string // package clause, defaults to "ui"
	Output  string // file path used by WriteFile
}

// Result reports what was generated.
type Result struct {
	SchemasGenerated int
	ConstantsWritten int
}

type fileData struct {
	Package string
	Schemas []schemaData
}

type schemaData struct {
	GoName    string
	Name      string
	File      string
	Constants []constData
	Options   []string // rendered cssvariant.SchemaOption expressions
}

type constData struct {
	GoName string
	Value  string
}

var fileTemplate = template.Must(template.New("schemas").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(`// Code generated by cssvariant generate. DO NOT EDIT.

package {{.Package}}

import "github.com/yacobolo/cssvariant"
{{range .Schemas}}
{{if .Constants}}// {{.GoName}} options.
const (
{{range .Constants}}	{{.GoName}} = {{quote .Value}}
{{end}})

{{end}}// {{.GoName}} is the {{quote .Name}} schema from {{.File}}.
var {{.GoName}} = cssvariant.MustSchema(
{{range .Options}}	{{.}},
{{end}})
{{end}}`))

// Generate renders defs as a gofmt-formatted Go file. Every definition is
// validated and built first, so the generated MustSchema calls cannot panic.
func Generate(defs []*schemafile.Definition, cfg Config) ([]byte, *Result, error) {
	if len(defs) == 0 {
		return nil, nil, fmt.Errorf("no schemas to generate")
	}
	pkg := cfg.Package
	if pkg == "" {
		pkg = "ui"
	}

	data := fileData{Package: pkg}
	result := &Result{}
	seen := make(map[string]string)
	declare := func(goName, origin string) error {
		if prev, ok := seen[goName]; ok {
			return fmt.Errorf("identifier %s from %s collides with %s", goName, origin, prev)
		}
		seen[goName] = origin
		return nil
	}

	for _, def := range defs {
		if _, err := def.Build(nil); err != nil {
			return nil, nil, err
		}

		sd := schemaData{
			GoName: toGoName(def.Name),
			Name:   def.Name,
			File:   filepath.ToSlash(def.File),
		}
		if err := declare(sd.GoName, def.Name); err != nil {
			return nil, nil, err
		}

		for _, g := range def.Groups {
			if g.Flag {
				continue
			}
			for _, o := range g.Options {
				c := constData{GoName: sd.GoName + toGoName(g.Name) + toGoName(o.Name), Value: o.Name}
				if err := declare(c.GoName, def.Name+"."+g.Name+"."+o.Name); err != nil {
					return nil, nil, err
				}
				sd.Constants = append(sd.Constants, c)
			}
		}
		sd.Options = schemaOptions(def)

		result.SchemasGenerated++
		result.ConstantsWritten += len(sd.Constants)
		data.Schemas = append(data.Schemas, sd)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, nil, fmt.Errorf("render template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, nil, fmt.Errorf("format generated code: %w", err)
	}
	return src, result, nil
}

// WriteFile generates into cfg.Output.
func WriteFile(defs []*schemafile.Definition, cfg Config) (*Result, error) {
	if cfg.Output == "" {
		return nil, fmt.Errorf("no output file configured")
	}
	src, result, err := Generate(defs, cfg)
	if err != nil {
		return nil, err
	}
	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}
	// #nosec G306 - generated source is meant to be world readable
	if err := os.WriteFile(cfg.Output, src, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	return result, nil
}

// schemaOptions mirrors Definition.Options as Go source.
func schemaOptions(def *schemafile.Definition) []string {
	opts := []string{"cssvariant.Named(" + strconv.Quote(def.Name) + ")"}
	if !def.Base.Empty() {
		opts = append(opts, "cssvariant.Base("+classes(def.Base)+")")
	}

	for _, g := range def.Groups {
		if g.Flag {
			whenTrue := `""`
			if o, ok := g.Option("true"); ok && !o.Fragment.Empty() {
				whenTrue = classes(o.Fragment)
			}
			opts = append(opts, fmt.Sprintf("cssvariant.Flag(%q, %s)", g.Name, whenTrue))
			continue
		}
		var b strings.Builder
		fmt.Fprintf(&b, "cssvariant.Group(%q, cssvariant.Options{\n", g.Name)
		for _, o := range g.Options {
			fmt.Fprintf(&b, "%q: %s,\n", o.Name, classes(o.Fragment))
		}
		b.WriteString("})")
		opts = append(opts, b.String())
	}

	for _, d := range def.Defaults {
		opts = append(opts, fmt.Sprintf("cssvariant.Default(%q, %q)", d.Group, d.Option))
	}

	for _, c := range def.Compounds {
		var b strings.Builder
		// a group may appear in several conditions; a map literal allows one key
		var groups []string
		options := make(map[string][]string)
		for _, cond := range c.When {
			if _, ok := options[cond.Group]; !ok {
				groups = append(groups, cond.Group)
			}
			for _, o := range cond.Options {
				options[cond.Group] = append(options[cond.Group], strconv.Quote(o))
			}
		}
		b.WriteString("cssvariant.Compound(cssvariant.When{")
		for i, group := range groups {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%q: {%s}", group, strings.Join(options[group], ", "))
		}
		b.WriteString("}, " + classes(c.Class) + ")")
		opts = append(opts, b.String())
	}
	return opts
}

// classes renders a fragment as one quoted class string.
func classes(f schemafile.Fragment) string {
	return strconv.Quote(strings.Join(strings.Fields(strings.Join(f.Classes, " ")), " "))
}

// toGoName converts kebab, snake or dotted names to PascalCase.
func toGoName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == '.'
	})

	for i, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}

	result := strings.Join(parts, "")
	if result == "" {
		return "_"
	}
	return result
}
