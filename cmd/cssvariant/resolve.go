package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssvariant"
	"github.com/yacobolo/cssvariant/internal/scan"
	"github.com/yacobolo/cssvariant/internal/schemafile"
	"github.com/yacobolo/cssvariant/ui"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the class string of a variant selection",
		Long: `Resolve a selection against a schema file or a built-in component and
print the merged class string. Unset groups use their defaults.`,
		Example: `  cssvariant resolve --schema button.variants.yaml --set variant=outline --set size=sm
  cssvariant resolve --component card --set glass=true --class p-0
  cssvariant resolve --component toggle-group --html`,
		Args: cobra.NoArgs,
		RunE: runResolve,
	}

	f := cmd.Flags()
	f.String("schema", "", "Schema file")
	f.String("name", "", "Schema name when the file holds several")
	f.String("component", "", "Built-in component name")
	f.StringArray("set", nil, "Variant selection as group=option (repeatable)")
	f.StringArray("class", nil, "Extra classes merged on top (repeatable)")
	f.Bool("html", false, "Print the element attributes instead of the class (components only)")
	f.Bool("list", false, "List the built-in components")
	return cmd
}

func runResolve(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if list, _ := cmd.Flags().GetBool("list"); list {
		for _, name := range ui.Names() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	sets, _ := cmd.Flags().GetStringArray("set")
	sel, err := parseSelection(sets)
	if err != nil {
		return err
	}
	classes, _ := cmd.Flags().GetStringArray("class")

	schemaPath, _ := cmd.Flags().GetString("schema")
	component, _ := cmd.Flags().GetString("component")
	html, _ := cmd.Flags().GetBool("html")

	switch {
	case schemaPath != "" && component != "":
		return fmt.Errorf("--schema and --component are mutually exclusive")

	case component != "":
		c, ok := ui.Lookup(component)
		if !ok {
			return fmt.Errorf("unknown component %q (run with --list)", component)
		}
		el := c.Render(sel, classes)
		if html {
			fmt.Fprintln(out, el.HTML())
			return nil
		}
		fmt.Fprintln(out, el.Class)
		return nil

	case schemaPath != "":
		if html {
			return fmt.Errorf("--html needs --component")
		}
		name, _ := cmd.Flags().GetString("name")
		schema, err := loadSchema(schemaPath, name)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, schema.Class(sel, classes))
		return nil
	}

	return fmt.Errorf("one of --schema or --component is required")
}

func loadSchema(path, name string) (*cssvariant.Schema, error) {
	defs, err := schemafile.Load(path)
	if err != nil {
		return nil, err
	}

	var def *schemafile.Definition
	switch {
	case name != "":
		for _, d := range defs {
			if d.Name == name {
				def = d
				break
			}
		}
		if def == nil {
			return nil, fmt.Errorf("no schema %q in %s", name, path)
		}
	case len(defs) == 1:
		def = defs[0]
	case len(defs) == 0:
		return nil, fmt.Errorf("no schema in %s", path)
	default:
		return nil, fmt.Errorf("%s holds %d schemas, pick one with --name", path, len(defs))
	}

	cl, err := loadClassifier(scan.NewWalker("."))
	if err != nil {
		return nil, err
	}
	return def.Build(cl)
}

// parseSelection reads "group=option" pairs. Later pairs win.
func parseSelection(pairs []string) (cssvariant.Selection, error) {
	sel := make(cssvariant.Selection, len(pairs))
	for _, pair := range pairs {
		group, option, ok := strings.Cut(pair, "=")
		group = strings.TrimSpace(group)
		if !ok || group == "" {
			return nil, fmt.Errorf("invalid selection %q (want group=option)", pair)
		}
		sel[group] = strings.TrimSpace(option)
	}
	return sel, nil
}
