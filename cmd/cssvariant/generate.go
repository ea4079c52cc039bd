package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssvariant/internal/codegen"
	"github.com/yacobolo/cssvariant/internal/logging"
	"github.com/yacobolo/cssvariant/internal/scan"
	"github.com/yacobolo/cssvariant/internal/schemafile"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate [schema globs...]",
		Aliases: []string{"gen"},
		Short:   "Generate Go schema variables and option constants",
		Long: `Compile schema files into a Go file with one cssvariant.MustSchema
variable per schema and one typed constant per variant option.`,
		RunE: runGenerate,
	}

	f := cmd.Flags()
	f.StringP("output", "o", "", "Output file (default variants_gen.go)")
	f.String("package", "", "Go package name (default ui)")
	f.Bool("stdout", false, "Write the generated code to stdout")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logging.Component(logger, "generate")

	set, err := schemafile.Discover(scan.NewWalker("."), schemaPatterns(args), log)
	if err != nil {
		return err
	}
	if len(set.Definitions) == 0 {
		return fmt.Errorf("no schema files match %v", schemaPatterns(args))
	}

	cfg := codegen.Config{
		Package: getString("generate.package", "ui"),
		Output:  getString("generate.output", "variants_gen.go"),
	}

	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		src, _, err := codegen.Generate(set.Definitions, cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(src)
		return err
	}

	result, err := codegen.WriteFile(set.Definitions, cfg)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if !getBool("quiet", false) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Generated %s\n", cfg.Output)
		fmt.Fprintf(out, "  Schema files: %d\n", set.Stats.FilesScanned)
		fmt.Fprintf(out, "  Schemas: %d\n", result.SchemasGenerated)
		fmt.Fprintf(out, "  Constants: %d\n", result.ConstantsWritten)
	}
	return nil
}
