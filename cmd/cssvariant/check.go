package main

import (
	"github.com/spf13/cobra"

	"github.com/yacobolo/cssvariant/internal/check"
	"github.com/yacobolo/cssvariant/internal/logging"
	"github.com/yacobolo/cssvariant/internal/scan"
	"github.com/yacobolo/cssvariant/internal/schemafile"
)

var defaultSourceGlobs = []string{"**/*.templ"}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [schema globs...]",
		Short: "Check schemas and templates for invalid or dead classes",
		Long: `Validate schema files and report classes that merging always drops,
both inside schema fragments and in class attributes of templates.
Errors fail the run; with --strict warnings do too.`,
		Example: `  cssvariant check
  cssvariant check "ui/**/*.variants.yaml" --sources "web/**/*.templ" --strict
  cssvariant check --output-format json > report.json`,
		RunE: runCheck,
	}

	f := cmd.Flags()
	f.StringSlice("sources", nil, "Template globs scanned for class literals")
	f.Bool("strict", false, "Exit 1 on any warning (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show the linter name after each issue")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	log := logging.Component(logger, "check")
	w := scan.NewWalker(".")

	cl, err := loadClassifier(w)
	if err != nil {
		return err
	}

	set, loadErr := schemafile.Discover(w, schemaPatterns(args), log)
	if set == nil {
		return loadErr
	}

	sources, stats, err := w.Expand(getStrings("check.sources", defaultSourceGlobs))
	if err != nil {
		return err
	}
	var literals []scan.Literal
	for _, file := range sources {
		lits, err := scan.ScanFile(file)
		if err != nil {
			log.Warn().Err(err).Str("file", file).Msg("skipping unreadable source")
			continue
		}
		literals = append(literals, lits...)
	}
	log.Debug().
		Int("schemas", len(set.Definitions)).
		Int("sources", stats.FilesScanned).
		Int("skipped", stats.FilesSkipped).
		Int("literals", len(literals)).
		Msg("inputs collected")

	strict := getBool("check.strict", false)
	result := check.Run(set.Definitions, literals, check.Config{
		Classifier:         cl,
		Strict:             strict,
		MaxIssuesPerLinter: getInt("check.max-issues-per-linter", 0),
		MaxSameIssues:      getInt("check.max-same-issues", 0),
		Logger:             log,
		LoadError:          loadErr,
	})
	// sources without class literals count as scanned too
	result.FilesScanned = stats.FilesScanned

	if !getBool("quiet", false) {
		format := check.DetermineOutputFormat(getString("check.output-format", string(check.OutputIssues)))
		if err := check.WriteOutput(cmd.OutOrStdout(), result, format, check.ReportConfig{
			UseColors:        getBool("color", false),
			PrintIssuedLines: getBool("check.print-lines", true),
			PrintLinterName:  getBool("check.print-linter-name", true),
		}, strict); err != nil {
			return err
		}
	}

	if result.Failed(strict) {
		return errCheckFailed
	}
	return nil
}
