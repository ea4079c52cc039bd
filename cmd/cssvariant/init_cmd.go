package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultConfig = `# cssvariant configuration

# Schema files, as doublestar globs
schemas:
  - "**/*.variants.yaml"

# Compiled CSS whose custom classes join conflict resolution (optional)
stylesheet: []

log:
  level: warn       # debug | info | warn | error
  format: console   # console | json

generate:
  output: variants_gen.go
  package: ui

check:
  sources:
    - "**/*.templ"
  strict: false
  output-format: issues    # issues | summary | full | json
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default " + defaultConfigFile + " config file",
		// init must work when the existing config does not parse
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")

			if _, err := os.Stat(defaultConfigFile); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
			}

			// #nosec G306 - config file is meant to be shared
			if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0o644); err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite existing config file")
	return cmd
}
