package main

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yacobolo/cssvariant"
	"github.com/yacobolo/cssvariant/internal/logging"
)

// errCheckFailed makes the process exit 1 without printing an error; the
// report was already written.
var errCheckFailed = errors.New("check failed")

// logger is configured before any subcommand runs.
var logger = zerolog.Nop()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cssvariant",
		Short: "Variant schemas and conflict-aware class merging for utility CSS",
		Long: `Resolve component variants to class strings, merge class lists so the
last conflicting utility wins, and check schemas and templates for classes
that can never apply.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			return configureLogging(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := root.PersistentFlags()
	f.String("config", defaultConfigFile, "Config file path")
	f.BoolP("verbose", "v", false, "Enable debug logging")
	f.Bool("quiet", false, "Suppress all output (exit code only)")
	f.Bool("color", false, "Force color output")
	f.String("log-level", "", "Log level: debug|info|warn|error")
	f.String("log-format", "", "Log format: console|json")
	f.StringSlice("stylesheet", nil, "Compiled CSS files whose classes join conflict resolution")

	root.AddCommand(
		newResolveCmd(),
		newMergeCmd(),
		newClassifyCmd(),
		newCheckCmd(),
		newGenerateCmd(),
		newInitCmd(),
		newCompletionCmd(root),
		newVersionCmd(),
	)
	return root
}

func configureLogging(cmd *cobra.Command) error {
	level := getString("log.level", "warn")
	if getBool("verbose", false) {
		level = "debug"
	}

	l, err := logging.New(logging.Options{
		Level:  level,
		Format: getString("log.format", logging.FormatConsole),
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	logger = l
	cssvariant.SetLogger(logging.Component(l, "engine"))
	return nil
}
