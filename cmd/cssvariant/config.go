package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const defaultConfigFile = ".cssvariant.yaml"

var k = koanf.New(".")

// flagKeys maps flag names to config keys. Flags not listed use their own
// name as the key.
var flagKeys = map[string]string{
	"log-level":             "log.level",
	"log-format":            "log.format",
	"sources":               "check.sources",
	"strict":                "check.strict",
	"output-format":         "check.output-format",
	"max-issues-per-linter": "check.max-issues-per-linter",
	"max-same-issues":       "check.max-same-issues",
	"print-lines":           "check.print-lines",
	"print-linter-name":     "check.print-linter-name",
	"output":                "generate.output",
	"package":               "generate.package",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// Defaults live at the call sites of the getters.
func loadConfig(cmd *cobra.Command) error {
	k = koanf.New(".")

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// only flags set on the command line override file and env
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed || f.Name == "config" {
			return "", nil
		}
		key, ok := flagKeys[f.Name]
		if !ok {
			key = f.Name
		}
		return key, posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads the config file, if present, and the environment.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// CSSVARIANT_CHECK_STRICT -> check.strict
	if err := k.Load(env.Provider("CSSVARIANT_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSVARIANT_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}

// getStrings accepts a YAML list or a comma-separated string, as the
// environment only carries strings.
func getStrings(key string, defaultVal []string) []string {
	if !k.Exists(key) {
		return defaultVal
	}
	if v, ok := k.Get(key).(string); ok {
		return splitList(v)
	}
	if list := k.Strings(key); len(list) > 0 {
		return list
	}
	return defaultVal
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
