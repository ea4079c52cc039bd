package main

import (
	"fmt"

	"github.com/yacobolo/cssvariant"
	"github.com/yacobolo/cssvariant/internal/logging"
	"github.com/yacobolo/cssvariant/internal/scan"
	"github.com/yacobolo/cssvariant/internal/stylesheet"
)

var defaultSchemaGlobs = []string{"**/*.variants.yaml"}

// loadClassifier returns the default classifier, extended with the
// configured stylesheets when there are any.
func loadClassifier(w *scan.Walker) (*cssvariant.Classifier, error) {
	patterns := getStrings("stylesheet", nil)
	if len(patterns) == 0 {
		return cssvariant.DefaultClassifier(), nil
	}

	files, _, err := w.Expand(patterns)
	if err != nil {
		return nil, fmt.Errorf("expand stylesheet globs: %w", err)
	}
	table, err := stylesheet.Load(files, logging.Component(logger, "stylesheet"))
	if err != nil {
		return nil, err
	}
	logger.Debug().Int("files", len(files)).Int("classes", table.Len()).Msg("loaded stylesheet table")
	return table.Classifier(), nil
}

func schemaPatterns(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return getStrings("schemas", defaultSchemaGlobs)
}
