package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestNewJSON(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Format: FormatJSON, Writer: buf})
	require.NoError(t, err)

	l := Component(log, "check")
	l.Info().Str("file", "button.yaml").Msg("loaded schema")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loaded schema", entry["message"])
	assert.Equal(t, "check", entry["component"])
	assert.Equal(t, "button.yaml", entry["file"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestNewRespectsLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level   string
		written bool
	}{
		{"", false},
		{"warn", false},
		{"INFO", true},
		{"debug", true},
	}

	for _, tt := range tests {
		t.Run("level="+tt.level, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log, err := New(Options{Level: tt.level, Format: FormatJSON, Writer: buf})
			require.NoError(t, err)

			log.Info().Msg("hello")
			assert.Equal(t, tt.written, strings.TrimSpace(buf.String()) != "")
		})
	}
}

func TestNewConsole(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Debug().Msg("classifier ready")
	assert.Contains(t, buf.String(), "classifier ready")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestNewErrors(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	assert.ErrorContains(t, err, `log level "loud"`)

	_, err = New(Options{Format: "xml"})
	assert.ErrorContains(t, err, `unknown log format "xml"`)
}
