package scan

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "class attribute", line: `<div class="px-2 py-1">`, want: []string{"px-2 py-1"}},
		{name: "class in braces", line: `<div class={ "flex gap-2" }>`, want: []string{"flex gap-2"}},
		{name: "CN call", line: `cls := cssvariant.CN("p-2 p-4", extra)`, want: []string{"p-2 p-4"}},
		{
			name: "templ.Classes with KV",
			line: `<button class={ templ.Classes("a b", templ.KV("c d", on)) }>`,
			want: []string{"a b", "c d"},
		},
		{name: "templ.KV alone", line: `templ.KV("hidden", !open)`, want: []string{"hidden"}},
		{name: "dynamic arguments only", line: `class={ templ.Classes(dynamic) }`, want: nil},
		{name: "comment", line: `  // class="px-2"`, want: nil},
		{name: "no classes", line: `return nil`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractLine(tt.line, 7, "button.templ")
			var values []string
			for _, lit := range got {
				values = append(values, lit.Value)
				assert.Equal(t, 7, lit.Line)
				assert.Equal(t, "button.templ", lit.File)
				assert.Equal(t, tt.line, lit.Text)
			}
			assert.Equal(t, tt.want, values)
		})
	}
}

func TestFindClassColumn(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		value   string
		wantCol int
	}{
		{name: "single class", line: `<div class="btn">`, value: "btn", wantCol: 13},
		{name: "anchors on the first class", line: `<div class="px-2 py-1">`, value: "px-2 py-1", wantCol: 13},
		{name: "leading spaces", line: `  <div class="flex">`, value: "flex", wantCol: 15},
		{name: "single quotes", line: `<div class='icon nav'>`, value: "icon nav", wantCol: 13},
		{name: "braces", line: `<div class={ "flex gap-2" }>`, value: "flex gap-2", wantCol: 15},
		{name: "quoted argument", line: `x := CN("p-2")`, value: "p-2", wantCol: 10},
		{name: "not found", line: `<div class="btn">`, value: "missing", wantCol: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantCol, findClassColumn(tt.line, tt.value))
		})
	}
}

func TestSplitArgs(t *testing.T) {
	assert.Equal(t, []string{`"a, b"`, ` f(x, y)`, ` c`}, splitArgs(`"a, b", f(x, y), c`))
	assert.Nil(t, splitArgs(""))
}

func TestScanFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.templ")
	writeFile(t, path, "templ Card() {\n\t<div class=\"p-2 p-4\">\n\t</div>\n}\n")

	literals, err := ScanFile(path)
	require.NoError(t, err)
	require.Len(t, literals, 1)
	assert.Equal(t, Literal{
		File:   path,
		Line:   2,
		Column: 14,
		Text:   "\t<div class=\"p-2 p-4\">",
		Value:  "p-2 p-4",
	}, literals[0])

	_, err = ScanFile(filepath.Join(t.TempDir(), "missing.templ"))
	assert.Error(t, err)
}
