package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssvariant"
	"github.com/yacobolo/cssvariant/ui"
)

const buttonSchema = `name: button
base: ["inline-flex items-center", "rounded-xl"]
variants:
  variant:
    primary: "bg-brand text-brand-on-emphasis"
    outline: ["bg-transparent", "border-2 border-border-default"]
  size:
    sm: "h-8 px-3"
    md: "h-10 px-4"
flags:
  block: "w-full"
defaults: {variant: primary, size: md}
compounds:
  - when: {variant: outline, size: [sm]}
    class: "px-2"
`

// execute runs a fresh command tree and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestResolveSchema(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, "button.variants.yaml", buttonSchema)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "defaults",
			args: nil,
			want: "inline-flex items-center rounded-xl bg-brand text-brand-on-emphasis h-10 px-4",
		},
		{
			name: "compound",
			args: []string{"--set", "variant=outline", "--set", "size=sm"},
			want: "inline-flex items-center rounded-xl bg-transparent border-2 border-border-default h-8 px-2",
		},
		{
			name: "caller class wins",
			args: []string{"--set", "variant=outline", "--set", "size=sm", "--class", "px-6"},
			want: "inline-flex items-center rounded-xl bg-transparent border-2 border-border-default h-8 px-6",
		},
		{
			name: "flag",
			args: []string{"--set", "block=true"},
			want: "inline-flex items-center rounded-xl bg-brand text-brand-on-emphasis h-10 px-4 w-full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"resolve", "--schema", "button.variants.yaml"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestResolveComponent(t *testing.T) {
	card, ok := ui.Lookup("card")
	require.True(t, ok)

	out, err := execute(t, "resolve", "--component", "card", "--set", "glass=true", "--class", "p-0")
	require.NoError(t, err)
	assert.Equal(t, card.Render(cssvariant.Selection{"glass": "true"}, "p-0").Class+"\n", out)

	out, err = execute(t, "resolve", "--component", "card", "--html")
	require.NoError(t, err)
	assert.Equal(t, card.Render(nil).HTML()+"\n", out)

	out, err = execute(t, "resolve", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "toggle-group-item\n")
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "no source", args: []string{"resolve"}, wantErr: "required"},
		{name: "bad selection", args: []string{"resolve", "--component", "card", "--set", "glass"}, wantErr: "want group=option"},
		{name: "unknown component", args: []string{"resolve", "--component", "carousel"}, wantErr: `unknown component "carousel"`},
		{name: "both sources", args: []string{"resolve", "--component", "card", "--schema", "x.yaml"}, wantErr: "mutually exclusive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMerge(t *testing.T) {
	out, err := execute(t, "merge", "px-2 py-1 bg-brand", "px-4 hover:bg-surface")
	require.NoError(t, err)
	assert.Equal(t, "py-1 bg-brand px-4 hover:bg-surface\n", out)
}

func TestMergeWithStylesheet(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, "app.css", `@layer components { .btn-primary { background-color: blue; } }`)

	out, err := execute(t, "merge", "--stylesheet", "app.css", "bg-brand btn-primary")
	require.NoError(t, err)
	assert.Equal(t, "btn-primary\n", out)
}

func TestClassify(t *testing.T) {
	out, err := execute(t, "classify", "px-4", "hover:!bg-brand")
	require.NoError(t, err)
	assert.Contains(t, out, "CLASS")
	assert.Contains(t, out, "padding-x")
	assert.Contains(t, out, "hover:!bg-brand")
	assert.Contains(t, out, "hover|bg-color")
	assert.Contains(t, out, "yes")
}

func TestCheck(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, "button.variants.yaml", `name: button
base: "inline-flex px-2 px-4"
variants:
  size:
    sm: "h-8"
defaults: {size: sm}
`)
	writeFile(t, "page.templ", `<div class="flex p-2 p-4"></div>`+"\n")

	out, err := execute(t, "check", "--print-linter-name=false")
	require.NoError(t, err)
	assert.Contains(t, out, `button.variants.yaml:2:20: class "px-2" is overridden by "px-4"`)
	assert.Contains(t, out, `page.templ:1:18: class "p-2" is overridden by "p-4"`)
	assert.Contains(t, out, "2 issues:")

	_, err = execute(t, "check", "--strict")
	assert.ErrorIs(t, err, errCheckFailed)

	out, err = execute(t, "check", "--quiet", "--sources", "none/*.templ")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCheckSchemaError(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, "button.variants.yaml", "name: button\ncolor: red\n")

	out, err := execute(t, "check", "--output-format", "json")
	assert.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, out, `"message": "unknown schema key \"color\""`)
}

func TestGenerate(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, "button.variants.yaml", buttonSchema)

	out, err := execute(t, "generate", "-o", "gen/variants_gen.go")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated gen/variants_gen.go")
	assert.Contains(t, out, "Constants: 4")

	data, err := os.ReadFile("gen/variants_gen.go")
	require.NoError(t, err)
	assert.Contains(t, string(data), "ButtonVariantOutline")

	_, err = execute(t, "generate", "missing/*.yaml")
	assert.Error(t, err)
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, "init")
	require.NoError(t, err)

	data, err := os.ReadFile(defaultConfigFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "schemas:")
	assert.Contains(t, string(data), "generate:")
	assert.Contains(t, string(data), "check:")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, defaultConfigFile, "existing")

	_, err := execute(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, defaultConfigFile, "existing")

	_, err := execute(t, "init", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(defaultConfigFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "package: ui")
}

func TestInitCommand_RepairsMalformedConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	writeFile(t, defaultConfigFile, "schemas: [unclosed\n")

	_, err := execute(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	out, err := execute(t, "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Created "+defaultConfigFile)

	_, err = execute(t, "version")
	assert.NoError(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "cssvariant dev\n", out)
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "cssvariant")

	_, err = execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "version", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}
