package cssvariant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		modifiers []string
		group     string
		important bool
		unknown   bool
	}{
		{name: "padding x", raw: "px-4", group: "padding-x"},
		{name: "padding all", raw: "p-2", group: "padding"},
		{name: "single modifier", raw: "hover:px-4", modifiers: []string{"hover"}, group: "padding-x"},
		{name: "stacked modifiers", raw: "md:hover:bg-red-500", modifiers: []string{"md", "hover"}, group: "bg-color"},
		{name: "leading important", raw: "!px-4", group: "padding-x", important: true},
		{name: "important after modifier", raw: "hover:!px-4", modifiers: []string{"hover"}, group: "padding-x", important: true},
		{name: "trailing important", raw: "px-4!", group: "padding-x", important: true},
		{name: "negative value", raw: "-mt-2", group: "margin-top"},
		{name: "opacity postfix", raw: "bg-black/50", group: "bg-color"},
		{name: "line height postfix", raw: "text-sm/6", group: "font-size"},
		{name: "font size", raw: "text-lg", group: "font-size"},
		{name: "text color", raw: "text-red-500", group: "text-color"},
		{name: "text align", raw: "text-center", group: "text-align"},
		{name: "arbitrary width", raw: "w-[calc(100%-2rem)]", group: "width"},
		{name: "arbitrary color", raw: "hover:bg-[#fff]", modifiers: []string{"hover"}, group: "bg-color"},
		{name: "arbitrary image", raw: "bg-[url(/img.png)]", group: "bg-image"},
		{name: "arbitrary length font size", raw: "text-[length:var(--size)]", group: "font-size"},
		{name: "data attribute modifier", raw: "data-[state=open]:bg-accent", modifiers: []string{"data-[state=open]"}, group: "bg-color"},
		{name: "child selector modifier", raw: "[&_svg]:size-4", modifiers: []string{"[&_svg]"}, group: "size"},
		{name: "named group modifier", raw: "group-hover/item:opacity-100", modifiers: []string{"group-hover/item"}, group: "opacity"},
		{name: "arbitrary property", raw: "[mask-type:luminance]", group: "arbitrary:mask-type"},
		{name: "arbitrary content", raw: "before:content-['']", modifiers: []string{"before"}, group: "content"},
		{name: "radius", raw: "rounded-xl", group: "rounded"},
		{name: "radius side", raw: "rounded-t-lg", group: "rounded-top"},
		{name: "bare border", raw: "border", group: "border-width"},
		{name: "border width", raw: "border-2", group: "border-width"},
		{name: "border color", raw: "border-red-500", group: "border-color"},
		{name: "border style", raw: "border-dashed", group: "border-style"},
		{name: "bare border side", raw: "border-t", group: "border-width-top"},
		{name: "display keyword", raw: "flex", group: "display"},
		{name: "flex direction", raw: "flex-col", group: "flex-direction"},
		{name: "flex shorthand", raw: "flex-1", group: "flex"},
		{name: "shadow size", raw: "shadow-lg", group: "shadow"},
		{name: "shadow color", raw: "shadow-red-500/20", group: "shadow-color"},
		{name: "ring width", raw: "ring-2", group: "ring-width"},
		{name: "ring offset", raw: "ring-offset-2", group: "ring-offset-width"},
		{name: "font weight", raw: "font-semibold", group: "font-weight"},
		{name: "font family", raw: "font-mono", group: "font-family"},
		{name: "space between", raw: "space-x-4", group: "space-x"},
		{name: "space reverse", raw: "space-x-reverse", group: "space-x-reverse"},
		{name: "translate fraction", raw: "translate-x-1/2", group: "translate-x"},
		{name: "scroll margin", raw: "scroll-mt-4", group: "scroll-margin-top"},
		{name: "backdrop filter", raw: "backdrop-blur-sm", group: "backdrop-blur"},
		{name: "outline none", raw: "outline-none", group: "outline-style"},
		{name: "transition", raw: "transition-colors", group: "transition"},
		{name: "position keyword", raw: "absolute", group: "position"},
		{name: "ease", raw: "ease-in-out", group: "ease"},
		{name: "unknown class", raw: "my-custom-class", group: "unknown:my", unknown: true},
		{name: "unknown single word", raw: "btn", group: "unknown:btn", unknown: true},
		{name: "escaped colon", raw: `hover\:foo`, group: `unknown:hover\:foo`, unknown: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := Classify(tt.raw)
			assert.Equal(t, tt.raw, tok.Raw())
			assert.Equal(t, tt.modifiers, tok.Modifiers())
			assert.Equal(t, tt.group, tok.Group())
			assert.Equal(t, tt.important, tok.Important())
			assert.Equal(t, tt.unknown, tok.Unknown())
		})
	}
}

func TestTokenKey(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "recognized", raw: "px-4", want: "|padding-x"},
		{name: "with modifiers", raw: "md:hover:px-4", want: "md:hover|padding-x"},
		{name: "important shares key", raw: "!px-2", want: "|padding-x"},
		{name: "unknown keys on raw", raw: "my-custom-class", want: "|=my-custom-class"},
		{name: "unknown with modifier", raw: "hover:foo", want: "hover|=hover:foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.raw).Key())
		})
	}
}

func TestModifiersReturnsCopy(t *testing.T) {
	tok := Classify("hover:px-4")
	mods := tok.Modifiers()
	mods[0] = "focus"

	assert.Equal(t, []string{"hover"}, tok.Modifiers())
}

func TestClassifierWithExact(t *testing.T) {
	c := NewClassifier(WithExact(map[string]string{
		"btn-primary": "bg-color",
		"stack":       "display",
		"":            "ignored",
	}))

	tests := []struct {
		name    string
		raw     string
		group   string
		unknown bool
	}{
		{name: "exact entry", raw: "btn-primary", group: "bg-color"},
		{name: "exact entry with modifier", raw: "hover:stack", group: "display"},
		{name: "built-in still applies", raw: "px-2", group: "padding-x"},
		{name: "not in table", raw: "btn-secondary", group: "unknown:btn", unknown: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := c.Classify(tt.raw)
			assert.Equal(t, tt.group, tok.Group())
			assert.Equal(t, tt.unknown, tok.Unknown())
		})
	}

	// The shared classifier is unaffected.
	assert.True(t, Classify("btn-primary").Unknown())
}

func TestSplitModifiers(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		mods []string
		base string
	}{
		{name: "no modifiers", raw: "px-4", base: "px-4"},
		{name: "two modifiers", raw: "dark:hover:px-4", mods: []string{"dark", "hover"}, base: "px-4"},
		{name: "colon in brackets", raw: "[&:hover]:px-4", mods: []string{"[&:hover]"}, base: "px-4"},
		{name: "colon in parentheses", raw: "supports-(display:grid):grid", mods: []string{"supports-(display:grid)"}, base: "grid"},
		{name: "escaped colon", raw: `a\:b`, base: `a\:b`},
		{name: "empty base", raw: "hover:", mods: []string{"hover"}, base: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mods, base := splitModifiers(tt.raw)
			assert.Equal(t, tt.mods, mods)
			assert.Equal(t, tt.base, base)
		})
	}
}

func TestGroupForProperties(t *testing.T) {
	tests := []struct {
		name  string
		props []string
		want  string
	}{
		{name: "single known property", props: []string{"color"}, want: "text-color"},
		{name: "case and space", props: []string{" Background-Color "}, want: "bg-color"},
		{name: "axis pair", props: []string{"padding-right", "padding-left"}, want: "padding-x"},
		{name: "vendor and custom ignored", props: []string{"-webkit-appearance", "--tw-ring", "appearance"}, want: "appearance"},
		{name: "unknown property", props: []string{"zoom"}, want: "css:zoom"},
		{name: "several properties", props: []string{"display", "gap", "display"}, want: "css:display,gap"},
		{name: "nothing usable", props: []string{"--x"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GroupForProperties(tt.props))
		})
	}
}
