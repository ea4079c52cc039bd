package cssvariant

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newButtonSchema(t *testing.T, extra ...SchemaOption) *Schema {
	t.Helper()

	opts := []SchemaOption{
		Named("button"),
		Base("inline-flex items-center"),
		Group("variant", Options{
			"primary": "bg-primary text-white",
			"outline": []string{"border border-input", "bg-transparent"},
		}),
		Group("size", Options{
			"sm": "h-8 px-3 text-xs",
			"lg": "h-11 px-8",
		}),
		Default("variant", "primary"),
		Default("size", "sm"),
	}
	s, err := NewSchema(append(opts, extra...)...)
	require.NoError(t, err)
	return s
}

func TestSchemaClassScenario(t *testing.T) {
	s := newButtonSchema(t)

	got := s.Class(Selection{"variant": "outline"}, "my-custom-class")
	assert.Equal(t, "inline-flex items-center border border-input bg-transparent h-8 px-3 text-xs my-custom-class", got)
}

func TestSchemaOverridePadding(t *testing.T) {
	s := MustSchema(Base("px-2 py-1"))

	got := s.Class(nil, "px-4")
	assert.Contains(t, got, "px-4")
	assert.NotContains(t, got, "px-2")
}

func TestResolveDefaultFallback(t *testing.T) {
	s := newButtonSchema(t)

	assert.Equal(t, s.Resolve(s.Defaults()), s.Resolve(Selection{}))
	assert.Equal(t, s.Resolve(s.Defaults()), s.Resolve(nil))
}

func TestResolveInvalidOptionFallback(t *testing.T) {
	if DebugAssertions {
		t.Skip("invalid options panic in debug builds")
	}
	s := newButtonSchema(t)

	tests := []struct {
		name string
		sel  Selection
	}{
		{name: "unknown option", sel: Selection{"size": "not-a-real-option"}},
		{name: "empty option", sel: Selection{"size": ""}},
		{name: "case differs", sel: Selection{"size": "SM"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, s.Resolve(Selection{}), s.Resolve(tt.sel))
		})
	}
}

func TestResolveOrderAndNoMerge(t *testing.T) {
	s := MustSchema(
		Base("px-2"),
		Group("size", Options{"md": "px-4"}),
		Default("size", "md"),
	)

	assert.Equal(t, []string{"px-2", "px-4"}, s.Resolve(nil).Raw())
	assert.Equal(t, "px-4", s.Class(nil))
}

func TestResolveCompoundRules(t *testing.T) {
	s := newButtonSchema(t,
		Compound(When{"variant": {"outline"}, "size": {"lg"}}, "px-10"),
		Compound(When{"variant": {"primary"}}, "shadow-sm"),
		Compound(When{"size": {"sm", "lg"}}, "gap-2"),
	)

	tests := []struct {
		name string
		sel  Selection
		want string
	}{
		{
			name: "defaults trigger rules",
			sel:  nil,
			want: "inline-flex items-center bg-primary text-white h-8 px-3 text-xs shadow-sm gap-2",
		},
		{
			name: "two group rule",
			sel:  Selection{"variant": "outline", "size": "lg"},
			want: "inline-flex items-center border border-input bg-transparent h-11 px-10 gap-2",
		},
		{
			name: "partial match does not apply",
			sel:  Selection{"variant": "outline"},
			want: "inline-flex items-center border border-input bg-transparent h-8 px-3 text-xs gap-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Class(tt.sel))
		})
	}
}

func TestCompoundMatchesResolvedSelection(t *testing.T) {
	if DebugAssertions {
		t.Skip("invalid options panic in debug builds")
	}
	s := newButtonSchema(t, Compound(When{"variant": {"primary"}}, "ring-1"))

	assert.Contains(t, s.Class(Selection{"variant": "bogus"}), "ring-1")
}

func TestFlagGroup(t *testing.T) {
	s := MustSchema(
		Base("px-2"),
		Flag("disabled", "opacity-50", "pointer-events-none"),
	)

	assert.Equal(t, Selection{"disabled": "false"}, s.Defaults())
	assert.Equal(t, "px-2", s.Class(nil))
	assert.Equal(t, "px-2 opacity-50 pointer-events-none", s.Class(Selection{"disabled": Bool(true)}))
	assert.Equal(t, "px-2", s.Class(Selection{"disabled": Bool(false)}))
}

func TestFlagDefaultCanBeOverridden(t *testing.T) {
	s := MustSchema(
		Default("interactive", "true"),
		Flag("interactive", "cursor-pointer"),
	)
	assert.Equal(t, "cursor-pointer", s.Class(nil))
}

func TestSchemaIntrospection(t *testing.T) {
	s := newButtonSchema(t)

	assert.Equal(t, "button", s.Name())
	assert.Equal(t, []string{"variant", "size"}, s.Groups())
	assert.Equal(t, []string{"lg", "sm"}, s.Options("size"))
	assert.Nil(t, s.Options("missing"))
	assert.Equal(t, Selection{"variant": "primary", "size": "sm"}, s.Defaults())

	frag, ok := s.Fragment("variant", "outline")
	require.True(t, ok)
	assert.Equal(t, "border border-input bg-transparent", frag.String())

	_, ok = s.Fragment("variant", "ghost")
	assert.False(t, ok)
}

func TestDefaultsReturnsCopy(t *testing.T) {
	s := newButtonSchema(t)
	d := s.Defaults()
	d["size"] = "lg"

	assert.Equal(t, "sm", s.Defaults()["size"])
}

func TestResolvedDropsUnknownGroups(t *testing.T) {
	s := newButtonSchema(t)

	got := s.Resolved(Selection{"size": "lg", "tone": "loud"})
	assert.Equal(t, Selection{"variant": "primary", "size": "lg"}, got)
}

func TestResolveDeterministic(t *testing.T) {
	s := newButtonSchema(t, Compound(When{"size": {"lg"}}, "tracking-wide"))
	sel := Selection{"variant": "outline", "size": "lg"}

	first := s.Class(sel, "mt-2")
	for i := 0; i < 20; i++ {
		require.Equal(t, first, s.Class(sel, "mt-2"))
	}
}

func TestNewSchemaErrors(t *testing.T) {
	tests := []struct {
		name   string
		opts   []SchemaOption
		issues []SchemaIssue
	}{
		{
			name: "missing default",
			opts: []SchemaOption{Group("size", Options{"sm": "h-8"})},
			issues: []SchemaIssue{
				{Group: "size", Message: "no default option"},
			},
		},
		{
			name: "default names unknown option",
			opts: []SchemaOption{Group("size", Options{"sm": "h-8"}), Default("size", "xl")},
			issues: []SchemaIssue{
				{Group: "size", Option: "xl", Message: "default is not an option of the group"},
			},
		},
		{
			name: "default for undeclared group",
			opts: []SchemaOption{Group("size", Options{"sm": "h-8"}), Default("size", "sm"), Default("tone", "loud")},
			issues: []SchemaIssue{
				{Group: "tone", Message: "default for undeclared group"},
			},
		},
		{
			name: "compound with unknown group",
			opts: []SchemaOption{
				Group("size", Options{"sm": "h-8"}), Default("size", "sm"),
				Compound(When{"tone": {"loud"}}, "font-bold"),
			},
			issues: []SchemaIssue{
				{Group: "tone", Compound: 1, Message: "compound rule 1 names an undeclared group"},
			},
		},
		{
			name: "compound with unknown option",
			opts: []SchemaOption{
				Group("size", Options{"sm": "h-8"}), Default("size", "sm"),
				Compound(When{"size": {"sm"}}, "px-1"),
				Compound(When{"size": {"sm", "huge"}}, "px-2"),
			},
			issues: []SchemaIssue{
				{Group: "size", Option: "huge", Compound: 2, Message: "compound rule 2 names an unknown option"},
			},
		},
		{
			name: "duplicate and empty groups",
			opts: []SchemaOption{
				Group("size", Options{"sm": "h-8"}), Default("size", "sm"),
				Group("size", Options{"lg": "h-11"}),
				Group("tone", nil),
			},
			issues: []SchemaIssue{
				{Group: "size", Message: "group declared twice"},
				{Group: "tone", Message: "group has no options"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSchema(tt.opts...)
			require.Error(t, err)
			assert.Nil(t, s)

			var schemaErr *SchemaError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, tt.issues, schemaErr.Issues)
		})
	}
}

func TestSchemaErrorMessage(t *testing.T) {
	_, err := NewSchema(Named("card"), Group("size", Options{"sm": ""}), Default("size", "xl"))
	require.Error(t, err)
	assert.Equal(t, "invalid card: size=xl: default is not an option of the group", err.Error())
}

func TestMustSchemaPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustSchema(Group("size", Options{"sm": "h-8"}))
	})
}

func TestWithClassifier(t *testing.T) {
	c := NewClassifier(WithExact(map[string]string{"btn-tight": "padding-x"}))
	s := MustSchema(WithClassifier(c), Base("px-4"))

	assert.Equal(t, "btn-tight", s.Class(nil, "btn-tight"))
	assert.Same(t, c, s.Classifier())
}

func TestSelectionHelpers(t *testing.T) {
	var nilSel Selection
	assert.Nil(t, nilSel.Clone())
	assert.True(t, nilSel.Equal(Selection{}))
	assert.True(t, Selection{"a": "1"}.Equal(Selection{"a": "1"}))
	assert.False(t, Selection{"a": "1"}.Equal(Selection{"a": "2"}))
	assert.False(t, Selection{"a": "1"}.Equal(Selection{"b": "1"}))
	assert.Equal(t, "true", Bool(true))
	assert.Equal(t, "false", Bool(false))
}
