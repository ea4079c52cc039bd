package cssvariant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type classList []string

func (c classList) String() string {
	out := ""
	for i, s := range c {
		if i > 0 {
			out += " "
		}
		out += s
	}
	return out
}

func TestParseInputs(t *testing.T) {
	tests := []struct {
		name   string
		inputs []any
		want   []string
	}{
		{
			name:   "whitespace runs",
			inputs: []any{"  px-2 \t py-1\n m-1  "},
			want:   []string{"px-2", "py-1", "m-1"},
		},
		{
			name:   "nested arrays depth first",
			inputs: []any{"a", []any{"b", []any{"c", nil}, "d"}, []string{"e", "f g"}},
			want:   []string{"a", "b", "c", "d", "e", "f", "g"},
		},
		{
			name:   "falsy entries skipped",
			inputs: []any{nil, false, true, "", "x", If(false, "hidden"), If(true, "y")},
			want:   []string{"x", "y"},
		},
		{
			name:   "map keys sorted when true",
			inputs: []any{map[string]bool{"b": true, "a": true, "c": false}},
			want:   []string{"a", "b"},
		},
		{
			name:   "stringer",
			inputs: []any{classList{"px-2", "py-1"}},
			want:   []string{"px-2", "py-1"},
		},
		{
			name:   "sequence and token pass through",
			inputs: []any{Parse("a b"), Classify("c")},
			want:   []string{"a", "b", "c"},
		},
		{
			name:   "unsupported types skipped",
			inputs: []any{42, 3.5, "z"},
			want:   []string{"z"},
		},
		{
			name:   "nothing",
			inputs: nil,
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.inputs...)
			assert.Equal(t, tt.want, got.Raw())
		})
	}
}

func TestParseIdempotent(t *testing.T) {
	inputs := [][]any{
		{"px-2 hover:!py-1 my-custom-class"},
		{[]any{"inline-flex", If(true, "md:text-sm/6")}, "bg-black/50", "[mask-type:alpha]"},
		{"-mt-2 data-[state=open]:bg-accent [&_svg]:size-4 px-4!"},
		{""},
	}

	for _, in := range inputs {
		first := Parse(in...)
		again := Parse(first.String())
		require.Equal(t, first, again)
	}
}

func TestSequenceString(t *testing.T) {
	assert.Equal(t, "", Sequence(nil).String())
	assert.Equal(t, "px-2 py-1", Parse("px-2", []string{"py-1"}).String())
}

func TestIf(t *testing.T) {
	assert.Nil(t, If(false, "x"))
	assert.Equal(t, "x", If(true, "x"))
}
