package cssvariant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newToggleChannel() *Channel {
	return NewChannel("toggle-group", Selection{"variant": "default", "size": "md"})
}

func TestChannelUnpublished(t *testing.T) {
	ch := newToggleChannel()
	ctx := context.Background()

	_, ok := ch.Published(ctx)
	assert.False(t, ok)
	assert.Equal(t, Selection{"variant": "default", "size": "md"}, ch.Read(ctx, nil))
}

func TestChannelReadPrecedence(t *testing.T) {
	ch := newToggleChannel()
	ctx := ch.Publish(context.Background(), Selection{"variant": "outline"})

	tests := []struct {
		name  string
		local Selection
		want  Selection
	}{
		{
			name:  "inherit one group, override another",
			local: Selection{"size": "sm"},
			want:  Selection{"variant": "outline", "size": "sm"},
		},
		{
			name:  "local wins over inherited",
			local: Selection{"variant": "ghost"},
			want:  Selection{"variant": "ghost", "size": "md"},
		},
		{
			name:  "empty local value is not explicit",
			local: Selection{"variant": ""},
			want:  Selection{"variant": "outline", "size": "md"},
		},
		{
			name:  "local only groups kept",
			local: Selection{"pressed": "true"},
			want:  Selection{"variant": "outline", "size": "md", "pressed": "true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ch.Read(ctx, tt.local))
		})
	}
}

func TestChannelNestedShadowing(t *testing.T) {
	ch := newToggleChannel()
	outer := ch.Publish(context.Background(), Selection{"variant": "outline", "size": "lg"})
	inner := ch.Publish(outer, Selection{"size": "sm"})

	assert.Equal(t, Selection{"variant": "default", "size": "sm"}, ch.Read(inner, nil))
	assert.Equal(t, Selection{"variant": "outline", "size": "lg"}, ch.Read(outer, nil))
}

func TestChannelPublishStable(t *testing.T) {
	ch := newToggleChannel()
	ctx := ch.Publish(context.Background(), Selection{"variant": "outline"})

	same := ch.Publish(ctx, Selection{"variant": "outline"})
	assert.True(t, same == ctx)

	changed := ch.Publish(ctx, Selection{"variant": "ghost"})
	assert.False(t, changed == ctx)
}

func TestChannelPublishCopies(t *testing.T) {
	ch := newToggleChannel()
	values := Selection{"variant": "outline"}
	ctx := ch.Publish(context.Background(), values)
	values["variant"] = "mutated"

	published, ok := ch.Published(ctx)
	require.True(t, ok)
	assert.Equal(t, Selection{"variant": "outline"}, published)

	published["variant"] = "again"
	assert.Equal(t, "outline", ch.Read(ctx, nil)["variant"])
}

func TestChannelsAreIndependent(t *testing.T) {
	toggles := newToggleChannel()
	buttons := NewChannel("button-group", Selection{"size": "md"})

	ctx := toggles.Publish(context.Background(), Selection{"size": "lg"})
	assert.Equal(t, Selection{"size": "md"}, buttons.Read(ctx, nil))
	assert.Equal(t, "toggle-group", toggles.Name())
}
