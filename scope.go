package cssvariant

import "context"

// Channel carries variant values from a container to its descendants
// through a context.Context. A descendant reads the nearest published
// values only; outer publishes are shadowed, never merged.
type Channel struct {
	name     string
	defaults Selection
}

type channelKey struct{ ch *Channel }

// NewChannel returns a channel whose readers fall back to defaults when
// nothing is published.
func NewChannel(name string, defaults Selection) *Channel {
	return &Channel{name: name, defaults: defaults.Clone()}
}

// Name returns the channel name.
func (ch *Channel) Name() string { return ch.name }

// Defaults returns a copy of the unpublished values.
func (ch *Channel) Defaults() Selection { return ch.defaults.Clone() }

// Publish returns a context carrying a copy of values. When the nearest
// published values already equal values, ctx is returned as is.
func (ch *Channel) Publish(ctx context.Context, values Selection) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if cur, ok := ch.lookup(ctx); ok && cur.Equal(values) {
		return ctx
	}
	snapshot := values.Clone()
	if snapshot == nil {
		snapshot = Selection{}
	}
	return context.WithValue(ctx, channelKey{ch}, snapshot)
}

// Published returns a copy of the nearest published values.
func (ch *Channel) Published(ctx context.Context) (Selection, bool) {
	values, ok := ch.lookup(ctx)
	if !ok {
		return nil, false
	}
	return values.Clone(), true
}

// Read resolves the values for one descendant. For every group a non-empty
// local value wins, then the nearest published value, then the channel
// default. Groups only present in local are kept.
func (ch *Channel) Read(ctx context.Context, local Selection) Selection {
	out := make(Selection, len(ch.defaults)+len(local))
	for k, v := range ch.defaults {
		out[k] = v
	}
	if inherited, ok := ch.lookup(ctx); ok {
		for k, v := range inherited {
			if v != "" {
				out[k] = v
			}
		}
	}
	for k, v := range local {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

func (ch *Channel) lookup(ctx context.Context) (Selection, bool) {
	if ctx == nil {
		return nil, false
	}
	values, ok := ctx.Value(channelKey{ch}).(Selection)
	return values, ok
}
