// Package ui is a catalog of component schemas built on cssvariant.
//
// Every component renders to an Element: the slot name, the final class
// string, and data attributes mirroring the resolved variants. Templates
// forward the Element onto whatever primitive they render.
package ui

import (
	"context"
	"html"
	"sort"
	"strings"

	"github.com/yacobolo/cssvariant"
)

// Element is the render contract handed to a primitive.
type Element struct {
	Slot  string
	Class string
	Data  map[string]string
}

// Attributes flattens the element into HTML attributes.
func (e Element) Attributes() map[string]string {
	attrs := make(map[string]string, len(e.Data)+2)
	if e.Slot != "" {
		attrs["data-slot"] = e.Slot
	}
	if e.Class != "" {
		attrs["class"] = e.Class
	}
	for k, v := range e.Data {
		attrs["data-"+k] = v
	}
	return attrs
}

// HTML renders the attributes in sorted order, escaped for a start tag.
func (e Element) HTML() string {
	attrs := e.Attributes()
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(attrs[k]))
		b.WriteByte('"')
	}
	return b.String()
}

// Component pairs a schema with its slot name. Items of compound
// components read their variants from a Channel; containers publish them.
type Component struct {
	name      string
	slot      string
	schema    *cssvariant.Schema
	reads     *cssvariant.Channel
	publishes *cssvariant.Channel
}

type componentOption func(*Component)

func readsFrom(ch *cssvariant.Channel) componentOption {
	return func(c *Component) { c.reads = ch }
}

func publishesTo(ch *cssvariant.Channel) componentOption {
	return func(c *Component) { c.publishes = ch }
}

func newComponent(name string, schema *cssvariant.Schema, opts ...componentOption) *Component {
	c := &Component{name: name, slot: name, schema: schema}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the catalog name ("card-header").
func (c *Component) Name() string { return c.name }

// Slot returns the data-slot value.
func (c *Component) Slot() string { return c.slot }

// Schema returns the component schema.
func (c *Component) Schema() *cssvariant.Schema { return c.schema }

// Part returns the part attached under name, or nil.
func (c *Component) Part(name string) *Component {
	part, _ := Parts.Part(c, name)
	return part
}

// Render resolves sel and merges class on top.
func (c *Component) Render(sel cssvariant.Selection, class ...any) Element {
	return c.element(sel, class)
}

// RenderContext is Render for items of a compound component: values the
// container published fill in every group sel leaves unset.
func (c *Component) RenderContext(ctx context.Context, sel cssvariant.Selection, class ...any) Element {
	if c.reads != nil {
		sel = c.reads.Read(ctx, sel)
	}
	return c.element(sel, class)
}

// Provide renders a container and publishes its resolved variants to the
// items below it.
func (c *Component) Provide(ctx context.Context, sel cssvariant.Selection, class ...any) (context.Context, Element) {
	el := c.element(sel, class)
	if c.publishes != nil {
		ctx = c.publishes.Publish(ctx, c.schema.Resolved(sel))
	}
	return ctx, el
}

func (c *Component) element(sel cssvariant.Selection, class []any) Element {
	resolved := c.schema.Resolved(sel)
	var data map[string]string
	if len(resolved) > 0 {
		data = make(map[string]string, len(resolved))
		for k, v := range resolved {
			data[k] = v
		}
	}
	return Element{
		Slot:  c.slot,
		Class: c.schema.Class(resolved, class...),
		Data:  data,
	}
}
