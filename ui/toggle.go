package ui

import "github.com/yacobolo/cssvariant"

var (
	toggleBase = []string{
		"inline-flex items-center justify-center gap-2",
		"rounded-xl",
		"text-sm font-medium",
		"transition-all duration-200",
		"outline-none",
		"disabled:pointer-events-none disabled:opacity-50",
		"[&>svg]:size-4 [&>svg]:shrink-0",
	}

	toggleVariants = cssvariant.Options{
		"default": []string{
			"bg-transparent",
			"hover:bg-surface-secondary",
			"data-[state=on]:bg-surface-tertiary data-[state=on]:text-content-primary",
		},
		"outline": []string{
			"border-2 border-border-default bg-transparent",
			"hover:bg-surface-secondary",
			"data-[state=on]:bg-brand data-[state=on]:text-brand-on-emphasis data-[state=on]:border-brand",
		},
	}

	toggleSizes = cssvariant.Options{
		"default": "h-10 px-3 min-w-10",
		"sm":      "h-8 px-2.5 min-w-8",
		"lg":      "h-12 px-4 min-w-12",
	}

	// Gap between grouped toggles; "0" joins them into one segmented control.
	toggleSpacing = cssvariant.Options{
		"0": "gap-0",
		"1": "gap-1",
		"2": "gap-2",
		"3": "gap-3",
		"4": "gap-4",
	}
)

// ToggleGroupChannel carries variant, size and spacing from a toggle group
// to its items.
var ToggleGroupChannel = cssvariant.NewChannel("toggle-group", cssvariant.Selection{
	"variant": "default",
	"size":    "default",
	"spacing": "0",
})

var (
	// Toggle is a standalone two-state button.
	Toggle = newComponent("toggle", cssvariant.MustSchema(
		cssvariant.Named("toggle"),
		cssvariant.Base(toggleBase),
		cssvariant.Group("variant", toggleVariants),
		cssvariant.Group("size", toggleSizes),
		cssvariant.Default("variant", "default"),
		cssvariant.Default("size", "default"),
	))

	// ToggleGroup lays out toggles and publishes its variants to them.
	ToggleGroup = newComponent("toggle-group", cssvariant.MustSchema(
		cssvariant.Named("toggle-group"),
		cssvariant.Base("flex w-fit items-center"),
		cssvariant.Group("variant", cssvariant.Options{"default": nil, "outline": nil}),
		cssvariant.Group("size", cssvariant.Options{"default": nil, "sm": nil, "lg": nil}),
		cssvariant.Group("spacing", toggleSpacing),
		cssvariant.Default("variant", "default"),
		cssvariant.Default("size", "default"),
		cssvariant.Default("spacing", "0"),
		cssvariant.Compound(cssvariant.When{"spacing": {"0"}, "variant": {"outline"}},
			"p-1 bg-surface-secondary rounded-xl"),
	), publishesTo(ToggleGroupChannel))

	// ToggleGroupItem renders like Toggle with the values published by the
	// enclosing group. Explicit values on the item win.
	ToggleGroupItem = newComponent("toggle-group-item", cssvariant.MustSchema(
		cssvariant.Named("toggle-group-item"),
		cssvariant.Base(toggleBase),
		cssvariant.Group("variant", toggleVariants),
		cssvariant.Group("size", toggleSizes),
		cssvariant.Group("spacing", cssvariant.Options{"0": nil, "1": nil, "2": nil, "3": nil, "4": nil}),
		cssvariant.Default("variant", "default"),
		cssvariant.Default("size", "default"),
		cssvariant.Default("spacing", "0"),
		cssvariant.Compound(cssvariant.When{}, "relative focus:z-10"),
		cssvariant.Compound(cssvariant.When{"spacing": {"0"}},
			"rounded-lg first:rounded-l-lg last:rounded-r-lg"),
	), readsFrom(ToggleGroupChannel))
)
