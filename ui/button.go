package ui

import "github.com/yacobolo/cssvariant"

// Button variants and sizes.
const (
	ButtonPrimary   = "primary"
	ButtonSecondary = "secondary"
	ButtonOutline   = "outline"
	ButtonGhost     = "ghost"
	ButtonDanger    = "danger"
	ButtonLink      = "link"
)

// Button is the catalog button.
var Button = newComponent("button", cssvariant.MustSchema(
	cssvariant.Named("button"),
	cssvariant.Base(
		"inline-flex items-center justify-center gap-2",
		"rounded-xl font-medium tracking-tight",
		"transition-all duration-200 ease-out",
		"outline-none focus-visible:outline-2 focus-visible:outline-offset-2",
		"disabled:pointer-events-none disabled:opacity-40",
		"select-none whitespace-nowrap",
		"[&_svg]:pointer-events-none [&_svg]:shrink-0",
	),
	cssvariant.Group("variant", cssvariant.Options{
		ButtonPrimary: []string{
			"bg-brand text-brand-on-emphasis",
			"hover:bg-brand-emphasis",
			"active:scale-[0.98]",
			"focus-visible:outline-brand-emphasis",
			"shadow-sm hover:shadow-md",
		},
		ButtonSecondary: []string{
			"bg-surface-secondary text-content-primary",
			"hover:bg-surface-tertiary",
			"active:scale-[0.98]",
			"focus-visible:outline-border-emphasis",
			"border border-border-default",
		},
		ButtonOutline: []string{
			"bg-transparent text-content-primary",
			"border-2 border-border-default",
			"hover:bg-surface-secondary hover:border-border-emphasis",
			"active:scale-[0.98]",
			"focus-visible:outline-border-emphasis",
		},
		ButtonGhost: []string{
			"bg-transparent text-content-primary",
			"hover:bg-surface-secondary",
			"active:bg-surface-tertiary",
			"focus-visible:outline-border-emphasis",
		},
		ButtonDanger: []string{
			"bg-danger text-white",
			"hover:bg-danger-emphasis",
			"active:scale-[0.98]",
			"focus-visible:outline-danger-emphasis",
			"shadow-sm hover:shadow-md",
		},
		ButtonLink: []string{
			"bg-transparent text-interactive",
			"hover:text-interactive-hover underline-offset-4",
			"hover:underline",
			"focus-visible:outline-interactive",
		},
	}),
	cssvariant.Group("size", cssvariant.Options{
		"sm":      "h-8 px-3 text-sm gap-1.5 rounded-lg [&_svg]:size-3.5",
		"md":      "h-10 px-4 text-sm gap-2 [&_svg]:size-4",
		"lg":      "h-12 px-6 text-base gap-2.5 [&_svg]:size-5",
		"xl":      "h-14 px-8 text-lg gap-3 [&_svg]:size-6",
		"icon-sm": "size-8 p-0 rounded-lg [&_svg]:size-4",
		"icon-md": "size-10 p-0 [&_svg]:size-5",
		"icon-lg": "size-12 p-0 [&_svg]:size-6",
		"icon-xl": "size-14 p-0 [&_svg]:size-7",
	}),
	cssvariant.Default("variant", ButtonPrimary),
	cssvariant.Default("size", "md"),
))
