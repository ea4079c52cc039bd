package ui

import "github.com/yacobolo/cssvariant"

// Badge is a small status label.
var Badge = newComponent("badge", cssvariant.MustSchema(
	cssvariant.Named("badge"),
	cssvariant.Base(
		"inline-flex items-center justify-center gap-1.5",
		"px-2.5 py-0.5",
		"rounded-full",
		"text-xs font-medium",
		"border-2",
		"whitespace-nowrap",
		"transition-colors",
	),
	cssvariant.Group("variant", cssvariant.Options{
		"default": "bg-surface-secondary border-border-default text-content-primary",
		"primary": "bg-brand border-brand text-brand-on-emphasis",
		"success": "bg-success/10 border-success/30 text-success",
		"warning": "bg-warning/10 border-warning/30 text-warning",
		"danger":  "bg-danger/10 border-danger/30 text-danger",
		"outline": "bg-transparent border-border-default text-content-primary",
	}),
	cssvariant.Default("variant", "default"),
	cssvariant.Compound(cssvariant.When{}, "[&>svg]:size-3 [&>svg]:shrink-0"),
))
