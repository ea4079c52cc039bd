package ui

import "github.com/yacobolo/cssvariant"

// Alert and its parts.
var (
	Alert = newComponent("alert", cssvariant.MustSchema(
		cssvariant.Named("alert"),
		cssvariant.Base(
			"relative w-full rounded-xl",
			"px-4 py-3.5",
			"text-sm",
			"border-2",
			"flex gap-3 items-start",
		),
		cssvariant.Group("variant", cssvariant.Options{
			"default": "bg-surface-secondary border-border-default text-content-primary [&>svg]:text-content-secondary",
			"info":    "bg-brand-subtle border-brand/30 text-content-primary [&>svg]:text-brand",
			"success": "bg-success/10 border-success/30 text-content-primary [&>svg]:text-success",
			"warning": "bg-warning/10 border-warning/30 text-content-primary [&>svg]:text-warning",
			"danger":  "bg-danger/10 border-danger/30 text-content-primary [&>svg]:text-danger",
		}),
		cssvariant.Default("variant", "default"),
	))

	AlertIcon = newComponent("alert-icon", cssvariant.MustSchema(
		cssvariant.Named("alert-icon"),
		cssvariant.Base("shrink-0 [&>svg]:size-5"),
	))

	AlertTitle = newComponent("alert-title", cssvariant.MustSchema(
		cssvariant.Named("alert-title"),
		cssvariant.Base("font-semibold tracking-tight", "leading-tight", "mb-1"),
	))

	AlertDescription = newComponent("alert-description", cssvariant.MustSchema(
		cssvariant.Named("alert-description"),
		cssvariant.Base(
			"text-sm leading-relaxed",
			"[&>a]:underline [&>a]:underline-offset-2",
			"[&>a]:font-medium",
			"[&>a:hover]:text-interactive-hover",
		),
	))

	AlertContent = newComponent("alert-content", cssvariant.MustSchema(
		cssvariant.Named("alert-content"),
		cssvariant.Base("flex-1 flex flex-col"),
	))
)
