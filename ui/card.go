package ui

import "github.com/yacobolo/cssvariant"

// Card and its parts. The card itself has glass, elevated and interactive
// flags.
var (
	Card = newComponent("card", cssvariant.MustSchema(
		cssvariant.Named("card"),
		cssvariant.Base(
			"flex flex-col",
			"rounded-2xl",
			"bg-surface",
			"border border-border-default",
			"overflow-hidden",
		),
		cssvariant.Flag("glass",
			"backdrop-blur-xl backdrop-saturate-150",
			"bg-surface/80",
			"border-border-subtle",
		),
		cssvariant.Flag("elevated", "shadow-lg"),
		cssvariant.Flag("interactive",
			"transition-all duration-200 ease-out",
			"hover:shadow-xl hover:scale-[1.02]",
			"hover:border-border-emphasis",
			"cursor-pointer",
			"active:scale-[0.99]",
		),
	))

	CardHeader = newComponent("card-header", cssvariant.MustSchema(
		cssvariant.Named("card-header"),
		cssvariant.Base("flex flex-col gap-2 p-6", "border-b border-border-subtle"),
	))

	CardTitle = newComponent("card-title", cssvariant.MustSchema(
		cssvariant.Named("card-title"),
		cssvariant.Base("text-xl font-semibold tracking-tight", "text-content-primary", "leading-tight"),
	))

	CardDescription = newComponent("card-description", cssvariant.MustSchema(
		cssvariant.Named("card-description"),
		cssvariant.Base("text-sm font-normal", "text-content-secondary", "leading-relaxed"),
	))

	CardContent = newComponent("card-content", cssvariant.MustSchema(
		cssvariant.Named("card-content"),
		cssvariant.Base("p-6", "flex-1"),
	))

	CardFooter = newComponent("card-footer", cssvariant.MustSchema(
		cssvariant.Named("card-footer"),
		cssvariant.Base("flex items-center gap-3 p-6", "border-t border-border-subtle", "bg-surface-secondary/50"),
	))
)
