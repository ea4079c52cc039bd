package ui

import "github.com/yacobolo/cssvariant"

var (
	// ButtonGroup joins adjacent buttons into one control.
	ButtonGroup = newComponent("button-group", cssvariant.MustSchema(
		cssvariant.Named("button-group"),
		cssvariant.Base(
			"flex w-fit items-stretch",
			"[&>*]:focus-visible:z-10 [&>*]:focus-visible:relative",
		),
		cssvariant.Group("orientation", cssvariant.Options{
			"horizontal": []string{
				"[&>*:not(:first-child)]:rounded-l-none",
				"[&>*:not(:first-child)]:border-l-0",
				"[&>*:not(:last-child)]:rounded-r-none",
			},
			"vertical": []string{
				"flex-col",
				"[&>*:not(:first-child)]:rounded-t-none",
				"[&>*:not(:first-child)]:border-t-0",
				"[&>*:not(:last-child)]:rounded-b-none",
			},
		}),
		cssvariant.Default("orientation", "horizontal"),
	))

	ButtonGroupText = newComponent("button-group-text", cssvariant.MustSchema(
		cssvariant.Named("button-group-text"),
		cssvariant.Base(
			"flex items-center gap-2",
			"px-4 py-2",
			"text-sm font-medium",
			"bg-surface-secondary",
			"border-2 border-border-default",
			"first:rounded-l-xl last:rounded-r-xl",
			"[&_svg]:size-4 [&_svg]:shrink-0",
		),
	))

	ButtonGroupSeparator = newComponent("button-group-separator", cssvariant.MustSchema(
		cssvariant.Named("button-group-separator"),
		cssvariant.Base(
			"relative self-stretch",
			"data-[orientation=vertical]:h-auto data-[orientation=vertical]:w-px",
			"data-[orientation=horizontal]:w-auto data-[orientation=horizontal]:h-px",
		),
		cssvariant.Group("orientation", cssvariant.Options{"vertical": nil, "horizontal": nil}),
		cssvariant.Default("orientation", "vertical"),
	))
)
