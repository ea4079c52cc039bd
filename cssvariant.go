// Package cssvariant resolves component style variants into conflict-free
// utility class strings.
//
// A Schema declares the variant groups of one component, their option
// fragments, defaults, and compound rules:
//
//	var button = cssvariant.MustSchema(
//		cssvariant.Base("inline-flex items-center rounded-md"),
//		cssvariant.Group("variant", cssvariant.Options{
//			"primary": "bg-brand text-white",
//			"outline": "border bg-transparent",
//		}),
//		cssvariant.Group("size", cssvariant.Options{
//			"sm": "h-8 px-3",
//			"lg": "h-11 px-6",
//		}),
//		cssvariant.Default("variant", "primary"),
//		cssvariant.Default("size", "sm"),
//	)
//
//	button.Class(cssvariant.Selection{"variant": "outline"}, "px-4")
//	// "inline-flex items-center rounded-md border bg-transparent h-8 px-4"
//
// # Merging
//
// Merge and CN combine class sequences. Two classes conflict when their
// modifiers and property group match; the later one wins unless the
// earlier one is important. Classes the table does not recognize only
// collapse with identical text.
//
// # Propagation
//
// A Channel publishes variant values into a context.Context so items of a
// compound component inherit them unless they set their own.
//
// # Parts
//
// A Registry attaches named parts to a parent component at init time.
//
// Build with -tags cssvariant_debug to turn construction defects and
// invalid selections into panics.
package cssvariant
