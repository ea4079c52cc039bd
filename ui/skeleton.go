package ui

import "github.com/yacobolo/cssvariant"

const skeletonBase = "bg-surface-tertiary animate-pulse"

var (
	// Skeleton is a loading placeholder.
	Skeleton = newComponent("skeleton", cssvariant.MustSchema(
		cssvariant.Named("skeleton"),
		cssvariant.Base(skeletonBase),
		cssvariant.Group("variant", cssvariant.Options{
			"default": "rounded-xl",
			"text":    "rounded-lg h-4",
			"circle":  "rounded-full",
			"card":    "rounded-2xl",
		}),
		cssvariant.Default("variant", "default"),
	))

	// SkeletonText wraps a stack of text skeletons.
	SkeletonText = newComponent("skeleton-text", cssvariant.MustSchema(
		cssvariant.Named("skeleton-text"),
		cssvariant.Base("space-y-2"),
	))

	SkeletonCard = newComponent("skeleton-card", cssvariant.MustSchema(
		cssvariant.Named("skeleton-card"),
		cssvariant.Base(skeletonBase, "rounded-2xl", "p-6 space-y-4"),
	))

	SkeletonAvatar = newComponent("skeleton-avatar", cssvariant.MustSchema(
		cssvariant.Named("skeleton-avatar"),
		cssvariant.Base(skeletonBase, "rounded-full"),
		cssvariant.Group("size", cssvariant.Options{
			"sm": "size-8",
			"md": "size-10",
			"lg": "size-12",
			"xl": "size-16",
		}),
		cssvariant.Default("size", "md"),
	))
)

// DefaultSkeletonLines is the line count of a SkeletonText.
const DefaultSkeletonLines = 3

// SkeletonLines returns n text line elements, or DefaultSkeletonLines when
// n is not positive.
func SkeletonLines(n int) []Element {
	if n <= 0 {
		n = DefaultSkeletonLines
	}
	lines := make([]Element, n)
	for i := range lines {
		lines[i] = Skeleton.Render(cssvariant.Selection{"variant": "text"})
	}
	return lines
}

// SkeletonCardLines returns the heading and body lines of a SkeletonCard.
func SkeletonCardLines() []Element {
	text := cssvariant.Selection{"variant": "text"}
	return []Element{
		Skeleton.Render(text, "h-6 w-2/3"),
		Skeleton.Render(text, "h-4 w-full"),
		Skeleton.Render(text, "h-4 w-4/5"),
	}
}
