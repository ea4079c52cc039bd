package cssvariant

import (
	"sort"
	"strings"
)

// rule maps the value part of a prefixed utility to a property group.
// A nil accept takes any non-empty value.
type rule struct {
	group  string
	accept valueFunc
}

func (r rule) matches(value string) bool {
	if r.accept == nil {
		return value != ""
	}
	return r.accept(value)
}

// utilityKeywords maps standalone utilities to their property group
var utilityKeywords = map[string]string{
	// Display
	"block":              "display",
	"inline-block":       "display",
	"inline":             "display",
	"flex":               "display",
	"inline-flex":        "display",
	"table":              "display",
	"inline-table":       "display",
	"table-caption":      "display",
	"table-cell":         "display",
	"table-column":       "display",
	"table-column-group": "display",
	"table-footer-group": "display",
	"table-header-group": "display",
	"table-row-group":    "display",
	"table-row":          "display",
	"flow-root":          "display",
	"grid":               "display",
	"inline-grid":        "display",
	"contents":           "display",
	"list-item":          "display",
	"hidden":             "display",

	// Position
	"static":   "position",
	"fixed":    "position",
	"absolute": "position",
	"relative": "position",
	"sticky":   "position",

	// Visibility and isolation
	"visible":        "visibility",
	"invisible":      "visibility",
	"collapse":       "visibility",
	"isolate":        "isolation",
	"isolation-auto": "isolation",
	"sr-only":        "sr",
	"not-sr-only":    "sr",
	"container":      "container",

	// Box
	"box-border":           "box-sizing",
	"box-content":          "box-sizing",
	"box-decoration-clone": "box-decoration",
	"box-decoration-slice": "box-decoration",
	"decoration-clone":     "box-decoration",
	"decoration-slice":     "box-decoration",

	// Typography
	"italic":               "font-style",
	"not-italic":           "font-style",
	"antialiased":          "font-smoothing",
	"subpixel-antialiased": "font-smoothing",
	"normal-nums":          "fvn-normal",
	"ordinal":              "fvn-ordinal",
	"slashed-zero":         "fvn-slashed-zero",
	"lining-nums":          "fvn-figure",
	"oldstyle-nums":        "fvn-figure",
	"proportional-nums":    "fvn-spacing",
	"tabular-nums":         "fvn-spacing",
	"diagonal-fractions":   "fvn-fraction",
	"stacked-fractions":    "fvn-fraction",
	"underline":            "text-decoration-line",
	"overline":             "text-decoration-line",
	"line-through":         "text-decoration-line",
	"no-underline":         "text-decoration-line",
	"uppercase":            "text-transform",
	"lowercase":            "text-transform",
	"capitalize":           "text-transform",
	"normal-case":          "text-transform",
	"truncate":             "text-overflow",

	// Tables
	"border-collapse": "border-collapse",
	"border-separate": "border-collapse",
	"table-auto":      "table-layout",
	"table-fixed":     "table-layout",

	// Transforms and filters
	"transform":            "transform",
	"transform-gpu":        "transform",
	"transform-cpu":        "transform",
	"transform-none":       "transform",
	"filter":               "filter",
	"filter-none":          "filter",
	"backdrop-filter":      "backdrop-filter",
	"backdrop-filter-none": "backdrop-filter",
	"transition-discrete":  "transition-behavior",
	"transition-normal":    "transition-behavior",
}

// utilityPrefixes maps a utility prefix to the rules tried in order for its
// value. Side and axis variants are added by buildUtilityPrefixes.
var utilityPrefixes = map[string][]rule{
	// Layout
	"aspect":       {{group: "aspect"}},
	"columns":      {{group: "columns"}},
	"break-after":  {{group: "break-after"}},
	"break-before": {{group: "break-before"}},
	"break-inside": {{group: "break-inside"}},
	"float":        {{group: "float"}},
	"clear":        {{group: "clear"}},
	"object": {
		{group: "object-fit", accept: oneOf("contain", "cover", "fill", "none", "scale-down")},
		{group: "object-position"},
	},
	"overflow":     {{group: "overflow"}},
	"overflow-x":   {{group: "overflow-x"}},
	"overflow-y":   {{group: "overflow-y"}},
	"overscroll":   {{group: "overscroll"}},
	"overscroll-x": {{group: "overscroll-x"}},
	"overscroll-y": {{group: "overscroll-y"}},
	"inset":        {{group: "inset", accept: isInset}},
	"inset-x":      {{group: "inset-x", accept: isInset}},
	"inset-y":      {{group: "inset-y", accept: isInset}},
	"start":        {{group: "start", accept: isInset}},
	"end":          {{group: "end", accept: isInset}},
	"top":          {{group: "top", accept: isInset}},
	"right":        {{group: "right", accept: isInset}},
	"bottom":       {{group: "bottom", accept: isInset}},
	"left":         {{group: "left", accept: isInset}},
	"z":            {{group: "z"}},

	// Flexbox and grid
	"basis": {{group: "flex-basis"}},
	"flex": {
		{group: "flex-direction", accept: oneOf("row", "row-reverse", "col", "col-reverse")},
		{group: "flex-wrap", accept: oneOf("wrap", "wrap-reverse", "nowrap")},
		{group: "flex"},
	},
	"grow":          {{group: "grow", accept: anyOf(isEmpty, isAny)}},
	"shrink":        {{group: "shrink", accept: anyOf(isEmpty, isAny)}},
	"order":         {{group: "order"}},
	"grid-cols":     {{group: "grid-cols"}},
	"grid-rows":     {{group: "grid-rows"}},
	"grid-flow":     {{group: "grid-flow"}},
	"col":           {{group: "col-span", accept: oneOf("auto")}},
	"col-span":      {{group: "col-span"}},
	"col-start":     {{group: "col-start"}},
	"col-end":       {{group: "col-end"}},
	"row":           {{group: "row-span", accept: oneOf("auto")}},
	"row-span":      {{group: "row-span"}},
	"row-start":     {{group: "row-start"}},
	"row-end":       {{group: "row-end"}},
	"auto-cols":     {{group: "auto-cols"}},
	"auto-rows":     {{group: "auto-rows"}},
	"gap":           {{group: "gap"}},
	"gap-x":         {{group: "gap-x"}},
	"gap-y":         {{group: "gap-y"}},
	"justify":       {{group: "justify-content"}},
	"justify-items": {{group: "justify-items"}},
	"justify-self":  {{group: "justify-self"}},
	"content": {
		{group: "content", accept: anyOf(oneOf("none"), isArbitrary)},
		{group: "align-content"},
	},
	"items":         {{group: "align-items"}},
	"self":          {{group: "align-self"}},
	"place-content": {{group: "place-content"}},
	"place-items":   {{group: "place-items"}},
	"place-self":    {{group: "place-self"}},

	// Spacing
	"space-x": {
		{group: "space-x-reverse", accept: oneOf("reverse")},
		{group: "space-x", accept: isSpacing},
	},
	"space-y": {
		{group: "space-y-reverse", accept: oneOf("reverse")},
		{group: "space-y", accept: isSpacing},
	},

	// Sizing
	"w":     {{group: "width"}},
	"min-w": {{group: "min-width"}},
	"max-w": {{group: "max-width"}},
	"h":     {{group: "height"}},
	"min-h": {{group: "min-height"}},
	"max-h": {{group: "max-height"}},
	"size":  {{group: "size"}},

	// Typography
	"font": {
		{group: "font-weight", accept: isFontWeight},
		{group: "font-family"},
	},
	"text": {
		{group: "font-size", accept: isFontSize},
		{group: "text-align", accept: oneOf("left", "center", "right", "justify", "start", "end")},
		{group: "text-overflow", accept: oneOf("ellipsis", "clip")},
		{group: "text-wrap", accept: oneOf("wrap", "nowrap", "balance", "pretty")},
		{group: "text-color"},
	},
	"tracking":   {{group: "letter-spacing"}},
	"leading":    {{group: "line-height"}},
	"line-clamp": {{group: "line-clamp"}},
	"list": {
		{group: "list-style-position", accept: oneOf("inside", "outside")},
		{group: "list-style-type"},
	},
	"list-image":  {{group: "list-image"}},
	"placeholder": {{group: "placeholder-color"}},
	"decoration": {
		{group: "text-decoration-style", accept: oneOf("solid", "double", "dotted", "dashed", "wavy")},
		{group: "text-decoration-thickness", accept: anyOf(isNumber, oneOf("auto", "from-font"), isArbitraryLength)},
		{group: "text-decoration-color"},
	},
	"underline-offset": {{group: "underline-offset"}},
	"indent":           {{group: "text-indent"}},
	"align":            {{group: "vertical-align"}},
	"whitespace":       {{group: "whitespace"}},
	"break": {
		{group: "word-break", accept: oneOf("normal", "words", "all", "keep")},
	},
	"wrap":    {{group: "overflow-wrap", accept: oneOf("break-word", "anywhere", "normal")}},
	"hyphens": {{group: "hyphens"}},

	// Backgrounds
	"bg": {
		{group: "bg-attachment", accept: oneOf("fixed", "local", "scroll")},
		{group: "bg-position", accept: oneOf("bottom", "center", "left", "left-bottom", "left-top",
			"right", "right-bottom", "right-top", "top")},
		{group: "bg-repeat", accept: oneOf("repeat", "no-repeat")},
		{group: "bg-size", accept: oneOf("auto", "cover", "contain")},
		{group: "bg-image", accept: anyOf(oneOf("none"), isArbitraryImage)},
		{group: "bg-color"},
	},
	"bg-clip":     {{group: "bg-clip"}},
	"bg-origin":   {{group: "bg-origin"}},
	"bg-repeat":   {{group: "bg-repeat"}},
	"bg-gradient": {{group: "bg-image"}},
	"bg-linear":   {{group: "bg-image"}},
	"bg-radial":   {{group: "bg-image", accept: anyOf(isEmpty, isAny)}},
	"bg-conic":    {{group: "bg-image", accept: anyOf(isEmpty, isAny)}},
	"bg-blend":    {{group: "bg-blend"}},
	"from": {
		{group: "gradient-from-pos", accept: anyOf(isPercent, isArbitraryLength)},
		{group: "gradient-from"},
	},
	"via": {
		{group: "gradient-via-pos", accept: anyOf(isPercent, isArbitraryLength)},
		{group: "gradient-via"},
	},
	"to": {
		{group: "gradient-to-pos", accept: anyOf(isPercent, isArbitraryLength)},
		{group: "gradient-to"},
	},

	// Borders
	"rounded": {{group: "rounded", accept: isRadius}},
	"border": {
		{group: "border-width", accept: isLineWidth},
		{group: "border-style", accept: isLineStyle},
		{group: "border-color"},
	},
	"border-spacing":   {{group: "border-spacing"}},
	"border-spacing-x": {{group: "border-spacing-x"}},
	"border-spacing-y": {{group: "border-spacing-y"}},
	"divide": {
		{group: "divide-style", accept: isLineStyle},
		{group: "divide-color"},
	},
	"outline": {
		{group: "outline-width", accept: isLineWidth},
		{group: "outline-style", accept: anyOf(isLineStyle, oneOf("hidden"))},
		{group: "outline-color"},
	},
	"outline-offset": {{group: "outline-offset"}},
	"ring": {
		{group: "ring-width", accept: isLineWidth},
		{group: "ring-width-inset", accept: oneOf("inset")},
		{group: "ring-color"},
	},
	"ring-offset": {
		{group: "ring-offset-width", accept: anyOf(isNumber, isArbitraryLength)},
		{group: "ring-offset-color"},
	},

	// Effects
	"shadow": {
		{group: "shadow", accept: isShadowSize},
		{group: "shadow-color"},
	},
	"inset-shadow": {
		{group: "inset-shadow", accept: isShadowSize},
		{group: "inset-shadow-color"},
	},
	"opacity":   {{group: "opacity"}},
	"mix-blend": {{group: "mix-blend"}},

	// Filters
	"blur":       {{group: "blur", accept: anyOf(isEmpty, isAny)}},
	"brightness": {{group: "brightness"}},
	"contrast":   {{group: "contrast"}},
	"grayscale":  {{group: "grayscale", accept: anyOf(isEmpty, isAny)}},
	"hue-rotate": {{group: "hue-rotate"}},
	"invert":     {{group: "invert", accept: anyOf(isEmpty, isAny)}},
	"saturate":   {{group: "saturate"}},
	"sepia":      {{group: "sepia", accept: anyOf(isEmpty, isAny)}},
	"drop-shadow": {
		{group: "drop-shadow", accept: isShadowSize},
		{group: "drop-shadow-color"},
	},

	// Tables
	"caption": {{group: "caption"}},

	// Transitions and animation
	"transition": {{group: "transition", accept: anyOf(isEmpty, isAny)}},
	"duration":   {{group: "duration"}},
	"ease":       {{group: "ease"}},
	"delay":      {{group: "delay"}},
	"animate":    {{group: "animate"}},

	// Transforms
	"scale":       {{group: "scale"}},
	"scale-x":     {{group: "scale-x"}},
	"scale-y":     {{group: "scale-y"}},
	"rotate":      {{group: "rotate"}},
	"translate-x": {{group: "translate-x"}},
	"translate-y": {{group: "translate-y"}},
	"skew-x":      {{group: "skew-x"}},
	"skew-y":      {{group: "skew-y"}},
	"origin":      {{group: "transform-origin"}},

	// Interactivity
	"accent":         {{group: "accent-color"}},
	"appearance":     {{group: "appearance"}},
	"cursor":         {{group: "cursor"}},
	"caret":          {{group: "caret-color"}},
	"pointer-events": {{group: "pointer-events"}},
	"resize": {
		{group: "resize", accept: anyOf(isEmpty, oneOf("none", "x", "y"))},
	},
	"scroll": {
		{group: "scroll-behavior", accept: oneOf("auto", "smooth")},
	},
	"snap": {
		{group: "snap-align", accept: oneOf("start", "end", "center", "align-none")},
		{group: "snap-stop", accept: oneOf("normal", "always")},
		{group: "snap-type", accept: oneOf("none", "x", "y", "both")},
		{group: "snap-strictness", accept: oneOf("mandatory", "proximity")},
	},
	"touch":        {{group: "touch"}},
	"select":       {{group: "user-select"}},
	"will-change":  {{group: "will-change"}},
	"field-sizing": {{group: "field-sizing"}},

	// SVG
	"fill": {{group: "fill"}},
	"stroke": {
		{group: "stroke-width", accept: anyOf(isNumber, isArbitraryLength, isArbitraryNumber)},
		{group: "stroke"},
	},

	// Accessibility
	"forced-color-adjust": {{group: "forced-color-adjust"}},
}

// sides lists the logical and physical side suffixes shared by the spacing,
// border, and radius families.
var (
	boxSides    = []string{"x", "y", "s", "e", "t", "r", "b", "l"}
	radiusSides = []string{"s", "e", "t", "r", "b", "l", "ss", "se", "ee", "es", "tl", "tr", "br", "bl"}
)

// buildUtilityPrefixes adds the per-side families to utilityPrefixes.
func buildUtilityPrefixes() map[string][]rule {
	table := make(map[string][]rule, len(utilityPrefixes)+96)
	for prefix, rules := range utilityPrefixes {
		table[prefix] = rules
	}

	table["p"] = []rule{{group: "padding", accept: isSpacing}}
	table["m"] = []rule{{group: "margin", accept: isMargin}}
	table["scroll-m"] = []rule{{group: "scroll-margin", accept: isSpacing}}
	table["scroll-p"] = []rule{{group: "scroll-padding", accept: isSpacing}}
	for _, side := range boxSides {
		name := sideName(side)
		table["p"+side] = []rule{{group: "padding-" + name, accept: isSpacing}}
		table["m"+side] = []rule{{group: "margin-" + name, accept: isMargin}}
		table["scroll-m"+side] = []rule{{group: "scroll-margin-" + name, accept: isSpacing}}
		table["scroll-p"+side] = []rule{{group: "scroll-padding-" + name, accept: isSpacing}}
		table["border-"+side] = []rule{
			{group: "border-width-" + name, accept: isLineWidth},
			{group: "border-color-" + name},
		}
	}
	for _, axis := range []string{"x", "y"} {
		table["divide-"+axis] = []rule{
			{group: "divide-" + axis + "-reverse", accept: oneOf("reverse")},
			{group: "divide-" + axis, accept: isLineWidth},
		}
	}
	for _, side := range radiusSides {
		table["rounded-"+side] = []rule{{group: "rounded-" + sideName(side), accept: isRadius}}
	}

	for _, filter := range []string{"blur", "brightness", "contrast", "grayscale", "hue-rotate",
		"invert", "opacity", "saturate", "sepia"} {
		base := table[filter]
		rules := make([]rule, len(base))
		for i, r := range base {
			rules[i] = rule{group: "backdrop-" + r.group, accept: r.accept}
		}
		table["backdrop-"+filter] = rules
	}

	return table
}

// sideName expands a side suffix into the group name part
func sideName(side string) string {
	switch side {
	case "x":
		return "x"
	case "y":
		return "y"
	case "s":
		return "start"
	case "e":
		return "end"
	case "t":
		return "top"
	case "r":
		return "right"
	case "b":
		return "bottom"
	case "l":
		return "left"
	case "ss":
		return "start-start"
	case "se":
		return "start-end"
	case "ee":
		return "end-end"
	case "es":
		return "end-start"
	case "tl":
		return "top-left"
	case "tr":
		return "top-right"
	case "br":
		return "bottom-right"
	case "bl":
		return "bottom-left"
	}
	return side
}

// propertyGroups maps CSS property names to the property group of the
// utilities that set them. Stylesheet-derived tables use it to place custom
// classes next to the built-in utilities.
var propertyGroups = map[string]string{
	"display":                    "display",
	"position":                   "position",
	"visibility":                 "visibility",
	"isolation":                  "isolation",
	"box-sizing":                 "box-sizing",
	"float":                      "float",
	"clear":                      "clear",
	"overflow":                   "overflow",
	"overflow-x":                 "overflow-x",
	"overflow-y":                 "overflow-y",
	"inset":                      "inset",
	"top":                        "top",
	"right":                      "right",
	"bottom":                     "bottom",
	"left":                       "left",
	"inset-inline-start":         "start",
	"inset-inline-end":           "end",
	"z-index":                    "z",
	"aspect-ratio":               "aspect",
	"object-fit":                 "object-fit",
	"object-position":            "object-position",
	"flex":                       "flex",
	"flex-direction":             "flex-direction",
	"flex-wrap":                  "flex-wrap",
	"flex-grow":                  "grow",
	"flex-shrink":                "shrink",
	"flex-basis":                 "flex-basis",
	"order":                      "order",
	"grid-template-columns":      "grid-cols",
	"grid-template-rows":         "grid-rows",
	"grid-auto-flow":             "grid-flow",
	"grid-column":                "col-span",
	"grid-row":                   "row-span",
	"gap":                        "gap",
	"column-gap":                 "gap-x",
	"row-gap":                    "gap-y",
	"justify-content":            "justify-content",
	"justify-items":              "justify-items",
	"justify-self":               "justify-self",
	"align-content":              "align-content",
	"align-items":                "align-items",
	"align-self":                 "align-self",
	"padding":                    "padding",
	"padding-inline":             "padding-x",
	"padding-block":              "padding-y",
	"padding-top":                "padding-top",
	"padding-right":              "padding-right",
	"padding-bottom":             "padding-bottom",
	"padding-left":               "padding-left",
	"padding-inline-start":       "padding-start",
	"padding-inline-end":         "padding-end",
	"margin":                     "margin",
	"margin-inline":              "margin-x",
	"margin-block":               "margin-y",
	"margin-top":                 "margin-top",
	"margin-right":               "margin-right",
	"margin-bottom":              "margin-bottom",
	"margin-left":                "margin-left",
	"margin-inline-start":        "margin-start",
	"margin-inline-end":          "margin-end",
	"width":                      "width",
	"min-width":                  "min-width",
	"max-width":                  "max-width",
	"height":                     "height",
	"min-height":                 "min-height",
	"max-height":                 "max-height",
	"font-family":                "font-family",
	"font-size":                  "font-size",
	"font-weight":                "font-weight",
	"font-style":                 "font-style",
	"letter-spacing":             "letter-spacing",
	"line-height":                "line-height",
	"text-align":                 "text-align",
	"color":                      "text-color",
	"text-decoration-line":       "text-decoration-line",
	"text-decoration-color":      "text-decoration-color",
	"text-decoration-style":      "text-decoration-style",
	"text-decoration-thickness":  "text-decoration-thickness",
	"text-underline-offset":      "underline-offset",
	"text-transform":             "text-transform",
	"text-overflow":              "text-overflow",
	"text-wrap":                  "text-wrap",
	"text-indent":                "text-indent",
	"vertical-align":             "vertical-align",
	"white-space":                "whitespace",
	"word-break":                 "word-break",
	"overflow-wrap":              "overflow-wrap",
	"hyphens":                    "hyphens",
	"list-style-type":            "list-style-type",
	"list-style-position":        "list-style-position",
	"background-attachment":      "bg-attachment",
	"background-clip":            "bg-clip",
	"background-origin":          "bg-origin",
	"background-position":        "bg-position",
	"background-repeat":          "bg-repeat",
	"background-size":            "bg-size",
	"background-image":           "bg-image",
	"background-color":           "bg-color",
	"border-radius":              "rounded",
	"border-width":               "border-width",
	"border-style":               "border-style",
	"border-color":               "border-color",
	"border-top-width":           "border-width-top",
	"border-right-width":         "border-width-right",
	"border-bottom-width":        "border-width-bottom",
	"border-left-width":          "border-width-left",
	"border-top-color":           "border-color-top",
	"border-right-color":         "border-color-right",
	"border-bottom-color":        "border-color-bottom",
	"border-left-color":          "border-color-left",
	"outline-width":              "outline-width",
	"outline-style":              "outline-style",
	"outline-color":              "outline-color",
	"outline-offset":             "outline-offset",
	"box-shadow":                 "shadow",
	"opacity":                    "opacity",
	"mix-blend-mode":             "mix-blend",
	"background-blend-mode":      "bg-blend",
	"filter":                     "filter",
	"backdrop-filter":            "backdrop-filter",
	"border-collapse":            "border-collapse",
	"table-layout":               "table-layout",
	"caption-side":               "caption",
	"transition":                 "transition",
	"transition-property":        "transition",
	"transition-duration":        "duration",
	"transition-timing-function": "ease",
	"transition-delay":           "delay",
	"animation":                  "animate",
	"transform":                  "transform",
	"transform-origin":           "transform-origin",
	"scale":                      "scale",
	"rotate":                     "rotate",
	"translate":                  "translate",
	"accent-color":               "accent-color",
	"appearance":                 "appearance",
	"cursor":                     "cursor",
	"caret-color":                "caret-color",
	"pointer-events":             "pointer-events",
	"resize":                     "resize",
	"scroll-behavior":            "scroll-behavior",
	"touch-action":               "touch",
	"user-select":                "user-select",
	"will-change":                "will-change",
	"fill":                       "fill",
	"stroke":                     "stroke",
	"stroke-width":               "stroke-width",
	"content":                    "content",
}

// GroupForProperties determines the property group of a rule that declares
// the given CSS properties. A single known property maps to its utility
// group; anything else gets a synthetic "css:" group keyed on the sorted
// property list so classes setting the same properties still conflict.
func GroupForProperties(props []string) string {
	names := make([]string, 0, len(props))
	for _, p := range props {
		p = strings.ToLower(strings.TrimSpace(p))
		// Custom properties and vendor prefixes don't decide the group
		if p == "" || strings.HasPrefix(p, "--") || isVendorProperty(p) {
			continue
		}
		names = append(names, p)
	}
	if len(names) == 0 {
		return ""
	}

	sort.Strings(names)
	names = uniqueSorted(names)

	if len(names) == 1 {
		if group, ok := propertyGroups[names[0]]; ok {
			return group
		}
	}

	// Shorthand pairs emitted for one utility (padding-left + padding-right)
	if group, ok := pairedGroup(names); ok {
		return group
	}

	return "css:" + strings.Join(names, ",")
}

func isVendorProperty(name string) bool {
	return strings.HasPrefix(name, "-webkit-") ||
		strings.HasPrefix(name, "-moz-") ||
		strings.HasPrefix(name, "-ms-") ||
		strings.HasPrefix(name, "-o-")
}

// pairedGroup recognizes the two-property expansions of axis utilities
func pairedGroup(names []string) (string, bool) {
	if len(names) != 2 {
		return "", false
	}
	switch names[0] + "+" + names[1] {
	case "padding-left+padding-right":
		return "padding-x", true
	case "padding-bottom+padding-top":
		return "padding-y", true
	case "margin-left+margin-right":
		return "margin-x", true
	case "margin-bottom+margin-top":
		return "margin-y", true
	case "left+right":
		return "inset-x", true
	case "bottom+top":
		return "inset-y", true
	case "height+width":
		return "size", true
	case "border-left-width+border-right-width":
		return "border-width-x", true
	case "border-bottom-width+border-top-width":
		return "border-width-y", true
	}
	return "", false
}

func uniqueSorted(names []string) []string {
	out := names[:0]
	for i, n := range names {
		if i == 0 || n != names[i-1] {
			out = append(out, n)
		}
	}
	return out
}
