package cssvariant

import (
	"regexp"
	"strings"
)

// valueFunc decides whether the value part of a utility ("4" in "px-4")
// belongs to a rule.
type valueFunc func(value string) bool

var (
	fractionPattern   = regexp.MustCompile(`^\d+/\d+$`)
	tshirtPattern     = regexp.MustCompile(`^(\d+(\.\d+)?)?(xs|sm|md|lg|xl)$`)
	lengthUnitPattern = regexp.MustCompile(`^-?\d*\.?\d+(%|px|r?em|[sdl]?v[hwib]|v(min|max)|pt|pc|in|cm|mm|cap|ch|ex|r?lh|cq[whib]|cq(min|max))$`)
	percentPattern    = regexp.MustCompile(`^\d+(\.\d+)?%$`)
	shadowPattern     = regexp.MustCompile(`^(inset_)?-?((\d+)?\.?(\d+)[a-z]+|0)_-?((\d+)?\.?(\d+)[a-z]+|0)`)
	colorFuncPattern  = regexp.MustCompile(`^(rgba?|hsla?|hwb|(ok)?(lab|lch)|color-mix|color)\(.+\)$`)
)

func isAny(value string) bool { return value != "" }

func isEmpty(value string) bool { return value == "" }

func isNumber(value string) bool {
	digits, dot := false, false
	for i := 0; i < len(value); i++ {
		switch c := value[i]; {
		case c >= '0' && c <= '9':
			digits = true
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits
}

func isInteger(value string) bool {
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return value != ""
}

func isFraction(value string) bool { return fractionPattern.MatchString(value) }

func isTshirt(value string) bool { return tshirtPattern.MatchString(value) }

func isPercent(value string) bool { return percentPattern.MatchString(value) }

// isArbitrary matches "[...]" values and the "(--var)" shorthand.
func isArbitrary(value string) bool {
	return isBracketed(value) || isVariableShorthand(value)
}

func isBracketed(value string) bool {
	return len(value) >= 2 && value[0] == '[' && value[len(value)-1] == ']'
}

func isVariableShorthand(value string) bool {
	return len(value) >= 2 && value[0] == '(' && value[len(value)-1] == ')'
}

// arbitraryContent strips the brackets and returns an optional type label
// ("length" in "[length:var(--x)]").
func arbitraryContent(value string) (label, content string) {
	if !isArbitrary(value) {
		return "", ""
	}
	content = value[1 : len(value)-1]
	if i := strings.IndexByte(content, ':'); i > 0 && !strings.ContainsAny(content[:i], "()[]") {
		return content[:i], content[i+1:]
	}
	return "", content
}

func isArbitraryLength(value string) bool {
	label, content := arbitraryContent(value)
	switch label {
	case "length", "size", "percentage":
		return true
	case "":
	default:
		return false
	}
	if content == "0" || lengthUnitPattern.MatchString(content) {
		return true
	}
	for _, fn := range []string{"calc(", "min(", "max(", "clamp("} {
		if strings.HasPrefix(content, fn) {
			return true
		}
	}
	return false
}

func isArbitraryNumber(value string) bool {
	label, content := arbitraryContent(value)
	if label == "number" {
		return true
	}
	return label == "" && isNumber(content)
}

func isArbitraryColor(value string) bool {
	label, content := arbitraryContent(value)
	if label == "color" {
		return true
	}
	if label != "" {
		return false
	}
	return strings.HasPrefix(content, "#") || colorFuncPattern.MatchString(content)
}

func isArbitraryImage(value string) bool {
	label, content := arbitraryContent(value)
	if label == "image" || label == "url" {
		return true
	}
	return label == "" && (strings.HasPrefix(content, "url(") ||
		strings.Contains(content, "gradient("))
}

func isArbitraryShadow(value string) bool {
	label, content := arbitraryContent(value)
	if label == "shadow" {
		return true
	}
	return label == "" && shadowPattern.MatchString(content)
}

// isSpacing covers the spacing scale: numbers, "px", and arbitrary values.
func isSpacing(value string) bool {
	return isNumber(value) || value == "px" || isArbitrary(value)
}

func isMargin(value string) bool {
	return isSpacing(value) || value == "auto"
}

func isInset(value string) bool {
	return isSpacing(value) || isFraction(value) || value == "auto" || value == "full"
}

// isLineWidth covers border, outline, ring and divide widths.
func isLineWidth(value string) bool {
	return value == "" || isNumber(value) || isArbitraryLength(value)
}

var isLineStyle = oneOf("solid", "dashed", "dotted", "double", "hidden", "none")

func isRadius(value string) bool {
	return value == "" || value == "none" || value == "full" || isTshirt(value) || isArbitrary(value)
}

func isShadowSize(value string) bool {
	return value == "" || value == "none" || value == "inner" || isTshirt(value) ||
		isArbitraryShadow(value) || isVariableShorthand(value)
}

func isFontSize(value string) bool {
	return value == "base" || isTshirt(value) || isArbitraryLength(value)
}

var fontWeightNames = oneOf("thin", "extralight", "light", "normal", "medium", "semibold",
	"bold", "extrabold", "black")

func isFontWeight(value string) bool {
	return fontWeightNames(value) || isInteger(value) || isArbitraryNumber(value)
}

// oneOf builds a valueFunc accepting exactly the listed values.
func oneOf(values ...string) valueFunc {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return func(value string) bool {
		_, ok := set[value]
		return ok
	}
}

// anyOf accepts a value when one of fns accepts it.
func anyOf(fns ...valueFunc) valueFunc {
	return func(value string) bool {
		for _, fn := range fns {
			if fn(value) {
				return true
			}
		}
		return false
	}
}
