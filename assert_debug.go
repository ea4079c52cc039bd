//go:build cssvariant_debug

package cssvariant

import "fmt"

// DebugAssertions reports whether the package was built with the
// cssvariant_debug tag.
const DebugAssertions = true

// assertf panics so construction defects surface during development.
func assertf(format string, args ...any) {
	panic(fmt.Sprintf("cssvariant: "+format, args...))
}
