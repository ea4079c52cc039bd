//go:build !cssvariant_debug

package cssvariant

// DebugAssertions reports whether the package was built with the
// cssvariant_debug tag.
const DebugAssertions = false

func assertf(string, ...any) {}
