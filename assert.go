//go:build !gl2ddebug

package gl2d

// debugAssertions enables internal invariant checks. Build with the
// gl2ddebug tag to turn them on.
const debugAssertions = false

func assert(bool, string) {}
