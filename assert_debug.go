//go:build gl2ddebug

package gl2d

const debugAssertions = true

func assert(cond bool, msg string) {
	if !cond {
		panic("gl2d: assertion failed: " + msg)
	}
}
