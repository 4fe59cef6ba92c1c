package gl2d

import (
	"errors"
	"fmt"
)

// ErrCubicUnsupported is returned when a glyph outline contains a cubic
// Bézier segment. Only quadratic outlines (TrueType glyf) can be
// tessellated with the implicit curve encoding.
var ErrCubicUnsupported = errors.New("gl2d: cubic outline segments are not supported")

// OutlineError reports the outline segment that stopped glyph construction.
type OutlineError struct {
	// Index is the position of the offending segment in the outline.
	Index int
	// Op is the operation of the offending segment.
	Op OutlineOp
	// Err is the underlying cause.
	Err error
}

func (e *OutlineError) Error() string {
	return fmt.Sprintf("gl2d: outline segment %d (%s): %v", e.Index, e.Op, e.Err)
}

func (e *OutlineError) Unwrap() error {
	return e.Err
}

// InvariantError reports a DrawList whose buffers violate the draw list
// invariants. A correct sequence of DrawList calls never produces one.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return "gl2d: draw list invariant violated: " + e.Reason
}
