package future

import (
	"runtime"

	"github.com/pkg/errors"
)

// stack is a captured call stack, adapted from bizerrors.stack: same
// skip/depth-configurable capture, exposed through the pkg/errors
// StackTrace/Frame aliases so %+v formatting on future.Error composes
// with anything else built on pkg/errors.
type stack []uintptr

func callers(skip, depth int) *stack {
	if skip < 0 {
		skip = 0
	}
	if depth <= 0 {
		depth = 32
	}
	pcs := make([]uintptr, depth)
	n := runtime.Callers(skip+2, pcs)
	st := stack(pcs[:n])
	return &st
}

type (
	// StackTrace is the pkg/errors stack trace type, re-exported so
	// callers of this package never need to import pkg/errors directly
	// just to type-assert a future.Error's StackTrace() result.
	StackTrace = errors.StackTrace
	Frame      = errors.Frame
)

func (s *stack) StackTrace() StackTrace {
	f := make([]Frame, len(*s))
	for i := range f {
		f[i] = Frame((*s)[i])
	}
	return f
}
