package future

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Kind identifies a library-level misuse error, as opposed to a
// user-supplied outcome delivered through SetError or a recovered panic.
type Kind int

const (
	// KindNoState is returned by an operation on a Future that has
	// already been consumed (a second Get, a Then on an already-chained
	// handle) or a Promise that has already yielded its consumer.
	KindNoState Kind = iota
	// KindBrokenPromise is installed into a Future's cell when its
	// paired Promise is garbage collected without ever being resolved.
	KindBrokenPromise
	// KindAlreadySet is returned by SetValue/SetError on a Promise that
	// has already published its outcome.
	KindAlreadySet
)

func (k Kind) String() string {
	switch k {
	case KindNoState:
		return "no state"
	case KindBrokenPromise:
		return "broken promise"
	case KindAlreadySet:
		return "already set"
	default:
		return "unknown"
	}
}

// Error is the library-level misuse error type, adapted from
// bizerrors.Error: instead of a numeric application error code it
// carries a Kind, and it always captures a stack trace at the point of
// construction.
type Error struct {
	kind Kind
	*stack
}

func newKindError(kind Kind) *Error {
	return &Error{kind: kind, stack: callers(2, 32)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("future: %s", e.kind)
}

func (e *Error) Kind() Kind { return e.kind }

// Is makes every *Error of the same Kind compare equal under errors.Is,
// so callers can write errors.Is(err, future.ErrNoState) without caring
// which call site produced the particular instance.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.kind == e.kind
}

func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "future: %s", e.kind)
			e.stack.StackTrace().Format(s, verb)
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

var (
	// ErrNoState reports an operation performed on a consumed or
	// otherwise stateless handle. Compare with errors.Is.
	ErrNoState = newKindError(KindNoState)
	// ErrBrokenPromise reports that a Promise was dropped before it was
	// resolved. Compare with errors.Is.
	ErrBrokenPromise = newKindError(KindBrokenPromise)
	// ErrAlreadySet reports a second SetValue/SetError on a Promise.
	// Compare with errors.Is.
	ErrAlreadySet = newKindError(KindAlreadySet)
)

func newNoStateError() error       { return &Error{kind: KindNoState, stack: callers(2, 32)} }
func newBrokenPromiseError() error { return &Error{kind: KindBrokenPromise, stack: callers(2, 32)} }
func newAlreadySetError() error    { return &Error{kind: KindAlreadySet, stack: callers(2, 32)} }

// wrapStack annotates err with a captured stack trace using pkg/errors,
// for user-supplied errors passed to SetError that did not already carry
// one of their own.
func wrapStack(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(interface{ StackTrace() pkgerrors.StackTrace }); ok {
		return err
	}
	return pkgerrors.WithStack(err)
}
