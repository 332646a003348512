package future

import (
	"fmt"

	"github.com/wavelet-run/outcome/routine"
)

// PanicError is the outcome a Future resolves to when a continuation
// passed to Then/ThenVoid/ThenCompose panics instead of returning. It
// wraps routine.RecoveredError, so the recovered value and its stack
// trace are captured through routine.NewRecovered.
type PanicError struct {
	*routine.RecoveredError
}

func newPanicError(value any) *PanicError {
	return &PanicError{RecoveredError: &routine.RecoveredError{Recovered: routine.NewRecovered(3, value)}}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("future: continuation panicked: %v", e.Value)
}

func (e *PanicError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "future: continuation panicked: %v", e.Value)
			e.StackTrace().Format(s, verb)
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// guardPanic recovers a panic raised by fn and reports it through report.
// It is the continuation-side counterpart of routine.RunSafe: a panicking
// continuation must resolve its downstream Future with a PanicError rather
// than crash the goroutine that happened to be running it, which may well
// be the producer's own publishing goroutine.
func guardPanic(report func(err *PanicError)) {
	if r := recover(); r != nil {
		report(newPanicError(r))
	}
}
