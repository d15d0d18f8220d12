package layout

import "fmt"

// UsageError is the panic value for calls that break an engine invariant,
// such as inserting a node that already has an owner.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return "flex: " + e.Msg
}

func fatalf(format string, args ...any) {
	panic(&UsageError{Msg: fmt.Sprintf(format, args...)})
}

func assertf(cond bool, format string, args ...any) {
	if !cond {
		fatalf(format, args...)
	}
}
