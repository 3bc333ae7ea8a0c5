package errors

import "fmt"

// Errno identifies a specific error condition.
type Errno int

// Values supplies the arguments for a MachineError's message.
type Values []interface{}

// MachineError is the error type raised by the core packages.
type MachineError struct {
	Errno  Errno
	Values Values
}

// New creates a MachineError. If the first value is itself a MachineError
// of the same Errno it is unwrapped rather than nested, so that repeated
// wrapping up a call stack does not produce repeated error text.
func New(errno Errno, values ...interface{}) MachineError {
	if len(values) == 1 {
		if inner, ok := values[0].(MachineError); ok && inner.Errno == errno {
			return inner
		}
	}
	return MachineError{Errno: errno, Values: values}
}

func (e MachineError) Error() string {
	return fmt.Sprintf(messages[e.Errno], e.Values...)
}
