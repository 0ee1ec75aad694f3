// Package errs implements the errors returned when constructing
// agents, environments, and experiments
package errs

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// ErrInvalidArgument is the only error kind produced when building
// the pieces of an experiment. Any constructor that is given an
// argument outside of its valid range returns an error wrapping it.
var ErrInvalidArgument = errors.New("invalid argument")

// Error records the operation that failed along with the reason
type Error struct {
	Op  string
	Err error
}

// Error satisfies the error interface
func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the wrapped error so that errors.Is can see through
// an Error
func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidArgument returns an *Error for operation op that wraps
// ErrInvalidArgument with a formatted message
func InvalidArgument(op, format string, args ...interface{}) error {
	return &Error{
		Op:  op,
		Err: pkgerrors.Wrapf(ErrInvalidArgument, format, args...),
	}
}

// IsInvalidArgument returns whether or not an error reports an
// invalid argument
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
