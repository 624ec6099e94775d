package validate

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by [*Error].
//
// Use [errors.Is] for comparisons:
//
//	_, err := fn.Call(args, nil)
//	if errors.Is(err, validate.ErrTypeMismatch) {
//	    // an argument had the wrong runtime type
//	}
var (
	// ErrTypeMismatch is returned when a resolved argument does not match
	// the declared kind of its parameter.
	ErrTypeMismatch = errors.New("validate: type mismatch")

	// ErrMissingArgument is returned when a required parameter has no value
	// by position or by keyword.
	ErrMissingArgument = errors.New("validate: missing argument")

	// ErrInvalidArgument is returned for surplus positional arguments,
	// unknown keywords, or a parameter supplied both ways.
	ErrInvalidArgument = errors.New("validate: invalid argument")

	// ErrInvalidSignature is returned by [Wrap] for a malformed parameter
	// declaration.
	ErrInvalidSignature = errors.New("validate: invalid signature")
)

// Error describes a rejected call. Err is one of the sentinels above.
type Error struct {
	Func   string
	Param  string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("lowdash.%s: %s: %v", e.Func, e.Detail, e.Err)
	}
	return fmt.Sprintf("lowdash.%s: parameter %q: %s: %v", e.Func, e.Param, e.Detail, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newErr(fn, param string, err error, format string, args ...any) *Error {
	return &Error{Func: fn, Param: param, Detail: fmt.Sprintf(format, args...), Err: err}
}
