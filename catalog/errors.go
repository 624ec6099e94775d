package catalog

import "errors"

// ErrFunctionNotFound is returned when an unregistered name is called.
var ErrFunctionNotFound = errors.New("catalog: function not found")
