package arr

import "errors"

// Sentinel errors returned by slice operations.
//
// Use [errors.Is] for comparisons; the returned errors wrap these values and
// name the function and parameter at fault:
//
//	_, err := arr.Drop(items, 9)
//	if errors.Is(err, arr.ErrIndexOutOfRange) {
//	    // 9 is not a valid index into items
//	}
var (
	// ErrInvalidArgument is returned when an argument fails a structural
	// check, such as start > end or a chunk size below 1.
	ErrInvalidArgument = errors.New("arr: invalid argument")

	// ErrIndexOutOfRange is returned when an index or offset falls outside
	// the bounds allowed by the operation.
	ErrIndexOutOfRange = errors.New("arr: index out of range")
)
