package text

import "github.com/hasbyte1/go-lowdash/arr"

// Sentinel errors returned by text operations. They are the same values as
// the ones in package arr, so errors.Is works against either name.
var (
	// ErrInvalidArgument is returned when start > end or a chunk size is
	// below 1.
	ErrInvalidArgument = arr.ErrInvalidArgument

	// ErrIndexOutOfRange is returned when a character index or length falls
	// outside the text.
	ErrIndexOutOfRange = arr.ErrIndexOutOfRange
)
