package ranges

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrInvalidBounds is raised when a range is formed with a lower bound that is greater than its upper bound.
	ErrInvalidBounds = ierrors.New("range requires lowerBound <= upperBound")

	// ErrOverflow is raised when a bound or index is advanced beyond the representable domain of its type.
	ErrOverflow = ierrors.New("arithmetic overflow")

	// ErrIndexOutOfRange is raised when an index is moved outside of the range that it belongs to.
	ErrIndexOutOfRange = ierrors.New("index out of range")

	// ErrParseFailed is returned if a range expression can not be parsed from its textual form.
	ErrParseFailed = ierrors.New("failed to parse range expression")

	// ErrParseBytesFailed is returned if a range expression can not be parsed from a sequence of bytes.
	ErrParseBytesFailed = ierrors.New("failed to parse bytes")
)
