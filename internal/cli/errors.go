package cli

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/ranges"
	"github.com/iotaledger/hive.go/ranges/internal/config"
)

var (
	// ErrMissingLowerBound is returned if an expression without a lower bound is iterated.
	ErrMissingLowerBound = ierrors.New("expression has no lower bound")

	// ErrIncompatibleRanges is returned if two ranges of different kinds are combined.
	ErrIncompatibleRanges = ierrors.New("ranges are not of the same kind")

	// ErrInvalidValue is returned if an argument is not a valid integer.
	ErrInvalidValue = ierrors.New("invalid value")

	// ErrInvalidLimit is returned if the iteration limit is negative.
	ErrInvalidLimit = ierrors.New("invalid limit")

	// ErrUnknownFormat is returned if an unsupported text encoding is requested.
	ErrUnknownFormat = ierrors.New("unknown encoding format")
)

// knownReasons are the errors that are reported without their details. The details are logged at debug level.
var knownReasons = []error{
	ranges.ErrInvalidBounds,
	ranges.ErrOverflow,
	ranges.ErrIndexOutOfRange,
	ranges.ErrParseFailed,
	ranges.ErrParseBytesFailed,
	ranges.ErrUnknownExpression,
	config.ErrUnknownRange,
	ErrMissingLowerBound,
	ErrIncompatibleRanges,
	ErrInvalidValue,
	ErrInvalidLimit,
	ErrUnknownFormat,
}

// commandError is the error that a command reports to the user: the reason and the argument that caused it.
type commandError struct {
	reason   error
	argument string
}

func newCommandError(err error, argument string) *commandError {
	for _, reason := range knownReasons {
		if ierrors.Is(err, reason) {
			return &commandError{reason: reason, argument: argument}
		}
	}

	return &commandError{reason: err, argument: argument}
}

func (c *commandError) Error() string {
	return fmt.Sprintf("%s: %s", c.reason, c.argument)
}

func (c *commandError) Unwrap() error {
	return c.reason
}
