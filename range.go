package ranges

import (
	"fmt"
	"iter"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

// Range is a half-open interval that includes its lower bound and excludes its upper bound.
//
// A Range with equal bounds is empty. Ranges compare structurally, so two empty ranges with different bounds are not
// equal. The zero value is the empty range at the zero value of B.
type Range[B Bound] struct {
	lower B
	upper B
}

// Between returns the Range lower..<upper. It panics with ErrInvalidBounds if lower > upper.
func Between[B Bound](lower, upper B) Range[B] {
	if lower > upper {
		panic(ierrors.Wrapf(ErrInvalidBounds, "can not form %v..<%v", lower, upper))
	}

	return Range[B]{lower: lower, upper: upper}
}

// LowerBound returns the smallest value of the Range.
func (r Range[B]) LowerBound() B {
	return r.lower
}

// UpperBound returns the first value after the Range.
func (r Range[B]) UpperBound() B {
	return r.upper
}

// Contains returns true if lowerBound <= value < upperBound.
func (r Range[B]) Contains(value B) bool {
	return r.lower <= value && value < r.upper
}

// IsEmpty returns true if the Range does not contain any values.
func (r Range[B]) IsEmpty() bool {
	return r.lower == r.upper
}

// Relative returns the Range itself; it already has explicit bounds.
func (r Range[B]) Relative(Collection[B]) Range[B] {
	return r
}

// Clamped projects both bounds of the Range into limits. A Range that lies entirely outside of limits results in an
// empty Range at the closest edge of limits.
func (r Range[B]) Clamped(limits Range[B]) Range[B] {
	return Range[B]{
		lower: lo.Min(lo.Max(r.lower, limits.lower), limits.upper),
		upper: lo.Min(lo.Max(r.upper, limits.lower), limits.upper),
	}
}

// Overlaps returns true if both Ranges share at least one value. Adjacent ranges like 0..<20 and 20..<30 do not
// overlap and empty ranges overlap nothing.
func (r Range[B]) Overlaps(other Range[B]) bool {
	return (!other.IsEmpty() && r.Contains(other.lower)) || (!r.IsEmpty() && other.Contains(r.lower))
}

// OverlapsClosed returns true if the Range and the ClosedRange share at least one value.
func (r Range[B]) OverlapsClosed(other ClosedRange[B]) bool {
	return r.Contains(other.lower) || (!r.IsEmpty() && other.Contains(r.lower))
}

// Closed converts a non-empty Range into the ClosedRange that contains the same values. It panics with
// ErrInvalidBounds if the Range is empty.
func (r Range[B]) Closed(stepper Stepper[B]) ClosedRange[B] {
	if r.IsEmpty() {
		panic(ierrors.Wrapf(ErrInvalidBounds, "empty range %s can not be closed", r))
	}

	return ClosedRange[B]{lower: r.lower, upper: stepper.Advance(r.upper, -1)}
}

// Values returns the values of the Range in ascending order.
func (r Range[B]) Values(stepper Stepper[B]) iter.Seq[B] {
	return Stride(r, stepper).All()
}

// String returns a human-readable version of the Range.
func (r Range[B]) String() string {
	return fmt.Sprintf("%v..<%v", r.lower, r.upper)
}
