package ranges

import (
	"fmt"
	"iter"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

// ClosedRange is an interval that includes both of its bounds. It is never empty: a ClosedRange with equal bounds
// contains exactly one value.
type ClosedRange[B Bound] struct {
	lower B
	upper B
}

// Closed returns the ClosedRange lower...upper. It panics with ErrInvalidBounds if lower > upper.
func Closed[B Bound](lower, upper B) ClosedRange[B] {
	if lower > upper {
		panic(ierrors.Wrapf(ErrInvalidBounds, "can not form %v...%v", lower, upper))
	}

	return ClosedRange[B]{lower: lower, upper: upper}
}

// Point returns the ClosedRange that only contains the given value.
func Point[B Bound](value B) ClosedRange[B] {
	return ClosedRange[B]{lower: value, upper: value}
}

// LowerBound returns the smallest value of the ClosedRange.
func (c ClosedRange[B]) LowerBound() B {
	return c.lower
}

// UpperBound returns the largest value of the ClosedRange.
func (c ClosedRange[B]) UpperBound() B {
	return c.upper
}

// Contains returns true if lowerBound <= value <= upperBound.
func (c ClosedRange[B]) Contains(value B) bool {
	return c.lower <= value && value <= c.upper
}

// IsEmpty always returns false.
func (c ClosedRange[B]) IsEmpty() bool {
	return false
}

// Relative returns lowerBound..<(the index after upperBound). The step is taken by the Collection, which panics if
// upperBound is the last representable index.
func (c ClosedRange[B]) Relative(collection Collection[B]) Range[B] {
	return Range[B]{lower: c.lower, upper: collection.IndexAfter(c.upper)}
}

// HalfOpen converts the ClosedRange into the Range lowerBound..<upperBound+1. It panics with ErrOverflow if upperBound
// is the maximum value of B.
func (c ClosedRange[B]) HalfOpen(stepper Stepper[B]) Range[B] {
	return Range[B]{lower: c.lower, upper: stepper.Advance(c.upper, 1)}
}

// Overlaps returns true if both ClosedRanges share at least one value, including a shared endpoint.
func (c ClosedRange[B]) Overlaps(other ClosedRange[B]) bool {
	return !(other.upper < c.lower || c.upper < other.lower)
}

// Clamped projects both bounds of the ClosedRange into limits.
func (c ClosedRange[B]) Clamped(limits ClosedRange[B]) ClosedRange[B] {
	return ClosedRange[B]{
		lower: lo.Min(lo.Max(c.lower, limits.lower), limits.upper),
		upper: lo.Min(lo.Max(c.upper, limits.lower), limits.upper),
	}
}

// Values returns all values from lowerBound through upperBound in ascending order. Unlike HalfOpen it works for a
// ClosedRange that ends at the maximum value of B.
func (c ClosedRange[B]) Values(stepper Stepper[B]) iter.Seq[B] {
	return func(yield func(B) bool) {
		for value := c.lower; ; value = stepper.Advance(value, 1) {
			if !yield(value) || value == c.upper {
				return
			}
		}
	}
}

// String returns a human-readable version of the ClosedRange.
func (c ClosedRange[B]) String() string {
	return fmt.Sprintf("%v...%v", c.lower, c.upper)
}
