package ranges

import (
	"fmt"
	"iter"
)

// region PartialRangeUpTo /////////////////////////////////////////////////////////////////////////////////////////////

// PartialRangeUpTo contains all values that are strictly less than its upper bound.
type PartialRangeUpTo[B Bound] struct {
	upper B
}

// UpTo returns the PartialRangeUpTo ..<upper.
func UpTo[B Bound](upper B) PartialRangeUpTo[B] {
	return PartialRangeUpTo[B]{upper: upper}
}

// UpperBound returns the first value that is not contained.
func (p PartialRangeUpTo[B]) UpperBound() B {
	return p.upper
}

// Contains returns true if value < upperBound.
func (p PartialRangeUpTo[B]) Contains(value B) bool {
	return value < p.upper
}

// Relative returns startIndex..<upperBound. It panics with ErrInvalidBounds if upperBound < startIndex.
func (p PartialRangeUpTo[B]) Relative(collection Collection[B]) Range[B] {
	return Between(collection.StartIndex(), p.upper)
}

// String returns a human-readable version of the PartialRangeUpTo.
func (p PartialRangeUpTo[B]) String() string {
	return fmt.Sprintf("..<%v", p.upper)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region PartialRangeThrough //////////////////////////////////////////////////////////////////////////////////////////

// PartialRangeThrough contains all values that are less than or equal to its upper bound.
type PartialRangeThrough[B Bound] struct {
	upper B
}

// Through returns the PartialRangeThrough ...upper.
func Through[B Bound](upper B) PartialRangeThrough[B] {
	return PartialRangeThrough[B]{upper: upper}
}

// UpperBound returns the last value that is contained.
func (p PartialRangeThrough[B]) UpperBound() B {
	return p.upper
}

// Contains returns true if value <= upperBound.
func (p PartialRangeThrough[B]) Contains(value B) bool {
	return value <= p.upper
}

// Relative returns startIndex..<(the index after upperBound). It panics with ErrInvalidBounds if that index is smaller
// than startIndex.
func (p PartialRangeThrough[B]) Relative(collection Collection[B]) Range[B] {
	return Between(collection.StartIndex(), collection.IndexAfter(p.upper))
}

// String returns a human-readable version of the PartialRangeThrough.
func (p PartialRangeThrough[B]) String() string {
	return fmt.Sprintf("...%v", p.upper)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region PartialRangeFrom /////////////////////////////////////////////////////////////////////////////////////////////

// PartialRangeFrom contains all values that are greater than or equal to its lower bound.
type PartialRangeFrom[B Bound] struct {
	lower B
}

// From returns the PartialRangeFrom lower... .
func From[B Bound](lower B) PartialRangeFrom[B] {
	return PartialRangeFrom[B]{lower: lower}
}

// LowerBound returns the smallest value that is contained.
func (p PartialRangeFrom[B]) LowerBound() B {
	return p.lower
}

// Contains returns true if value >= lowerBound.
func (p PartialRangeFrom[B]) Contains(value B) bool {
	return value >= p.lower
}

// Relative returns lowerBound..<endIndex. It panics with ErrInvalidBounds if lowerBound > endIndex.
func (p PartialRangeFrom[B]) Relative(collection Collection[B]) Range[B] {
	return Between(p.lower, collection.EndIndex())
}

// Values returns the endless sequence lowerBound, lowerBound+1, ... . The consumer decides when to stop (see Take);
// stepping past the maximum value of B panics with ErrOverflow.
func (p PartialRangeFrom[B]) Values(stepper Stepper[B]) iter.Seq[B] {
	return func(yield func(B) bool) {
		for value := p.lower; yield(value); value = stepper.Advance(value, 1) {
		}
	}
}

// String returns a human-readable version of the PartialRangeFrom.
func (p PartialRangeFrom[B]) String() string {
	return fmt.Sprintf("%v...", p.lower)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// Take returns a sequence that stops after the first n values of seq.
func Take[V any](seq iter.Seq[V], n int) iter.Seq[V] {
	return func(yield func(V) bool) {
		if n <= 0 {
			return
		}

		taken := 0
		for value := range seq {
			if !yield(value) {
				return
			}

			if taken++; taken == n {
				return
			}
		}
	}
}
