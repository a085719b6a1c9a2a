package ranges

import (
	"iter"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/stringify"
)

// Sequence is a Range whose Bound type can be stepped. It behaves like a finite, restartable, bidirectional and
// random-access collection of the values lowerBound, lowerBound+1, ..., upperBound-1, where every value is its own
// index.
type Sequence[B Bound] struct {
	Range[B]

	stepper Stepper[B]
}

// Stride pairs the Range with the Stepper of its Bound type.
func Stride[B Bound](r Range[B], stepper Stepper[B]) Sequence[B] {
	return Sequence[B]{Range: r, stepper: stepper}
}

// Ints returns the Sequence of a Range over integers.
func Ints[B Integer](r Range[B]) Sequence[B] {
	return Stride(r, Integers[B]())
}

// Len returns the number of values in the Sequence.
func (s Sequence[B]) Len() int {
	return s.stepper.Distance(s.lower, s.upper)
}

// StartIndex returns the position of the first value, which is the lower bound.
func (s Sequence[B]) StartIndex() B {
	return s.lower
}

// EndIndex returns the position after the last value, which is the upper bound.
func (s Sequence[B]) EndIndex() B {
	return s.upper
}

// IndexAfter returns the index that follows i.
func (s Sequence[B]) IndexAfter(i B) B {
	return s.Index(i, 1)
}

// IndexBefore returns the index that precedes i.
func (s Sequence[B]) IndexBefore(i B) B {
	return s.Index(i, -1)
}

// Index returns the index that is n steps away from i. It panics with ErrIndexOutOfRange if the result lies outside of
// lowerBound...upperBound.
func (s Sequence[B]) Index(i B, n int) B {
	if result := s.stepper.Advance(i, n); result >= s.lower && result <= s.upper {
		return result
	}

	panic(ierrors.Wrapf(ErrIndexOutOfRange, "advancing %v by %d leaves %s", i, n, s.Range))
}

// Distance returns the signed number of steps between two indices.
func (s Sequence[B]) Distance(from, to B) int {
	return s.stepper.Distance(from, to)
}

// At returns the value at the given offset from the start. It panics with ErrIndexOutOfRange if offset is not in
// 0..<Len().
func (s Sequence[B]) At(offset int) B {
	if offset < 0 || offset >= s.Len() {
		panic(ierrors.Wrapf(ErrIndexOutOfRange, "offset %d in %s", offset, s.Range))
	}

	return s.stepper.Advance(s.lower, offset)
}

// First returns the smallest value and true, or false if the Sequence is empty.
func (s Sequence[B]) First() (first B, exists bool) {
	if s.IsEmpty() {
		return first, false
	}

	return s.lower, true
}

// Last returns the largest value and true, or false if the Sequence is empty.
func (s Sequence[B]) Last() (last B, exists bool) {
	if s.IsEmpty() {
		return last, false
	}

	return s.stepper.Advance(s.upper, -1), true
}

// All returns the values in ascending order. The returned sequence can be iterated any number of times.
func (s Sequence[B]) All() iter.Seq[B] {
	return func(yield func(B) bool) {
		for value := s.lower; value < s.upper; value = s.stepper.Advance(value, 1) {
			if !yield(value) {
				return
			}
		}
	}
}

// Backward returns the values in descending order.
func (s Sequence[B]) Backward() iter.Seq[B] {
	return func(yield func(B) bool) {
		for value := s.upper; value > s.lower; {
			value = s.stepper.Advance(value, -1)
			if !yield(value) {
				return
			}
		}
	}
}

// Slice returns the part of the Sequence that is selected by the Expression. It panics with ErrIndexOutOfRange if the
// realized range exceeds the Sequence, and with ErrInvalidBounds if it is inverted.
func (s Sequence[B]) Slice(expression Expression[B]) Sequence[B] {
	r := expression.Relative(s)
	if r.lower < s.lower || r.upper > s.upper {
		panic(ierrors.Wrapf(ErrIndexOutOfRange, "%s exceeds %s", r, s.Range))
	}

	return Stride(r, s.stepper)
}

// String returns a human-readable version of the Sequence.
func (s Sequence[B]) String() string {
	return stringify.Struct("Sequence",
		stringify.NewStructField("range", s.Range),
		stringify.NewStructField("count", s.Len()),
	)
}
