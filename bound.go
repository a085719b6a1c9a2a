package ranges

import (
	"math"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
)

// Bound is the constraint that every endpoint type of a range has to satisfy: a total order with equality.
type Bound = constraints.Ordered

// Integer is the constraint of the Bound types that can be stepped without a custom Stepper.
type Integer = constraints.Integer

// Stepper adds discrete stepping to a Bound type. It is required by all operations that need to enumerate the values of
// a range or that do index arithmetic on them.
type Stepper[B any] interface {
	// Advance returns the value that is n steps away from b (n may be negative). It panics with ErrOverflow if the
	// result is not representable by B.
	Advance(b B, n int) B

	// Distance returns the signed number of steps that lead from "from" to "to". It panics with ErrOverflow if the
	// distance does not fit into an int.
	Distance(from, to B) int
}

// Integers returns the Stepper of the integer type B. It works for all integer kinds, including named types like
// `type SlotIndex uint32`, and never silently wraps around.
func Integers[B Integer]() Stepper[B] {
	return integerStepper[B]{}
}

// integerStepper implements the Stepper of an integer type. The arithmetic is carried out modulo 2^64 and the result is
// then verified against the exact offset, which detects overflows for every width and signedness.
type integerStepper[B Integer] struct{}

// Advance returns b+n.
func (integerStepper[B]) Advance(b B, n int) B {
	result := B(uint64(b) + uint64(n))

	if n >= 0 {
		if result < b || uint64(result)-uint64(b) != uint64(n) {
			panic(ierrors.Wrapf(ErrOverflow, "advancing %d by %d", b, n))
		}

		return result
	}

	if result > b || uint64(b)-uint64(result) != -uint64(n) {
		panic(ierrors.Wrapf(ErrOverflow, "advancing %d by %d", b, n))
	}

	return result
}

// Distance returns to-from.
func (integerStepper[B]) Distance(from, to B) int {
	if from <= to {
		distance := uint64(to) - uint64(from)
		if distance > math.MaxInt {
			panic(ierrors.Wrapf(ErrOverflow, "distance from %d to %d exceeds int", from, to))
		}

		return int(distance)
	}

	distance := uint64(from) - uint64(to)
	if distance > math.MaxInt {
		panic(ierrors.Wrapf(ErrOverflow, "distance from %d to %d exceeds int", from, to))
	}

	return -int(distance)
}
