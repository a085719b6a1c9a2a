// Package collection connects containers to range expressions: any Expression can be used to read or replace a part of
// a container after it has been realized against the container's boundaries.
package collection

import (
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/hive.go/ranges"
)

// Indexed is a container with ordered indices of type I and elements of type E.
type Indexed[I ranges.Bound, E any] interface {
	ranges.Collection[I]

	// Elements returns the elements at the positions of the given Range. The Range has already been checked against
	// the boundaries of the container.
	Elements(r ranges.Range[I]) []E
}

// Mutable is an Indexed container whose sub-ranges can be replaced.
type Mutable[I ranges.Bound, E any] interface {
	Indexed[I, E]

	// ReplaceElements replaces the elements at the positions of the given Range with the given elements. The Range has
	// already been checked against the boundaries of the container.
	ReplaceElements(r ranges.Range[I], elements []E)
}

// Subscript returns the elements of the container that are selected by the Expression.
func Subscript[I ranges.Bound, E any](container Indexed[I, E], expression ranges.Expression[I]) []E {
	return container.Elements(Realize[I](container, expression))
}

// Replace replaces the elements of the container that are selected by the Expression. The Expression is realized
// exactly like in Subscript.
func Replace[I ranges.Bound, E any](container Mutable[I, E], expression ranges.Expression[I], elements []E) {
	container.ReplaceElements(Realize[I](container, expression), elements)
}

// Realize resolves the Expression against the container and checks that the result lies within startIndex...endIndex.
// It panics with ranges.ErrIndexOutOfRange otherwise, or with ranges.ErrInvalidBounds if the resolved range would be
// inverted.
func Realize[I ranges.Bound](container ranges.Collection[I], expression ranges.Expression[I]) ranges.Range[I] {
	r := expression.Relative(container)
	if r.LowerBound() < container.StartIndex() || r.UpperBound() > container.EndIndex() {
		panic(ierrors.Wrapf(ranges.ErrIndexOutOfRange, "%s exceeds %v..<%v", r, container.StartIndex(), container.EndIndex()))
	}

	return r
}
