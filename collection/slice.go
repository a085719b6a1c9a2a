package collection

import (
	"slices"

	"github.com/iotaledger/hive.go/ranges"
)

// Slice is a mutable container backed by a Go slice, indexed from 0 to Len().
type Slice[E any] struct {
	elements []E
}

// NewSlice creates a Slice that holds a copy of the given elements, so later changes to the caller's slice are not
// visible through the Slice.
func NewSlice[E any](elements ...E) *Slice[E] {
	return &Slice[E]{elements: slices.Clone(elements)}
}

// Len returns the number of elements.
func (s *Slice[E]) Len() int {
	return len(s.elements)
}

// All returns the current elements of the Slice. The result shares its memory with the Slice.
func (s *Slice[E]) All() []E {
	return s.elements
}

// StartIndex returns 0.
func (s *Slice[E]) StartIndex() int {
	return 0
}

// EndIndex returns the number of elements.
func (s *Slice[E]) EndIndex() int {
	return len(s.elements)
}

// IndexAfter returns i+1.
func (s *Slice[E]) IndexAfter(i int) int {
	return ranges.Integers[int]().Advance(i, 1)
}

// Elements returns the elements in the Range. The result is a view into the Slice with its capacity capped, so appending
// to it never overwrites elements of the Slice.
func (s *Slice[E]) Elements(r ranges.Range[int]) []E {
	return s.elements[r.LowerBound():r.UpperBound():r.UpperBound()]
}

// ReplaceElements replaces the elements in the Range, growing or shrinking the Slice as needed.
func (s *Slice[E]) ReplaceElements(r ranges.Range[int], elements []E) {
	s.elements = slices.Replace(s.elements, r.LowerBound(), r.UpperBound(), elements...)
}

// Get returns the elements that are selected by the Expression. The result is a view into the Slice: a later Set that
// keeps the length of the Slice updates it in place.
func (s *Slice[E]) Get(expression ranges.Expression[int]) []E {
	return Subscript[int, E](s, expression)
}

// GetAll returns all elements; it is the Unbounded subscript.
func (s *Slice[E]) GetAll(ranges.UnboundedRange) []E {
	return s.Get(ranges.Everything[int]())
}

// Set replaces the elements that are selected by the Expression.
func (s *Slice[E]) Set(expression ranges.Expression[int], elements []E) {
	Replace[int, E](s, expression, elements)
}

// SetAll replaces all elements; it is the Unbounded subscript.
func (s *Slice[E]) SetAll(_ ranges.UnboundedRange, elements []E) {
	s.Set(ranges.Everything[int](), elements)
}
