package ranges

// UnboundedRange is the marker for a range without any bounds. It carries no state; use the Unbounded value.
type UnboundedRange struct{}

// Unbounded represents "all values" (written as ...). Used as a slicing argument it selects a whole container.
var Unbounded UnboundedRange

// String returns a human-readable version of the UnboundedRange.
func (UnboundedRange) String() string {
	return "..."
}

// Everything returns the Expression form of the Unbounded marker for the Bound type B. It contains every value and is
// realized as startIndex... .
func Everything[B Bound]() Expression[B] {
	return everything[B]{}
}

// everything implements Expression for the Unbounded marker.
type everything[B Bound] struct{}

func (everything[B]) Relative(collection Collection[B]) Range[B] {
	return From(collection.StartIndex()).Relative(collection)
}

func (everything[B]) Contains(B) bool {
	return true
}

func (everything[B]) String() string {
	return Unbounded.String()
}
