// Package ranges implements intervals over ordered values: half-open and closed ranges, ranges that are only bounded on
// one side and the unbounded marker.
//
// Notation     Definition          Constructor
// a..<b        {x | a <= x < b}    Between
// a...b        {x | a <= x <= b}   Closed
// ..<b         {x | x < b}         UpTo
// ...b         {x | x <= b}        Through
// a...         {x | x >= a}        From
// ...          {x}                 Unbounded
//
// Every variant implements Expression, which allows containers to accept any of them as a slicing argument and to
// resolve it against their own boundaries.
package ranges

// Collection is the part of a container that is needed to realize an Expression: its boundaries and the ability to
// step from one index to the next.
type Collection[I Bound] interface {
	// StartIndex returns the position of the first element.
	StartIndex() I

	// EndIndex returns the position one past the last element.
	EndIndex() I

	// IndexAfter returns the position that immediately follows i. It panics with ErrOverflow if there is none.
	IndexAfter(i I) I
}

// Expression is the capability that is shared by all range variants.
type Expression[B Bound] interface {
	// Relative converts the Expression into a half-open Range with explicit bounds, filling in missing bounds from
	// the given Collection. The result is not validated against the Collection's boundaries, but it panics with
	// ErrInvalidBounds if the filled-in bounds would be inverted.
	Relative(collection Collection[B]) Range[B]

	// Contains returns true if the value lies within the Expression.
	Contains(value B) bool
}

// Matches reports whether the value matches the pattern described by the Expression.
func Matches[B Bound](expression Expression[B], value B) bool {
	return expression.Contains(value)
}

// code contract (make sure every variant is an Expression).
var (
	_ Expression[int] = Range[int]{}
	_ Expression[int] = ClosedRange[int]{}
	_ Expression[int] = PartialRangeUpTo[int]{}
	_ Expression[int] = PartialRangeThrough[int]{}
	_ Expression[int] = PartialRangeFrom[int]{}
	_ Expression[int] = Sequence[int]{}
	_ Collection[int] = Sequence[int]{}
)
