package ranges

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClosedRange_Contains(t *testing.T) {
	for a := -3; a <= 3; a++ {
		for b := a; b <= 3; b++ {
			c := Closed(a, b)
			for x := -4; x <= 4; x++ {
				require.Equal(t, a <= x && x <= b, c.Contains(x), "%s contains %d", c, x)
			}
		}
	}
}

func TestClosedRange_IsEmpty(t *testing.T) {
	require.False(t, Closed(3, 3).IsEmpty())
	require.False(t, Point(3).IsEmpty())
	require.True(t, Point(3).Contains(3))
	require.Equal(t, Closed(3, 3), Point(3))
}

func TestClosedRange_InvalidBounds(t *testing.T) {
	requirePanicsWith(t, ErrInvalidBounds, func() { Closed(1, 0) })
}

func TestClosedRange_HalfOpen(t *testing.T) {
	for a := -3; a <= 3; a++ {
		for b := a; b <= 3; b++ {
			closed := Closed(a, b)
			halfOpen := closed.HalfOpen(Integers[int]())
			require.Equal(t, Between(a, b+1), halfOpen)

			for x := -5; x <= 5; x++ {
				require.Equal(t, closed.Contains(x), halfOpen.Contains(x), "%s and %s disagree on %d", closed, halfOpen, x)
			}
		}
	}

	requirePanicsWith(t, ErrOverflow, func() { Closed[int8](0, math.MaxInt8).HalfOpen(Integers[int8]()) })
	requirePanicsWith(t, ErrOverflow, func() { Point[uint64](math.MaxUint64).HalfOpen(Integers[uint64]()) })
}

func TestClosedRange_Relative(t *testing.T) {
	require.Equal(t, Between(2, 5), Closed(2, 4).Relative(indices{start: 0, end: 7}))
	require.Equal(t, Between(6, 7), Point(6).Relative(indices{start: 0, end: 7}))

	requirePanicsWith(t, ErrOverflow, func() { Closed(0, math.MaxInt).Relative(indices{start: 0, end: 7}) })
}

func TestClosedRange_Overlaps(t *testing.T) {
	require.True(t, Closed(0, 20).Overlaps(Closed(20, 30)))
	require.True(t, Closed(20, 30).Overlaps(Closed(0, 20)))
	require.False(t, Closed(0, 19).Overlaps(Closed(20, 30)))
	require.True(t, Closed(0, 100).Overlaps(Point(50)))
	require.True(t, Point(50).Overlaps(Point(50)))
	require.False(t, Point(50).Overlaps(Point(51)))
}

func TestClosedRange_Clamped(t *testing.T) {
	limits := Closed(5, 20)

	require.Equal(t, Closed(5, 10), Closed(0, 10).Clamped(limits))
	require.Equal(t, Closed(20, 20), Closed(30, 40).Clamped(limits))
	require.Equal(t, Closed(5, 5), Closed(-10, -5).Clamped(limits))
	require.Equal(t, Closed(5, 10).Clamped(limits), Closed(5, 10).Clamped(limits).Clamped(limits))
}

func TestClosedRange_Values(t *testing.T) {
	require.Equal(t, []int{1, 2, 3}, slices.Collect(Closed(1, 3).Values(Integers[int]())))
	require.Equal(t, []int{7}, slices.Collect(Point(7).Values(Integers[int]())))

	// ends at the maximum value without stepping past it
	require.Equal(t, []uint8{253, 254, 255}, slices.Collect(Closed[uint8](253, 255).Values(Integers[uint8]())))
}

func TestClosedRange_String(t *testing.T) {
	require.Equal(t, "1...3", Closed(1, 3).String())
	require.Equal(t, -2, Closed(-2, 3).LowerBound())
	require.Equal(t, 3, Closed(-2, 3).UpperBound())
}
