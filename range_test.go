package ranges

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRange_Contains(t *testing.T) {
	for a := -3; a <= 3; a++ {
		for b := a; b <= 3; b++ {
			r := Between(a, b)
			for x := -4; x <= 4; x++ {
				require.Equal(t, a <= x && x < b, r.Contains(x), "%s contains %d", r, x)
				require.Equal(t, r.Contains(x), Matches[int](r, x))
			}
		}
	}

	require.True(t, Between("apple", "cherry").Contains("banana"))
	require.False(t, Between("apple", "cherry").Contains("cherry"))
	require.True(t, Between(0.5, 1.5).Contains(1.0))
	require.False(t, Between(0.5, 1.5).Contains(1.5))
}

func TestRange_IsEmpty(t *testing.T) {
	require.True(t, Between(3, 3).IsEmpty())
	require.False(t, Between(3, 4).IsEmpty())
	require.True(t, Range[int]{}.IsEmpty())
	require.False(t, Between(3, 3).Contains(3))
}

func TestRange_InvalidBounds(t *testing.T) {
	requirePanicsWith(t, ErrInvalidBounds, func() { Between(5, 4) })
	requirePanicsWith(t, ErrInvalidBounds, func() { Between("b", "a") })
}

func TestRange_Bounds(t *testing.T) {
	r := Between(2, 9)
	require.Equal(t, 2, r.LowerBound())
	require.Equal(t, 9, r.UpperBound())
	require.Equal(t, "2..<9", r.String())
	require.Equal(t, r, r.Relative(indices{start: 0, end: 100}))
}

func TestRange_Equality(t *testing.T) {
	require.NotEqual(t, Between(5, 5), Between(15, 15))
	require.False(t, Between(5, 5) == Between(15, 15))
	require.True(t, Between(1, 2) == Between(1, 2))
}

func TestRange_Clamped(t *testing.T) {
	limits := Between(5, 20)

	require.Equal(t, Between(5, 10), Between(0, 10).Clamped(limits))
	require.Equal(t, Between(7, 9), Between(7, 9).Clamped(limits))
	require.Equal(t, Between(5, 20), Between(0, 100).Clamped(limits))

	// entirely outside of the limits: pinned to the closest edge instead of rejected
	require.Equal(t, Between(20, 20), Between(30, 40).Clamped(limits))
	require.Equal(t, Between(5, 5), Between(-10, -5).Clamped(limits))

	for a := 0; a <= 25; a += 3 {
		for b := a; b <= 25; b += 4 {
			clamped := Between(a, b).Clamped(limits)
			require.Equal(t, clamped, clamped.Clamped(limits), "clamping %s is idempotent", Between(a, b))
			require.LessOrEqual(t, clamped.LowerBound(), clamped.UpperBound())
		}
	}
}

func TestRange_Overlaps(t *testing.T) {
	require.False(t, Between(0, 20).Overlaps(Between(20, 30)))
	require.False(t, Between(20, 30).Overlaps(Between(0, 20)))
	require.True(t, Between(0, 21).Overlaps(Between(20, 30)))
	require.True(t, Between(0, 100).Overlaps(Between(20, 30)))
	require.True(t, Between(20, 30).Overlaps(Between(0, 100)))
	require.False(t, Between(5, 5).Overlaps(Between(0, 10)))
	require.False(t, Between(0, 10).Overlaps(Between(5, 5)))

	for a := 0; a < 6; a++ {
		for b := a; b < 6; b++ {
			for c := 0; c < 6; c++ {
				for d := c; d < 6; d++ {
					shared := slices.ContainsFunc([]int{0, 1, 2, 3, 4, 5}, func(x int) bool {
						return Between(a, b).Contains(x) && Between(c, d).Contains(x)
					})
					require.Equal(t, shared, Between(a, b).Overlaps(Between(c, d)), "%s overlaps %s", Between(a, b), Between(c, d))
				}
			}
		}
	}
}

func TestRange_OverlapsClosed(t *testing.T) {
	require.False(t, Between(0, 20).OverlapsClosed(Closed(20, 30)))
	require.True(t, Between(0, 21).OverlapsClosed(Closed(20, 30)))
	require.True(t, Between(10, 20).OverlapsClosed(Closed(0, 10)))
	require.False(t, Between(11, 20).OverlapsClosed(Closed(0, 10)))
	require.False(t, Between(5, 5).OverlapsClosed(Closed(0, 10)))
	require.True(t, Between(0, 10).OverlapsClosed(Point(5)))
}

func TestRange_Closed(t *testing.T) {
	require.Equal(t, Closed(1, 3), Between(1, 4).Closed(Integers[int]()))
	require.Equal(t, Point[uint8](0), Between[uint8](0, 1).Closed(Integers[uint8]()))
	requirePanicsWith(t, ErrInvalidBounds, func() { Between(3, 3).Closed(Integers[int]()) })
}

func TestRange_Values(t *testing.T) {
	require.Equal(t, []int{-1, 0, 1}, slices.Collect(Between(-1, 2).Values(Integers[int]())))
	require.Empty(t, slices.Collect(Between(4, 4).Values(Integers[int]())))
}
