package ranges

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type slotIndex uint32

func TestIntegers_Advance(t *testing.T) {
	int8s := Integers[int8]()
	require.Equal(t, int8(127), int8s.Advance(126, 1))
	require.Equal(t, int8(-128), int8s.Advance(0, -128))
	require.Equal(t, int8(127), int8s.Advance(-128, 255))
	require.Equal(t, int8(5), int8s.Advance(5, 0))
	requirePanicsWith(t, ErrOverflow, func() { int8s.Advance(127, 1) })
	requirePanicsWith(t, ErrOverflow, func() { int8s.Advance(-128, -1) })
	requirePanicsWith(t, ErrOverflow, func() { int8s.Advance(-128, 256) })

	uint8s := Integers[uint8]()
	require.Equal(t, uint8(0), uint8s.Advance(10, -10))
	require.Equal(t, uint8(255), uint8s.Advance(254, 1))
	requirePanicsWith(t, ErrOverflow, func() { uint8s.Advance(0, -1) })
	requirePanicsWith(t, ErrOverflow, func() { uint8s.Advance(255, 1) })
	requirePanicsWith(t, ErrOverflow, func() { uint8s.Advance(5, 300) })

	requirePanicsWith(t, ErrOverflow, func() { Integers[int64]().Advance(math.MaxInt64, 1) })
	requirePanicsWith(t, ErrOverflow, func() { Integers[int]().Advance(math.MinInt, -1) })
	require.Equal(t, uint64(math.MaxUint64), Integers[uint64]().Advance(math.MaxUint64-1, 1))
	require.Equal(t, slotIndex(3), Integers[slotIndex]().Advance(1, 2))
}

func TestIntegers_Distance(t *testing.T) {
	require.Equal(t, 255, Integers[int8]().Distance(-128, 127))
	require.Equal(t, -255, Integers[int8]().Distance(127, -128))
	require.Equal(t, 0, Integers[uint16]().Distance(7, 7))
	require.Equal(t, -7, Integers[uint16]().Distance(7, 0))
	require.Equal(t, math.MaxInt, Integers[uint64]().Distance(0, math.MaxInt))

	requirePanicsWith(t, ErrOverflow, func() { Integers[uint64]().Distance(0, math.MaxUint64) })
	requirePanicsWith(t, ErrOverflow, func() { Integers[int]().Distance(math.MinInt, math.MaxInt) })
}

func TestIntegers_AdvanceDistanceAgree(t *testing.T) {
	int16s := Integers[int16]()
	for from := int16(-300); from <= 300; from += 37 {
		for n := -250; n <= 250; n += 13 {
			require.Equal(t, n, int16s.Distance(from, int16s.Advance(from, n)))
		}
	}
}
