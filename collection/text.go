package collection

import (
	"github.com/iotaledger/hive.go/ranges"
)

// Text is a read-only container over the bytes of a string.
type Text string

func (t Text) StartIndex() int {
	return 0
}

func (t Text) EndIndex() int {
	return len(t)
}

func (t Text) IndexAfter(i int) int {
	return ranges.Integers[int]().Advance(i, 1)
}

// Elements returns a copy of the bytes in the Range.
func (t Text) Elements(r ranges.Range[int]) []byte {
	return []byte(t[r.LowerBound():r.UpperBound()])
}

// Substring returns the part of the Text that is selected by the Expression.
func (t Text) Substring(expression ranges.Expression[int]) string {
	r := Realize[int](t, expression)

	return string(t[r.LowerBound():r.UpperBound()])
}
