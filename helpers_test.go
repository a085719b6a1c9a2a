package ranges

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requirePanicsWith asserts that f panics with an error that matches target.
func requirePanicsWith(t *testing.T, target error, f func()) {
	t.Helper()

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered, "should panic with %v", target)

		err, isError := recovered.(error)
		require.True(t, isError, "should panic with an error but got %v", recovered)
		require.ErrorIs(t, err, target)
	}()

	f()
}

// indices is a minimal Collection over the int positions start..<end.
type indices struct {
	start int
	end   int
}

func (i indices) StartIndex() int { return i.start }

func (i indices) EndIndex() int { return i.end }

func (i indices) IndexAfter(index int) int { return Integers[int]().Advance(index, 1) }
