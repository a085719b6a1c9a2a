package ranges

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// positives is an Expression that can not be marshaled.
type positives struct{}

func (positives) Relative(collection Collection[int]) Range[int] {
	return From(1).Relative(collection)
}

func (positives) Contains(value int) bool {
	return value > 0
}

func TestMarshal_RoundTrip(t *testing.T) {
	for _, expression := range []Expression[int64]{
		Between[int64](-5, 10),
		Between[int64](7, 7),
		Closed[int64](-9, -9),
		UpTo[int64](3),
		Through[int64](-3),
		From[int64](42),
		Everything[int64](),
	} {
		marshaled, err := Bytes(expression)
		require.NoError(t, err)

		unmarshaled, consumedBytes, err := FromBytes[int64](marshaled)
		require.NoError(t, err)
		require.Equal(t, len(marshaled), consumedBytes)
		require.Equal(t, expression, unmarshaled)
	}
}

func TestMarshal_Layout(t *testing.T) {
	marshaled, err := Bytes[uint8](Between[uint8](1, 2))
	require.NoError(t, err)
	require.Equal(t, []byte{byte(KindRange), 1, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0}, marshaled)

	marshaled, err = Bytes(Everything[uint8]())
	require.NoError(t, err)
	require.Equal(t, []byte{byte(KindUnbounded)}, marshaled)

	// a Sequence is marshaled as its Range
	fromSequence, err := Bytes[int](Ints(Between(1, 4)))
	require.NoError(t, err)
	fromRange, err := Bytes[int](Between(1, 4))
	require.NoError(t, err)
	require.Equal(t, fromRange, fromSequence)
}

func TestMarshal_ConsumedBytes(t *testing.T) {
	marshaled, err := Bytes[int](From(5))
	require.NoError(t, err)

	unmarshaled, consumedBytes, err := FromBytes[int](append(marshaled, 0xFF, 0xFF))
	require.NoError(t, err)
	require.Equal(t, 9, consumedBytes)
	require.Equal(t, From(5), unmarshaled)
}

func TestMarshal_Errors(t *testing.T) {
	_, _, err := FromBytes[int](nil)
	require.ErrorIs(t, err, ErrParseBytesFailed)

	_, _, err = FromBytes[int]([]byte{9})
	require.ErrorIs(t, err, ErrParseBytesFailed)

	_, _, err = FromBytes[int]([]byte{byte(KindRange), 1, 2, 3})
	require.ErrorIs(t, err, ErrParseBytesFailed)

	inverted := marshalutil.New().WriteByte(byte(KindClosed)).WriteUint64(5).WriteUint64(1).Bytes()
	_, _, err = FromBytes[int](inverted)
	require.ErrorIs(t, err, ErrParseBytesFailed)

	tooLarge, err := Bytes[int64](Between[int64](0, 200))
	require.NoError(t, err)
	_, _, err = FromBytes[int8](tooLarge)
	require.ErrorIs(t, err, ErrParseBytesFailed)

	negative, err := Bytes[int8](Between[int8](-5, 3))
	require.NoError(t, err)
	unmarshaled, _, err := FromBytes[int8](negative)
	require.NoError(t, err)
	require.Equal(t, Between[int8](-5, 3), unmarshaled)

	_, err = Bytes[int](positives{})
	require.ErrorIs(t, err, ErrUnknownExpression)
}
