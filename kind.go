package ranges

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// Kind identifies the variant of a marshaled Expression.
type Kind uint8

const (
	// KindRange identifies a half-open Range.
	KindRange Kind = iota

	// KindClosed identifies a ClosedRange.
	KindClosed

	// KindUpTo identifies a PartialRangeUpTo.
	KindUpTo

	// KindThrough identifies a PartialRangeThrough.
	KindThrough

	// KindFrom identifies a PartialRangeFrom.
	KindFrom

	// KindUnbounded identifies the Unbounded marker.
	KindUnbounded
)

// KindNames contains a dictionary of the names of Kinds.
var KindNames = [...]string{
	"KindRange",
	"KindClosed",
	"KindUpTo",
	"KindThrough",
	"KindFrom",
	"KindUnbounded",
}

// KindFromBytes unmarshals a Kind from a sequence of bytes.
func KindFromBytes(kindBytes []byte) (kind Kind, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(kindBytes)
	if kind, err = KindFromMarshalUtil(marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse Kind from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// KindFromMarshalUtil unmarshals a Kind using a MarshalUtil (for easier unmarshalling).
func KindFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (kind Kind, err error) {
	kindByte, err := marshalUtil.ReadByte()
	if err != nil {
		err = ierrors.Wrapf(ErrParseBytesFailed, "failed to read Kind: %v", err)

		return
	}

	if kind = Kind(kindByte); kind > KindUnbounded {
		err = ierrors.Wrapf(ErrParseBytesFailed, "unsupported Kind (%X)", kindByte)

		return
	}

	return
}

// BoundCount returns the number of bounds that are marshaled after a Kind.
func (k Kind) BoundCount() int {
	switch k {
	case KindRange, KindClosed:
		return 2
	case KindUnbounded:
		return 0
	default:
		return 1
	}
}

// Bytes returns a marshaled version of the Kind.
func (k Kind) Bytes() []byte {
	return []byte{byte(k)}
}

// String returns a human-readable version of the Kind.
func (k Kind) String() string {
	if int(k) >= len(KindNames) {
		return fmt.Sprintf("Kind(%X)", uint8(k))
	}

	return KindNames[k]
}
