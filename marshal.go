package ranges

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// ErrUnknownExpression is returned if an Expression is not one of the variants of this package.
var ErrUnknownExpression = ierrors.New("unknown expression type")

// Bytes returns a marshaled version of an Expression over integers: its Kind followed by its bounds, each encoded as
// a little endian uint64 in two's complement.
func Bytes[B Integer](expression Expression[B]) ([]byte, error) {
	marshalUtil := marshalutil.New()

	switch typedExpression := expression.(type) {
	case Range[B]:
		marshalUtil.Write(KindRange)
		writeBound(marshalUtil, typedExpression.lower)
		writeBound(marshalUtil, typedExpression.upper)
	case Sequence[B]:
		return Bytes[B](typedExpression.Range)
	case ClosedRange[B]:
		marshalUtil.Write(KindClosed)
		writeBound(marshalUtil, typedExpression.lower)
		writeBound(marshalUtil, typedExpression.upper)
	case PartialRangeUpTo[B]:
		marshalUtil.Write(KindUpTo)
		writeBound(marshalUtil, typedExpression.upper)
	case PartialRangeThrough[B]:
		marshalUtil.Write(KindThrough)
		writeBound(marshalUtil, typedExpression.upper)
	case PartialRangeFrom[B]:
		marshalUtil.Write(KindFrom)
		writeBound(marshalUtil, typedExpression.lower)
	case everything[B]:
		marshalUtil.Write(KindUnbounded)
	default:
		return nil, ierrors.Wrapf(ErrUnknownExpression, "can not marshal %T", expression)
	}

	return marshalUtil.Bytes(), nil
}

// FromBytes unmarshals an Expression over integers from a sequence of bytes.
func FromBytes[B Integer](expressionBytes []byte) (expression Expression[B], consumedBytes int, err error) {
	marshalUtil := marshalutil.New(expressionBytes)
	if expression, err = FromMarshalUtil[B](marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse Expression from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// FromMarshalUtil unmarshals an Expression over integers using a MarshalUtil (for easier unmarshalling). Ranges with
// inverted bounds are rejected with ErrParseBytesFailed.
func FromMarshalUtil[B Integer](marshalUtil *marshalutil.MarshalUtil) (Expression[B], error) {
	kind, err := KindFromMarshalUtil(marshalUtil)
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to parse Kind from MarshalUtil")
	}

	bounds := make([]B, kind.BoundCount())
	for i := range bounds {
		if bounds[i], err = readBound[B](marshalUtil); err != nil {
			return nil, ierrors.Wrapf(err, "failed to parse bound %d of %s", i, kind)
		}
	}

	switch kind {
	case KindRange, KindClosed:
		if bounds[0] > bounds[1] {
			return nil, ierrors.Wrapf(ErrParseBytesFailed, "lower bound %d exceeds upper bound %d", bounds[0], bounds[1])
		}

		if kind == KindRange {
			return Between(bounds[0], bounds[1]), nil
		}

		return Closed(bounds[0], bounds[1]), nil
	case KindUpTo:
		return UpTo(bounds[0]), nil
	case KindThrough:
		return Through(bounds[0]), nil
	case KindFrom:
		return From(bounds[0]), nil
	default:
		return Everything[B](), nil
	}
}

// writeBound writes an integer bound as uint64.
func writeBound[B Integer](marshalUtil *marshalutil.MarshalUtil, bound B) {
	marshalUtil.WriteUint64(uint64(bound))
}

// readBound reads an integer bound and makes sure that it is representable by B.
func readBound[B Integer](marshalUtil *marshalutil.MarshalUtil) (bound B, err error) {
	value, err := marshalUtil.ReadUint64()
	if err != nil {
		return bound, ierrors.Wrapf(ErrParseBytesFailed, "failed to read bound: %v", err)
	}

	if bound = B(value); uint64(bound) != value {
		return bound, ierrors.Wrapf(ErrParseBytesFailed, "bound %X does not fit into %T", value, bound)
	}

	return bound, nil
}
