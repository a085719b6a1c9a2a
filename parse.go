package ranges

import (
	"strconv"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
)

const (
	halfOpenOperator = "..<"
	closedOperator   = "..."
)

// Parse reads an Expression from the notation that is produced by the String methods:
//   - a..<b, a...b
//   - ..<b, ...b, a...
//   - ... (Everything)
//
// Spaces around the bounds are ignored; the bounds themselves are read by parseBound. Malformed input, including a
// lower bound greater than the upper bound, yields an error wrapping ErrParseFailed instead of a panic.
func Parse[B Bound](text string, parseBound func(string) (B, error)) (Expression[B], error) {
	s := strings.TrimSpace(text)

	bound := func(token string) (B, error) {
		value, err := parseBound(strings.TrimSpace(token))
		if err != nil {
			return value, ierrors.Wrapf(ErrParseFailed, "invalid bound %q in %q: %v", token, text, err)
		}

		return value, nil
	}

	switch {
	case s == closedOperator:
		return Everything[B](), nil

	case strings.HasPrefix(s, halfOpenOperator):
		upper, err := bound(s[len(halfOpenOperator):])
		if err != nil {
			return nil, err
		}

		return UpTo(upper), nil

	case strings.HasPrefix(s, closedOperator):
		upper, err := bound(s[len(closedOperator):])
		if err != nil {
			return nil, err
		}

		return Through(upper), nil

	case strings.HasSuffix(s, closedOperator):
		lower, err := bound(s[:len(s)-len(closedOperator)])
		if err != nil {
			return nil, err
		}

		return From(lower), nil
	}

	operator := halfOpenOperator
	position := strings.Index(s, halfOpenOperator)
	if position == -1 {
		if operator, position = closedOperator, strings.Index(s, closedOperator); position == -1 {
			return nil, ierrors.Wrapf(ErrParseFailed, "no range operator in %q", text)
		}
	}

	lower, err := bound(s[:position])
	if err != nil {
		return nil, err
	}
	upper, err := bound(s[position+len(operator):])
	if err != nil {
		return nil, err
	}

	if lower > upper {
		return nil, ierrors.Wrapf(ErrParseFailed, "lower bound exceeds upper bound in %q", text)
	}

	if operator == halfOpenOperator {
		return Between(lower, upper), nil
	}

	return Closed(lower, upper), nil
}

// ParseInt reads an Expression over the integer type B. Bounds may use any base prefix that strconv understands.
func ParseInt[B Integer](text string) (Expression[B], error) {
	return Parse(text, parseInteger[B])
}

// parseInteger parses a single integer and makes sure that it fits into B.
func parseInteger[B Integer](token string) (B, error) {
	var zero B

	if signed := ^zero < 0; signed {
		value, err := strconv.ParseInt(token, 0, 64)
		if err != nil {
			return zero, err
		}
		if converted := B(value); int64(converted) == value {
			return converted, nil
		}

		return zero, strconv.ErrRange
	}

	value, err := strconv.ParseUint(token, 0, 64)
	if err != nil {
		return zero, err
	}
	if converted := B(value); uint64(converted) == value {
		return converted, nil
	}

	return zero, strconv.ErrRange
}
