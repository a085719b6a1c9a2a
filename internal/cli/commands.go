package cli

import (
	"encoding/hex"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/ranges"
	"github.com/iotaledger/hive.go/ranges/collection"
	"github.com/iotaledger/hive.go/ranges/internal/config"
)

const (
	flagLimit   = "limit"
	flagReverse = "reverse"
	flagFormat  = "format"
)

// encoding is a text encoding for marshaled expressions.
type encoding struct {
	encode func([]byte) string
	decode func(string) ([]byte, error)
}

var encodings = map[string]encoding{
	"hex":    {encode: hex.EncodeToString, decode: hex.DecodeString},
	"base58": {encode: base58.Encode, decode: base58.Decode},
}

// region parsing //////////////////////////////////////////////////////////////////////////////////////////////////////

// parseExpression reads an expression over B from an argument, resolving references to named ranges first.
func parseExpression[B ranges.Integer](a *app, argument string) (ranges.Expression[B], error) {
	text, err := a.config.ResolveRange(argument)
	if err != nil {
		return nil, newCommandError(err, argument)
	}

	expression, err := ranges.ParseInt[B](text)
	if err != nil {
		return nil, newCommandError(err, argument)
	}

	a.logger.LogDebug("parsed expression", "argument", argument, "expression", expression)

	return expression, nil
}

// parseValue reads a single int64.
func parseValue(argument string) (int64, error) {
	value, err := cast.ToInt64E(argument)
	if err != nil {
		return 0, newCommandError(ErrInvalidValue, argument)
	}

	return value, nil
}

// encodingFor returns the encoding that is selected by the --format flag or the configuration.
func (a *app) encodingFor(cmd *cobra.Command) (encoding, error) {
	flagValue, _ := cmd.Flags().GetString(flagFormat)
	format := lo.Cond(cmd.Flags().Changed(flagFormat), flagValue, a.config.String(config.ParameterEncodeFormat))

	selected, exists := encodings[format]
	if !exists {
		return selected, newCommandError(ErrUnknownFormat, format)
	}

	return selected, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region commands /////////////////////////////////////////////////////////////////////////////////////////////////////

func (a *app) containsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "contains <expression> <value>",
		Short: "Print whether the expression contains the value",
		Args:  cobra.ExactArgs(2),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			expression, err := parseExpression[int64](a, args[0])
			if err != nil {
				return err
			}

			value, err := parseValue(args[1])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), expression.Contains(value))

			return err
		}),
	}
}

func (a *app) sliceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "slice <expression> [element...]",
		Short: "Print the elements at the positions selected by the expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			expression, err := parseExpression[int](a, args[0])
			if err != nil {
				return err
			}

			elements := collection.NewSlice(args[1:]...)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(elements.Get(expression), " "))

			return err
		}),
	}
}

func (a *app) iterateCommand() *cobra.Command {
	iterateCmd := &cobra.Command{
		Use:   "iterate <expression>",
		Short: "Print the values of an expression with a lower bound, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			expression, err := parseExpression[int64](a, args[0])
			if err != nil {
				return err
			}

			flagLimitValue, _ := cmd.Flags().GetInt(flagLimit)
			limit := lo.Cond(cmd.Flags().Changed(flagLimit), flagLimitValue, a.config.Int(config.ParameterIterateLimit))
			if limit < 0 {
				return newCommandError(ErrInvalidLimit, fmt.Sprint(limit))
			}

			reverse, _ := cmd.Flags().GetBool(flagReverse)
			values, err := valuesOf(expression, reverse)
			if err != nil {
				return err
			}

			for value := range ranges.Take(values, limit) {
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), value); err != nil {
					return err
				}
			}

			return nil
		}),
	}

	iterateCmd.Flags().Int(flagLimit, config.Defaults[config.ParameterIterateLimit].(int), "maximum number of printed values")
	iterateCmd.Flags().Bool(flagReverse, false, "print the values in descending order (bounded ranges only)")

	return iterateCmd
}

func (a *app) clampCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clamp <range> <limits>",
		Short: "Print the range clamped to the limits",
		Args:  cobra.ExactArgs(2),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			r, err := parseExpression[int64](a, args[0])
			if err != nil {
				return err
			}

			limits, err := parseExpression[int64](a, args[1])
			if err != nil {
				return err
			}

			clamped, err := clamp(r, limits)
			if err != nil {
				return newCommandError(err, strings.Join(args, " "))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), clamped)

			return err
		}),
	}
}

func (a *app) overlapsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overlaps <range> <range>",
		Short: "Print whether two bounded ranges share at least one value",
		Args:  cobra.ExactArgs(2),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			first, err := parseExpression[int64](a, args[0])
			if err != nil {
				return err
			}

			second, err := parseExpression[int64](a, args[1])
			if err != nil {
				return err
			}

			overlapping, err := overlaps(first, second)
			if err != nil {
				return newCommandError(err, strings.Join(args, " "))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), overlapping)

			return err
		}),
	}
}

func (a *app) encodeCommand() *cobra.Command {
	encodeCmd := &cobra.Command{
		Use:   "encode <expression>",
		Short: "Print the binary encoding of the expression",
		Args:  cobra.ExactArgs(1),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			selected, err := a.encodingFor(cmd)
			if err != nil {
				return err
			}

			expression, err := parseExpression[int64](a, args[0])
			if err != nil {
				return err
			}

			expressionBytes, err := ranges.Bytes(expression)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), selected.encode(expressionBytes))

			return err
		}),
	}
	encodeCmd.Flags().String(flagFormat, config.Defaults[config.ParameterEncodeFormat].(string), "text encoding (hex or base58)")

	return encodeCmd
}

func (a *app) decodeCommand() *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:   "decode <encoded>",
		Short: "Print the expression of a binary encoding",
		Args:  cobra.ExactArgs(1),
		RunE: a.runE(func(cmd *cobra.Command, args []string) error {
			selected, err := a.encodingFor(cmd)
			if err != nil {
				return err
			}

			expressionBytes, err := selected.decode(args[0])
			if err != nil {
				a.logger.LogDebug("failed to decode text", "err", err)

				return newCommandError(ranges.ErrParseBytesFailed, args[0])
			}

			expression, consumedBytes, err := ranges.FromBytes[int64](expressionBytes)
			if err != nil {
				return err
			}
			if consumedBytes != len(expressionBytes) {
				a.logger.LogDebug("trailing bytes after expression", "consumed", consumedBytes, "total", len(expressionBytes))

				return newCommandError(ranges.ErrParseBytesFailed, args[0])
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), expression)

			return err
		}),
	}
	decodeCmd.Flags().String(flagFormat, config.Defaults[config.ParameterEncodeFormat].(string), "text encoding (hex or base58)")

	return decodeCmd
}

func (a *app) configCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the merged configuration",
		Args:  cobra.NoArgs,
		RunE: a.runE(func(cmd *cobra.Command, _ []string) error {
			dump, err := a.config.Dump()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), dump)

			return err
		}),
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "ranges",
		Short: "Print the named ranges",
		Args:  cobra.NoArgs,
		RunE: a.runE(func(cmd *cobra.Command, _ []string) error {
			namedRanges := a.config.Ranges()

			names := lo.Keys(namedRanges)
			slices.Sort(names)

			for _, name := range names {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s%s = %s\n", config.RangeReferencePrefix, name, namedRanges[name]); err != nil {
					return err
				}
			}

			return nil
		}),
	})

	return configCmd
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region range operations /////////////////////////////////////////////////////////////////////////////////////////////

// valuesOf returns the values of an expression that has a lower bound.
func valuesOf(expression ranges.Expression[int64], reverse bool) (iter.Seq[int64], error) {
	integers := ranges.Integers[int64]()

	switch typedExpression := expression.(type) {
	case ranges.Range[int64]:
		return lo.Cond(reverse, ranges.Ints(typedExpression).Backward(), ranges.Ints(typedExpression).All()), nil
	case ranges.ClosedRange[int64]:
		if reverse {
			return ranges.Ints(typedExpression.HalfOpen(integers)).Backward(), nil
		}

		return typedExpression.Values(integers), nil
	case ranges.PartialRangeFrom[int64]:
		if reverse {
			return nil, ErrMissingLowerBound
		}

		return typedExpression.Values(integers), nil
	default:
		return nil, ErrMissingLowerBound
	}
}

// clamp clamps a range to limits of the same kind.
func clamp(r ranges.Expression[int64], limits ranges.Expression[int64]) (fmt.Stringer, error) {
	switch typedRange := r.(type) {
	case ranges.Range[int64]:
		if typedLimits, isRange := limits.(ranges.Range[int64]); isRange {
			return typedRange.Clamped(typedLimits), nil
		}
	case ranges.ClosedRange[int64]:
		if typedLimits, isClosed := limits.(ranges.ClosedRange[int64]); isClosed {
			return typedRange.Clamped(typedLimits), nil
		}
	}

	return nil, ErrIncompatibleRanges
}

// overlaps checks two bounded ranges for shared values.
func overlaps(first ranges.Expression[int64], second ranges.Expression[int64]) (bool, error) {
	switch typedFirst := first.(type) {
	case ranges.Range[int64]:
		switch typedSecond := second.(type) {
		case ranges.Range[int64]:
			return typedFirst.Overlaps(typedSecond), nil
		case ranges.ClosedRange[int64]:
			return typedFirst.OverlapsClosed(typedSecond), nil
		}
	case ranges.ClosedRange[int64]:
		switch typedSecond := second.(type) {
		case ranges.Range[int64]:
			return typedSecond.OverlapsClosed(typedFirst), nil
		case ranges.ClosedRange[int64]:
			return typedFirst.Overlaps(typedSecond), nil
		}
	}

	return false, ErrIncompatibleRanges
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
