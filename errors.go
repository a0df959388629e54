package numeral

import "errors"

// ErrInvalidArgument indicates a negative or non-numeric amount.
var ErrInvalidArgument = errors.New("numeral: invalid argument")

// ErrUnsupportedMagnitude indicates an integer part of 10^12 or more.
var ErrUnsupportedMagnitude = errors.New("numeral: unsupported magnitude")

// ErrRoundingOverflow indicates that rounding the fractional digits carried past the precision budget
var ErrRoundingOverflow = errors.New("numeral: rounding overflow")

// ErrUnsupportedPrecision indicates more fractional signs than the fraction tier table names
var ErrUnsupportedPrecision = errors.New("numeral: unsupported precision")

// ErrUnknownUnit indicates a unit name missing from the catalog
var ErrUnknownUnit = errors.New("numeral: unknown unit")

// ErrUnknownCurrency indicates a currency code missing from the catalog
var ErrUnknownCurrency = errors.New("numeral: unknown currency")
