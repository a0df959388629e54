// Package numeral spells numbers, decimals and money amounts in Russian
// words with correct numeral agreement.
//
// Integers up to 999 999 999 999 are supported. Decimal input uses
// github.com/govalues/decimal so the fractional digits are exact; at most
// nine of them can be named. All functions are pure and safe for concurrent use.
package numeral

import (
	"fmt"

	"github.com/govalues/decimal"
)

// IntegerInWords spells amount, e.g. IntegerInWords(21, Masculine) = "двадцать один".
func IntegerInWords(amount uint64, gender Gender) (string, error) {
	return SumString(amount, gender, FormSet{})
}

// FloatInWords spells a decimal as "<whole> целых <fraction> <position>",
// e.g. 2.05 = "две целых пять сотых". Up to MaxSigns fractional digits are named.
func FloatInWords(amount decimal.Decimal, gender Gender) (string, error) {
	return floatInWords(amount, gender, MaxSigns)
}

// NumberInWords dispatches on the amount kind. Integers default to
// Masculine and decimals to Feminine unless a gender is given.
func NumberInWords(amount Amount, gender ...Gender) (string, error) {
	return numberInWords(amount, MaxSigns, gender...)
}

// CurrencyInWords spells an amount of rubles and kopecks. Kopecks are
// omitted when zero unless includeZeroMinorUnit is set.
func CurrencyInWords(amount decimal.Decimal, includeZeroMinorUnit bool) (string, error) {
	return currencyInWords(amount, rubCurrency, includeZeroMinorUnit)
}

func numberInWords(amount Amount, signs int, gender ...Gender) (string, error) {
	switch v := amount.(type) {
	case IntegerAmount:
		return IntegerInWords(uint64(v), pickGender(Masculine, gender))
	case DecimalAmount:
		return floatInWords(v.Decimal, pickGender(Feminine, gender), signs)
	case nil:
		return "", fmt.Errorf("%w: nil amount", ErrInvalidArgument)
	default:
		return "", fmt.Errorf("%w: unsupported amount %T", ErrInvalidArgument, amount)
	}
}

func pickGender(fallback Gender, gender []Gender) Gender {
	if len(gender) > 0 {
		return gender[0]
	}
	return fallback
}

func floatInWords(amount decimal.Decimal, gender Gender, signs int) (string, error) {
	if amount.IsNeg() {
		return "", fmt.Errorf("%w: negative amount %s", ErrInvalidArgument, amount.String())
	}

	whole, err := SumString(wholePart(amount), gender, wholeUnit)
	if err != nil {
		return "", err
	}

	fraction, err := ExtractFraction(amount, signs)
	if err != nil {
		return "", err
	}
	tier, err := fraction.Tier()
	if err != nil {
		return "", err
	}

	rest, err := SumString(fraction.Value(), Feminine, tier)
	if err != nil {
		return "", err
	}

	return whole + " " + rest, nil
}

func currencyInWords(amount decimal.Decimal, units CurrencyUnits, includeZeroMinorUnit bool) (string, error) {
	if amount.IsNeg() {
		return "", fmt.Errorf("%w: negative amount %s", ErrInvalidArgument, amount.String())
	}

	scale := units.minorScale()
	rounded, err := roundHalfUp(amount, scale)
	if err != nil {
		return "", err
	}

	major, err := SumString(wholePart(rounded), units.Major.Gender, units.Major.Forms)
	if err != nil {
		return "", err
	}
	if scale == 0 {
		return major, nil
	}

	fraction, err := ExtractFraction(rounded, scale)
	if err != nil {
		return "", err
	}

	minor := fraction.Value()
	if minor == 0 && !includeZeroMinorUnit {
		return major, nil
	}
	// ".1" is ten kopecks, not one.
	minor *= pow10[scale-fraction.Len()]

	words, err := SumString(minor, units.Minor.Gender, units.Minor.Forms)
	if err != nil {
		return "", err
	}
	return major + " " + words, nil
}
