package numeral

import (
	"fmt"
	"strconv"

	"github.com/govalues/decimal"
)

// Fraction is the fractional part of a decimal as written after the point.
// Leading zeros are significant: "05" of 2.05 names hundredths.
type Fraction struct {
	Digits string
}

// Len is the number of significant fractional digits.
func (f Fraction) Len() int {
	return len(f.Digits)
}

// Value is the numeric value of the digits.
func (f Fraction) Value() uint64 {
	v, _ := strconv.ParseUint(f.Digits, 10, 64)
	return v
}

// Tier names the decimal position of the last digit ("сотая" for two digits).
func (f Fraction) Tier() (FormSet, error) {
	if f.Len() == 0 || f.Len() > len(fractionTiers) {
		return FormSet{}, fmt.Errorf("%w: %d fractional signs", ErrUnsupportedPrecision, f.Len())
	}
	return fractionTiers[f.Len()-1], nil
}

// ExtractFraction returns at most signs fractional digits of amount.
// Trailing zeros are dropped first; an integral amount yields "0". Longer
// fractions are rounded half up within the fraction; a carry out of the
// budget (0.998 at 2 signs) is ErrRoundingOverflow.
func ExtractFraction(amount decimal.Decimal, signs int) (Fraction, error) {
	if signs < 1 || signs > len(fractionTiers) {
		return Fraction{}, fmt.Errorf("%w: %d signs, want 1..%d", ErrUnsupportedPrecision, signs, len(fractionTiers))
	}
	if amount.IsNeg() {
		return Fraction{}, fmt.Errorf("%w: negative amount %s", ErrInvalidArgument, amount.String())
	}

	amount = amount.Trim(0)
	scale := amount.Scale()
	if scale == 0 {
		return Fraction{Digits: "0"}, nil
	}

	digits := amount.Coef() % pow10[scale]
	width := scale

	if scale > signs {
		factor := pow10[scale-signs]
		quotient, remainder := digits/factor, digits%factor
		if remainder >= factor-remainder {
			quotient++
		}
		digits = quotient
		width = signs
	}

	formatted := fmt.Sprintf("%0*d", width, digits)
	if len(formatted) > signs {
		return Fraction{}, fmt.Errorf("%w: fractional part of %s does not fit in %d signs", ErrRoundingOverflow, amount.String(), signs)
	}

	return Fraction{Digits: formatted}, nil
}

// roundHalfUp rounds a non-negative decimal to scale fractional digits.
func roundHalfUp(amount decimal.Decimal, scale int) (decimal.Decimal, error) {
	if amount.Scale() <= scale {
		return amount, nil
	}
	half, err := decimal.New(5, scale+1)
	if err != nil {
		return decimal.Decimal{}, err
	}
	sum, err := amount.Add(half)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrUnsupportedMagnitude, err.Error())
	}
	return sum.Trunc(scale), nil
}

// wholePart truncates amount toward zero.
func wholePart(amount decimal.Decimal) uint64 {
	return amount.Coef() / pow10[amount.Scale()]
}
