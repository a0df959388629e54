package numeral

import (
	"fmt"

	"github.com/govalues/money"
)

// MoneyInWords spells a money amount using the built-in currency names.
// The minor unit scale comes from the amount's ISO 4217 currency.
func MoneyInWords(amount money.Amount, includeZeroMinorUnit bool) (string, error) {
	return moneyInWords(DefaultUnitCatalog(), amount, includeZeroMinorUnit)
}

// Money spells amount using the speller's unit catalog.
func (s *Speller) Money(amount money.Amount) (string, error) {
	return moneyInWords(s.units, amount, s.zeroMinor)
}

func moneyInWords(catalog *UnitCatalog, amount money.Amount, includeZeroMinorUnit bool) (string, error) {
	if amount.IsNeg() {
		return "", fmt.Errorf("%w: negative amount %s", ErrInvalidArgument, amount.String())
	}

	curr := amount.Curr()
	units, err := catalog.Currency(curr.Code())
	if err != nil {
		return "", err
	}
	if !units.Minor.Forms.IsZero() {
		units.MinorScale = curr.Scale()
	}

	return currencyInWords(amount.Decimal(), units, includeZeroMinorUnit)
}
