package numeral

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// PluralIndex returns the FormSet position agreeing with amount:
// 0 for 1, 21, 101..., 1 for 2-4, 22-24..., 2 for everything else,
// including 0 and 11-19.
func PluralIndex(amount uint64) int {
	d1 := amount % 10
	d2 := amount % 100
	switch {
	case d1 == 1 && d2 != 11:
		return 0
	case d1 >= 2 && d1 <= 4 && (d2 < 10 || d2 >= 20):
		return 1
	default:
		return 2
	}
}

// ChoosePlural picks the noun form agreeing with amount.
func ChoosePlural(amount uint64, forms FormSet) string {
	return forms[PluralIndex(amount)]
}

// Category reports the CLDR cardinal category of an integer amount for Russian,
// as computed by golang.org/x/text.
func Category(amount uint64) PluralCategory {
	// MatchPlural takes int operands; only the last digits matter for Russian.
	i := int(amount % 1_000_000)
	switch plural.Cardinal.MatchPlural(language.Russian, i, 0, 0, 0, 0) {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}

// ChooseCategory picks a form using the CLDR category instead of the digit rule.
func ChooseCategory(amount uint64, forms FormSet) string {
	return forms[Category(amount).formIndex()]
}
