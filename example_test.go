package numeral_test

import (
	"fmt"

	"github.com/govalues/decimal"

	numeral "github.com/goliatone/go-numeral"
)

func ExampleSumString() {
	words, _ := numeral.SumString(21, numeral.Masculine, numeral.FormSet{"рубль", "рубля", "рублей"})
	fmt.Println(words)
	// Output: двадцать один рубль
}

func ExampleFloatInWords() {
	words, _ := numeral.FloatInWords(decimal.MustParse("2.05"), numeral.Feminine)
	fmt.Println(words)
	// Output: две целых пять сотых
}

func ExampleCurrencyInWords() {
	words, _ := numeral.CurrencyInWords(decimal.MustParse("3.1"), false)
	fmt.Println(words)
	// Output: три рубля десять копеек
}

func ExampleChoosePlural() {
	fmt.Println(numeral.ChoosePlural(22, numeral.FormSet{"яблоко", "яблока", "яблок"}))
	// Output: яблока
}
