package numeral

import (
	"fmt"
	"math"
	"strings"

	"github.com/govalues/decimal"
	"github.com/govalues/money"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type FormatterCapabilities struct {
	Words    bool
	Currency bool
	Money    bool
	Plural   bool
	Number   bool
}

// FormatterProvider exposes a speller as named formatter functions.
type FormatterProvider struct {
	speller      *Speller
	printer      *message.Printer
	funcs        map[string]any
	capabilities FormatterCapabilities
}

// NewFormatterProvider wraps speller; nil uses DefaultSpeller.
func NewFormatterProvider(speller *Speller) *FormatterProvider {
	if speller == nil {
		speller = DefaultSpeller()
	}

	p := &FormatterProvider{
		speller: speller,
		printer: message.NewPrinter(language.Russian),
		capabilities: FormatterCapabilities{
			Words:    true,
			Currency: true,
			Money:    true,
			Plural:   true,
			Number:   true,
		},
	}

	p.funcs = map[string]any{
		"in_words":       p.inWords,
		"in_words_int":   p.inWordsInt,
		"in_words_float": p.inWordsFloat,
		"rubles":         p.rubles,
		"money_in_words": p.moneyInWords,
		"choose_plural":  p.choosePlural,
		"sum_string":     p.sumString,
		"format_number":  p.formatNumber,
	}

	return p
}

func (p *FormatterProvider) Formatter(name string) (any, bool) {
	if p == nil {
		return nil, false
	}
	fn, ok := p.funcs[name]
	return fn, ok
}

func (p *FormatterProvider) FuncMap() map[string]any {
	if p == nil {
		return nil
	}
	return cloneFuncMap(p.funcs)
}

func (p *FormatterProvider) Capabilities() FormatterCapabilities {
	if p == nil {
		return FormatterCapabilities{}
	}
	return p.capabilities
}

// inWords accepts any numeric value and an optional gender name.
func (p *FormatterProvider) inWords(value any, gender ...string) (string, error) {
	amount, err := AmountOf(value)
	if err != nil {
		return "", err
	}
	genders, err := parseGenders(gender)
	if err != nil {
		return "", err
	}
	return p.speller.Number(amount, genders...)
}

func (p *FormatterProvider) inWordsInt(value any, gender ...string) (string, error) {
	amount, err := AmountOf(value)
	if err != nil {
		return "", err
	}
	integer, ok := amount.(IntegerAmount)
	if !ok {
		return "", fmt.Errorf("%w: %s is not an integer", ErrInvalidArgument, amount.String())
	}
	genders, err := parseGenders(gender)
	if err != nil {
		return "", err
	}
	return p.speller.Integer(uint64(integer), pickGender(Masculine, genders))
}

func (p *FormatterProvider) inWordsFloat(value any, gender ...string) (string, error) {
	d, err := decimalOf(value)
	if err != nil {
		return "", err
	}
	genders, err := parseGenders(gender)
	if err != nil {
		return "", err
	}
	return p.speller.Float(d, pickGender(Feminine, genders))
}

func (p *FormatterProvider) rubles(value any, zeroForKopeck ...bool) (string, error) {
	d, err := decimalOf(value)
	if err != nil {
		return "", err
	}
	includeZero := p.speller.zeroMinor
	if len(zeroForKopeck) > 0 {
		includeZero = zeroForKopeck[0]
	}
	return currencyInWords(d, rubCurrency, includeZero)
}

func (p *FormatterProvider) moneyInWords(code string, value any) (string, error) {
	d, err := decimalOf(value)
	if err != nil {
		return "", err
	}
	curr, err := money.ParseCurr(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	amount, err := money.NewAmountFromDecimal(curr, d)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return p.speller.Money(amount)
}

// choosePlural takes either a unit name or three forms.
func (p *FormatterProvider) choosePlural(value any, forms ...string) (string, error) {
	count, err := countOf(value)
	if err != nil {
		return "", err
	}
	switch len(forms) {
	case 1:
		return p.speller.Plural(count, forms[0])
	case 3:
		return ChoosePlural(count, FormSet{forms[0], forms[1], forms[2]}), nil
	default:
		return "", fmt.Errorf("%w: choose_plural wants a unit name or 3 forms, got %d", ErrInvalidArgument, len(forms))
	}
}

func (p *FormatterProvider) sumString(value any, unit string) (string, error) {
	count, err := countOf(value)
	if err != nil {
		return "", err
	}
	return p.speller.Count(count, unit)
}

// formatNumber renders digits with Russian grouping and decimal comma.
// The value goes through float64, so digits beyond 2^53 are approximate.
func (p *FormatterProvider) formatNumber(value any, decimals int) (string, error) {
	d, err := decimalOf(value)
	if err != nil {
		return "", err
	}
	f, ok := d.Float64()
	if !ok {
		return "", fmt.Errorf("%w: %s does not fit a float64", ErrUnsupportedMagnitude, d.String())
	}

	opts := []number.Option{}
	if decimals >= 0 {
		opts = append(opts, number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals))
	}
	return p.printer.Sprintf("%v", number.Decimal(f, opts...)), nil
}

func decimalOf(value any) (decimal.Decimal, error) {
	amount, err := AmountOf(value)
	if err != nil {
		return decimal.Decimal{}, err
	}
	switch v := amount.(type) {
	case IntegerAmount:
		if uint64(v) > math.MaxInt64 {
			return decimal.Decimal{}, fmt.Errorf("%w: %d", ErrUnsupportedMagnitude, uint64(v))
		}
		d, err := decimal.New(int64(v), 0)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrUnsupportedMagnitude, err)
		}
		return d, nil
	case DecimalAmount:
		return v.Decimal, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: unsupported amount %T", ErrInvalidArgument, amount)
	}
}

func countOf(value any) (uint64, error) {
	amount, err := AmountOf(value)
	if err != nil {
		return 0, err
	}
	integer, ok := amount.(IntegerAmount)
	if !ok {
		return 0, fmt.Errorf("%w: count %s is not an integer", ErrInvalidArgument, amount.String())
	}
	return uint64(integer), nil
}

func parseGenders(names []string) ([]Gender, error) {
	if len(names) == 0 || strings.TrimSpace(names[0]) == "" {
		return nil, nil
	}
	gender, err := ParseGender(names[0])
	if err != nil {
		return nil, err
	}
	return []Gender{gender}, nil
}

func cloneFuncMap(source map[string]any) map[string]any {
	if len(source) == 0 {
		return map[string]any{}
	}

	target := make(map[string]any, len(source))
	for key, value := range source {
		target[key] = value
	}
	return target
}
