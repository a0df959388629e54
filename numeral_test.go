package numeral

import (
	"errors"
	"testing"

	"github.com/govalues/decimal"
)

func TestFloatInWords(t *testing.T) {
	cases := []struct {
		amount string
		gender Gender
		want   string
	}{
		{"2.05", Feminine, "две целых пять сотых"},
		{"1.5", Feminine, "одна целая пять десятых"},
		{"0.1", Feminine, "ноль целых одна десятая"},
		{"2.0", Feminine, "две целых ноль десятых"},
		{"10.21", Feminine, "десять целых двадцать одна сотая"},
		{"3.14159", Feminine, "три целых четырнадцать тысяч сто пятьдесят девять стотысячных"},
		{"21.5", Feminine, "двадцать одна целая пять десятых"},
		{"2.5", Neuter, "два целых пять десятых"},
	}

	for _, tc := range cases {
		got, err := FloatInWords(decimal.MustParse(tc.amount), tc.gender)
		if err != nil {
			t.Fatalf("FloatInWords(%s): %v", tc.amount, err)
		}
		if got != tc.want {
			t.Fatalf("FloatInWords(%s) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestFloatInWordsErrors(t *testing.T) {
	if _, err := FloatInWords(decimal.MustParse("-2.5"), Feminine); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := FloatInWords(decimal.MustParse("1000000000000.5"), Feminine); !errors.Is(err, ErrUnsupportedMagnitude) {
		t.Fatalf("expected ErrUnsupportedMagnitude, got %v", err)
	}
}

func TestCurrencyInWords(t *testing.T) {
	cases := []struct {
		amount      string
		includeZero bool
		want        string
	}{
		{"1", false, "один рубль"},
		{"3.1", false, "три рубля десять копеек"},
		{"3.10", false, "три рубля десять копеек"},
		{"21.22", false, "двадцать один рубль двадцать две копейки"},
		{"0.01", false, "ноль рублей одна копейка"},
		{"1.005", false, "один рубль одна копейка"},
		{"1.995", false, "два рубля"},
		{"1000", false, "одна тысяча рублей"},
		{"5", true, "пять рублей ноль копеек"},
		{"5.00", true, "пять рублей ноль копеек"},
		{"5.00", false, "пять рублей"},
	}

	for _, tc := range cases {
		got, err := CurrencyInWords(decimal.MustParse(tc.amount), tc.includeZero)
		if err != nil {
			t.Fatalf("CurrencyInWords(%s): %v", tc.amount, err)
		}
		if got != tc.want {
			t.Fatalf("CurrencyInWords(%s, %v) = %q, want %q", tc.amount, tc.includeZero, got, tc.want)
		}
	}
}

func TestCurrencyInWordsNegative(t *testing.T) {
	if _, err := CurrencyInWords(decimal.MustParse("-1"), false); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestNumberInWords(t *testing.T) {
	cases := []struct {
		name   string
		amount Amount
		gender []Gender
		want   string
	}{
		{"integer", IntegerAmount(1), nil, "один"},
		{"integer neuter", IntegerAmount(1), []Gender{Neuter}, "одно"},
		{"decimal", Decimal(decimal.MustParse("1.5")), nil, "одна целая пять десятых"},
		{"decimal with zero fraction", Decimal(decimal.MustParse("42.0")), nil, "сорок две целых ноль десятых"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NumberInWords(tc.amount, tc.gender...)
			if err != nil {
				t.Fatalf("NumberInWords: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}

	if _, err := NumberInWords(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for nil, got %v", err)
	}
}
