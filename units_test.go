package numeral

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultUnitCatalog(t *testing.T) {
	catalog := DefaultUnitCatalog()

	if got, want := strings.Join(catalog.Currencies(), ","), "EUR,RUB,USD"; got != want {
		t.Fatalf("Currencies = %s, want %s", got, want)
	}

	rub, err := catalog.Currency(" rub ")
	if err != nil {
		t.Fatalf("Currency: %v", err)
	}
	if rub.Major.Forms != rublesUnits || rub.Minor.Forms != kopecksUnits || rub.Minor.Gender != Feminine {
		t.Fatalf("unexpected RUB units: %+v", rub)
	}

	for _, name := range []string{"second", "minute", "hour", "day", "week", "month", "year", "thing"} {
		if _, err := catalog.Unit(name); err != nil {
			t.Fatalf("Unit(%s): %v", name, err)
		}
	}

	if _, err := catalog.Unit("parsec"); !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("expected ErrUnknownUnit, got %v", err)
	}
	if _, err := catalog.Currency("XAU"); !errors.Is(err, ErrUnknownCurrency) {
		t.Fatalf("expected ErrUnknownCurrency, got %v", err)
	}
}

func TestUnitCatalogMerge(t *testing.T) {
	base := NewUnitCatalog(nil, map[string]Unit{
		"Box": {Forms: FormSet{"коробка", "коробки", "коробок"}, Gender: Feminine},
	})
	override := NewUnitCatalog([]CurrencyUnits{{Code: "xts", Major: Unit{Forms: FormSet{"a", "b", "c"}}}}, map[string]Unit{
		"box": {Forms: FormSet{"ящик", "ящика", "ящиков"}},
	})

	merged := base.Merge(override)
	box, err := merged.Unit("BOX")
	if err != nil {
		t.Fatalf("Unit: %v", err)
	}
	if box.Forms.One() != "ящик" || box.Gender != Masculine {
		t.Fatalf("override did not win: %+v", box)
	}
	if _, err := merged.Currency("XTS"); err != nil {
		t.Fatalf("Currency: %v", err)
	}

	if _, err := base.Unit("box"); err != nil {
		t.Fatalf("Merge must not mutate the receiver: %v", err)
	}
	if b, _ := base.Unit("box"); b.Forms.One() != "коробка" {
		t.Fatalf("Merge mutated the receiver: %+v", b)
	}

	var nilCatalog *UnitCatalog
	if got := nilCatalog.Merge(base).Units(); len(got) != 1 {
		t.Fatalf("nil Merge = %v", got)
	}
}

func TestParseGender(t *testing.T) {
	cases := map[string]Gender{
		"":          Masculine,
		"M":         Masculine,
		"feminine":  Feminine,
		"ж":         Feminine,
		"n":         Neuter,
		" ср ":      Neuter,
		"masculine": Masculine,
	}
	for raw, want := range cases {
		got, err := ParseGender(raw)
		if err != nil || got != want {
			t.Fatalf("ParseGender(%q) = %v, %v", raw, got, err)
		}
	}
	if _, err := ParseGender("plural"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestParseFormSet(t *testing.T) {
	forms, err := ParseFormSet("рубль, рубля ,рублей")
	if err != nil {
		t.Fatalf("ParseFormSet: %v", err)
	}
	if forms != rublesUnits {
		t.Fatalf("got %v", forms)
	}
	if forms.String() != "рубль,рубля,рублей" {
		t.Fatalf("String = %q", forms.String())
	}
	if _, err := ParseFormSet("a,b"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
