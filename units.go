package numeral

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed data/default_units.yaml
var defaultUnitsYAML []byte

// Unit is a countable noun with the gender its count agrees with.
type Unit struct {
	Forms  FormSet
	Gender Gender
}

// CurrencyUnits names the major and minor units of a currency.
// MinorScale is the number of minor digits; it is zero when Minor is empty.
type CurrencyUnits struct {
	Code       string
	Major      Unit
	Minor      Unit
	MinorScale int
}

func (c CurrencyUnits) minorScale() int {
	if c.Minor.Forms.IsZero() {
		return 0
	}
	return c.MinorScale
}

var rubCurrency = CurrencyUnits{
	Code:       "RUB",
	Major:      Unit{Forms: rublesUnits, Gender: Masculine},
	Minor:      Unit{Forms: kopecksUnits, Gender: Feminine},
	MinorScale: 2,
}

// UnitCatalog is a read only set of currencies and counted units.
type UnitCatalog struct {
	currencies map[string]CurrencyUnits
	units      map[string]Unit
}

// NewUnitCatalog builds an immutable catalog. Currency codes are upper
// cased and unit names lower cased.
func NewUnitCatalog(currencies []CurrencyUnits, units map[string]Unit) *UnitCatalog {
	catalog := &UnitCatalog{
		currencies: make(map[string]CurrencyUnits, len(currencies)),
		units:      make(map[string]Unit, len(units)),
	}
	for _, currency := range currencies {
		code := normalizeCurrencyCode(currency.Code)
		if code == "" {
			continue
		}
		currency.Code = code
		catalog.currencies[code] = currency
	}
	for name, unit := range units {
		key := normalizeUnitName(name)
		if key == "" {
			continue
		}
		catalog.units[key] = unit
	}
	return catalog
}

var defaultUnitCatalog = sync.OnceValue(func() *UnitCatalog {
	parsed, err := decodeUnitCatalog("default_units.yaml", defaultUnitsYAML)
	if err != nil {
		panic(fmt.Sprintf("numeral: embedded unit catalog: %v", err))
	}
	return NewUnitCatalog([]CurrencyUnits{rubCurrency}, nil).Merge(parsed)
})

// DefaultUnitCatalog returns the built-in catalog: RUB, USD and EUR plus
// common time and counting units.
func DefaultUnitCatalog() *UnitCatalog {
	return defaultUnitCatalog()
}

// Merge returns a new catalog where entries of other replace entries of c.
func (c *UnitCatalog) Merge(other *UnitCatalog) *UnitCatalog {
	merged := &UnitCatalog{
		currencies: make(map[string]CurrencyUnits),
		units:      make(map[string]Unit),
	}
	for _, src := range []*UnitCatalog{c, other} {
		if src == nil {
			continue
		}
		for code, currency := range src.currencies {
			merged.currencies[code] = currency
		}
		for name, unit := range src.units {
			merged.units[name] = unit
		}
	}
	return merged
}

// Currency returns the units registered for an ISO 4217 code.
func (c *UnitCatalog) Currency(code string) (CurrencyUnits, error) {
	key := normalizeCurrencyCode(code)
	if c != nil {
		if currency, ok := c.currencies[key]; ok {
			return currency, nil
		}
	}
	return CurrencyUnits{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
}

// Unit returns a counted unit by name.
func (c *UnitCatalog) Unit(name string) (Unit, error) {
	key := normalizeUnitName(name)
	if c != nil {
		if unit, ok := c.units[key]; ok {
			return unit, nil
		}
	}
	return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
}

// Currencies lists the registered currency codes in order.
func (c *UnitCatalog) Currencies() []string {
	if c == nil {
		return nil
	}
	codes := make([]string, 0, len(c.currencies))
	for code := range c.currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Units lists the registered unit names in order.
func (c *UnitCatalog) Units() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.units))
	for name := range c.units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func normalizeUnitName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
