package numeral

import (
	"fmt"
	"sync"

	"github.com/govalues/decimal"
)

// Config captures speller setup
type Config struct {
	MaxSigns      int
	Currency      string
	ZeroMinorUnit bool
	Units         *UnitCatalog
	Loader        CatalogLoader
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.MaxSigns == 0 {
		cfg.MaxSigns = MaxSigns
	}
	if cfg.Currency == "" {
		cfg.Currency = rubCurrency.Code
	}

	if cfg.Loader != nil {
		loaded, err := cfg.Loader.Load()
		if err != nil {
			return nil, err
		}
		base := cfg.Units
		if base == nil {
			base = DefaultUnitCatalog()
		}
		cfg.Units = base.Merge(loaded)
	}
	if cfg.Units == nil {
		cfg.Units = DefaultUnitCatalog()
	}

	if _, err := cfg.Units.Currency(cfg.Currency); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithMaxSigns limits how many fractional digits Float names
func WithMaxSigns(signs int) Option {
	return func(c *Config) error {
		if signs < 1 || signs > MaxSigns {
			return fmt.Errorf("%w: %d signs, want 1..%d", ErrUnsupportedPrecision, signs, MaxSigns)
		}
		c.MaxSigns = signs
		return nil
	}
}

// WithCurrency sets the ISO 4217 code used by Speller.Currency
func WithCurrency(code string) Option {
	return func(c *Config) error {
		c.Currency = normalizeCurrencyCode(code)
		return nil
	}
}

// WithZeroMinorUnit spells "ноль копеек" instead of omitting it
func WithZeroMinorUnit() Option {
	return func(c *Config) error {
		c.ZeroMinorUnit = true
		return nil
	}
}

func WithUnitCatalog(catalog *UnitCatalog) Option {
	return func(c *Config) error {
		c.Units = catalog
		return nil
	}
}

func WithLoader(loader CatalogLoader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

// WithUnitFiles merges JSON or YAML catalogs over the built-in units
func WithUnitFiles(paths ...string) Option {
	return func(c *Config) error {
		if len(paths) == 0 {
			return nil
		}
		c.Loader = NewFileLoader(paths...)
		return nil
	}
}

func (cfg *Config) BuildSpeller() (*Speller, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidArgument)
	}

	currency, err := cfg.Units.Currency(cfg.Currency)
	if err != nil {
		return nil, err
	}

	return &Speller{
		maxSigns:  cfg.MaxSigns,
		currency:  currency,
		zeroMinor: cfg.ZeroMinorUnit,
		units:     cfg.Units,
	}, nil
}

// Speller spells amounts with a fixed configuration. It holds no mutable
// state and may be shared between goroutines.
type Speller struct {
	maxSigns  int
	currency  CurrencyUnits
	zeroMinor bool
	units     *UnitCatalog
}

// NewSpeller is NewConfig followed by BuildSpeller
func NewSpeller(opts ...Option) (*Speller, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.BuildSpeller()
}

var defaultSpeller = sync.OnceValue(func() *Speller {
	speller, err := NewSpeller()
	if err != nil {
		panic(fmt.Sprintf("numeral: default speller: %v", err))
	}
	return speller
})

// DefaultSpeller uses rubles, nine fractional signs and the built-in units.
func DefaultSpeller() *Speller {
	return defaultSpeller()
}

func (s *Speller) Units() *UnitCatalog {
	return s.units
}

func (s *Speller) Integer(amount uint64, gender Gender) (string, error) {
	return IntegerInWords(amount, gender)
}

func (s *Speller) Float(amount decimal.Decimal, gender Gender) (string, error) {
	return floatInWords(amount, gender, s.maxSigns)
}

func (s *Speller) Number(amount Amount, gender ...Gender) (string, error) {
	return numberInWords(amount, s.maxSigns, gender...)
}

// Currency spells amount in the configured currency.
func (s *Speller) Currency(amount decimal.Decimal) (string, error) {
	return currencyInWords(amount, s.currency, s.zeroMinor)
}

// CurrencyCode spells amount in the currency registered for code.
func (s *Speller) CurrencyCode(amount decimal.Decimal, code string) (string, error) {
	currency, err := s.units.Currency(code)
	if err != nil {
		return "", err
	}
	return currencyInWords(amount, currency, s.zeroMinor)
}

// Count spells amount followed by the named unit: Count(5, "day") = "пять дней".
func (s *Speller) Count(amount uint64, unit string) (string, error) {
	u, err := s.units.Unit(unit)
	if err != nil {
		return "", err
	}
	return SumString(amount, u.Gender, u.Forms)
}

// Plural returns the form of the named unit agreeing with amount.
func (s *Speller) Plural(amount uint64, unit string) (string, error) {
	u, err := s.units.Unit(unit)
	if err != nil {
		return "", err
	}
	return ChoosePlural(amount, u.Forms), nil
}
