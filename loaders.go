package numeral

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CatalogLoader retrieves a unit catalog
type CatalogLoader interface {
	Load() (*UnitCatalog, error)
}

// CatalogLoaderFunc adapters allow bare functions to implement CatalogLoader
type CatalogLoaderFunc func() (*UnitCatalog, error)

func (fn CatalogLoaderFunc) Load() (*UnitCatalog, error) {
	return fn()
}

// FileLoader reads unit catalogs from JSON or YAML files. Later files
// override earlier ones.
type FileLoader struct {
	paths []string
}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load() (*UnitCatalog, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("numeral: no loader paths configured")
	}

	var catalog *UnitCatalog
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("numeral: read %s: %w", path, err)
		}

		parsed, err := decodeUnitCatalog(path, data)
		if err != nil {
			return nil, fmt.Errorf("numeral: decode %s: %w", path, err)
		}
		catalog = catalog.Merge(parsed)
	}

	return catalog, nil
}

// LoadUnitCatalog merges the given files over DefaultUnitCatalog.
func LoadUnitCatalog(paths ...string) (*UnitCatalog, error) {
	if len(paths) == 0 {
		return DefaultUnitCatalog(), nil
	}
	loaded, err := NewFileLoader(paths...).Load()
	if err != nil {
		return nil, err
	}
	return DefaultUnitCatalog().Merge(loaded), nil
}

type rawCatalogFile struct {
	Currencies map[string]rawCurrency `json:"currencies" yaml:"currencies"`
	Units      map[string]rawUnit     `json:"units" yaml:"units"`
}

type rawCurrency struct {
	Major      rawUnit  `json:"major" yaml:"major"`
	Minor      *rawUnit `json:"minor,omitempty" yaml:"minor,omitempty"`
	MinorScale *int     `json:"minor_scale,omitempty" yaml:"minor_scale,omitempty"`
}

type rawUnit struct {
	Forms  []string `json:"forms" yaml:"forms"`
	Gender string   `json:"gender" yaml:"gender"`
}

func decodeUnitCatalog(path string, data []byte) (*UnitCatalog, error) {
	var raw rawCatalogFile

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	if len(raw.Currencies) == 0 && len(raw.Units) == 0 {
		return nil, errors.New("empty unit catalog")
	}

	currencies := make([]CurrencyUnits, 0, len(raw.Currencies))
	for code, rawCurr := range raw.Currencies {
		currency, err := buildCurrency(code, rawCurr)
		if err != nil {
			return nil, fmt.Errorf("currency %s: %w", code, err)
		}
		currencies = append(currencies, currency)
	}

	units := make(map[string]Unit, len(raw.Units))
	for name, rawU := range raw.Units {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("empty unit name in %s", path)
		}
		unit, err := buildUnit(rawU)
		if err != nil {
			return nil, fmt.Errorf("unit %s: %w", name, err)
		}
		units[name] = unit
	}

	return NewUnitCatalog(currencies, units), nil
}

func buildCurrency(code string, raw rawCurrency) (CurrencyUnits, error) {
	if len(normalizeCurrencyCode(code)) != 3 {
		return CurrencyUnits{}, fmt.Errorf("invalid currency code %q", code)
	}

	major, err := buildUnit(raw.Major)
	if err != nil {
		return CurrencyUnits{}, fmt.Errorf("major: %w", err)
	}

	currency := CurrencyUnits{Code: code, Major: major}
	if raw.Minor == nil {
		return currency, nil
	}

	minor, err := buildUnit(*raw.Minor)
	if err != nil {
		return CurrencyUnits{}, fmt.Errorf("minor: %w", err)
	}
	currency.Minor = minor
	currency.MinorScale = 2
	if raw.MinorScale != nil {
		currency.MinorScale = *raw.MinorScale
	}
	if currency.MinorScale < 1 || currency.MinorScale > MaxSigns {
		return CurrencyUnits{}, fmt.Errorf("minor_scale %d out of range 1..%d", currency.MinorScale, MaxSigns)
	}

	return currency, nil
}

func buildUnit(raw rawUnit) (Unit, error) {
	if len(raw.Forms) != 3 {
		return Unit{}, fmt.Errorf("expected 3 forms, got %d", len(raw.Forms))
	}

	var forms FormSet
	for i, form := range raw.Forms {
		forms[i] = strings.TrimSpace(form)
	}
	if forms.IsZero() {
		return Unit{}, errors.New("all forms are empty")
	}

	gender, err := ParseGender(raw.Gender)
	if err != nil {
		return Unit{}, err
	}

	return Unit{Forms: forms, Gender: gender}, nil
}
