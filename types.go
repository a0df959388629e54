package numeral

import (
	"fmt"
	"strings"
)

// Gender selects the grammatical form of "one" and "two".
type Gender int

const (
	Masculine Gender = iota
	Feminine
	Neuter
)

func (g Gender) String() string {
	switch g {
	case Masculine:
		return "masculine"
	case Feminine:
		return "feminine"
	case Neuter:
		return "neuter"
	default:
		return fmt.Sprintf("Gender(%d)", int(g))
	}
}

func (g Gender) valid() bool {
	return g >= Masculine && g <= Neuter
}

// ParseGender accepts the English names, their first letter, or the Russian
// abbreviations used in grammars (муж, жен, ср).
func ParseGender(raw string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "m", "masculine", "male", "муж", "м":
		return Masculine, nil
	case "f", "feminine", "female", "жен", "ж":
		return Feminine, nil
	case "n", "neuter", "ср", "с":
		return Neuter, nil
	default:
		return Masculine, fmt.Errorf("%w: unknown gender %q", ErrInvalidArgument, raw)
	}
}

// UnmarshalText lets catalogs spell genders as strings
func (g *Gender) UnmarshalText(text []byte) error {
	parsed, err := ParseGender(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

func (g Gender) MarshalText() ([]byte, error) {
	if !g.valid() {
		return nil, fmt.Errorf("%w: unknown gender %d", ErrInvalidArgument, int(g))
	}
	return []byte(g.String()), nil
}

// FormSet holds the three inflections of a noun agreeing with a count:
// for 1 object, for 2 objects and for 5 objects. Empty entries mean no word.
type FormSet [3]string

// ParseFormSet splits "рубль,рубля,рублей" into a FormSet.
func ParseFormSet(raw string) (FormSet, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return FormSet{}, fmt.Errorf("%w: expected 3 comma separated forms, got %d", ErrInvalidArgument, len(parts))
	}
	var forms FormSet
	for i, part := range parts {
		forms[i] = strings.TrimSpace(part)
	}
	return forms, nil
}

func (f FormSet) One() string  { return f[0] }
func (f FormSet) Few() string  { return f[1] }
func (f FormSet) Many() string { return f[2] }

func (f FormSet) IsZero() bool {
	return f[0] == "" && f[1] == "" && f[2] == ""
}

func (f FormSet) String() string {
	return strings.Join(f[:], ",")
}

type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// formIndex maps the Russian integer categories onto FormSet positions.
func (c PluralCategory) formIndex() int {
	switch c {
	case PluralOne:
		return 0
	case PluralFew:
		return 1
	default:
		return 2
	}
}
