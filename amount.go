package numeral

import (
	"fmt"
	"math"
	"strings"

	"github.com/govalues/decimal"
)

// Amount is either an IntegerAmount or a DecimalAmount.
type Amount interface {
	isAmount()
	String() string
}

// IntegerAmount is an exact non-negative integer.
type IntegerAmount uint64

// DecimalAmount is a decimal with an exact fractional digit sequence.
type DecimalAmount struct {
	decimal.Decimal
}

func (IntegerAmount) isAmount() {}
func (DecimalAmount) isAmount() {}

func (a IntegerAmount) String() string {
	return fmt.Sprintf("%d", uint64(a))
}

// Decimal wraps d as an Amount.
func Decimal(d decimal.Decimal) DecimalAmount {
	return DecimalAmount{Decimal: d}
}

// ParseAmount reads "42" as an IntegerAmount and "42.0" or "42,5" as a DecimalAmount.
func ParseAmount(raw string) (Amount, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty amount", ErrInvalidArgument)
	}
	trimmed = strings.Replace(trimmed, ",", ".", 1)

	d, err := decimal.Parse(trimmed)
	if err != nil {
		if isPlainNumber(trimmed) {
			return nil, fmt.Errorf("%w: %q has too many digits", ErrUnsupportedMagnitude, raw)
		}
		return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidArgument, raw)
	}
	if d.IsNeg() {
		return nil, fmt.Errorf("%w: negative amount %s", ErrInvalidArgument, raw)
	}

	if !strings.ContainsAny(trimmed, ".eE") {
		return IntegerAmount(d.Coef()), nil
	}
	return Decimal(d), nil
}

// AmountOf converts a runtime numeric value into an Amount. Integer kinds
// become IntegerAmount, float and decimal kinds become DecimalAmount and
// strings go through ParseAmount. Float input is converted via its shortest
// decimal representation and is therefore approximate.
func AmountOf(value any) (Amount, error) {
	switch v := value.(type) {
	case Amount:
		return v, nil
	case int:
		return signedAmount(int64(v))
	case int8:
		return signedAmount(int64(v))
	case int16:
		return signedAmount(int64(v))
	case int32:
		return signedAmount(int64(v))
	case int64:
		return signedAmount(v)
	case uint:
		return IntegerAmount(v), nil
	case uint8:
		return IntegerAmount(v), nil
	case uint16:
		return IntegerAmount(v), nil
	case uint32:
		return IntegerAmount(v), nil
	case uint64:
		return IntegerAmount(v), nil
	case float32:
		return floatAmount(float64(v))
	case float64:
		return floatAmount(v)
	case decimal.Decimal:
		if v.IsNeg() {
			return nil, fmt.Errorf("%w: negative amount %s", ErrInvalidArgument, v.String())
		}
		return Decimal(v), nil
	case string:
		return ParseAmount(v)
	case nil:
		return nil, fmt.Errorf("%w: nil amount", ErrInvalidArgument)
	default:
		return nil, fmt.Errorf("%w: unsupported amount type %T", ErrInvalidArgument, value)
	}
}

func signedAmount(v int64) (Amount, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: negative amount %d", ErrInvalidArgument, v)
	}
	return IntegerAmount(v), nil
}

func floatAmount(v float64) (Amount, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%w: %v is not a finite number", ErrInvalidArgument, v)
	}
	if v < 0 {
		return nil, fmt.Errorf("%w: negative amount %v", ErrInvalidArgument, v)
	}
	d, err := decimal.NewFromFloat64(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMagnitude, err)
	}
	return Decimal(d), nil
}

// isPlainNumber reports whether s is digits with at most one decimal point.
func isPlainNumber(s string) bool {
	digits, points := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			points++
		default:
			return false
		}
	}
	if strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") {
		return false
	}
	return digits > 0 && points <= 1
}
