// Package dt renders time distances and dates in Russian without relying
// on the process locale.
package dt

import (
	"fmt"
	"strings"
	"time"

	numeral "github.com/goliatone/go-numeral"
)

var (
	dayForms    = numeral.FormSet{"день", "дня", "дней"}
	hourForms   = numeral.FormSet{"час", "часа", "часов"}
	minuteForms = numeral.FormSet{"минуту", "минуты", "минут"}
)

const (
	prefixIn  = "через"
	suffixAgo = "назад"

	lessThanMinuteAgo = "менее минуты назад"
	lessThanMinuteIn  = "менее чем через минуту"
)

// dayAlternatives replace "1 день назад" and friends when measured from now.
var dayAlternatives = map[int64][2]string{
	1: {"вчера", "завтра"},
	2: {"позавчера", "послезавтра"},
}

// now is swapped in tests.
var now = time.Now

// DistanceOfTimeInWords describes how far from lies from to, e.g.
// "2 дня 3 часа назад" or "через 5 минут". accuracy limits the number of
// units shown, starting from the largest non-zero one.
func DistanceOfTimeInWords(from, to time.Time, accuracy int) (string, error) {
	return distance(from, to, accuracy, false)
}

// DistanceFromNow is DistanceOfTimeInWords measured against the current
// time. When a single unit is shown it prefers the colloquial forms
// "вчера", "завтра", "час назад" and "через минуту".
func DistanceFromNow(from time.Time, accuracy int) (string, error) {
	return distance(from, now(), accuracy, true)
}

type part struct {
	value int64
	forms numeral.FormSet
}

func (p part) String() string {
	return fmt.Sprintf("%d %s", p.value, numeral.ChoosePlural(uint64(p.value), p.forms))
}

func distance(from, to time.Time, accuracy int, current bool) (string, error) {
	if accuracy < 1 {
		return "", fmt.Errorf("%w: accuracy %d, want at least 1", numeral.ErrInvalidArgument, accuracy)
	}

	elapsed := to.Sub(from)
	inFuture := elapsed < 0
	if inFuture {
		elapsed = -elapsed
	}

	totalMinutes := int64(elapsed / time.Minute)
	totalHours := int64(elapsed / time.Hour)
	days := totalHours / 24

	parts := []part{
		{value: days, forms: dayForms},
		{value: totalHours - days*24, forms: hourForms},
		{value: totalMinutes - totalHours*60, forms: minuteForms},
	}
	shown := visibleParts(parts, accuracy)

	if len(shown) == 0 {
		if inFuture {
			return lessThanMinuteIn, nil
		}
		return lessThanMinuteAgo, nil
	}

	if current && len(shown) == 1 {
		if alt, ok := colloquial(shown[0], inFuture); ok {
			return alt, nil
		}
	}

	words := make([]string, len(shown))
	for i, p := range shown {
		words[i] = p.String()
	}
	phrase := strings.Join(words, " ")

	if inFuture {
		return prefixIn + " " + phrase, nil
	}
	return phrase + " " + suffixAgo, nil
}

// visibleParts drops zero units around the non-zero span, keeps at most
// accuracy units and drops zeros left at the end of the cut.
func visibleParts(parts []part, accuracy int) []part {
	for len(parts) > 0 && parts[len(parts)-1].value == 0 {
		parts = parts[:len(parts)-1]
	}
	for len(parts) > 0 && parts[0].value == 0 {
		parts = parts[1:]
	}
	if len(parts) > accuracy {
		parts = parts[:accuracy]
	}
	for len(parts) > 0 && parts[len(parts)-1].value == 0 {
		parts = parts[:len(parts)-1]
	}
	return parts
}

func colloquial(p part, inFuture bool) (string, bool) {
	direction := 0
	if inFuture {
		direction = 1
	}

	switch p.forms {
	case dayForms:
		alt, ok := dayAlternatives[p.value]
		if !ok {
			return "", false
		}
		return alt[direction], true
	case hourForms, minuteForms:
		if p.value != 1 {
			return "", false
		}
		word := p.forms.One()
		if inFuture {
			return prefixIn + " " + word, true
		}
		return word + " " + suffixAgo, true
	}
	return "", false
}
