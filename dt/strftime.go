package dt

import (
	"fmt"
	"strings"
	"time"
)

type monthName struct {
	short, nominative, genitive string
}

var monthNames = [12]monthName{
	{"янв", "январь", "января"},
	{"фев", "февраль", "февраля"},
	{"мар", "март", "марта"},
	{"апр", "апрель", "апреля"},
	{"май", "май", "мая"},
	{"июн", "июнь", "июня"},
	{"июл", "июль", "июля"},
	{"авг", "август", "августа"},
	{"сен", "сентябрь", "сентября"},
	{"окт", "октябрь", "октября"},
	{"ноя", "ноябрь", "ноября"},
	{"дек", "декабрь", "декабря"},
}

// dayNames starts on Monday.
var dayNames = [7][2]string{
	{"пн", "понедельник"},
	{"вт", "вторник"},
	{"ср", "среда"},
	{"чт", "четверг"},
	{"пт", "пятница"},
	{"сб", "суббота"},
	{"вск", "воскресенье"},
}

// DefaultFormat renders dates as 14.10.2026.
const DefaultFormat = "%d.%m.%Y"

// Strftime formats t with C-style directives and Russian day and month
// names. With inflected set %B yields the genitive month ("14 октября").
//
// Supported: %a %A %b %B %d %e %m %y %Y %H %I %M %S %p %j %%. Unknown
// directives are copied through unchanged.
func Strftime(format string, t time.Time, inflected bool) string {
	if format == "" {
		format = DefaultFormat
	}

	var b strings.Builder
	b.Grow(len(format) + 16)

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i == len(format)-1 {
			b.WriteByte(c)
			continue
		}

		i++
		directive := format[i]
		if !writeDirective(&b, directive, t, inflected) {
			b.WriteByte('%')
			b.WriteByte(directive)
		}
	}

	return b.String()
}

func writeDirective(b *strings.Builder, directive byte, t time.Time, inflected bool) bool {
	switch directive {
	case 'a':
		b.WriteString(dayNames[weekdayIndex(t)][0])
	case 'A':
		b.WriteString(dayNames[weekdayIndex(t)][1])
	case 'b':
		b.WriteString(monthNames[t.Month()-1].short)
	case 'B':
		month := monthNames[t.Month()-1]
		if inflected {
			b.WriteString(month.genitive)
		} else {
			b.WriteString(month.nominative)
		}
	case 'd':
		fmt.Fprintf(b, "%02d", t.Day())
	case 'e':
		fmt.Fprintf(b, "%d", t.Day())
	case 'm':
		fmt.Fprintf(b, "%02d", int(t.Month()))
	case 'y':
		fmt.Fprintf(b, "%02d", t.Year()%100)
	case 'Y':
		fmt.Fprintf(b, "%d", t.Year())
	case 'H':
		fmt.Fprintf(b, "%02d", t.Hour())
	case 'I':
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		fmt.Fprintf(b, "%02d", hour)
	case 'M':
		fmt.Fprintf(b, "%02d", t.Minute())
	case 'S':
		fmt.Fprintf(b, "%02d", t.Second())
	case 'p':
		if t.Hour() < 12 {
			b.WriteString("AM")
		} else {
			b.WriteString("PM")
		}
	case 'j':
		fmt.Fprintf(b, "%03d", t.YearDay())
	case '%':
		b.WriteByte('%')
	default:
		return false
	}
	return true
}

func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
