package numeral

import (
	"fmt"
	"strings"
)

// SumString spells amount followed by the agreeing form of items, e.g.
// SumString(5, Masculine, FormSet{"рубль", "рубля", "рублей"}) = "пять рублей".
// The zero FormSet spells the bare number.
func SumString(amount uint64, gender Gender, items FormSet) (string, error) {
	if !gender.valid() {
		return "", fmt.Errorf("%w: unknown gender %d", ErrInvalidArgument, int(gender))
	}
	if amount >= maxAmount {
		return "", fmt.Errorf("%w: %d exceeds %d", ErrUnsupportedMagnitude, amount, maxAmount-1)
	}

	if amount == 0 {
		return joinWords(wordZero, items.Many()), nil
	}

	words := decompose(amount, gender, items)
	return strings.Join(words, " "), nil
}

// decompose walks the scale tiers from least to most significant. Each
// rendered group is prepended to the accumulated words.
func decompose(amount uint64, gender Gender, items FormSet) []string {
	var words []string
	remaining := amount

	for i, tier := range scaleTiers {
		if remaining == 0 {
			break
		}

		group := remaining % 1000
		remaining /= 1000

		tierGender, name := tier.gender, tier.name
		if i == 0 {
			tierGender, name = gender, items
		}

		if group == 0 {
			// The counted noun still follows higher tiers: "одна тысяча рублей".
			if i == 0 {
				words = appendWord(words, name.Many())
			}
			continue
		}

		words = append(renderGroup(group, tierGender, name), words...)
	}

	return words
}

// renderGroup spells a value in [1,999] with its scale noun.
func renderGroup(value uint64, gender Gender, name FormSet) []string {
	words := make([]string, 0, 4)
	words = appendWord(words, hundreds[value/100])

	rest := value % 100
	noun := name.Many()

	if rest/10 == 1 {
		words = appendWord(words, teens[rest-10])
	} else {
		words = appendWord(words, tens[rest/10])
		digit := rest % 10
		words = appendWord(words, ones[digit][gender])
		noun = ChoosePlural(digit, name)
	}

	return appendWord(words, noun)
}

func appendWord(words []string, word string) []string {
	word = strings.TrimSpace(word)
	if word == "" {
		return words
	}
	return append(words, word)
}

func joinWords(parts ...string) string {
	words := make([]string, 0, len(parts))
	for _, part := range parts {
		words = appendWord(words, part)
	}
	return strings.Join(words, " ")
}
