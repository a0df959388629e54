package numeral

// Lexical tables for Russian cardinal numerals. Read only after package init.

const wordZero = "ноль"

// ones is indexed by digit, then by Gender.
var ones = [10][3]string{
	{"", "", ""},
	{"один", "одна", "одно"},
	{"два", "две", "два"},
	{"три", "три", "три"},
	{"четыре", "четыре", "четыре"},
	{"пять", "пять", "пять"},
	{"шесть", "шесть", "шесть"},
	{"семь", "семь", "семь"},
	{"восемь", "восемь", "восемь"},
	{"девять", "девять", "девять"},
}

// teens covers 10..19, rendered as single words.
var teens = [10]string{
	"десять",
	"одиннадцать",
	"двенадцать",
	"тринадцать",
	"четырнадцать",
	"пятнадцать",
	"шестнадцать",
	"семнадцать",
	"восемнадцать",
	"девятнадцать",
}

// tens is indexed by the tens digit; index 1 is handled by teens.
var tens = [10]string{
	"",
	"",
	"двадцать",
	"тридцать",
	"сорок",
	"пятьдесят",
	"шестьдесят",
	"семьдесят",
	"восемьдесят",
	"девяносто",
}

var hundreds = [10]string{
	"",
	"сто",
	"двести",
	"триста",
	"четыреста",
	"пятьсот",
	"шестьсот",
	"семьсот",
	"восемьсот",
	"девятьсот",
}

// scaleTier is one power-of-1000 bucket. The ones tier takes its gender and
// noun from the caller.
type scaleTier struct {
	divisor uint64
	gender  Gender
	name    FormSet
}

var scaleTiers = [...]scaleTier{
	{divisor: 1},
	{divisor: 1_000, gender: Feminine, name: FormSet{"тысяча", "тысячи", "тысяч"}},
	{divisor: 1_000_000, gender: Masculine, name: FormSet{"миллион", "миллиона", "миллионов"}},
	{divisor: 1_000_000_000, gender: Masculine, name: FormSet{"миллиард", "миллиарда", "миллиардов"}},
}

// maxAmount is the first integer the scale tiers cannot name.
const maxAmount uint64 = 1_000_000_000_000

// wholeUnit names the integer part of a decimal ("две целых").
var wholeUnit = FormSet{"целая", "целых", "целых"}

// fractionTiers names decimal positions; index = significant fractional digits - 1.
var fractionTiers = [...]FormSet{
	{"десятая", "десятых", "десятых"},
	{"сотая", "сотых", "сотых"},
	{"тысячная", "тысячных", "тысячных"},
	{"десятитысячная", "десятитысячных", "десятитысячных"},
	{"стотысячная", "стотысячных", "стотысячных"},
	{"миллионная", "миллионных", "миллионных"},
	{"десятимиллионная", "десятимиллионных", "десятимиллионных"},
	{"стомиллионная", "стомиллионных", "стомиллионных"},
	{"миллиардная", "миллиардных", "миллиардных"},
}

// MaxSigns is the number of fractional digits the fraction tiers can name.
const MaxSigns = len(fractionTiers)

var (
	rublesUnits  = FormSet{"рубль", "рубля", "рублей"}
	kopecksUnits = FormSet{"копейка", "копейки", "копеек"}
)

// FractionTiers returns a copy of the decimal position names.
func FractionTiers() []FormSet {
	out := make([]FormSet, len(fractionTiers))
	copy(out, fractionTiers[:])
	return out
}

var pow10 = [...]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}
