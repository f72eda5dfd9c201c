package num2word

import "strings"

// English converts numeric values into spoken English words.
type English struct{}

// NewEnglish creates an English converter. The word tables are package-level
// constants, so the converter itself carries no state and is safe to share.
func NewEnglish() *English {
	return &English{}
}

const (
	englishZeroWord     = "zero"
	englishNegativeWord = "negative"
	englishPointWord    = "point"
	englishOrdinalTail  = "th"
)

var englishOnes = [...]string{
	"", "one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine",
}

// englishTeens holds the dedicated 10-19 forms, which are not derived from
// the generic tens composition.
var englishTeens = [...]string{
	"ten", "eleven", "twelve", "thirteen", "fourteen",
	"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
}

var englishTens = [...]string{
	"", "", "twenty", "thirty", "forty", "fifty",
	"sixty", "seventy", "eighty", "ninety",
}

// englishTiers is consulted largest-first during decomposition.
var englishTiers = []tier{
	{value: 1_000_000_000_000, word: "trillion"},
	{value: 1_000_000_000, word: "billion"},
	{value: 1_000_000, word: "million"},
	{value: 1_000, word: "thousand"},
	{value: 100, word: "hundred"},
}

// englishIrregularOrdinals maps a cardinal's final word to its ordinal form
// where plain "-th" suffixation does not apply.
var englishIrregularOrdinals = map[string]string{
	"one":    "first",
	"two":    "second",
	"three":  "third",
	"five":   "fifth",
	"eight":  "eighth",
	"nine":   "ninth",
	"twelve": "twelfth",
}

var englishDigitWords = map[rune]string{
	'0': "zero", '1': "one", '2': "two", '3': "three", '4': "four",
	'5': "five", '6': "six", '7': "seven", '8': "eight", '9': "nine",
	'+': "plus",
}

// Cardinal renders any supported integer, including negatives, as words.
func (e *English) Cardinal(n int64) (string, error) {
	err := checkMagnitude(n)
	if err != nil {
		return "", err
	}

	if n < 0 {
		return englishNegativeWord + " " + englishWords(-n), nil
	}

	return englishWords(n), nil
}

// Decimal renders an integer part followed by the point word and each
// fractional digit spoken individually, so ".05" yields two digit words.
func (e *English) Decimal(integer int64, fraction string) (string, error) {
	whole, err := e.Cardinal(integer)
	if err != nil {
		return "", err
	}

	if !validFraction(fraction) {
		return "", ErrInvalidFraction
	}

	if fraction == "" {
		return whole, nil
	}

	parts := []string{whole, englishPointWord}
	for _, digit := range fraction {
		parts = append(parts, englishDigitWords[digit])
	}

	return strings.Join(parts, " "), nil
}

// Ordinal renders a non-negative integer in ordinal form by substituting the
// final word of the cardinal rendering.
func (e *English) Ordinal(n int64) (string, error) {
	if n < 0 {
		return "", ErrNegativeOrdinal
	}

	cardinal, err := e.Cardinal(n)
	if err != nil {
		return "", err
	}

	words := strings.Split(cardinal, " ")
	last := words[len(words)-1]
	words[len(words)-1] = englishOrdinalWord(last)

	return strings.Join(words, " "), nil
}

// Currency renders a monetary amount; the minor-unit phrase is omitted when
// the fraction is exactly zero, and the major unit is never pluralized.
func (e *English) Currency(major int64, fraction string, unit CurrencyUnit) (string, error) {
	majorWords, err := e.Cardinal(major)
	if err != nil {
		return "", err
	}

	if !validFraction(fraction) {
		return "", ErrInvalidFraction
	}

	if fraction == "" || zeroFraction(fraction) {
		return majorWords + " " + unit.Major, nil
	}

	if len(fraction) > CurrencyMinorDigits {
		fraction = fraction[:CurrencyMinorDigits]
	}

	minor, err := e.Cardinal(parseDigits(fraction))
	if err != nil {
		return "", err
	}

	return majorWords + " " + unit.Major + " " + minor + " " + unit.Minor, nil
}

// Year renders a year through plain cardinal decomposition; grouped two-digit
// pair reading is intentionally not applied.
func (e *English) Year(n int64) (string, error) {
	return e.Cardinal(n)
}

// Digit returns the spoken word for a single digit rune, or the rune itself
// for anything outside the digit table.
func (e *English) Digit(r rune) string {
	word, ok := englishDigitWords[r]
	if !ok {
		return string(r)
	}

	return word
}

// PointWord returns the spoken decimal separator.
func (e *English) PointWord() string {
	return englishPointWord
}

// englishWords assumes the magnitude has already been validated.
func englishWords(n int64) string {
	if n == 0 {
		return englishZeroWord
	}

	var parts []string

	for _, step := range englishTiers {
		coefficient := n / step.value
		if coefficient > 0 {
			parts = append(parts, englishWords(coefficient)+" "+step.word)
			n %= step.value
		}
	}

	if n > 0 {
		parts = append(parts, englishUnderHundred(n))
	}

	return strings.Join(parts, " ")
}

func englishUnderHundred(n int64) string {
	switch {
	case n < 10:
		return englishOnes[n]
	case n < 20:
		return englishTeens[n-10]
	default:
		word := englishTens[n/10]
		if n%10 > 0 {
			word += " " + englishOnes[n%10]
		}

		return word
	}
}

func englishOrdinalWord(cardinal string) string {
	if irregular, ok := englishIrregularOrdinals[cardinal]; ok {
		return irregular
	}

	if strings.HasSuffix(cardinal, "y") {
		return strings.TrimSuffix(cardinal, "y") + "ieth"
	}

	return cardinal + englishOrdinalTail
}

// parseDigits converts a validated digit string into its integer value.
func parseDigits(digits string) int64 {
	var value int64
	for _, r := range digits {
		value = value*10 + int64(r-'0')
	}

	return value
}
