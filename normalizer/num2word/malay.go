package num2word

import "strings"

// Malay converts numeric values into spoken Malay words.
type Malay struct{}

// NewMalay creates a Malay converter.
func NewMalay() *Malay {
	return &Malay{}
}

const (
	malayZeroWord      = "kosong"
	malayNegativeWord  = "negatif"
	malayPointWord     = "perpuluhan"
	malayTeenWord      = "belas"
	malayTensWord      = "puluh"
	malayOrdinalPrefix = "ke"
	malayOrdinalFirst  = "pertama"
	// malayUnitPrefix replaces the generic "satu <tier>" composition when a
	// tier coefficient is exactly one: seratus, seribu, sejuta.
	malayUnitPrefix = "se"
)

var malayOnes = [...]string{
	"kosong", "satu", "dua", "tiga", "empat", "lima",
	"enam", "tujuh", "lapan", "sembilan",
}

// malayTiers is consulted largest-first; every tier supports the "se-"
// irregular prefix for a coefficient of exactly one.
var malayTiers = []tier{
	{value: 1_000_000_000_000, word: "trilion"},
	{value: 1_000_000_000, word: "bilion"},
	{value: 1_000_000, word: "juta"},
	{value: 1_000, word: "ribu"},
	{value: 100, word: "ratus"},
}

var malayDigitWords = map[rune]string{
	'0': "kosong", '1': "satu", '2': "dua", '3': "tiga", '4': "empat",
	'5': "lima", '6': "enam", '7': "tujuh", '8': "lapan", '9': "sembilan",
}

// Cardinal renders any supported integer, including negatives, as words.
func (m *Malay) Cardinal(n int64) (string, error) {
	err := checkMagnitude(n)
	if err != nil {
		return "", err
	}

	if n < 0 {
		return malayNegativeWord + " " + malayWords(-n), nil
	}

	return malayWords(n), nil
}

// Decimal renders an integer part followed by "perpuluhan" and each
// fractional digit spoken individually.
func (m *Malay) Decimal(integer int64, fraction string) (string, error) {
	whole, err := m.Cardinal(integer)
	if err != nil {
		return "", err
	}

	if !validFraction(fraction) {
		return "", ErrInvalidFraction
	}

	if fraction == "" {
		return whole, nil
	}

	parts := []string{whole, malayPointWord}
	for _, digit := range fraction {
		parts = append(parts, malayDigitWords[digit])
	}

	return strings.Join(parts, " "), nil
}

// Ordinal renders a non-negative integer in ordinal form: "pertama" for one,
// the "ke-" prefixed cardinal otherwise.
func (m *Malay) Ordinal(n int64) (string, error) {
	if n < 0 {
		return "", ErrNegativeOrdinal
	}

	if n == 1 {
		return malayOrdinalFirst, nil
	}

	cardinal, err := m.Cardinal(n)
	if err != nil {
		return "", err
	}

	return malayOrdinalPrefix + cardinal, nil
}

// Currency renders a monetary amount; the minor-unit phrase is omitted when
// the fraction is exactly zero, and the major unit is never pluralized.
func (m *Malay) Currency(major int64, fraction string, unit CurrencyUnit) (string, error) {
	majorWords, err := m.Cardinal(major)
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

	minor, err := m.Cardinal(parseDigits(fraction))
	if err != nil {
		return "", err
	}

	return majorWords + " " + unit.Major + " " + minor + " " + unit.Minor, nil
}

// Year renders a year through plain cardinal decomposition.
func (m *Malay) Year(n int64) (string, error) {
	return m.Cardinal(n)
}

// Digit returns the spoken word for a single digit rune, or the rune itself
// for anything outside the digit table.
func (m *Malay) Digit(r rune) string {
	word, ok := malayDigitWords[r]
	if !ok {
		return string(r)
	}

	return word
}

// PointWord returns the spoken decimal separator.
func (m *Malay) PointWord() string {
	return malayPointWord
}

// malayWords assumes the magnitude has already been validated.
func malayWords(n int64) string {
	if n == 0 {
		return malayZeroWord
	}

	var parts []string

	for _, step := range malayTiers {
		coefficient := n / step.value
		if coefficient > 0 {
			if coefficient == 1 {
				parts = append(parts, malayUnitPrefix+step.word)
			} else {
				parts = append(parts, malayWords(coefficient)+" "+step.word)
			}

			n %= step.value
		}
	}

	if n > 0 {
		parts = append(parts, malayUnderHundred(n))
	}

	return strings.Join(parts, " ")
}

func malayUnderHundred(n int64) string {
	switch {
	case n < 10:
		return malayOnes[n]
	case n == 10:
		return malayUnitPrefix + malayTensWord
	case n == 11:
		return malayUnitPrefix + malayTeenWord
	case n < 20:
		return malayOnes[n-10] + " " + malayTeenWord
	default:
		word := malayOnes[n/10] + " " + malayTensWord
		if n%10 > 0 {
			word += " " + malayOnes[n%10]
		}

		return word
	}
}
