package normalizer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/book-expert/text-normalizer/normalizer/num2word"
)

// bareNumberMaxCardinalDigits is the longest digit run spoken as a cardinal
// number; anything longer is treated as an identifier and spelled digit by
// digit.
const bareNumberMaxCardinalDigits = 4

// recognizer pairs a span-matching pattern with a renderer. A recognizer is
// total: when its renderer cannot produce words it returns the original
// matched text unchanged, so one bad token never aborts the pipeline.
type recognizer struct {
	pattern *regexp.Regexp
	render  func(groups []string) string
}

// apply rewrites every match in one whole-string pass. Later recognizers in a
// cascade never see text already rewritten by an earlier one.
func (r recognizer) apply(text string) string {
	return r.pattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := r.pattern.FindStringSubmatch(match)
		if groups == nil {
			return match
		}

		return r.render(groups)
	})
}

// runCascade applies an ordered recognizer cascade. The order is a
// load-bearing invariant: each pass claims its spans before more general
// recognizers run.
func runCascade(text string, cascade []recognizer) string {
	for _, rec := range cascade {
		text = rec.apply(text)
	}

	return text
}

// numberConverter is the slice of the num2word converters consumed by the
// shared renderers below. Both locale converters satisfy it.
type numberConverter interface {
	Cardinal(n int64) (string, error)
	Decimal(integer int64, fraction string) (string, error)
	Ordinal(n int64) (string, error)
	Currency(major int64, fraction string, unit num2word.CurrencyUnit) (string, error)
	Year(n int64) (string, error)
	Digit(r rune) string
	PointWord() string
}

// renderCurrency builds a renderer over groups (boundary, symbol, amount).
// A letter directly before a letter-based code (RM, USD, ...) means the code
// is part of a larger word, so the match is left untouched.
func renderCurrency(
	convert numberConverter,
	units map[string]num2word.CurrencyUnit,
) func(groups []string) string {
	return func(groups []string) string {
		boundary, symbol, amount := groups[1], groups[2], groups[3]
		if boundary != "" && isAlphabetic(symbol) {
			return groups[0]
		}

		unit, ok := units[strings.ToUpper(symbol)]
		if !ok {
			return groups[0]
		}

		amount = strings.ReplaceAll(amount, ",", "")

		majorDigits, fraction, _ := strings.Cut(amount, ".")

		major, err := strconv.ParseInt(majorDigits, 10, 64)
		if err != nil {
			return groups[0]
		}

		words, err := convert.Currency(major, fraction, unit)
		if err != nil {
			return groups[0]
		}

		return boundary + words
	}
}

// renderPercentage builds a renderer over groups (number); decimal fractions
// are spoken digit by digit after the locale point word.
func renderPercentage(
	convert numberConverter,
	percentWord string,
) func(groups []string) string {
	return func(groups []string) string {
		number := groups[1]

		wholeDigits, fraction, _ := strings.Cut(number, ".")

		whole, err := strconv.ParseInt(wholeDigits, 10, 64)
		if err != nil {
			return groups[0]
		}

		words, err := convert.Decimal(whole, fraction)
		if err != nil {
			return groups[0]
		}

		return words + " " + percentWord
	}
}

// renderDecimal builds a renderer over groups (integer, fraction).
func renderDecimal(convert numberConverter) func(groups []string) string {
	return func(groups []string) string {
		integer, err := strconv.ParseInt(groups[1], 10, 64)
		if err != nil {
			return groups[0]
		}

		words, err := convert.Decimal(integer, groups[2])
		if err != nil {
			return groups[0]
		}

		return words
	}
}

// renderCommaGroupedNumber builds a renderer for numbers with thousands
// separators such as 1,500 or 7,832,000.
func renderCommaGroupedNumber(convert numberConverter) func(groups []string) string {
	return func(groups []string) string {
		number, err := strconv.ParseInt(
			strings.ReplaceAll(groups[0], ",", ""), 10, 64,
		)
		if err != nil {
			return groups[0]
		}

		words, err := convert.Cardinal(number)
		if err != nil {
			return groups[0]
		}

		return words
	}
}

// renderBareNumber builds a renderer for remaining standalone digit runs.
// Runs longer than four digits are identifiers and are spelled digit by
// digit; shorter runs are spoken as cardinal numbers.
func renderBareNumber(convert numberConverter) func(groups []string) string {
	return func(groups []string) string {
		digits := groups[0]
		if len(digits) > bareNumberMaxCardinalDigits {
			return spellDigits(convert, digits)
		}

		number, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return digits
		}

		words, err := convert.Cardinal(number)
		if err != nil {
			return digits
		}

		return words
	}
}

// spellMixedToken spells a mixed letter-digit token: digits become locale
// digit words, letters are upper-cased individually, everything else is
// dropped.
func spellMixedToken(convert numberConverter, token string) string {
	words := make([]string, 0, len(token))

	for _, r := range token {
		switch {
		case r >= '0' && r <= '9':
			words = append(words, convert.Digit(r))
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			words = append(words, strings.ToUpper(string(r)))
		}
	}

	return strings.Join(words, " ")
}

// spellDigits renders each rune of a digit run as its own digit word.
func spellDigits(convert numberConverter, digits string) string {
	words := make([]string, 0, len(digits))
	for _, r := range digits {
		words = append(words, convert.Digit(r))
	}

	return strings.Join(words, " ")
}

// resolveMonth maps a 1-2 digit month token to its locale name, falling back
// to the raw token when the value is outside the calendar range.
func resolveMonth(months map[string]string, token string) string {
	name, ok := months[strings.TrimLeft(token, "0")]
	if !ok {
		return token
	}

	return name
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}

	return s != ""
}

func isMixedAlphanumeric(token string) bool {
	var hasLetter, hasDigit bool

	for _, r := range token {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		}
	}

	return hasLetter && hasDigit
}

func isOnlyDigitsAndDashes(token string) bool {
	for _, r := range token {
		if (r < '0' || r > '9') && r != '-' && r != '+' {
			return false
		}
	}

	return token != ""
}
