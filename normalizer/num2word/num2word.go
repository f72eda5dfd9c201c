// Package num2word converts numeric values into locale-correct spoken words.
//
// Each supported locale renders cardinal, ordinal, currency, and year forms
// through a largest-first decomposition over an explicit magnitude tier table,
// with locale-specific irregular forms (English teen words, Malay "se-"
// prefixed tiers and "belas" teens) applied ahead of the generic composition.
package num2word

import "errors"

// MaxSupportedValue is the largest magnitude any converter accepts; it is one
// below the next power-of-1000 tier above the top configured tier.
const MaxSupportedValue = 999_999_999_999_999

// CurrencyMinorDigits is the number of fractional digits spoken for money.
const CurrencyMinorDigits = 2

var (
	// ErrValueTooLarge indicates that a magnitude exceeds the top tier.
	ErrValueTooLarge = errors.New("value exceeds the largest supported magnitude tier")
	// ErrInvalidFraction indicates a fraction string with non-digit characters.
	ErrInvalidFraction = errors.New("fraction must contain only decimal digits")
	// ErrNegativeOrdinal indicates an ordinal request for a negative value.
	ErrNegativeOrdinal = errors.New("ordinal values must be non-negative")
)

// CurrencyUnit names the spoken major and minor units for one currency.
type CurrencyUnit struct {
	Major string
	Minor string
}

// tier is one power-of-1000 (or hundreds) magnitude step in decomposition.
// Tiers are consulted largest-first; a zero coefficient contributes nothing.
type tier struct {
	value int64
	word  string
}

// checkMagnitude rejects values outside the supported tier range. The check
// runs before any negation so that the most negative int64 cannot overflow.
func checkMagnitude(n int64) error {
	if n > MaxSupportedValue || n < -MaxSupportedValue {
		return ErrValueTooLarge
	}

	return nil
}

// validFraction reports whether a fraction string is entirely decimal digits.
// An empty fraction is valid: it simply contributes no spoken digits.
func validFraction(fraction string) bool {
	for _, r := range fraction {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// zeroFraction reports whether every digit of a fraction is zero.
func zeroFraction(fraction string) bool {
	for _, r := range fraction {
		if r != '0' {
			return false
		}
	}

	return true
}
