package num2word_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/book-expert/text-normalizer/normalizer/num2word"
)

func TestMalay_Cardinal(t *testing.T) {
	t.Parallel()

	converter := num2word.NewMalay()

	tests := []wordTestCase{
		{name: "zero", input: 0, expected: "kosong"},
		{name: "one", input: 1, expected: "satu"},
		{name: "five", input: 5, expected: "lima"},
		{name: "nine", input: 9, expected: "sembilan"},
		{name: "ten irregular", input: 10, expected: "sepuluh"},
		{name: "eleven irregular", input: 11, expected: "sebelas"},
		{name: "teen suffix", input: 15, expected: "lima belas"},
		{name: "twenty", input: 20, expected: "dua puluh"},
		{name: "twenty five", input: 25, expected: "dua puluh lima"},
		{name: "hundred irregular", input: 100, expected: "seratus"},
		{name: "compound hundreds", input: 250, expected: "dua ratus lima puluh"},
		{name: "thousand irregular", input: 1000, expected: "seribu"},
		{name: "plural thousands", input: 5000, expected: "lima ribu"},
		{
			name:     "thousand with hundred irregular",
			input:    1100,
			expected: "seribu seratus",
		},
		{name: "million irregular", input: 1_000_000, expected: "sejuta"},
		{
			name:     "zero tier coefficients skipped",
			input:    1_000_005,
			expected: "sejuta lima",
		},
		{name: "negative", input: -5, expected: "negatif lima"},
	}

	runCardinalTests(t, tests, converter.Cardinal)
}

func TestMalay_Cardinal_NoDigitCharacters(t *testing.T) {
	t.Parallel()

	converter := num2word.NewMalay()

	for _, n := range []int64{0, 8, 11, 19, 42, 100, 999, 1000, 654321, -12} {
		words, err := converter.Cardinal(n)
		if err != nil {
			t.Fatalf("unexpected error for %d: %v", n, err)
		}

		if strings.ContainsAny(words, "0123456789") {
			t.Errorf("Cardinal(%d) contains digit characters: %q", n, words)
		}
	}
}

func TestMalay_Cardinal_TooLarge(t *testing.T) {
	t.Parallel()

	converter := num2word.NewMalay()

	_, err := converter.Cardinal(num2word.MaxSupportedValue + 1)
	if !errors.Is(err, num2word.ErrValueTooLarge) {
		t.Errorf("Expected ErrValueTooLarge, got %v", err)
	}
}

func TestMalay_Ordinal(t *testing.T) {
	t.Parallel()

	converter := num2word.NewMalay()

	tests := []wordTestCase{
		{name: "first is irregular", input: 1, expected: "pertama"},
		{name: "second", input: 2, expected: "kedua"},
		{name: "tenth", input: 10, expected: "kesepuluh"},
		{name: "hundredth", input: 100, expected: "keseratus"},
	}

	runCardinalTests(t, tests, converter.Ordinal)
}

func TestMalay_Decimal(t *testing.T) {
	t.Parallel()

	converter := num2word.NewMalay()

	result, err := converter.Decimal(3, "14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "tiga perpuluhan satu empat"
	if result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}

func TestMalay_Currency(t *testing.T) {
	t.Parallel()

	converter := num2word.NewMalay()
	ringgit := num2word.CurrencyUnit{Major: "ringgit", Minor: "sen"}

	tests := []struct {
		name     string
		major    int64
		fraction string
		expected string
	}{
		{name: "whole amount", major: 100, fraction: "", expected: "seratus ringgit"},
		{
			name:     "zero fraction omits minor unit",
			major:    50,
			fraction: "00",
			expected: "lima puluh ringgit",
		},
		{
			name:     "fraction spoken as minor unit",
			major:    50,
			fraction: "50",
			expected: "lima puluh ringgit lima puluh sen",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			result, err := converter.Currency(testCase.major, testCase.fraction, ringgit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result != testCase.expected {
				t.Errorf("Expected %q, got %q", testCase.expected, result)
			}
		})
	}
}

func TestMalay_Year(t *testing.T) {
	t.Parallel()

	converter := num2word.NewMalay()

	result, err := converter.Year(2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result, "ribu") {
		t.Errorf("Expected year words to contain %q, got %q", "ribu", result)
	}

	expected := "dua ribu dua puluh tiga"
	if result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}
