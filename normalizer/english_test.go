package normalizer_test

import (
	"testing"

	"github.com/book-expert/text-normalizer/normalizer"
)

func TestNormalizeEnglish_Currency(t *testing.T) {
	t.Parallel()

	runPipelineTests(t, normalizer.LanguageEnglish, normalizer.DefaultOptions(), []pipelineTestCase{
		{
			name:     "ringgit without minor unit",
			input:    "The price is RM100.",
			expected: "The price is one hundred ringgit.",
		},
		{
			name:     "ringgit with cents",
			input:    "It costs RM50.50",
			expected: "It costs fifty ringgit fifty cent",
		},
		{
			name:     "dollar symbol",
			input:    "pay $25 now",
			expected: "pay twenty five dollar now",
		},
		{
			name:     "zero fraction omits minor unit",
			input:    "exactly RM7.00 due",
			expected: "exactly seven ringgit due",
		},
		{
			name:     "thousands separator inside amount",
			input:    "save RM1,500 yearly",
			expected: "save one thousand five hundred ringgit yearly",
		},
	})
}

func TestNormalizeEnglish_Dates(t *testing.T) {
	t.Parallel()

	runPipelineTests(t, normalizer.LanguageEnglish, normalizer.DefaultOptions(), []pipelineTestCase{
		{
			name:     "slash separated date",
			input:    "due on 15/08/2023",
			expected: "due on fifteenth of August, two thousand twenty three",
		},
		{
			name:     "dash separated date",
			input:    "born 1-3-1990",
			expected: "born first of March, one thousand nine hundred ninety",
		},
	})
}

func TestNormalizeEnglish_Time(t *testing.T) {
	t.Parallel()

	runPipelineTests(t, normalizer.LanguageEnglish, normalizer.DefaultOptions(), []pipelineTestCase{
		{
			name:     "afternoon time",
			input:    "Meeting at 3:30pm",
			expected: "Meeting at three thirty p m",
		},
		{
			name:     "zero minutes drop from the reading",
			input:    "starts 9:00am sharp",
			expected: "starts nine a m sharp",
		},
	})
}

func TestNormalizeEnglish_PercentagesAndDecimals(t *testing.T) {
	t.Parallel()

	runPipelineTests(t, normalizer.LanguageEnglish, normalizer.DefaultOptions(), []pipelineTestCase{
		{
			name:     "whole percentage",
			input:    "a 50% discount",
			expected: "a fifty percent discount",
		},
		{
			name:     "decimal percentage",
			input:    "grew by 12.5%",
			expected: "grew by twelve point five percent",
		},
		{
			name:     "plain decimal",
			input:    "pi is 3.14",
			expected: "pi is three point one four",
		},
	})
}

func TestNormalizeEnglish_DigitRuns(t *testing.T) {
	t.Parallel()

	runPipelineTests(t, normalizer.LanguageEnglish, normalizer.DefaultOptions(), []pipelineTestCase{
		{
			name:     "phone number with dash word",
			input:    "Call 012-3456789 now",
			expected: "Call zero one two dash three four five six seven eight nine now",
		},
		{
			name:     "short bare number is a cardinal",
			input:    "room 42",
			expected: "room forty two",
		},
		{
			name:     "long bare number is spelled",
			input:    "id 123456",
			expected: "id one two three four five six",
		},
		{
			name:     "comma grouped number",
			input:    "about 7,832,000 people",
			expected: "about seven million eight hundred thirty two thousand people",
		},
	})
}

func TestNormalizeEnglish_OrdinalsAndMixedTokens(t *testing.T) {
	t.Parallel()

	runPipelineTests(t, normalizer.LanguageEnglish, normalizer.DefaultOptions(), []pipelineTestCase{
		{
			name:     "ordinal suffix",
			input:    "the 21st century",
			expected: "the twenty first century",
		},
		{
			name:     "mixed token is spelled",
			input:    "a B2B deal",
			expected: "a B two B deal",
		},
	})
}

func TestNormalizeEnglish_ContractionsAndAbbreviations(t *testing.T) {
	t.Parallel()

	runPipelineTests(t, normalizer.LanguageEnglish, normalizer.DefaultOptions(), []pipelineTestCase{
		{
			name:     "negative contraction",
			input:    "we don't know",
			expected: "we do not know",
		},
		{
			name:     "title abbreviation",
			input:    "Dr. Smith arrived",
			expected: "doctor Smith arrived",
		},
		{
			name:     "cannot special case",
			input:    "they can't stay",
			expected: "they cannot stay",
		},
	})
}

func TestNormalizeEnglish_EmailsAndURLs(t *testing.T) {
	t.Parallel()

	runPipelineTests(t, normalizer.LanguageEnglish, normalizer.DefaultOptions(), []pipelineTestCase{
		{
			name:     "plain email",
			input:    "Contact user@example.com now",
			expected: "Contact user at example dot com now",
		},
		{
			name:     "dotted local part",
			input:    "mail john.doe@example.com today",
			expected: "mail john dot doe at example dot com today",
		},
		{
			name:     "www address",
			input:    "Visit www.example.com now",
			expected: "Visit w w w dot example dot com now",
		},
	})
}
