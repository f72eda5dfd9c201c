package normalizer_test

import (
	"testing"

	"github.com/book-expert/text-normalizer/normalizer"
)

func TestExpandAcronym(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		acronym  string
		expected string
	}{
		{name: "vowel-poor acronym is spelled", acronym: "IBM", expected: "I B M"},
		{name: "pronounceable acronym is kept", acronym: "NASA", expected: "NASA"},
		{name: "known letterwise override", acronym: "UOB", expected: "U O B"},
		{name: "letterwise override with digit worded", acronym: "KLIA2", expected: "K L I A two"},
		{name: "short vowel-rich acronym is spelled", acronym: "EU", expected: "E U"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			result := normalizer.ExpandAcronym(testCase.acronym)
			if result != testCase.expected {
				t.Errorf("Expected %q, got %q", testCase.expected, result)
			}
		})
	}
}

func TestIsPronounceable(t *testing.T) {
	t.Parallel()

	if normalizer.IsPronounceable("XYZ") {
		t.Error("XYZ should not be pronounceable")
	}

	if !normalizer.IsPronounceable("NASA") {
		t.Error("NASA should be pronounceable")
	}
}

func TestNormalize_Initialisms(t *testing.T) {
	t.Parallel()

	runPipelineTests(t, normalizer.LanguageEnglish, normalizer.DefaultOptions(), []pipelineTestCase{
		{
			name:     "initialism in context",
			input:    "IBM hired engineers",
			expected: "I B M hired engineers",
		},
		{
			name:     "pronounceable acronym untouched",
			input:    "NASA launched a probe",
			expected: "NASA launched a probe",
		},
	})
}

func TestNormalize_InitialismDigitsWithoutCascade(t *testing.T) {
	t.Parallel()

	// With an unrecognized language the locale cascade is skipped, so the
	// initialism stage is the only chance to word the trailing digit.
	runPipelineTests(t, normalizer.Language("fr"), normalizer.DefaultOptions(), []pipelineTestCase{
		{
			name:     "spelled acronym digit becomes a word",
			input:    "terminal KLIA2 dibuka",
			expected: "terminal K L I A two dibuka",
		},
	})
}
