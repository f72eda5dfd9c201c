package normalizer_test

import (
	"testing"

	"github.com/book-expert/text-normalizer/normalizer"
)

func TestParseSoundWordRules(t *testing.T) {
	t.Parallel()

	rules := normalizer.ParseSoundWordRules("[laughter]\n[music]=>melody\n\n  [pause]  ")

	if len(rules) != 3 {
		t.Fatalf("Expected 3 rules, got %d: %v", len(rules), rules)
	}

	if rules[0].Pattern != "[laughter]" || rules[0].Replacement != "" {
		t.Errorf("Unexpected first rule: %+v", rules[0])
	}

	if rules[1].Pattern != "[music]" || rules[1].Replacement != "melody" {
		t.Errorf("Unexpected second rule: %+v", rules[1])
	}

	if rules[2].Pattern != "[pause]" || rules[2].Replacement != "" {
		t.Errorf("Unexpected third rule: %+v", rules[2])
	}
}

func TestNormalize_SoundWords(t *testing.T) {
	t.Parallel()

	opts := normalizer.DefaultOptions()
	opts.SoundWords = "[laughter]\n[music]=>melody"

	runPipelineTests(t, normalizer.LanguageEnglish, opts, []pipelineTestCase{
		{
			name:     "marker removal and replacement",
			input:    "He laughed [laughter] and [music] played",
			expected: "He laughed and melody played",
		},
		{
			name:     "case-insensitive removal",
			input:    "She smiled [LAUGHTER] warmly",
			expected: "She smiled warmly",
		},
	})
}

func TestNormalize_SoundWordPossessive(t *testing.T) {
	t.Parallel()

	opts := normalizer.DefaultOptions()
	opts.SoundWords = "[narrator]=>John"

	runPipelineTests(t, normalizer.LanguageEnglish, opts, []pipelineTestCase{
		{
			name:     "possessive stays glued to replacement",
			input:    "[narrator]'s voice echoed",
			expected: "John's voice echoed",
		},
	})
}
