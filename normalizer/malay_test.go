package normalizer_test

import (
	"testing"

	"github.com/book-expert/text-normalizer/normalizer"
)

func TestNormalizeMalay_Currency(t *testing.T) {
	t.Parallel()

	runPipelineTests(t, normalizer.LanguageMalay, normalizer.DefaultOptions(), []pipelineTestCase{
		{
			name:     "ringgit without minor unit",
			input:    "Harganya RM100",
			expected: "Harganya seratus ringgit",
		},
		{
			name:     "ringgit with sen",
			input:    "bayar RM50.50",
			expected: "bayar lima puluh ringgit lima puluh sen",
		},
		{
			name:     "thousands separator inside amount",
			input:    "jimat RM1,500 setahun",
			expected: "jimat seribu lima ratus ringgit setahun",
		},
	})
}

func TestNormalizeMalay_Dates(t *testing.T) {
	t.Parallel()

	runPipelineTests(t, normalizer.LanguageMalay, normalizer.DefaultOptions(), []pipelineTestCase{
		{
			name:     "slash separated date",
			input:    "pada 15/08/2023",
			expected: "pada lima belas Ogos dua ribu dua puluh tiga",
		},
	})
}

func TestNormalizeMalay_Time(t *testing.T) {
	t.Parallel()

	runPipelineTests(t, normalizer.LanguageMalay, normalizer.DefaultOptions(), []pipelineTestCase{
		{
			name:     "evening meridian word kept whole",
			input:    "Mesyuarat pada 3:30 petang",
			expected: "Mesyuarat pada tiga tiga puluh petang",
		},
		{
			name:     "bare clock reading",
			input:    "tiba pada 3:45",
			expected: "tiba pada tiga empat puluh lima",
		},
		{
			name:     "noon special case",
			input:    "makan pada 12:00",
			expected: "makan pada tengah hari",
		},
		{
			name:     "midnight special case",
			input:    "tutup pada 0:00",
			expected: "tutup pada tengah malam",
		},
		{
			name:     "three digit minute field is not a clock reading",
			input:    "nisbah 12:345 direkod",
			expected: "nisbah dua belas:tiga ratus empat puluh lima direkod",
		},
	})
}

func TestNormalizeMalay_PercentagesAndDecimals(t *testing.T) {
	t.Parallel()

	runPipelineTests(t, normalizer.LanguageMalay, normalizer.DefaultOptions(), []pipelineTestCase{
		{
			name:     "whole percentage",
			input:    "diskaun 50%",
			expected: "diskaun lima puluh peratus",
		},
		{
			name:     "decimal percentage",
			input:    "naik 12.5%",
			expected: "naik dua belas perpuluhan lima peratus",
		},
		{
			name:     "plain decimal stays out of the time recognizer",
			input:    "nilai pi ialah 3.14",
			expected: "nilai pi ialah tiga perpuluhan satu empat",
		},
	})
}

func TestNormalizeMalay_DigitRuns(t *testing.T) {
	t.Parallel()

	runPipelineTests(t, normalizer.LanguageMalay, normalizer.DefaultOptions(), []pipelineTestCase{
		{
			name:     "phone number without separator words",
			input:    "Hubungi 012-3456789",
			expected: "Hubungi kosong satu dua tiga empat lima enam tujuh lapan sembilan",
		},
		{
			name:     "short bare number is a cardinal",
			input:    "bilik 25",
			expected: "bilik dua puluh lima",
		},
		{
			name:     "comma grouped number",
			input:    "kira-kira 1,500 orang",
			expected: "kira-kira seribu lima ratus orang",
		},
	})
}

func TestNormalizeMalay_MixedTokens(t *testing.T) {
	t.Parallel()

	runPipelineTests(t, normalizer.LanguageMalay, normalizer.DefaultOptions(), []pipelineTestCase{
		{
			name:     "mixed token is spelled with malay digits",
			input:    "urus niaga B2B",
			expected: "urus niaga B dua B",
		},
	})
}
