package normalizer

// Letterwise expansion policy: a capitalized token is kept whole when it is
// plausibly pronounceable as a word, and spelled letter by letter otherwise.
const (
	pronounceableMinVowels = 2
	pronounceableMinLength = 4
)

// knownLetterwise lists acronyms that pass the vowel heuristic but are still
// spoken letter by letter in practice.
var knownLetterwise = map[string]struct{}{
	"UOB":   {},
	"UIA":   {},
	"UITM":  {},
	"KLIA":  {},
	"KLIA2": {},
}

// expandInitialisms expands capitalized multi-letter tokens into spelled
// letters unless they are pronounceable. Trailing digits are worded through
// the locale digit table so no raw digit survives this stage.
func (n *Normalizer) expandInitialisms(text string, lang Language) string {
	convert := converterForLanguage(lang)

	return n.initialismPattern.ReplaceAllStringFunc(text, func(acronym string) string {
		return expandAcronym(convert, acronym)
	})
}

// converterForLanguage selects the digit-word table for acronym spelling; an
// unrecognized language falls back to English, matching the percent-word
// fallback of the special-character stage.
func converterForLanguage(lang Language) numberConverter {
	if lang == LanguageMalay {
		return malayNumbers
	}

	return englishNumbers
}

// ExpandAcronym returns the spoken form of a single acronym token: known
// letterwise entries and unpronounceable tokens are spelled out, everything
// else is kept intact. Digits are spoken with English digit words.
func ExpandAcronym(acronym string) string {
	return expandAcronym(englishNumbers, acronym)
}

func expandAcronym(convert numberConverter, acronym string) string {
	if _, ok := knownLetterwise[acronym]; ok {
		return spellMixedToken(convert, acronym)
	}

	if IsPronounceable(acronym) && len(acronym) >= pronounceableMinLength {
		return acronym
	}

	return spellMixedToken(convert, acronym)
}

// IsPronounceable reports whether an acronym has enough vowels to be spoken
// as a word rather than spelled.
func IsPronounceable(acronym string) bool {
	vowels := 0

	for _, r := range acronym {
		switch r {
		case 'A', 'E', 'I', 'O', 'U', 'a', 'e', 'i', 'o', 'u':
			vowels++
		}
	}

	return vowels >= pronounceableMinVowels
}
