// Package normalizer converts written text into a normalized, speakable form
// for a speech synthesizer, with language-specific morphology for English and
// Malay.
//
// Normalization is an ordered transduction pipeline: URL and email protection,
// pronunciation overrides, a locale-specific recognizer cascade (dates,
// currency, time, percentages, decimals, digit runs, mixed tokens), sound
// marker removal, acronym expansion, whitespace and letter-dot cleanup, and
// special character substitution. Every stage is a total whole-string rewrite;
// a token that cannot be rendered is passed through unchanged rather than
// failing the call.
package normalizer

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// Language selects the locale-specific recognizer cascade and word tables.
type Language string

// Supported languages.
const (
	LanguageEnglish Language = "en"
	LanguageMalay   Language = "ms"
)

// defaultRepeatThreshold is the repetition count above which a run of an
// identical word gets a comma before its final repetition.
const defaultRepeatThreshold = 3

// Regex patterns for the locale-independent pipeline stages.
const (
	initialismRegexPattern = `\b[A-Z]{2,}\d*\b`
	dotLetterRegexPattern  = `\b(?:[A-Za-z]\.){2,}`
	whitespaceRunPattern   = `\s{2,}`
	wordTokenPattern       = `\w+`
	referenceRegexPattern  = `([.!?,\\'")\]])(\d+)(\s|$)`
	sentenceBreakPattern   = `[.!?]\s+[A-Z]`
)

var (
	collapseSpacePattern = regexp.MustCompile(`\s+`)

	supportedLanguages    = []Language{LanguageEnglish, LanguageMalay}
	supportedLanguageTags = []language.Tag{language.English, language.Malay}
	languageMatcher       = language.NewMatcher(supportedLanguageTags)
)

// ParseLanguage resolves a BCP 47 language code ("en", "en-US", "ms-MY") to a
// supported Language. The second return is false when the code is invalid or
// matches neither supported locale.
func ParseLanguage(code string) (Language, bool) {
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}

	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return "", false
	}

	return supportedLanguages[index], true
}

// Options configures the optional pipeline stages of Normalize.
type Options struct {
	// NormalizeSpacing collapses whitespace runs and trims the result.
	NormalizeSpacing bool
	// FixDotLetters expands letter-dot sequences like "U.S.A." into
	// space-separated letters.
	FixDotLetters bool
	// SoundWords holds newline-delimited sound-marker rules, each either
	// "pattern" (remove) or "pattern=>replacement".
	SoundWords string
	// ApplyPronunciationOverrides applies the fixed mispronunciation and
	// unit-abbreviation substitutions.
	ApplyPronunciationOverrides bool
}

// DefaultOptions returns the options used by the normalization service when a
// job does not override them.
func DefaultOptions() Options {
	return Options{
		NormalizeSpacing:            true,
		FixDotLetters:               true,
		SoundWords:                  "",
		ApplyPronunciationOverrides: true,
	}
}

// Normalizer applies the text transduction pipeline. All tables and patterns
// are read-only after construction, so a single Normalizer is safe for
// unsynchronized concurrent use.
type Normalizer struct {
	urlPattern        *regexp.Regexp
	emailPattern      *regexp.Regexp
	initialismPattern *regexp.Regexp
	dotLetterPattern  *regexp.Regexp
	whitespacePattern *regexp.Regexp
	wordPattern       *regexp.Regexp
	referencePattern  *regexp.Regexp
	sentencePattern   *regexp.Regexp
}

// New creates a Normalizer with all patterns compiled upfront.
func New() *Normalizer {
	return &Normalizer{
		urlPattern:        regexp.MustCompile(urlRegexPattern),
		emailPattern:      regexp.MustCompile(emailRegexPattern),
		initialismPattern: regexp.MustCompile(initialismRegexPattern),
		dotLetterPattern:  regexp.MustCompile(dotLetterRegexPattern),
		whitespacePattern: regexp.MustCompile(whitespaceRunPattern),
		wordPattern:       regexp.MustCompile(wordTokenPattern),
		referencePattern:  regexp.MustCompile(referenceRegexPattern),
		sentencePattern:   regexp.MustCompile(sentenceBreakPattern),
	}
}

// Normalize rewrites text into its spoken form for the given language. The
// stage order is a fixed contract; reordering changes output semantics. An
// unrecognized language skips the locale cascade only, and the function never
// fails: empty or whitespace-only input returns the empty string.
func (n *Normalizer) Normalize(text string, lang Language, opts Options) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	// Emails first, then URLs, so domain fragments inside an address are
	// never rewritten separately from it. Both run before any numeric
	// recognizer so dots and digits inside them survive intact.
	text = n.speakEmails(text)
	text = n.speakURLs(text)

	if opts.ApplyPronunciationOverrides {
		text = applyPronunciationOverrides(text)
	}

	switch lang {
	case LanguageEnglish:
		text = normalizeEnglish(text)
	case LanguageMalay:
		text = normalizeMalay(text)
	}

	if strings.TrimSpace(opts.SoundWords) != "" {
		text = removeSoundWords(text, ParseSoundWordRules(opts.SoundWords))
	}

	text = n.expandInitialisms(text, lang)

	text = n.insertCommaAfterRepeats(text, defaultRepeatThreshold)

	if opts.NormalizeSpacing {
		text = n.normalizeWhitespace(text)
	}

	if opts.FixDotLetters {
		text = n.expandDotLetterSequences(text)
	}

	// Later stages can reintroduce raw digits (unit abbreviations, spelled
	// acronyms), so the overrides run a second time.
	if opts.ApplyPronunciationOverrides {
		text = applyPronunciationOverrides(text)
	}

	return replaceSpecialCharacters(text, lang)
}

// normalizeWhitespace collapses runs of two or more whitespace characters
// into a single space and trims the ends.
func (n *Normalizer) normalizeWhitespace(text string) string {
	return strings.TrimSpace(n.whitespacePattern.ReplaceAllString(text, " "))
}

// expandDotLetterSequences rewrites letter-period sequences like "I.B.M."
// into space-separated letters.
func (n *Normalizer) expandDotLetterSequences(text string) string {
	return n.dotLetterPattern.ReplaceAllStringFunc(text, func(match string) string {
		return strings.Join(strings.Split(strings.TrimRight(match, "."), "."), " ")
	})
}

// insertCommaAfterRepeats finds runs of the same word repeated more than
// minRepeat times, separated only by whitespace, and inserts a comma before
// the final repetition so the synthesizer takes a breath. It runs before
// whitespace collapsing, so the gap between repeats may be wider than one
// space.
func (n *Normalizer) insertCommaAfterRepeats(text string, minRepeat int) string {
	spans := n.wordPattern.FindAllStringIndex(text, -1)
	if len(spans) == 0 {
		return text
	}

	var builder strings.Builder

	written := 0
	index := 0

	for index < len(spans) {
		word := strings.ToLower(text[spans[index][0]:spans[index][1]])

		next := index + 1
		for next < len(spans) &&
			isWhitespaceGap(text[spans[next-1][1]:spans[next][0]]) &&
			strings.ToLower(text[spans[next][0]:spans[next][1]]) == word {
			next++
		}

		if next-index > minRepeat {
			last := spans[next-1]
			builder.WriteString(strings.TrimRight(text[written:last[0]], " \t\r\n"))
			builder.WriteString(", ")
			written = last[0]
		}

		index = next
	}

	builder.WriteString(text[written:])

	return builder.String()
}

// isWhitespaceGap reports whether a non-empty separator consists of
// whitespace only.
func isWhitespaceGap(gap string) bool {
	return gap != "" && strings.TrimSpace(gap) == ""
}

// RemoveInlineReferenceNumbers strips digits glued to the end of sentence
// punctuation, such as footnote markers left behind by document extraction.
func (n *Normalizer) RemoveInlineReferenceNumbers(text string) string {
	return n.referencePattern.ReplaceAllString(text, "${1}${3}")
}

// SplitIntoSentences splits text on terminal punctuation followed by
// whitespace and a capital letter. Empty segments are dropped.
func (n *Normalizer) SplitIntoSentences(text string) []string {
	var sentences []string

	start := 0

	for _, match := range n.sentencePattern.FindAllStringIndex(text, -1) {
		segment := strings.TrimSpace(text[start : match[0]+1])
		if segment != "" {
			sentences = append(sentences, segment)
		}

		start = match[1] - 1
	}

	if tail := strings.TrimSpace(text[start:]); tail != "" {
		sentences = append(sentences, tail)
	}

	return sentences
}

// buildSpecialReplacer maps standalone special characters to spoken words;
// the percent word is the only locale-dependent entry.
func buildSpecialReplacer(percentWord string) *strings.Replacer {
	return strings.NewReplacer(
		"&", " and ",
		"+", " plus ",
		"=", " equals ",
		"@", " at ",
		"#", " hash ",
		"*", " star ",
		"%", " "+percentWord+" ",
		"$", " dollar ",
		"EUR", " euro ",
		"GBP", " pound ",
		"©", " copyright ",
		"®", " registered ",
		"™", " trademark ",
		"<", " less than ",
		">", " greater than ",
		"|", " bar ",
		"~", " tilde ",
		"^", " caret ",
	)
}

var (
	englishSpecialReplacer = buildSpecialReplacer(englishPercentWord)
	malaySpecialReplacer   = buildSpecialReplacer(malayPercentWord)
)

// replaceSpecialCharacters substitutes the fixed table of standalone special
// characters and collapses the spacing the substitutions introduce.
func replaceSpecialCharacters(text string, lang Language) string {
	replacer := englishSpecialReplacer
	if lang == LanguageMalay {
		replacer = malaySpecialReplacer
	}

	text = replacer.Replace(text)

	return strings.TrimSpace(collapseSpacePattern.ReplaceAllString(text, " "))
}
