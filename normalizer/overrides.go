package normalizer

import "regexp"

// pronunciationOverride pairs a pattern with its fixed replacement. The table
// corrects words the synthesizer is known to mispronounce and expands common
// unit abbreviations. Slashes are left alone so the date recognizer still
// sees forms like 12/03/2025.
type pronunciationOverride struct {
	pattern     *regexp.Regexp
	replacement string
}

var pronunciationOverrides = []pronunciationOverride{
	{regexp.MustCompile(`(?i)\btwenty-three\b`), "twenty tree"},
	{regexp.MustCompile(`(?i)\btwenty-eight\b`), "twenty, eight"},
	{regexp.MustCompile(`(?i)\bcut-off\b`), "kad off"},
	{regexp.MustCompile(`(?i)\beighty-eight\b`), "eighty eight"},
	{regexp.MustCompile(`(?i)\bNumber\b`), "number"},
	{regexp.MustCompile(`(?i)\ba/l\b`), "anak lelaki"},
	{regexp.MustCompile(`(?i)\ba/p\b`), "anak perempuan"},
	{regexp.MustCompile(`(?i)\b1Malaysia\b`), "satu malaysia"},
	// "No." expands only when a numbering digit follows; a sentence ending
	// in the word "no" keeps its period. RE2 has no lookahead, so the digit
	// is captured and restored.
	{regexp.MustCompile(`(?i)\bNo\.\s*(\d)`), "number ${1}"},
	// Unit abbreviations glued to an amount: the digits stay raw here and
	// are worded by the recognizer cascade.
	{regexp.MustCompile(`(?i)\b(\d+)\s*mg\b`), "${1} milligram"},
	{regexp.MustCompile(`(?i)\b(\d+)\s*kg\b`), "${1} kilogram"},
	{regexp.MustCompile(`(?i)\b(\d+)\s*GB\b`), "${1} gigabyte"},
	{regexp.MustCompile(`(?i)\b(\d+)\s*hb\b`), "${1} haribulan"},
}

// applyPronunciationOverrides applies the fixed override table in order.
func applyPronunciationOverrides(text string) string {
	for _, override := range pronunciationOverrides {
		text = override.pattern.ReplaceAllString(text, override.replacement)
	}

	return text
}
