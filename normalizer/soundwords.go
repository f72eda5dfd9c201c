package normalizer

import (
	"regexp"
	"strings"
)

// SoundWordRule is one caller-supplied sound-marker rule. An empty
// Replacement means "remove the marker".
type SoundWordRule struct {
	Pattern     string
	Replacement string
}

const soundWordRuleSeparator = "=>"

// ParseSoundWordRules parses a newline-delimited field of "pattern" or
// "pattern=>replacement" entries. Blank lines are skipped.
func ParseSoundWordRules(field string) []SoundWordRule {
	var rules []SoundWordRule

	for _, line := range strings.Split(field, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		pattern, replacement, found := strings.Cut(line, soundWordRuleSeparator)
		if !found {
			rules = append(rules, SoundWordRule{Pattern: line, Replacement: ""})

			continue
		}

		rules = append(rules, SoundWordRule{
			Pattern:     strings.TrimSpace(pattern),
			Replacement: strings.TrimSpace(replacement),
		})
	}

	return rules
}

// Cleanup patterns for the punctuation debris that marker removal leaves
// behind: stray commas, doubled separators, and words glued together.
var (
	glueCasePattern      = regexp.MustCompile(`([a-z])([A-Z])`)
	commaRunPattern      = regexp.MustCompile(`([,\s]+,)+`)
	doubledCommaPattern  = regexp.MustCompile(`,\s*,+`)
	commaSpacingPattern  = regexp.MustCompile(`(\s+,|,\s+)`)
	leadingCommaPattern  = regexp.MustCompile(`(^|[.!?]\s*),+`)
	trailingCommaPattern = regexp.MustCompile(`,+\s*([.!?])`)
)

// removeSoundWords erases or replaces literal sound-marker substrings,
// case-insensitively, then repairs the surrounding punctuation. A possessive
// marker attached to a replaced pattern stays glued to the replacement.
func removeSoundWords(text string, rules []SoundWordRule) string {
	for _, rule := range rules {
		text = applySoundWordRule(text, rule)
	}

	text = glueCasePattern.ReplaceAllString(text, "${1} ${2}")
	text = commaRunPattern.ReplaceAllString(text, ",")
	text = doubledCommaPattern.ReplaceAllString(text, ",")
	text = collapseSpacePattern.ReplaceAllString(text, " ")
	text = commaSpacingPattern.ReplaceAllString(text, ", ")
	text = leadingCommaPattern.ReplaceAllString(text, "${1}")
	text = trailingCommaPattern.ReplaceAllString(text, "${1}")

	return strings.TrimSpace(text)
}

func applySoundWordRule(text string, rule SoundWordRule) string {
	quoted := regexp.QuoteMeta(rule.Pattern)

	if rule.Replacement == "" {
		return regexp.MustCompile(`(?i)`+quoted).ReplaceAllString(text, "")
	}

	possessive := regexp.MustCompile(`(?i)` + quoted + `['` + "’" + `]s`)
	text = possessive.ReplaceAllString(text, rule.Replacement+"'s")

	if isDashRun(rule.Pattern) {
		return strings.ReplaceAll(text, rule.Pattern, rule.Replacement)
	}

	return regexp.MustCompile(`(?i)`+boundedPattern(rule.Pattern, quoted)).
		ReplaceAllString(text, rule.Replacement)
}

// boundedPattern adds word-boundary anchors only where the pattern edge is a
// word character; bracketed markers like "[laughter]" get none.
func boundedPattern(pattern, quoted string) string {
	if pattern == "" {
		return quoted
	}

	if isWordCharacter(rune(pattern[0])) {
		quoted = `\b` + quoted
	}

	if isWordCharacter(rune(pattern[len(pattern)-1])) {
		quoted += `\b`
	}

	return quoted
}

func isWordCharacter(r rune) bool {
	return r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

func isDashRun(pattern string) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return false
	}

	for _, r := range pattern {
		if r != '-' && r != '—' && r != '–' {
			return false
		}
	}

	return true
}
