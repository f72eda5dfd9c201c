package normalizer

import (
	"regexp"
	"strings"
)

// Patterns for recognizing URL and email shaped substrings. The URL pattern
// requires a letter in the first domain label, so bare decimal numbers like
// 234.56 are not mistaken for hosts, and a 2+ letter final label, so dotted
// initialisms like U.S.A. stay out; dotted quads are matched explicitly.
const (
	urlRegexPattern = `(?i)\b(?:https?://|ftp://|www\.)?` +
		`(?:[A-Za-z0-9-]*[A-Za-z][A-Za-z0-9-]*(?:\.[A-Za-z0-9-]+)*\.[A-Za-z]{2,}|(?:\d{1,3}\.){3}\d{1,3})` +
		`(?::\d+)?(?:/\S*)?`
	emailRegexPattern = `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`
)

var (
	httpProtocolPattern = regexp.MustCompile(`https?://`)
	ftpProtocolPattern  = regexp.MustCompile(`ftp://`)
	wwwPrefixPattern    = regexp.MustCompile(`www\.?`)
	portPattern         = regexp.MustCompile(`:(\d+)`)
	digitRunPattern     = regexp.MustCompile(`\d+`)
)

// speakEmails rewrites every email address into its spoken form, so the dots
// and separators inside it never reach the numeric recognizers.
func (n *Normalizer) speakEmails(text string) string {
	return n.emailPattern.ReplaceAllStringFunc(text, emailToSpoken)
}

// speakURLs rewrites every URL-shaped substring into its spoken form.
func (n *Normalizer) speakURLs(text string) string {
	return n.urlPattern.ReplaceAllStringFunc(text, urlToSpoken)
}

// emailToSpoken converts one email address into a spoken-friendly form:
// "user_name@example.com" becomes "user underscore name at example dot com".
func emailToSpoken(email string) string {
	replacer := strings.NewReplacer(
		"@", " at ",
		".", " dot ",
		"_", " underscore ",
		"+", " plus ",
		"-", " dash ",
	)

	return strings.TrimSpace(
		collapseSpacePattern.ReplaceAllString(replacer.Replace(email), " "),
	)
}

// urlToSpoken converts one URL into a spoken-friendly form. The protocol and
// port are handled before the generic dot and digit rewrites so their
// characters are spoken in the right order.
func urlToSpoken(url string) string {
	spoken := httpProtocolPattern.ReplaceAllString(url, "h t t p colon slash slash ")
	spoken = ftpProtocolPattern.ReplaceAllString(spoken, "f t p colon slash slash ")
	spoken = wwwPrefixPattern.ReplaceAllString(spoken, "w w w dot ")

	spoken = portPattern.ReplaceAllStringFunc(spoken, func(match string) string {
		return " colon " + spaceOutCharacters(match[1:])
	})

	spoken = strings.ReplaceAll(spoken, ".", " dot ")
	spoken = strings.ReplaceAll(spoken, "/", " slash ")

	// Remaining digit runs (IP addresses, path segments) are spaced out so
	// the locale cascade later speaks them digit by digit.
	spoken = digitRunPattern.ReplaceAllStringFunc(spoken, spaceOutCharacters)

	spoken = strings.ReplaceAll(spoken, "-", " dash ")

	return strings.TrimSpace(collapseSpacePattern.ReplaceAllString(spoken, " "))
}

// spaceOutCharacters separates every character of s with single spaces.
func spaceOutCharacters(s string) string {
	var builder strings.Builder

	for i, r := range s {
		if i > 0 {
			builder.WriteByte(' ')
		}

		builder.WriteRune(r)
	}

	return builder.String()
}
