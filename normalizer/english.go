package normalizer

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/book-expert/text-normalizer/normalizer/num2word"
)

// Pattern sources shared by both locale cascades. Go's RE2 has no lookaround,
// so adjacency conditions are captured as optional boundary groups and
// checked in the renderer.
const (
	datePattern         = `\b(\d{1,2})[/.\-](\d{1,2})[/.\-](\d{2,4})\b`
	currencyPattern     = `(?i)([A-Za-z]?)(RM|USD|EUR|GBP|MYR|[$£€])\s?([\d,]+(?:[.,]\d{1,2})?)\b`
	percentagePattern   = `\b(\d+(?:\.\d+)?)%`
	decimalPattern      = `\b(\d+)\.(\d+)\b`
	dashedDigitsPattern = `([A-Za-z]?)(\+?\d+(?:-\d+)+)([A-Za-z]?)`
	commaGroupedPattern = `\b\d{1,3}(?:,\d{3})+\b`
	mixedTokenPattern   = `\b[\w\-]+\b`
	bareNumberPattern   = `\b\d+\b`
)

const (
	englishTimePattern    = `(?i)\b(\d{1,2})[:.](\d{2})\s*(am|pm|a\.m\.|p\.m\.)`
	englishOrdinalPattern = `(?i)\b(\d{1,2})(st|nd|rd|th)\b`
	englishPercentWord    = "percent"
	englishDashWord       = "dash"
	meridianSuffix        = " m"
)

var englishNumbers = num2word.NewEnglish()

var englishMonths = map[string]string{
	"1": "January", "2": "February", "3": "March", "4": "April",
	"5": "May", "6": "June", "7": "July", "8": "August",
	"9": "September", "10": "October", "11": "November", "12": "December",
}

var englishCurrencyUnits = map[string]num2word.CurrencyUnit{
	"RM":  {Major: "ringgit", Minor: "cent"},
	"MYR": {Major: "ringgit", Minor: "cent"},
	"$":   {Major: "dollar", Minor: "cent"},
	"USD": {Major: "dollar", Minor: "cent"},
	"£":   {Major: "pound", Minor: "pence"},
	"GBP": {Major: "pound", Minor: "pence"},
	"€":   {Major: "euro", Minor: "cent"},
	"EUR": {Major: "euro", Minor: "cent"},
}

var englishContractions = map[string]string{
	"i'm": "I am", "i've": "I have", "i'll": "I will", "i'd": "I would",
	"you're": "you are", "you've": "you have", "you'll": "you will", "you'd": "you would",
	"he's": "he is", "he'll": "he will", "he'd": "he would",
	"she's": "she is", "she'll": "she will", "she'd": "she would",
	"it's": "it is", "it'll": "it will", "it'd": "it would",
	"we're": "we are", "we've": "we have", "we'll": "we will", "we'd": "we would",
	"they're": "they are", "they've": "they have", "they'll": "they will", "they'd": "they would",
	"that's": "that is", "that'll": "that will", "that'd": "that would",
	"there's": "there is", "there'll": "there will", "there'd": "there would",
	"who's": "who is", "who'll": "who will", "who'd": "who would",
	"what's": "what is", "what'll": "what will", "what'd": "what would",
	"where's": "where is", "where'll": "where will", "where'd": "where would",
	"when's": "when is", "when'll": "when will", "when'd": "when would",
	"why's": "why is", "why'll": "why will", "why'd": "why would",
	"how's": "how is", "how'll": "how will", "how'd": "how would",
	"isn't": "is not", "aren't": "are not", "wasn't": "was not", "weren't": "were not",
	"hasn't": "has not", "haven't": "have not", "hadn't": "had not",
	"doesn't": "does not", "don't": "do not", "didn't": "did not",
	"won't": "will not", "wouldn't": "would not", "shan't": "shall not",
	"shouldn't": "should not", "can't": "cannot", "couldn't": "could not",
	"mustn't": "must not",
	"should've": "should have", "would've": "would have", "could've": "could have",
	"shall've": "shall have", "will've": "will have", "might've": "might have",
	"must've": "must have",
}

var englishAbbreviations = map[string]string{
	"mrs": "misess", "mr": "mister", "dr": "doctor", "st": "saint",
	"co": "company", "jr": "junior", "maj": "major", "gen": "general",
	"drs": "doctors", "rev": "reverend", "lt": "lieutenant", "hon": "honorable",
	"sgt": "sergeant", "capt": "captain", "esq": "esquire", "ltd": "limited",
	"col": "colonel", "ft": "fort",
}

var (
	englishContractionPattern = regexp.MustCompile(
		`(?i)\b(?:` + alternation(englishContractions) + `)\b`,
	)
	englishAbbreviationPattern = regexp.MustCompile(
		`(?i)\b(?:` + alternation(englishAbbreviations) + `)\.`,
	)
	englishIgnoreWords = buildEnglishIgnoreWords()
	englishCascade     = buildEnglishCascade()
)

// normalizeEnglish runs the English recognizer cascade, then expands
// contractions and abbreviations so their output is never mistaken for
// acronyms by the later initialism stage.
func normalizeEnglish(text string) string {
	text = runCascade(text, englishCascade)
	text = expandEnglishContractions(text)
	text = expandEnglishAbbreviations(text)

	return strings.TrimSpace(collapseSpacePattern.ReplaceAllString(text, " "))
}

func buildEnglishCascade() []recognizer {
	return []recognizer{
		{pattern: regexp.MustCompile(datePattern), render: renderEnglishDate},
		{
			pattern: regexp.MustCompile(currencyPattern),
			render:  renderCurrency(englishNumbers, englishCurrencyUnits),
		},
		{pattern: regexp.MustCompile(englishTimePattern), render: renderEnglishTime},
		{
			pattern: regexp.MustCompile(percentagePattern),
			render:  renderPercentage(englishNumbers, englishPercentWord),
		},
		{
			pattern: regexp.MustCompile(decimalPattern),
			render:  renderDecimal(englishNumbers),
		},
		{
			pattern: regexp.MustCompile(dashedDigitsPattern),
			render:  renderEnglishDashedDigits,
		},
		{
			pattern: regexp.MustCompile(englishOrdinalPattern),
			render:  renderEnglishOrdinal,
		},
		{
			pattern: regexp.MustCompile(commaGroupedPattern),
			render:  renderCommaGroupedNumber(englishNumbers),
		},
		{
			pattern: regexp.MustCompile(mixedTokenPattern),
			render:  renderEnglishMixedToken,
		},
		{
			pattern: regexp.MustCompile(bareNumberPattern),
			render:  renderBareNumber(englishNumbers),
		},
	}
}

// renderEnglishDate speaks D/M/Y forms as "<ordinal day> of <month>, <year>".
func renderEnglishDate(groups []string) string {
	day, err := strconv.ParseInt(groups[1], 10, 64)
	if err != nil {
		return groups[0]
	}

	dayWords, err := englishNumbers.Ordinal(day)
	if err != nil {
		return groups[0]
	}

	year, err := strconv.ParseInt(groups[3], 10, 64)
	if err != nil {
		return groups[0]
	}

	yearWords, err := englishNumbers.Year(year)
	if err != nil {
		return groups[0]
	}

	month := resolveMonth(englishMonths, groups[2])

	return fmt.Sprintf("%s of %s, %s", dayWords, month, yearWords)
}

// renderEnglishTime speaks H:MM with a meridian marker; zero minutes render
// the hour and meridian only.
func renderEnglishTime(groups []string) string {
	hour, err := strconv.ParseInt(groups[1], 10, 64)
	if err != nil {
		return groups[0]
	}

	minute, err := strconv.ParseInt(groups[2], 10, 64)
	if err != nil {
		return groups[0]
	}

	hourWords, err := englishNumbers.Cardinal(hour)
	if err != nil {
		return groups[0]
	}

	meridian := strings.ToLower(groups[3][:1]) + meridianSuffix
	if minute == 0 {
		return hourWords + " " + meridian
	}

	minuteWords, err := englishNumbers.Cardinal(minute)
	if err != nil {
		return groups[0]
	}

	return hourWords + " " + minuteWords + " " + meridian
}

// renderEnglishDashedDigits speaks phone-number style digit groups character
// by character, keeping a literal "dash" between groups. A letter on either
// side means the run is part of a larger token and is left for the
// mixed-token recognizer.
func renderEnglishDashedDigits(groups []string) string {
	if groups[1] != "" || groups[3] != "" {
		return groups[0]
	}

	words := make([]string, 0, len(groups[2]))

	for _, r := range groups[2] {
		if r == '-' {
			words = append(words, englishDashWord)

			continue
		}

		words = append(words, englishNumbers.Digit(r))
	}

	return strings.Join(words, " ")
}

// renderEnglishOrdinal speaks digit + st/nd/rd/th suffixes as ordinal words.
func renderEnglishOrdinal(groups []string) string {
	number, err := strconv.ParseInt(groups[1], 10, 64)
	if err != nil {
		return groups[0]
	}

	words, err := englishNumbers.Ordinal(number)
	if err != nil {
		return groups[0]
	}

	return words
}

// renderEnglishMixedToken spells tokens that mix letters and digits, except
// tokens already rendered as number words by the earlier recognizers.
func renderEnglishMixedToken(groups []string) string {
	token := groups[0]
	if !isMixedAlphanumeric(token) {
		return token
	}

	if _, ok := englishIgnoreWords[strings.ToLower(token)]; ok {
		return token
	}

	return spellMixedToken(englishNumbers, token)
}

func expandEnglishContractions(text string) string {
	return englishContractionPattern.ReplaceAllStringFunc(text, func(match string) string {
		expanded, ok := englishContractions[strings.ToLower(match)]
		if !ok {
			return match
		}

		return expanded
	})
}

func expandEnglishAbbreviations(text string) string {
	return englishAbbreviationPattern.ReplaceAllStringFunc(text, func(match string) string {
		key := strings.ToLower(strings.TrimSuffix(match, "."))

		expanded, ok := englishAbbreviations[key]
		if !ok {
			return match
		}

		return expanded
	})
}

// buildEnglishIgnoreWords collects the spelled cardinal and ordinal words for
// small numbers, so the mixed-token recognizer never re-expands text an
// earlier recognizer already produced.
func buildEnglishIgnoreWords() map[string]struct{} {
	const maxIgnoredNumber = 31

	words := make(map[string]struct{})

	for i := int64(1); i <= maxIgnoredNumber; i++ {
		cardinal, err := englishNumbers.Cardinal(i)
		if err == nil {
			words[strings.ToLower(cardinal)] = struct{}{}
		}

		ordinal, err := englishNumbers.Ordinal(i)
		if err == nil {
			words[strings.ToLower(ordinal)] = struct{}{}
		}
	}

	return words
}

// alternation joins the escaped keys of a replacement table into a regexp
// alternation, longest keys first so prefixes never shadow longer entries.
func alternation(table map[string]string) string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}

		return keys[i] < keys[j]
	})

	for i, key := range keys {
		keys[i] = regexp.QuoteMeta(key)
	}

	return strings.Join(keys, "|")
}
