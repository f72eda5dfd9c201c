package normalizer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/book-expert/text-normalizer/normalizer/num2word"
)

const (
	malayTimePattern = `(?i)\b(\d{1,2})[:.](\d{2})\s*(am|pm|a\.m\.|p\.m\.|malam|petang)`
	// Dot-separated clock readings are only accepted when a meridian marker
	// follows; a bare colon form keeps decimals like 3.14 out of the time
	// recognizer. The optional trailing capture rejects percentage text and
	// minute fields longer than two digits.
	malayBareTimePattern = `\b(\d{1,2}):(\d{2})([\d%]?)`
	malayPercentWord     = "peratus"
	malayMidnightPhrase  = "tengah malam"
	malayNoonPhrase      = "tengah hari"
	midnightHour         = 0
	noonHour             = 12
	meridianWordMinLen   = 3
)

var malayNumbers = num2word.NewMalay()

var malayMonths = map[string]string{
	"1": "Januari", "2": "Februari", "3": "Mac", "4": "April",
	"5": "Mei", "6": "Jun", "7": "Julai", "8": "Ogos",
	"9": "September", "10": "Oktober", "11": "November", "12": "Disember",
}

var malayCurrencyUnits = map[string]num2word.CurrencyUnit{
	"RM":  {Major: "ringgit", Minor: "sen"},
	"MYR": {Major: "ringgit", Minor: "sen"},
	"$":   {Major: "dollar", Minor: "sen"},
	"USD": {Major: "dollar", Minor: "sen"},
	"£":   {Major: "pound", Minor: "pence"},
	"GBP": {Major: "pound", Minor: "pence"},
	"€":   {Major: "euro", Minor: "sen"},
	"EUR": {Major: "euro", Minor: "sen"},
}

var malayCascade = buildMalayCascade()

// normalizeMalay runs the Malay recognizer cascade.
func normalizeMalay(text string) string {
	return runCascade(text, malayCascade)
}

func buildMalayCascade() []recognizer {
	return []recognizer{
		{pattern: regexp.MustCompile(datePattern), render: renderMalayDate},
		{
			pattern: regexp.MustCompile(currencyPattern),
			render:  renderCurrency(malayNumbers, malayCurrencyUnits),
		},
		{pattern: regexp.MustCompile(malayTimePattern), render: renderMalayTime},
		{
			pattern: regexp.MustCompile(malayBareTimePattern),
			render:  renderMalayBareTime,
		},
		{
			pattern: regexp.MustCompile(percentagePattern),
			render:  renderPercentage(malayNumbers, malayPercentWord),
		},
		{
			pattern: regexp.MustCompile(decimalPattern),
			render:  renderDecimal(malayNumbers),
		},
		{
			pattern: regexp.MustCompile(dashedDigitsPattern),
			render:  renderMalayDashedDigits,
		},
		{
			pattern: regexp.MustCompile(commaGroupedPattern),
			render:  renderCommaGroupedNumber(malayNumbers),
		},
		{
			pattern: regexp.MustCompile(mixedTokenPattern),
			render:  renderMalayMixedToken,
		},
		{
			pattern: regexp.MustCompile(bareNumberPattern),
			render:  renderBareNumber(malayNumbers),
		},
	}
}

// renderMalayDate speaks D/M/Y forms as "<cardinal day> <month> <year>".
func renderMalayDate(groups []string) string {
	day, err := strconv.ParseInt(groups[1], 10, 64)
	if err != nil {
		return groups[0]
	}

	dayWords, err := malayNumbers.Cardinal(day)
	if err != nil {
		return groups[0]
	}

	year, err := strconv.ParseInt(groups[3], 10, 64)
	if err != nil {
		return groups[0]
	}

	yearWords, err := malayNumbers.Year(year)
	if err != nil {
		return groups[0]
	}

	return dayWords + " " + resolveMonth(malayMonths, groups[2]) + " " + yearWords
}

// renderMalayTime speaks H:MM with a meridian marker. Full Malay meridian
// words (malam, petang) are kept as-is; am/pm variants collapse to the first
// letter plus "m", and "a.m." forms are left for the dot-letter stage.
func renderMalayTime(groups []string) string {
	hour, err := strconv.ParseInt(groups[1], 10, 64)
	if err != nil {
		return groups[0]
	}

	minute, err := strconv.ParseInt(groups[2], 10, 64)
	if err != nil {
		return groups[0]
	}

	hourWords, err := malayNumbers.Cardinal(hour)
	if err != nil {
		return groups[0]
	}

	meridian := groups[3]
	if len(meridian) < meridianWordMinLen {
		meridian = strings.ToLower(meridian[:1]) + meridianSuffix
	}

	if minute == 0 {
		return hourWords + " " + meridian
	}

	minuteWords, err := malayNumbers.Cardinal(minute)
	if err != nil {
		return groups[0]
	}

	return hourWords + " " + minuteWords + " " + meridian
}

// renderMalayBareTime speaks H:MM without a meridian marker, with the
// midnight and noon special cases applied ahead of the generic rule. A
// trailing percent sign or extra digit means the match is not a clock
// reading, so it is left untouched.
func renderMalayBareTime(groups []string) string {
	if groups[3] != "" {
		return groups[0]
	}

	hour, err := strconv.ParseInt(groups[1], 10, 64)
	if err != nil {
		return groups[0]
	}

	minute, err := strconv.ParseInt(groups[2], 10, 64)
	if err != nil {
		return groups[0]
	}

	if minute == 0 {
		switch hour {
		case midnightHour:
			return malayMidnightPhrase
		case noonHour:
			return malayNoonPhrase
		}
	}

	hourWords, err := malayNumbers.Cardinal(hour)
	if err != nil {
		return groups[0]
	}

	if minute == 0 {
		return hourWords
	}

	minuteWords, err := malayNumbers.Cardinal(minute)
	if err != nil {
		return groups[0]
	}

	return hourWords + " " + minuteWords
}

// renderMalayDashedDigits speaks phone-number style digit groups character by
// character; separators carry no spoken word in Malay.
func renderMalayDashedDigits(groups []string) string {
	if groups[1] != "" || groups[3] != "" {
		return groups[0]
	}

	words := make([]string, 0, len(groups[2]))

	for _, r := range groups[2] {
		if r >= '0' && r <= '9' {
			words = append(words, malayNumbers.Digit(r))
		}
	}

	return strings.Join(words, " ")
}

// renderMalayMixedToken spells tokens that mix letters and digits; tokens of
// pure digits and dashes are left for the dashed-digit and bare-number
// recognizers.
func renderMalayMixedToken(groups []string) string {
	token := groups[0]
	if isOnlyDigitsAndDashes(token) {
		return token
	}

	if !isMixedAlphanumeric(token) {
		return token
	}

	return spellMixedToken(malayNumbers, token)
}
