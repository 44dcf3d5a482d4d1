package util

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reNonNumeric  = regexp.MustCompile(`[^\d.,]`)
	reThousandDot = regexp.MustCompile(`^\d{1,3}(?:\.\d{3})+$`)
	reThousandCom = regexp.MustCompile(`^\d{1,3}(?:,\d{3})+$`)
)

// CleanNumeric strips currency markers and every other non-digit character,
// keeping the original decimal/thousand separators untouched so the cleaned
// token can be compared and exported as seen in the source sheet.
func CleanNumeric(input string) string {
	return reNonNumeric.ReplaceAllString(input, "")
}

// NumericValue parses a locale-ambiguous numeric token. Dot or comma
// thousand groups are removed; a lone comma is treated as the decimal
// separator. Tokens that do not survive the conversion report ok=false.
func NumericValue(token string) (float64, bool) {
	compact := strings.ReplaceAll(token, " ", "")
	if compact == "" {
		return 0, false
	}
	switch {
	case reThousandDot.MatchString(compact):
		compact = strings.ReplaceAll(compact, ".", "")
	case reThousandCom.MatchString(compact):
		compact = strings.ReplaceAll(compact, ",", "")
	case strings.Contains(compact, ","):
		// Mixed "1.234,56" style: dots group thousands, comma is decimal.
		compact = strings.ReplaceAll(compact, ".", "")
		compact = strings.ReplaceAll(compact, ",", ".")
	}
	parsed, err := strconv.ParseFloat(compact, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}
