package util

import (
	"regexp"
	"strings"
)

var reSpaces = regexp.MustCompile(`\s+`)

// NormalizeSpaces trims the input and collapses internal runs of whitespace
// (including non-breaking spaces from Excel HTML exports) to single spaces.
func NormalizeSpaces(input string) string {
	s := strings.ReplaceAll(input, " ", " ")
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

func StringPtr(v string) *string { return &v }

func IntPtr(v int) *int { return &v }

func DerefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func DerefInt(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}
