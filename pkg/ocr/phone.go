package ocr

import (
	"regexp"
	"strings"
)

// Turkish mobile numbers: optional +90/90 country code, optional parentheses
// around the 5XX operator code, spaces or dashes between groups.
var rePhone = regexp.MustCompile(`(?:\+?90[\s\-]?)?\(?0?5\d{2}\)?[\s\-]?\d{3}[\s\-]?\d{2}[\s\-]?\d{2}`)

// ExtractPhone finds the first Turkish mobile number in the text and returns
// it normalized to the 0XXXXXXXXXX form. Empty string when nothing matched.
func ExtractPhone(text string) string {
	for _, m := range rePhone.FindAllString(text, -1) {
		if n := normalizePhone(m); len(n) >= 10 {
			return n
		}
	}
	return ""
}

func normalizePhone(raw string) string {
	digits := onlyDigits(raw)
	switch {
	case len(digits) == 12 && strings.HasPrefix(digits, "90"):
		return "0" + digits[2:]
	case len(digits) == 10:
		return "0" + digits
	case len(digits) >= 11:
		return digits[len(digits)-11:]
	}
	return digits
}

// onlyDigits extracts decimal digits from a string.
func onlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
