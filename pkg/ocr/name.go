package ocr

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Empirically tuned bounds for plausible customer names on order slips.
const (
	minNameLen = 4
	maxNameLen = 45
)

// Folded label prefixes that announce a customer name line.
var nameLabels = []string{"musteri", "isim", "ad soyad", "ad:", "name", "customer"}

var labelTokenSet = map[string]bool{
	"musteri":  true,
	"isim":     true,
	"ad":       true,
	"adi":      true,
	"soyad":    true,
	"soyadi":   true,
	"name":     true,
	"customer": true,
}

// Lines containing these folded words are headers or other fields, never a
// bare customer name.
var nameStopwords = []string{
	"toplam", "total", "tutar", "ara toplam", "musteri",
	"telefon", "tel", "adres", "not", "teslimat", "odeme",
}

// Two or more capitalized-looking words, Turkish letters allowed.
var reFullName = regexp.MustCompile(`^\p{Lu}[\p{L}'.]+(?:\s+\p{Lu}?[\p{L}'.]+)+$`)

// ExtractName looks for a customer name, first on labeled lines, then by a
// free-line shape heuristic. Empty string when both passes fail.
func ExtractName(lines []string) string {
	for i, line := range lines {
		folded := foldTurkish(line)
		for _, label := range nameLabels {
			if !strings.HasPrefix(folded, label) {
				continue
			}
			if v := inlineNameValue(line); usableName(v) {
				return cleanupName(v)
			}
			if i+1 < len(lines) {
				next := lines[i+1]
				if !containsDigit(next) && runeLen(next) >= minNameLen && runeLen(next) <= maxNameLen {
					return cleanupName(next)
				}
			}
			break
		}
	}
	for _, line := range lines {
		n := runeLen(line)
		if n < minNameLen || n > maxNameLen || containsDigit(line) {
			continue
		}
		if containsAny(foldTurkish(line), nameStopwords) {
			continue
		}
		if reFullName.MatchString(line) {
			return cleanupName(line)
		}
	}
	return ""
}

// inlineNameValue returns the text after a :/- separator, or the line with
// its leading label tokens stripped when there is no separator.
func inlineNameValue(line string) string {
	if idx := strings.IndexAny(line, ":-"); idx >= 0 {
		return strings.TrimSpace(line[idx+1:])
	}
	return stripLabelTokens(line)
}

func usableName(v string) bool {
	return v != "" && !containsDigit(v) && runeLen(v) >= minNameLen
}

func cleanupName(v string) string {
	return collapseSpaces(stripLabelTokens(v))
}

func stripLabelTokens(s string) string {
	fields := strings.Fields(s)
	for len(fields) > 0 {
		tok := strings.Trim(foldTurkish(fields[0]), ":-")
		if !labelTokenSet[tok] {
			break
		}
		fields = fields[1:]
	}
	return strings.Join(fields, " ")
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
