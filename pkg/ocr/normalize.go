package ocr

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
	reMultiSpace = regexp.MustCompile(`[ \t]{2,}`)

	quoteReplacer = strings.NewReplacer(
		"‘", "'", "’", "'", "‚", "'", "′", "'",
		"“", `"`, "”", `"`, "„", `"`,
	)
)

// NormalizeText canonicalizes raw OCR output: line endings, curly quote
// glyphs, stray vertical bars (a common misread of I), trailing whitespace
// and blank-line runs. It never fails; empty input yields an empty string.
func NormalizeText(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = quoteReplacer.Replace(s)
	s = strings.ReplaceAll(s, "|", "I")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	s = strings.Join(lines, "\n")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// splitLines returns the trimmed, non-empty lines of a normalized text.
func splitLines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// rawLines keeps empty lines so that blank-line boundaries stay visible to
// the address aggregation.
func rawLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines
}

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldTurkish lowercases with Turkish casing rules and strips diacritics
// (ç→c, ğ→g, ı/i→i, ö→o, ş→s, ü→u) so every extractor tests keywords against
// the same canonical form.
func foldTurkish(s string) string {
	s = strings.ToLowerSpecial(unicode.TurkishCase, s)
	if folded, _, err := transform.String(diacriticStripper, s); err == nil {
		s = folded
	}
	// dotless ı has no combining-mark decomposition
	return strings.ReplaceAll(s, "ı", "i")
}

func containsAny(folded string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(reMultiSpace.ReplaceAllString(s, " "))
}
