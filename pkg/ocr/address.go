package ocr

import (
	"regexp"
	"strings"
)

// An address label may carry the value inline and/or spill onto the next
// few lines; we absorb at most this many continuation lines.
const maxAddressLines = 3

var (
	reAddressLabel = regexp.MustCompile(`^(?:teslimat adresi|delivery address|address|teslimat|adres)`)

	// Turkish street vocabulary used by both fallbacks.
	addressVocab = `(?:mahalle|mah\.|sokak|sk\.|cadde|cd\.|apartman|apt\.|site|blok|daire|no\s*:?)`

	reAddressVocabLine   = regexp.MustCompile(`\b` + addressVocab)
	reAddressVocabInline = regexp.MustCompile(`(?i)[^\n]{0,24}` + addressVocab + `[^\n]{8,}`)

	reCurrencyTail = regexp.MustCompile(`\d+[.,]?\d*\s*(?:₺|tl)\b`)

	// Quantity markers and word-then-number shapes that signal an item line.
	reItemQty   = regexp.MustCompile(`(?:\b\d+\s*x\s*\S|\S\s*x\s*\d+\b)`)
	reItemShape = regexp.MustCompile(`\p{L}{2,}\s+\d{2,}\b`)

	addressStopwords = []string{
		"toplam", "total", "tutar", "telefon", "tel:",
		"musteri", "odeme", "siparis notu",
	}
)

// ExtractAddress recovers a delivery/pickup address. The primary strategy
// aggregates a labeled line with up to three continuation lines; the
// fallbacks look for Turkish street vocabulary, first per line, then inline
// across the whole text.
func ExtractAddress(text string) string {
	lines := rawLines(text)
	for i, line := range lines {
		folded := foldTurkish(line)
		if !reAddressLabel.MatchString(folded) {
			continue
		}
		var chunks []string
		if v := inlineAddressValue(line); v != "" {
			chunks = append(chunks, v)
		}
		for j := i + 1; j < len(lines) && j <= i+maxAddressLines; j++ {
			next := lines[j]
			if next == "" || !continuesAddress(next) {
				break
			}
			chunks = append(chunks, next)
		}
		if len(chunks) > 0 {
			return collapseSpaces(strings.Join(chunks, " "))
		}
	}
	for _, line := range splitLines(text) {
		if reAddressVocabLine.MatchString(foldTurkish(line)) {
			return collapseSpaces(line)
		}
	}
	if m := reAddressVocabInline.FindString(text); m != "" {
		return collapseSpaces(m)
	}
	return ""
}

func inlineAddressValue(line string) string {
	if idx := strings.IndexAny(line, ":-"); idx >= 0 {
		return strings.TrimSpace(line[idx+1:])
	}
	// drop the label words themselves
	fields := strings.Fields(line)
	for len(fields) > 0 {
		switch foldTurkish(fields[0]) {
		case "teslimat", "adresi", "adres", "delivery", "address":
			fields = fields[1:]
			continue
		}
		break
	}
	return strings.Join(fields, " ")
}

// continuesAddress reports whether a line still belongs to a multi-line
// address rather than starting the item or totals section.
func continuesAddress(line string) bool {
	folded := foldTurkish(line)
	if containsAny(folded, addressStopwords) {
		return false
	}
	if reCurrencyTail.MatchString(folded) {
		return false
	}
	if reItemQty.MatchString(folded) || reItemShape.MatchString(folded) {
		return false
	}
	return true
}
