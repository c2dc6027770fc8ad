package ocr

import (
	"regexp"
)

// maxItems caps how many candidate line items a single slip contributes.
const maxItems = 25

var (
	reQtyMarker = regexp.MustCompile(`(?:\b\d+\s*(?:x|adet|ad)\b|\bx\s*\d+\b)`)
	reBulletPfx = regexp.MustCompile(`^[\s\-–•*>·]+`)

	itemStopwords = []string{
		"toplam", "total", "tutar", "adres", "telefon", "tel",
		"musteri", "not", "teslimat",
	}
)

// ExtractItems selects candidate order-line-item strings, in text order.
// A line qualifies when it shows a currency-suffixed amount, a quantity
// marker, or a word cluster followed by a 2+ digit number, and mentions no
// field label.
func ExtractItems(lines []string) []string {
	items := []string{}
	for _, line := range lines {
		if len(items) == maxItems {
			break
		}
		if runeLen(line) <= 2 {
			continue
		}
		folded := foldTurkish(line)
		if containsAny(folded, itemStopwords) {
			continue
		}
		if !reCurrencyTail.MatchString(folded) && !reQtyMarker.MatchString(folded) && !reItemShape.MatchString(folded) {
			continue
		}
		items = append(items, reBulletPfx.ReplaceAllString(line, ""))
	}
	return items
}
