package ocr

import "strings"

// Folded prefixes announcing a free-text note. Longer labels first so
// "siparis notu" is not claimed by the bare "not" prefix.
var noteLabels = []string{"siparis notu", "aciklama", "note", "not"}

// ExtractNotes captures the free text after a notes label: inline after a
// :/- separator, else the following line when it is not an amount or item
// line. Empty string when no label is present.
func ExtractNotes(lines []string) string {
	for i, line := range lines {
		folded := foldTurkish(line)
		for _, label := range noteLabels {
			if !strings.HasPrefix(folded, label) {
				continue
			}
			if idx := strings.IndexAny(line, ":-"); idx >= 0 {
				if v := collapseSpaces(line[idx+1:]); v != "" {
					return v
				}
			}
			if i+1 < len(lines) {
				next := lines[i+1]
				nf := foldTurkish(next)
				if !reCurrencyTail.MatchString(nf) && !reItemQty.MatchString(nf) {
					return collapseSpaces(next)
				}
			}
			return ""
		}
	}
	return ""
}
