package ocr

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Keyword sets, tested against diacritic-folded lines.
var (
	subtotalKeywords     = []string{"ara toplam", "aratoplam", "subtotal"}
	discountLineKeywords = []string{"indirim", "kampanya", "kupon"}
	payableKeywords      = []string{"indirimli", "odenecek", "tahsil", "net", "fatura", "fis", "odeme"}
	finalKeywords        = append([]string{"genel toplam", "toplam", "total", "tutar"}, payableKeywords...)
)

var (
	reNumeric        = regexp.MustCompile(`\d+(?:[.,]\d+)*`)
	reCurrencyMarker = regexp.MustCompile(`(?:₺|tl|lira)`)
	reFraction       = regexp.MustCompile(`[.,]\d{1,2}$`)
	reCurrencyAmount = regexp.MustCompile(`(\d+(?:[.,]\d+)*)\s*(?:₺|tl)\b`)
)

// parseAmount parses a numeric substring using Turkish formatting rules:
// when both separators appear, the dot is thousands grouping and the comma
// is the decimal mark; a lone comma is a decimal mark. NaN on failure.
func parseAmount(s string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return math.NaN()
	}
	hasDot := strings.Contains(cleaned, ".")
	hasComma := strings.Contains(cleaned, ",")
	switch {
	case hasDot && hasComma:
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case hasComma:
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// extractAmountFromLine picks the monetary value of a line. Candidates are
// scanned from the last numeric substring backward; one is accepted when the
// line carries a currency marker or the number itself has a 1-2 digit
// fractional part. Bare integers without a marker are rejected so quantities
// and phone fragments are not misread as amounts. Returns 0 when nothing
// qualifies.
func extractAmountFromLine(line string) float64 {
	folded := foldTurkish(line)
	hasCurrency := reCurrencyMarker.MatchString(folded)
	nums := reNumeric.FindAllString(line, -1)
	for i := len(nums) - 1; i >= 0; i-- {
		amt := parseAmount(nums[i])
		if math.IsNaN(amt) || amt <= 0 {
			continue
		}
		if hasCurrency || reFraction.MatchString(nums[i]) {
			return amt
		}
	}
	return 0
}

// ResolveAmounts reconciles subtotal, discount and the final payable amount
// from keyword-tagged lines. The returned order amount is 0 when no strategy
// resolved it.
func ResolveAmounts(text string) (subtotal, discount, order float64) {
	type totalCand struct {
		amt   float64
		label string
	}
	lines := splitLines(text)
	var cands []totalCand
	for _, line := range lines {
		folded := foldTurkish(line)
		if containsAny(folded, subtotalKeywords) {
			if amt := extractAmountFromLine(line); amt > subtotal {
				subtotal = amt
			}
			continue
		}
		isPayable := containsAny(folded, payableKeywords)
		if containsAny(folded, discountLineKeywords) && !isPayable {
			if amt := extractAmountFromLine(line); amt > discount {
				discount = amt
			}
		}
		if containsAny(folded, finalKeywords) {
			// "İndirim: X" mentions a discount, not a total, unless a payable
			// keyword says otherwise.
			if strings.Contains(folded, "indirim") && !isPayable {
				continue
			}
			if amt := extractAmountFromLine(line); amt > 0 {
				cands = append(cands, totalCand{amt: amt, label: folded})
			}
		}
	}

	// A slip may carry several payable-labeled figures (pre- and
	// post-discount); the smallest one is the amount actually due.
	for _, c := range cands {
		if !containsAny(c.label, payableKeywords) {
			continue
		}
		if order == 0 || c.amt < order {
			order = c.amt
		}
	}
	if order == 0 {
		for _, c := range cands {
			if c.amt > order {
				order = c.amt
			}
		}
	}
	if subtotal > 0 && discount > 0 {
		if dt := subtotal - discount; dt > 0 && (order == 0 || dt < order) {
			order = dt
		}
	}
	if order == 0 {
		order = minPayableLineAmount(lines)
	}
	if order == 0 {
		order = maxCurrencyAmount(text)
	}
	return subtotal, discount, order
}

// minPayableLineAmount relaxes the currency gate: on lines that mention a
// payable keyword, any parseable number counts, and the minimum wins.
func minPayableLineAmount(lines []string) float64 {
	var best float64
	for _, line := range lines {
		if !containsAny(foldTurkish(line), payableKeywords) {
			continue
		}
		for _, n := range reNumeric.FindAllString(line, -1) {
			amt := parseAmount(n)
			if math.IsNaN(amt) || amt <= 0 {
				continue
			}
			if best == 0 || amt < best {
				best = amt
			}
		}
	}
	return best
}

// maxCurrencyAmount is the last resort: the largest currency-suffixed number
// anywhere in the text.
func maxCurrencyAmount(text string) float64 {
	var best float64
	for _, m := range reCurrencyAmount.FindAllStringSubmatch(foldTurkish(text), -1) {
		if amt := parseAmount(m[1]); !math.IsNaN(amt) && amt > best {
			best = amt
		}
	}
	return best
}
