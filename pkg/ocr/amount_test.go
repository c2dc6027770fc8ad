package ocr

import (
	"math"
	"testing"
)

func TestParseAmountTurkishFormats(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1.234,56", 1234.56},
		{"12,50", 12.5},
		{"12.50", 12.5},
		{"90", 90},
		{"2.500", 2.5}, // lone dot still reads as a decimal mark
	}
	for _, tc := range cases {
		if got := parseAmount(tc.in); got != tc.want {
			t.Fatalf("parseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if !math.IsNaN(parseAmount("abc")) {
		t.Fatalf("expected NaN for non-numeric input")
	}
}

func TestExtractAmountFromLine(t *testing.T) {
	if got := extractAmountFromLine("Toplam: 90,00 TL"); got != 90 {
		t.Fatalf("currency-marked line: got %v", got)
	}
	if got := extractAmountFromLine("Tutar 45,50"); got != 45.5 {
		t.Fatalf("decimal fraction accepted without marker: got %v", got)
	}
	// bare integers without a currency marker look like quantities or ids
	if got := extractAmountFromLine("Siparis no 1234"); got != 0 {
		t.Fatalf("unmarked integer accepted: got %v", got)
	}
	// last numeric substring wins on a marked line
	if got := extractAmountFromLine("2x Pizza 45,00 TL"); got != 45 {
		t.Fatalf("got %v", got)
	}
	// OCR often glues the amount to the currency; the marker still counts
	if got := extractAmountFromLine("Toplam: 90TL"); got != 90 {
		t.Fatalf("glued currency marker: got %v", got)
	}
}

func TestResolveAmountsGluedCurrencyMarkers(t *testing.T) {
	text := "Ara Toplam: 100TL\nIndirim: 20TL\nToplam: 95,00 TL"
	sub, disc, order := ResolveAmounts(text)
	if sub != 100 || disc != 20 {
		t.Fatalf("subtotal=%v discount=%v", sub, disc)
	}
	if order != 80 {
		t.Fatalf("expected discounted total 80, got %v", order)
	}
}

func TestResolveAmountsDiscountedTotalWins(t *testing.T) {
	text := "Ara Toplam: 100,00 TL\nIndirim: 20,00 TL\nToplam: 95,00 TL"
	sub, disc, order := ResolveAmounts(text)
	if sub != 100 || disc != 20 {
		t.Fatalf("subtotal=%v discount=%v", sub, disc)
	}
	if order != 80 {
		t.Fatalf("expected discounted total 80, got %v", order)
	}
}

func TestResolveAmountsMinPayableCandidate(t *testing.T) {
	text := "Odenecek: 150,00 TL\nOdenecek Tutar: 120,00 TL"
	_, _, order := ResolveAmounts(text)
	if order != 120 {
		t.Fatalf("expected min payable 120, got %v", order)
	}
}

func TestResolveAmountsDiscountLineNotATotal(t *testing.T) {
	// "İndirim" mentions no payable keyword, so it must not become the total
	text := "Kampanya Indirimi Toplam: 30,00 TL\nGenel Toplam: 120,00 TL"
	_, disc, order := ResolveAmounts(text)
	if disc != 30 {
		t.Fatalf("discount=%v", disc)
	}
	if order != 120 {
		t.Fatalf("expected 120, got %v", order)
	}
}

func TestResolveAmountsIndirimliIsPayable(t *testing.T) {
	text := "Toplam: 100,00 TL\nIndirimli Tutar: 85,00 TL"
	_, _, order := ResolveAmounts(text)
	if order != 85 {
		t.Fatalf("expected payable-labeled 85, got %v", order)
	}
}

func TestResolveAmountsCurrencyFallback(t *testing.T) {
	text := "2x Kola 15,00 TL\nLahmacun 30,00 TL"
	_, _, order := ResolveAmounts(text)
	if order != 30 {
		t.Fatalf("expected max currency amount 30, got %v", order)
	}
}

func TestResolveAmountsNothing(t *testing.T) {
	_, _, order := ResolveAmounts("tesekkurler, yine bekleriz")
	if order != 0 {
		t.Fatalf("expected unresolved, got %v", order)
	}
}
