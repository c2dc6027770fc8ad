package ocr

import (
	"fmt"
	"testing"
)

func TestExtractItemsShapes(t *testing.T) {
	lines := []string{
		"2x Pizza 45,00 TL",     // currency amount
		"3 adet Ayran",          // quantity marker
		"Lahmacun 30",           // word cluster + 2-digit number
		"- 1x Kunefe",           // bullet marker stripped
		"Toplam: 90,00 TL",      // stopword
		"Tel: 0532 123 45 67",   // stopword
		"ok",                    // too short
		"tesekkurler",           // no shape
	}
	items := ExtractItems(lines)
	want := []string{"2x Pizza 45,00 TL", "3 adet Ayran", "Lahmacun 30", "1x Kunefe"}
	if len(items) != len(want) {
		t.Fatalf("got %d items %v, want %d", len(items), items, len(want))
	}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("item %d = %q, want %q", i, items[i], want[i])
		}
	}
}

func TestExtractItemsCap(t *testing.T) {
	var lines []string
	for i := 0; i < 40; i++ {
		lines = append(lines, fmt.Sprintf("%dx Kebap %d,00 TL", i+1, 30+i))
	}
	items := ExtractItems(lines)
	if len(items) != maxItems {
		t.Fatalf("expected %d items, got %d", maxItems, len(items))
	}
	if items[0] != "1x Kebap 30,00 TL" || items[maxItems-1] != "25x Kebap 54,00 TL" {
		t.Fatalf("order not preserved: first=%q last=%q", items[0], items[maxItems-1])
	}
}
