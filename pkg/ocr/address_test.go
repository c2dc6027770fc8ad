package ocr

import (
	"strings"
	"testing"
)

func TestExtractAddressLabeledInline(t *testing.T) {
	text := "Musteri: Ali Can\nAdres: Atatürk Cad. No:5\n2x Pizza 45,00 TL\nToplam: 90,00 TL"
	got := ExtractAddress(text)
	if !strings.Contains(got, "Atatürk Cad. No:5") {
		t.Fatalf("got %q", got)
	}
	if strings.Contains(got, "Pizza") {
		t.Fatalf("item line absorbed into address: %q", got)
	}
}

func TestExtractAddressMultiLine(t *testing.T) {
	text := "Teslimat Adresi:\nÇamlık Mah. Gül Sk.\nNo:12 Daire 3\n\nToplam 55,50 TL"
	got := ExtractAddress(text)
	if got != "Çamlık Mah. Gül Sk. No:12 Daire 3" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractAddressStopsAtBlankLine(t *testing.T) {
	text := "Adres:\nGül Sk. No:4\n\nAhmet Borcu 120"
	got := ExtractAddress(text)
	if got != "Gül Sk. No:4" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractAddressVocabFallback(t *testing.T) {
	text := "fis 12\nKarşıyaka Mahallesi 1723. Sokak No:8"
	got := ExtractAddress(text)
	if !strings.Contains(got, "Mahallesi") {
		t.Fatalf("got %q", got)
	}
}

func TestExtractAddressNone(t *testing.T) {
	if got := ExtractAddress("2x Kola 15,00 TL\nToplam 30,00 TL"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
