package ocr

import "testing"

func TestExtractNotesInline(t *testing.T) {
	lines := []string{"Not: Kapıya bırakın", "Toplam: 90,00 TL"}
	if got := ExtractNotes(lines); got != "Kapıya bırakın" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractNotesNextLine(t *testing.T) {
	lines := []string{"Sipariş Notu:", "zili calmayin lutfen"}
	if got := ExtractNotes(lines); got != "zili calmayin lutfen" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractNotesSkipsAmountLine(t *testing.T) {
	lines := []string{"Not:", "Toplam 90,00 TL"}
	if got := ExtractNotes(lines); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestExtractNotesNone(t *testing.T) {
	if got := ExtractNotes([]string{"Musteri: Ali", "2x Pide 40,00 TL"}); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
