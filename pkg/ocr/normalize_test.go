package ocr

import (
	"strings"
	"testing"
)

func TestNormalizeTextCleansArtifacts(t *testing.T) {
	raw := "Musteri: “Ali”  \r\nTel\r\n\n\n\nAdres: Kav|r Sk.   \n"
	got := NormalizeText(raw)
	if strings.Contains(got, "\r") {
		t.Fatalf("carriage return survived: %q", got)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Fatalf("blank-line run survived: %q", got)
	}
	for _, q := range []string{"“", "”", "‘", "’"} {
		if strings.Contains(got, q) {
			t.Fatalf("curly quote %q survived: %q", q, got)
		}
	}
	if !strings.Contains(got, "KavIr") {
		t.Fatalf("vertical bar not mapped to I: %q", got)
	}
	if strings.HasSuffix(got, "\n") || strings.Contains(got, " \n") {
		t.Fatalf("trailing whitespace survived: %q", got)
	}
}

func TestNormalizeTextEmpty(t *testing.T) {
	if got := NormalizeText("  \n\n "); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestFoldTurkish(t *testing.T) {
	if got := foldTurkish("MÜŞTERİ Adı IŞIK"); got != "musteri adi isik" {
		t.Fatalf("fold mismatch: %q", got)
	}
	if got := foldTurkish("Çğıöşü"); got != "cgiosu" {
		t.Fatalf("fold mismatch: %q", got)
	}
}
