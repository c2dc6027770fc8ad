package ocr

import "testing"

func TestExtractPhoneVariants(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Tel: 0532 123 45 67", "05321234567"},
		{"Telefon +90 532 123 45 67", "05321234567"},
		{"Gsm: (0532) 123-45-67", "05321234567"},
		{"532 123 45 67 arayin", "05321234567"},
		{"siparis notu: zili calma", ""},
	}
	for _, tc := range cases {
		if got := ExtractPhone(tc.text); got != tc.want {
			t.Fatalf("ExtractPhone(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestExtractPhoneFirstMatchWins(t *testing.T) {
	text := "Tel: 0532 111 22 33\nTel2: 0533 444 55 66"
	if got := ExtractPhone(text); got != "05321112233" {
		t.Fatalf("expected first number, got %q", got)
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	once := normalizePhone("0532 123 45 67")
	twice := normalizePhone(once)
	if once != twice || once != "05321234567" {
		t.Fatalf("normalization not idempotent: %q vs %q", once, twice)
	}
}
