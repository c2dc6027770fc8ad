package ocr

import "testing"

func TestScoreQuality(t *testing.T) {
	cases := []struct {
		confidence float64
		missing    int
		want       Quality
	}{
		{90, 0, QualityHigh},
		{82, 1, QualityHigh},
		{82, 2, QualityMedium},
		{81.9, 0, QualityMedium},
		{70, 2, QualityMedium},
		{65, 3, QualityLow},
		{64.9, 0, QualityLow},
		{40, 0, QualityLow},
	}
	for _, tc := range cases {
		if got := ScoreQuality(tc.confidence, tc.missing); got != tc.want {
			t.Fatalf("ScoreQuality(%v, %d) = %s, want %s", tc.confidence, tc.missing, got, tc.want)
		}
	}
}
