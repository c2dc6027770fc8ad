package ocr

// Confidence cutoffs for the quality tiers. Tuned against real slips; a
// high-confidence scan with at most one unresolved field needs no review
// beyond confirmation.
const (
	highConfidence   = 82
	mediumConfidence = 65
)

// ScoreQuality maps engine confidence (0-100) and the number of unresolved
// required fields to a three-tier label.
func ScoreQuality(confidence float64, missingFields int) Quality {
	switch {
	case confidence >= highConfidence && missingFields <= 1:
		return QualityHigh
	case confidence >= mediumConfidence && missingFields <= 2:
		return QualityMedium
	default:
		return QualityLow
	}
}
