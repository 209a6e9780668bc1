package search

// Confidence bands. Raw similarity is deliberately not exposed as the
// HITL gating signal; its distribution is not calibrated to auto-send
// risk, so the best match score is folded into four trust tiers.
const (
	ConfidenceHigh   = 0.85
	ConfidenceMedium = 0.65
	ConfidenceLow    = 0.4
	ConfidenceNone   = 0.3
)

// ConfidenceFrom maps the best match score to its trust tier. No match
// at all lands in the lowest tier.
func ConfidenceFrom(matches []Match) float64 {
	if len(matches) == 0 {
		return ConfidenceNone
	}

	best := matches[0].Score
	switch {
	case best > 0.7:
		return ConfidenceHigh
	case best > 0.5:
		return ConfidenceMedium
	case best > 0.3:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}
