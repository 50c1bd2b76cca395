package analyzer

// Risk tier thresholds on the number of attention points.
const (
	mediumRiskThreshold = 2
	highRiskThreshold   = 4
)

// ClassifyRisk maps an attention point count to a risk tier:
// 0-1 low, 2-3 medium, 4 or more high.
func ClassifyRisk(count int) Risk {
	switch {
	case count >= highRiskThreshold:
		return RiskHigh
	case count >= mediumRiskThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}
