package analytics

import "strings"

// Base engagement score per detected emotion. Unrecognized or missing
// emotions fall back to the neutral 0.5.
var emotionBaseScores = map[string]float64{
	"happy":    0.8,
	"neutral":  0.5,
	"sad":      0.2,
	"surprise": 0.6,
	"anger":    0.3,
}

const (
	fatigueAlert  = "Alert"
	fatigueSleepy = "Sleepy"
)

// computeEngagementScore derives the aggregated [0,1] score from the latest
// emotion and fatigue signals. The emotion match is case-insensitive; the
// fatigue match is exact-case, any other value applies no adjustment.
func computeEngagementScore(emotion, fatigueStatus string) float64 {
	score, ok := emotionBaseScores[strings.ToLower(emotion)]
	if !ok {
		score = 0.5
	}

	switch fatigueStatus {
	case fatigueAlert:
		score += 0.1
	case fatigueSleepy:
		score -= 0.1
	}

	if score < 0.0 {
		return 0.0
	}
	if score > 1.0 {
		return 1.0
	}
	return score
}
