package presenter

import (
	"time"

	"github.com/edupulse-team/edupulse/internal/domain/entities"
)

// ChartPoint is the chart-friendly projection of one analytics snapshot
type ChartPoint struct {
	Timestamp        time.Time          `json:"timestamp"`
	EngagementScores map[string]float64 `json:"engagementScores"`
	Emotions         map[string]string  `json:"emotions"`
	Fatigue          map[string]string  `json:"fatigue"`
}

// ToChartData flattens snapshots into the shape the dashboard charts expect
func ToChartData(snapshots []*entities.MeetingAnalyticsSnapshot) []ChartPoint {
	points := make([]ChartPoint, 0, len(snapshots))
	for _, snapshot := range snapshots {
		points = append(points, ChartPoint{
			Timestamp:        snapshot.Timestamp,
			EngagementScores: snapshot.EngagementScores,
			Emotions:         snapshot.CurrentEmotions,
			Fatigue:          snapshot.CurrentFatigue,
		})
	}
	return points
}
