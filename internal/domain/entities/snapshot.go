package entities

import "time"

// MeetingAnalyticsSnapshot is an immutable point-in-time capture of every
// participant's engagement state for a meeting. The three maps are parallel,
// keyed by participant email.
type MeetingAnalyticsSnapshot struct {
	ID               string             `bson:"_id" json:"id"`
	MeetingID        string             `bson:"meetingId" json:"meetingId"`
	Timestamp        time.Time          `bson:"timestamp" json:"timestamp"`
	EngagementScores map[string]float64 `bson:"engagementScores" json:"engagementScores"`
	CurrentEmotions  map[string]string  `bson:"currentEmotions" json:"currentEmotions"`
	CurrentFatigue   map[string]string  `bson:"currentFatigue" json:"currentFatigue"`
}

// CollectionName specifies the Mongo collection for MeetingAnalyticsSnapshot
func (MeetingAnalyticsSnapshot) CollectionName() string {
	return "analytics_snapshots"
}
