package entities

import "time"

// Default engagement state for a participant who just joined
const (
	DefaultEngagementScore = 0.5
	DefaultEmotion         = "neutral"
	DefaultEngagementState = "Alert"
)

// AttendanceRecord is one participant's join/leave session within a meeting,
// carrying the live engagement state the sensing pipeline keeps updating.
//
// Exactly one open record (LeaveTime == nil) exists per (meetingId,
// participantEmail) pair; a re-join after leaving creates a new record.
type AttendanceRecord struct {
	ID                string     `bson:"_id" json:"id"`
	MeetingID         string     `bson:"meetingId" json:"meetingId"`
	ParticipantEmail  string     `bson:"participantEmail" json:"participantEmail"`
	ParticipantName   string     `bson:"participantName" json:"participantName"`
	JoinTime          time.Time  `bson:"joinTime" json:"joinTime"`
	LeaveTime         *time.Time `bson:"leaveTime,omitempty" json:"leaveTime,omitempty"`
	EngagementScore   *float64   `bson:"engagementScore,omitempty" json:"engagementScore,omitempty"`
	CurrentEmotion    string     `bson:"currentEmotion,omitempty" json:"currentEmotion,omitempty"`
	CurrentEngagement string     `bson:"currentEngagement,omitempty" json:"currentEngagement,omitempty"`
}

// CollectionName specifies the Mongo collection for AttendanceRecord
func (AttendanceRecord) CollectionName() string {
	return "attendance_records"
}

// IsOpen reports whether the session is still open
func (a *AttendanceRecord) IsOpen() bool {
	return a.LeaveTime == nil
}

// Close stamps the leave time, closing the session
func (a *AttendanceRecord) Close(at time.Time) {
	a.LeaveTime = &at
}

// Score returns the aggregated engagement score, 0.0 when never computed
func (a *AttendanceRecord) Score() float64 {
	if a.EngagementScore == nil {
		return 0.0
	}
	return *a.EngagementScore
}
