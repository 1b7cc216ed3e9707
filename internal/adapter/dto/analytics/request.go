package analytics

import "time"

// EmotionDataRequest is the body of POST /api/analytics/emotion
type EmotionDataRequest struct {
	MeetingID     string    `json:"meetingId" validate:"required"`
	ParticipantID string    `json:"participantId" validate:"required"`
	Emotion       string    `json:"emotion" validate:"required"`
	Timestamp     time.Time `json:"timestamp,omitempty"`
}

// FatigueDataRequest is the body of POST /api/analytics/fatigue
type FatigueDataRequest struct {
	MeetingID     string    `json:"meetingId" validate:"required"`
	ParticipantID string    `json:"participantId" validate:"required"`
	FatigueStatus string    `json:"fatigueStatus" validate:"required"`
	Timestamp     time.Time `json:"timestamp,omitempty"`
}

// HeadPoseDataRequest is the body of POST /api/analytics/headpose.
// Angles are degrees; zero is a legitimate reading.
type HeadPoseDataRequest struct {
	MeetingID     string    `json:"meetingId" validate:"required"`
	ParticipantID string    `json:"participantId" validate:"required"`
	Yaw           float64   `json:"yaw"`
	Pitch         float64   `json:"pitch"`
	Roll          float64   `json:"roll"`
	Timestamp     time.Time `json:"timestamp,omitempty"`
}
