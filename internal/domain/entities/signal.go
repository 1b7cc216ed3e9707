package entities

import "time"

// EmotionEntry is an immutable facial-emotion observation from the sensing
// pipeline. Append-only; never mutated or deleted.
type EmotionEntry struct {
	ID            string    `bson:"_id" json:"id"`
	MeetingID     string    `bson:"meetingId" json:"meetingId"`
	ParticipantID string    `bson:"participantId" json:"participantId"`
	Emotion       string    `bson:"emotion" json:"emotion"`
	Timestamp     time.Time `bson:"timestamp" json:"timestamp"`
}

// CollectionName specifies the Mongo collection for EmotionEntry
func (EmotionEntry) CollectionName() string {
	return "emotion_entries"
}

// FatigueEntry is an immutable fatigue-status observation
type FatigueEntry struct {
	ID            string    `bson:"_id" json:"id"`
	MeetingID     string    `bson:"meetingId" json:"meetingId"`
	ParticipantID string    `bson:"participantId" json:"participantId"`
	FatigueStatus string    `bson:"fatigueStatus" json:"fatigueStatus"`
	Timestamp     time.Time `bson:"timestamp" json:"timestamp"`
}

// CollectionName specifies the Mongo collection for FatigueEntry
func (FatigueEntry) CollectionName() string {
	return "fatigue_entries"
}

// HeadPoseEntry is an immutable head-pose observation; angles are degrees
type HeadPoseEntry struct {
	ID            string    `bson:"_id" json:"id"`
	MeetingID     string    `bson:"meetingId" json:"meetingId"`
	ParticipantID string    `bson:"participantId" json:"participantId"`
	Yaw           float64   `bson:"yaw" json:"yaw"`
	Pitch         float64   `bson:"pitch" json:"pitch"`
	Roll          float64   `bson:"roll" json:"roll"`
	Timestamp     time.Time `bson:"timestamp" json:"timestamp"`
}

// CollectionName specifies the Mongo collection for HeadPoseEntry
func (HeadPoseEntry) CollectionName() string {
	return "head_pose_entries"
}
