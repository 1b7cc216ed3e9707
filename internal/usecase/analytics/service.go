package analytics

import (
	"context"
	"time"

	"github.com/edupulse-team/edupulse/internal/domain/entities"
)

// RecordEmotionInput carries one emotion observation
type RecordEmotionInput struct {
	MeetingID     string
	ParticipantID string
	Emotion       string
	Timestamp     time.Time
}

// RecordFatigueInput carries one fatigue observation
type RecordFatigueInput struct {
	MeetingID     string
	ParticipantID string
	FatigueStatus string
	Timestamp     time.Time
}

// RecordHeadPoseInput carries one head-pose observation, angles in degrees
type RecordHeadPoseInput struct {
	MeetingID     string
	ParticipantID string
	Yaw           float64
	Pitch         float64
	Roll          float64
	Timestamp     time.Time
}

// EngagementScoreRow is the per-participant live engagement view for a meeting
type EngagementScoreRow struct {
	ParticipantID     string   `json:"participantId"`
	ParticipantEmail  string   `json:"participantEmail"`
	ParticipantName   string   `json:"participantName"`
	EngagementScore   *float64 `json:"engagementScore"`
	CurrentEmotion    string   `json:"currentEmotion"`
	CurrentEngagement string   `json:"currentEngagement"`
}

// Service defines the interface for the analytics use case
type Service interface {
	// RecordEmotion appends the entry, then updates the matching attendance
	// record's current emotion and recomputes its engagement score
	RecordEmotion(ctx context.Context, input RecordEmotionInput) error

	// RecordFatigue appends the entry, then updates the matching attendance
	// record's engagement state and recomputes its engagement score
	RecordFatigue(ctx context.Context, input RecordFatigueInput) error

	// RecordHeadPose appends the entry; head pose has no attendance side
	// effect
	RecordHeadPose(ctx context.Context, input RecordHeadPoseInput) error

	// GenerateSnapshot captures every participant's engagement state for
	// the meeting as a new immutable snapshot
	GenerateSnapshot(ctx context.Context, meetingID string) error

	// MeetingAnalytics retrieves all snapshots taken for a meeting
	MeetingAnalytics(ctx context.Context, meetingID string) ([]*entities.MeetingAnalyticsSnapshot, error)

	// ParticipantEmotions retrieves the emotion log for a participant
	ParticipantEmotions(ctx context.Context, participantID string) ([]*entities.EmotionEntry, error)

	// ParticipantFatigue retrieves the fatigue log for a participant
	ParticipantFatigue(ctx context.Context, participantID string) ([]*entities.FatigueEntry, error)

	// ParticipantHeadPose retrieves the head-pose log for a participant
	ParticipantHeadPose(ctx context.Context, participantID string) ([]*entities.HeadPoseEntry, error)

	// AttendanceCount counts attendance records for a meeting
	AttendanceCount(ctx context.Context, meetingID string) (int, error)

	// EngagementScores lists the live engagement view of every participant
	EngagementScores(ctx context.Context, meetingID string) ([]EngagementScoreRow, error)

	// StudentEngagement resolves one participant's live engagement record
	StudentEngagement(ctx context.Context, meetingID, participantEmail string) (*entities.AttendanceRecord, error)
}

// Ensure AnalyticsService implements Service interface
var _ Service = (*AnalyticsService)(nil)
